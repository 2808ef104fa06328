package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fivelives/tablet-api/api/handlers"
	"github.com/fivelives/tablet-api/models"
)

type fakeRoles struct {
	asked []string
}

func (f *fakeRoles) CheckRoles(_ context.Context, ids []string) map[string]models.RoleCheck {
	f.asked = ids
	out := map[string]models.RoleCheck{}
	for _, id := range ids {
		out[id] = models.RoleCheck{IsAdmin: id == "1", IsMod: id != "3"}
	}
	return out
}

func TestRoles_CheckRolesHandler(t *testing.T) {
	fake := &fakeRoles{}
	ro := handlers.Roles{Discord: fake}

	rr := serve(t, ro.CheckRolesHandler, "GET", "/api/checkroles?ids=1,%202,,3", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"1", "2", "3"}, fake.asked)
	assert.JSONEq(t, `{
		"1":{"isAdmin":true,"isMod":true},
		"2":{"isAdmin":false,"isMod":true},
		"3":{"isAdmin":false,"isMod":false}
	}`, rr.Body.String())
}

func TestRoles_CheckRolesHandlerWithoutIDs(t *testing.T) {
	for _, target := range []string{"/api/checkroles", "/api/checkroles?ids=", "/api/checkroles?ids=,%20,"} {
		fake := &fakeRoles{}
		ro := handlers.Roles{Discord: fake}

		rr := serve(t, ro.CheckRolesHandler, "GET", target, "", nil)

		assert.Equal(t, http.StatusBadRequest, rr.Code, target)
		assert.JSONEq(t, `{"error":"Nessun ID fornito"}`, rr.Body.String(), target)
		assert.Nil(t, fake.asked, target)
	}
}
