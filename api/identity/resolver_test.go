package identity_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fivelives/tablet-api/api/identity"
	"github.com/fivelives/tablet-api/databases"
	"github.com/fivelives/tablet-api/databases/mocks"
	"github.com/fivelives/tablet-api/models"
)

const registry = `{"players":[
	{"license":"aaa111","ids":["license:aaa111","discord:1001"],"tsLastConnection":1718000000,"playTime":90},
	{"license":"bbb222","ids":["discord:1002","fivem:55"],"tsLastConnection":1718100000,"playTime":30}
]}`

func writeRegistry(t *testing.T, content string) *identity.Snapshot {
	t.Helper()
	path := filepath.Join(t.TempDir(), "playersDB.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return identity.NewSnapshot(path)
}

func valid(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func TestResolveUsesStoredLicense(t *testing.T) {
	users := &mocks.UserDatabase{}
	users.On("FindOne", mock.Anything, "17").Return(&models.User{ID: "17", Discord: valid("1001"), FiveM: valid("stored")}, nil)

	license, err := identity.NewResolver(users, identity.NewSnapshot("/does/not/exist")).Resolve(context.Background(), "17")
	require.NoError(t, err)
	assert.Equal(t, "stored", license)
	users.AssertNotCalled(t, "SetFiveM", mock.Anything, mock.Anything, mock.Anything)
}

func TestResolveFromRegistryPersistsMapping(t *testing.T) {
	users := &mocks.UserDatabase{}
	users.On("FindOne", mock.Anything, "17").Return(&models.User{ID: "17", Discord: valid("1002")}, nil)
	users.On("SetFiveM", mock.Anything, "17", "bbb222").Return(nil)

	license, err := identity.NewResolver(users, writeRegistry(t, registry)).Resolve(context.Background(), "17")
	require.NoError(t, err)
	assert.Equal(t, "bbb222", license)
	users.AssertExpectations(t)
}

func TestResolveNotFound(t *testing.T) {
	tests := []struct {
		name string
		user *models.User
		err  error
	}{
		{"unknown account", nil, databases.ErrNotFound},
		{"no discord", &models.User{ID: "17"}, nil},
		{"not in registry", &models.User{ID: "17", Discord: valid("9999")}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &mocks.UserDatabase{}
			users.On("FindOne", mock.Anything, "17").Return(tt.user, tt.err)

			_, err := identity.NewResolver(users, writeRegistry(t, registry)).Resolve(context.Background(), "17")
			assert.ErrorIs(t, err, identity.ErrIdentityNotFound)
		})
	}
}

func TestResolveStoreFailure(t *testing.T) {
	users := &mocks.UserDatabase{}
	users.On("FindOne", mock.Anything, "17").Return(nil, errors.New("connection reset"))

	_, err := identity.NewResolver(users, writeRegistry(t, registry)).Resolve(context.Background(), "17")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, identity.ErrIdentityNotFound)
}

func TestResolveKeepsLicenseWhenPersistFails(t *testing.T) {
	users := &mocks.UserDatabase{}
	users.On("FindOne", mock.Anything, "17").Return(&models.User{ID: "17", Discord: valid("1001")}, nil)
	users.On("SetFiveM", mock.Anything, "17", "aaa111").Return(errors.New("read only"))

	license, err := identity.NewResolver(users, writeRegistry(t, registry)).Resolve(context.Background(), "17")
	require.NoError(t, err)
	assert.Equal(t, "aaa111", license)
}

func TestResolveBrokenRegistry(t *testing.T) {
	users := &mocks.UserDatabase{}
	users.On("FindOne", mock.Anything, "17").Return(&models.User{ID: "17", Discord: valid("1001")}, nil)

	_, err := identity.NewResolver(users, writeRegistry(t, "{")).Resolve(context.Background(), "17")
	assert.Error(t, err)
}

func TestCached(t *testing.T) {
	users := &mocks.UserDatabase{}
	users.On("FindOne", mock.Anything, "17").Return(&models.User{ID: "17", Discord: valid("1001")}, nil)

	_, err := identity.NewResolver(users, writeRegistry(t, registry)).Cached(context.Background(), "17")
	assert.ErrorIs(t, err, identity.ErrIdentityNotFound)
}

func TestIndexByDiscord(t *testing.T) {
	reg, err := writeRegistry(t, registry).Load()
	require.NoError(t, err)

	idx := identity.IndexByDiscord(reg)
	assert.Len(t, idx, 2)
	assert.Equal(t, "aaa111", idx["1001"].License)
	assert.Equal(t, int64(30), idx["1002"].PlayTime)
	assert.Nil(t, identity.FindByDiscord(reg, ""))
}
