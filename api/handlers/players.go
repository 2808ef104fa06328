package handlers

import (
	"math"
	"net/http"
	"strings"

	"github.com/fivelives/tablet-api/api"
	"github.com/fivelives/tablet-api/api/identity"
	"github.com/fivelives/tablet-api/config"
	"github.com/fivelives/tablet-api/databases"
	"github.com/fivelives/tablet-api/models"
)

// Players exported for testing purposes
type Players struct {
	UDB      databases.UserDatabase
	CDB      databases.CitizenDatabase
	Snapshot *identity.Snapshot
}

// AccessHandler returns, for every linked account, when it last joined the
// server and how many hours it played
func (p Players) AccessHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	users, err := p.UDB.FindLinked(ctx)
	if err != nil {
		config.ErrorStatus(msgInternalError, http.StatusInternalServerError, w, err)
		return
	}
	reg, err := p.Snapshot.Load()
	if err != nil {
		config.ErrorStatus(msgInternalError, http.StatusInternalServerError, w, err)
		return
	}
	byDiscord := identity.IndexByDiscord(reg)

	rows := make([]models.Access, 0, len(users))
	for _, u := range users {
		row := models.Access{DiscordID: u.Discord.String, UserID: u.ID}
		if player := byDiscord[u.Discord.String]; player != nil {
			row.LastServerJoinAt, row.HoursPlayed = session(player)
		}
		rows = append(rows, row)
	}
	writeJSON(w, http.StatusOK, rows)
}

// PgsHandler returns the characters of every linked account together with the
// account's session data
func (p Players) PgsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	users, err := p.UDB.FindLinked(ctx)
	if err != nil {
		config.ErrorStatus(msgInternalError, http.StatusInternalServerError, w, err)
		return
	}
	reg, err := p.Snapshot.Load()
	if err != nil {
		config.ErrorStatus(msgInternalError, http.StatusInternalServerError, w, err)
		return
	}
	byDiscord := identity.IndexByDiscord(reg)

	licenses := make([]string, 0, len(users))
	userLicense := make(map[string]string, len(users))
	for _, u := range users {
		license := u.FiveM.String
		if player := byDiscord[u.Discord.String]; player != nil {
			license = player.License
		}
		if license = licenseOf(license); license != "" {
			userLicense[u.ID] = license
			licenses = append(licenses, license)
		}
	}

	chars, err := p.CDB.FindByLicenses(ctx, licenses)
	if err != nil {
		config.ErrorStatus(msgInternalError, http.StatusInternalServerError, w, err)
		return
	}
	byLicense := make(map[string][]models.CharacterSummary)
	for _, c := range chars {
		l := licenseOf(c.Identifier)
		byLicense[l] = append(byLicense[l], c)
	}

	result := make([]models.PlayerCharacters, 0, len(users))
	for _, u := range users {
		var lastJoin *int64
		var hours *float64
		if player := byDiscord[u.Discord.String]; player != nil {
			lastJoin, hours = session(player)
		}

		data := []models.CharacterInfo{}
		for _, c := range byLicense[userLicense[u.ID]] {
			data = append(data, models.CharacterInfo{
				Identifier:       c.Identifier,
				FirstName:        c.FirstName,
				LastName:         c.LastName,
				Job:              c.Job,
				JobGrade:         c.JobGrade,
				LastServerJoinAt: lastJoin,
				HoursPlayed:      hours,
			})
		}
		result = append(result, models.PlayerCharacters{DiscordID: u.Discord.String, Data: data})
	}
	writeJSON(w, http.StatusOK, result)
}

// session returns the last connection time and the hours played, rounded to
// two decimals
func session(p *models.Player) (*int64, *float64) {
	last := p.TSLastConnection
	hours := math.Round(float64(p.PlayTime)/60*100) / 100
	return &last, &hours
}

// licenseOf strips the identifier prefix, "char1:abc" and "license:abc" both give "abc"
func licenseOf(identifier string) string {
	if i := strings.LastIndex(identifier, ":"); i >= 0 {
		return identifier[i+1:]
	}
	return identifier
}
