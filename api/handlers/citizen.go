package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/fivelives/tablet-api/api"
	"github.com/fivelives/tablet-api/api/catalog"
	"github.com/fivelives/tablet-api/api/identity"
	"github.com/fivelives/tablet-api/api/reports"
	"github.com/fivelives/tablet-api/config"
	"github.com/fivelives/tablet-api/databases"
	"github.com/fivelives/tablet-api/models"
)

const (
	msgCharacterNotFound = "PG non trovato"
	defaultBadge         = "0000"
)

// Citizen exported for testing purposes
type Citizen struct {
	DB        databases.CitizenDatabase
	Identity  *identity.Resolver
	Catalog   *catalog.Catalog
	AgentJobs []string
}

// PersonaggiHandler returns the characters of the authenticated caller
func (c Citizen) PersonaggiHandler(w http.ResponseWriter, r *http.Request) {
	userID, _ := api.UserIDFromContext(r.Context())

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	license, err := c.Identity.Resolve(ctx, userID)
	if errors.Is(err, identity.ErrIdentityNotFound) {
		writeJSON(w, http.StatusOK, []models.Character{})
		return
	}
	if err != nil {
		config.ErrorStatus(msgInternalError, http.StatusInternalServerError, w, err)
		return
	}

	characters, err := c.DB.FindByLicense(ctx, license)
	if err != nil {
		config.ErrorStatus(msgInternalError, http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, characters)
}

// JobsHandler returns the job catalog
func (c Citizen) JobsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	jobs, err := c.DB.Jobs(ctx)
	if err != nil {
		config.ErrorStatus(msgInternalError, http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

// GradesHandler returns every job grade
func (c Citizen) GradesHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	grades, err := c.DB.Grades(ctx)
	if err != nil {
		config.ErrorStatus(msgInternalError, http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, grades)
}

// JobHandler returns the job name of a character as a JSON string
func (c Citizen) JobHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	job, err := c.DB.JobOf(ctx, mux.Vars(r)["id"])
	if errors.Is(err, databases.ErrNotFound) {
		config.ErrorStatus(msgCharacterNotFound, http.StatusNotFound, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus(msgInternalError, http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// BadgeHandler returns the police badge stored in the character metadata,
// keeping its JSON type. Officers without one get the placeholder badge.
func (c Citizen) BadgeHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	var badge interface{} = defaultBadge
	meta, err := c.DB.Metadata(ctx, id)
	if err != nil {
		zap.S().Debugw("badge lookup failed", "id", id, "error", err)
	} else if b := gjson.Get(meta, "police_badge"); gjson.Valid(meta) && b.Exists() && b.Type != gjson.Null {
		badge = b.Value()
	}
	writeJSON(w, http.StatusOK, models.Badge{Badge: badge})
}

// AgentsHandler returns the characters employed by a law enforcement job
func (c Citizen) AgentsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	agents, err := c.DB.FindByJobs(ctx, c.AgentJobs)
	if err != nil {
		config.ErrorStatus(msgInternalError, http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, agents)
}

// CitizensHandler returns every character
func (c Citizen) CitizensHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	citizens, err := c.DB.Citizens(ctx)
	if err != nil {
		config.ErrorStatus(msgInternalError, http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, citizens)
}

// ItemsHandler returns the item and weapon catalog of the inventory resource
func (c Citizen) ItemsHandler(w http.ResponseWriter, r *http.Request) {
	items, err := c.Catalog.Items()
	if err != nil {
		config.ErrorStatus(msgInternalError, http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// InventoriesHandler returns the unpacked inventories of a user's characters
func (c Citizen) InventoriesHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		config.ErrorStatus("Missing user_id", http.StatusBadRequest, w, nil)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	license, err := c.Identity.Cached(ctx, userID)
	if errors.Is(err, identity.ErrIdentityNotFound) {
		config.ErrorStatus("User not found", http.StatusNotFound, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus(msgInternalError, http.StatusInternalServerError, w, err)
		return
	}

	rows, err := c.DB.Inventories(ctx, license)
	if err != nil {
		config.ErrorStatus(msgInternalError, http.StatusInternalServerError, w, err)
		return
	}
	if len(rows) == 0 {
		config.ErrorStatus(msgCharacterNotFound, http.StatusNotFound, w, nil)
		return
	}

	inventories := make([]models.Inventory, 0, len(rows))
	for _, row := range rows {
		inventories = append(inventories, models.Inventory{
			ID:        row.ID,
			Inventory: reports.ParseItems(row.Inventory),
		})
	}
	writeJSON(w, http.StatusOK, inventories)
}

// VehiclesHandler returns the owned vehicles with the model read from their properties
func (c Citizen) VehiclesHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	rows, err := c.DB.Vehicles(ctx)
	if err != nil {
		config.ErrorStatus(msgInternalError, http.StatusInternalServerError, w, err)
		return
	}

	vehicles := make([]models.Vehicle, 0, len(rows))
	for _, row := range rows {
		v := models.Vehicle{Plate: row.Plate, Nickname: row.Nickname}
		if row.Vehicle.Valid && gjson.Valid(row.Vehicle.String) {
			v.Model = gjson.Get(row.Vehicle.String, "model").Value()
		}
		vehicles = append(vehicles, v)
	}
	writeJSON(w, http.StatusOK, vehicles)
}
