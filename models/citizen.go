package models

import "database/sql"

// Character is an in-game character of a player
type Character struct {
	ID          string  `db:"id" json:"id"`
	Name        string  `db:"nome" json:"nome"`
	Job         *string `db:"job" json:"job"`
	Grade       *int64  `db:"grade" json:"grade"`
	DateOfBirth *string `db:"dateofbirth" json:"dateofbirth,omitempty"`
}

// Job is an entry of the job catalog
type Job struct {
	ID    string `db:"id" json:"id"`
	Label string `db:"label" json:"label"`
}

// Grade is a rank within a job
type Grade struct {
	ID    int64  `db:"id" json:"id"`
	Job   string `db:"job" json:"job"`
	Grade int64  `db:"grade" json:"grade"`
	Label string `db:"label" json:"label"`
}

// InventoryRow is the raw inventory column of a character
type InventoryRow struct {
	ID        string         `db:"id"`
	Inventory sql.NullString `db:"inventory"`
}

// Inventory is the unpacked inventory of a character
type Inventory struct {
	ID        string `json:"id"`
	Inventory []Item `json:"inventory"`
}

// VehicleRow is an owned vehicle with its raw properties column
type VehicleRow struct {
	Plate    string         `db:"targa"`
	Nickname *string        `db:"nome"`
	Vehicle  sql.NullString `db:"vehicle"`
}

// Vehicle is an owned vehicle as shown to the tablet
type Vehicle struct {
	Plate    string      `json:"targa"`
	Nickname *string     `json:"nome"`
	Model    interface{} `json:"modello"`
}

// CatalogItem is an item or weapon known to the inventory resource
type CatalogItem struct {
	ID   string `json:"id"`
	Name string `json:"nome"`
}

// Badge is an officer badge number, a string or a number as stored
type Badge struct {
	Badge interface{} `json:"badge"`
}

// CharacterSummary is a character row used by the player aggregations
type CharacterSummary struct {
	Identifier string  `db:"identifier"`
	FirstName  *string `db:"firstname"`
	LastName   *string `db:"lastname"`
	Job        *string `db:"job"`
	JobGrade   *int64  `db:"job_grade"`
}
