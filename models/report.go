package models

import (
	"database/sql"
	"encoding/json"
)

// ReportRow is a police report as read from the game database, with the
// evidence inventory already joined in. Embedded JSON columns are kept raw.
type ReportRow struct {
	ID          int64          `db:"id"`
	Title       sql.NullString `db:"nome"`
	Date        sql.NullString `db:"ora"`
	Location    sql.NullString `db:"posizione"`
	Author      sql.NullString `db:"responsabile"`
	Description sql.NullString `db:"descrizione"`
	Implicated  sql.NullString `db:"criminali"`
	Victims     sql.NullString `db:"vittime"`
	Cops        sql.NullString `db:"agenti"`
	Evidence    sql.NullString `db:"prove"`
	Vehicles    sql.NullString `db:"veicoli"`
}

// Bill is a fine issued to one implicated citizen of a report
type Bill struct {
	ReportID  int64           `db:"reportid"`
	CitizenID string          `db:"citizenid"`
	Price     sql.NullFloat64 `db:"price"`
	Months    sql.NullInt64   `db:"months"`
	Payed     bool            `db:"payed"`
}

// BillInput holds the writable fields of a bill
type BillInput struct {
	ReportID  int64
	CitizenID string
	Title     string
	Concepts  json.RawMessage
	Job       string
	Author    string
	Price     float64
	Months    int64
}

// ReportUpdate holds the game database columns overwritten by a save. The
// person lists are already encoded in the stored {citizenid, name} form.
type ReportUpdate struct {
	Title       string
	Location    string
	Description string
	Implicated  json.RawMessage
	Victims     json.RawMessage
	Cops        json.RawMessage
}

// Annotation is the legal articles cited for a report as a whole
type Annotation struct {
	ReportID     int64          `db:"id"`
	Articles     sql.NullString `db:"articoli"`
	Responsabile sql.NullString `db:"responsabile"`
}

// Penalty is the subset of articles cited against one implicated citizen
type Penalty struct {
	ReportID  int64          `db:"reportid"`
	CitizenID string         `db:"citizenid"`
	Articles  sql.NullString `db:"articoli"`
}

// Person is a report participant as stored in the game database
type Person struct {
	CitizenID string `json:"citizenid"`
	Name      string `json:"name"`
}

// PersonView is a report participant as shown to the tablet
type PersonView struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

// Item is an inventory slot, used both for evidence and player inventories
type Item struct {
	ID     string  `json:"id"`
	Amount int64   `json:"amount"`
	Image  *string `json:"image"`
	URL    *string `json:"url"`
}

// PenaltyView merges a citizen's cited articles with their bill, if any
type PenaltyView struct {
	Citizen  string          `json:"citizen"`
	Articles json.RawMessage `json:"articles"`
	Price    *float64        `json:"price"`
	Months   *int64          `json:"months"`
	Payed    bool            `json:"payed"`
}

// ReportView is the composite report returned to the tablet
type ReportView struct {
	ID          int64           `json:"id"`
	Title       string          `json:"nome"`
	Date        interface{}     `json:"ora"`
	Location    *string         `json:"posizione"`
	Author      *string         `json:"responsabile"`
	Description *string         `json:"descrizione"`
	Implicated  []PersonView    `json:"criminali"`
	Victims     []PersonView    `json:"vittime"`
	Cops        []PersonView    `json:"agenti"`
	Evidence    []Item          `json:"prove"`
	Vehicles    []string        `json:"veicoli"`
	Articles    json.RawMessage `json:"articoli"`
	Penalties   []PenaltyView   `json:"pene"`
}

// FeeRequest is the body of POST /api/reports/applyfee
type FeeRequest struct {
	Value FeeValue `json:"value"`
}

// FeeValue describes the fine to apply to one citizen of a report
type FeeValue struct {
	CitizenID string          `json:"citizenid"`
	ReportID  int64           `json:"reportid"`
	Title     string          `json:"title"`
	Concepts  json.RawMessage `json:"concepts"`
	Job       string          `json:"job"`
	Author    string          `json:"author"`
	Price     float64         `json:"price"`
	Months    int64           `json:"months"`
	Articles  json.RawMessage `json:"articles"`
}

// SaveRequest is the body of POST /api/reports/save
type SaveRequest struct {
	Value SaveValue `json:"value"`
}

// SaveValue holds the editable fields of a report
type SaveValue struct {
	ID          int64           `json:"id"`
	Title       string          `json:"nome"`
	Location    string          `json:"posizione"`
	Description string          `json:"descrizione"`
	Implicated  []PersonView    `json:"criminali"`
	Victims     []PersonView    `json:"vittime"`
	Cops        []PersonView    `json:"agenti"`
	Articles    json.RawMessage `json:"articoli"`
}

// DeleteRequest is the body of POST /api/reports/delete
type DeleteRequest struct {
	Value int64 `json:"value"`
}

// CreateReportRequest is the body of POST /api/reports/create
type CreateReportRequest struct {
	Author string `json:"responsabile"`
}

// CreateReportResponse returns the id of a freshly created report
type CreateReportResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// FeeResponse is the outcome of a fee application
type FeeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Partial bool   `json:"partial,omitempty"`
}
