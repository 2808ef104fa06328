package models

// Company is a taxed in-game organization
type Company struct {
	ID     int64  `db:"id" json:"id"`
	Name   string `db:"nome" json:"nome"`
	Status int64  `db:"stato" json:"stato"`
}

// Week is a taxation period
type Week struct {
	ID    int64   `db:"id" json:"id"`
	Start *string `db:"inizio" json:"inizio"`
	End   *string `db:"fine" json:"fine"`
}

// Taxation is the record of one company for one week
type Taxation struct {
	ID             int64    `db:"id" json:"id"`
	Company        int64    `db:"azienda" json:"azienda"`
	Week           int64    `db:"settimana" json:"settimana"`
	PreviousCash   *float64 `db:"cassaprecedente" json:"cassaprecedente"`
	TotalExpenses  *float64 `db:"totaleuscite" json:"totaleuscite"`
	CurrentCash    *float64 `db:"cassacorrente" json:"cassacorrente"`
	Taxes          *float64 `db:"imposte" json:"imposte"`
	CollectionDate *string  `db:"datariscossione" json:"datariscossione"`
	DepositDate    *string  `db:"datadeposito" json:"datadeposito"`
}

// Taxes is the tax amount of a taxation row
type Taxes struct {
	Amount *float64 `db:"imposte" json:"imposte"`
}

// Article is an entry of the legal code
type Article struct {
	ID          int64    `db:"id" json:"id"`
	Category    *int64   `db:"categoria" json:"categoria"`
	Article     string   `db:"articolo" json:"articolo"`
	Description *string  `db:"descrizione" json:"descrizione"`
	Months      *int64   `db:"pena_mesi" json:"pena_mesi"`
	Fine        *float64 `db:"multa" json:"multa"`
}

// SimpleArticle is a short form legal code entry
type SimpleArticle struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"nome" json:"nome"`
	Description *string `db:"descrizione" json:"descrizione"`
}

// Category groups legal code articles
type Category struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"nome" json:"nome"`
}

// StatusRequest is the body of the company status toggle
type StatusRequest struct {
	Value *int64 `json:"value"`
}

// ValueRequest is the body of the incremental field update
type ValueRequest struct {
	Field string   `json:"field"`
	Value *float64 `json:"value"`
}

// CollectedRequest is the body of the collection toggle
type CollectedRequest struct {
	Checked *bool    `json:"checked"`
	Value   *float64 `json:"value"`
}

// DepositedRequest is the body of the deposit toggle
type DepositedRequest struct {
	Checked *bool `json:"checked"`
}
