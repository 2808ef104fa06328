package handlers

import (
	"errors"
	"net/http"

	"github.com/fivelives/tablet-api/api"
	"github.com/fivelives/tablet-api/config"
	"github.com/fivelives/tablet-api/databases"
	"github.com/fivelives/tablet-api/models"
)

// Procura exported for testing purposes
type Procura struct {
	DB databases.ProcuraDatabase
}

// ArticlesHandler returns the legal code articles
func (p Procura) ArticlesHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	articles, err := p.DB.Articles(ctx)
	if err != nil {
		config.ErrorStatus(msgInternalError, http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, articles)
}

// SimpleArticlesHandler returns the short form of the legal code
func (p Procura) SimpleArticlesHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	articles, err := p.DB.SimpleArticles(ctx)
	if err != nil {
		config.ErrorStatus(msgInternalError, http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, articles)
}

// CategoriesHandler returns the legal code categories
func (p Procura) CategoriesHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	categories, err := p.DB.Categories(ctx)
	if err != nil {
		config.ErrorStatus(msgInternalError, http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// CompaniesHandler returns every company
func (p Procura) CompaniesHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	companies, err := p.DB.Companies(ctx)
	if err != nil {
		config.ErrorStatus(msgInternalError, http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, companies)
}

// WeeksHandler returns the taxation weeks, latest first
func (p Procura) WeeksHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	weeks, err := p.DB.Weeks(ctx)
	if err != nil {
		config.ErrorStatus(msgInternalError, http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, weeks)
}

// TaxationsHandler returns every taxation row, latest first
func (p Procura) TaxationsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	taxations, err := p.DB.Taxations(ctx)
	if err != nil {
		config.ErrorStatus(msgInternalError, http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, taxations)
}

// TaxesHandler returns the taxes of a company for a week, or null
func (p Procura) TaxesHandler(w http.ResponseWriter, r *http.Request) {
	company, week, ok := companyWeek(w, r)
	if !ok {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	taxes, err := p.DB.Taxes(ctx, company, week)
	if err != nil && !errors.Is(err, databases.ErrNotFound) {
		config.ErrorStatus(msgInternalError, http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, taxes)
}

// CompanyStatusHandler activates or deactivates a company from a week onward
func (p Procura) CompanyStatusHandler(w http.ResponseWriter, r *http.Request) {
	company, week, ok := companyWeek(w, r)
	if !ok {
		return
	}
	var req models.StatusRequest
	if err := decodeBody(r, &req); err != nil || req.Value == nil {
		config.ErrorStatus("Valore non fornito", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := p.DB.SetCompanyStatus(ctx, company, week, *req.Value); err != nil {
		config.ErrorStatus(msgInternalError, http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Stato aggiornato con successo"})
}

// TaxationValueHandler sets one of the cash fields of a taxation row
func (p Procura) TaxationValueHandler(w http.ResponseWriter, r *http.Request) {
	company, week, ok := companyWeek(w, r)
	if !ok {
		return
	}
	var req models.ValueRequest
	if err := decodeBody(r, &req); err != nil || req.Field == "" || req.Value == nil {
		config.ErrorStatus("Valore non fornito", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	err := p.DB.SetTaxationValue(ctx, company, week, req.Field, *req.Value)
	if errors.Is(err, databases.ErrInvalidField) {
		config.ErrorStatus("Campo non valido", http.StatusBadRequest, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus(msgInternalError, http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Campo valore aggiornato con successo"})
}

// CollectedHandler marks the taxes of a row as collected, or clears them
func (p Procura) CollectedHandler(w http.ResponseWriter, r *http.Request) {
	company, week, ok := companyWeek(w, r)
	if !ok {
		return
	}
	var req models.CollectedRequest
	if err := decodeBody(r, &req); err != nil || req.Checked == nil || req.Value == nil {
		config.ErrorStatus("Campo o valore non fornito", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := p.DB.SetCollected(ctx, company, week, *req.Checked, *req.Value); err != nil {
		config.ErrorStatus(msgInternalError, http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Campo data aggiornato con successo"})
}

// DepositedHandler marks the taxes of a row as deposited, or clears it
func (p Procura) DepositedHandler(w http.ResponseWriter, r *http.Request) {
	company, week, ok := companyWeek(w, r)
	if !ok {
		return
	}
	var req models.DepositedRequest
	if err := decodeBody(r, &req); err != nil || req.Checked == nil {
		config.ErrorStatus("Campo non fornito", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := p.DB.SetDeposited(ctx, company, week, *req.Checked); err != nil {
		config.ErrorStatus(msgInternalError, http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Campo data aggiornato con successo"})
}

// companyWeek reads the company and week route variables, writing a 400 when
// either is not a number
func companyWeek(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	company, err := pathInt(r, "company")
	if err != nil {
		config.ErrorStatus("invalid company id", http.StatusBadRequest, w, err)
		return 0, 0, false
	}
	week, err := pathInt(r, "week")
	if err != nil {
		config.ErrorStatus("invalid week id", http.StatusBadRequest, w, err)
		return 0, 0, false
	}
	return company, week, true
}
