package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/fivelives/tablet-api/api"
	"github.com/fivelives/tablet-api/api/reports"
	"github.com/fivelives/tablet-api/config"
	"github.com/fivelives/tablet-api/models"
)

// Fee messages shown by the tablet
const (
	msgFeeCreated       = "Multa creata con successo"
	msgFeeUpdated       = "Multa aggiornata con successo"
	msgFeeReportMissing = "Rapporto non esistente"
	msgFeePaid          = "Multa già pagata"
	msgFeePartial       = "Multa salvata, pena non registrata"
	msgServerError      = "Errore del server"
	msgInternalError    = "Internal Server Error"
	msgMissingData      = "Missing data"
)

// Report exported for testing purposes
type Report struct {
	Service *reports.Service
}

// AllReportsHandler returns every police report, newest first
func (rp Report) AllReportsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	views, err := rp.Service.List(ctx)
	if err != nil {
		config.ErrorStatus(msgInternalError, http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// ReportByIDHandler returns one report, or null when it does not exist
func (rp Report) ReportByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		config.ErrorStatus("invalid report id", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	view, err := rp.Service.Get(ctx, id)
	if err != nil {
		config.ErrorStatus(msgInternalError, http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// CreateReportHandler creates an empty report and returns its id
func (rp Report) CreateReportHandler(w http.ResponseWriter, r *http.Request) {
	var req models.CreateReportRequest
	if err := decodeBody(r, &req); err != nil {
		config.ErrorStatus(msgMissingData, http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	id, err := rp.Service.Create(ctx, req.Author)
	if err != nil {
		config.ErrorStatus(msgInternalError, http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.CreateReportResponse{Message: "Rapporto creato con successo", ID: id})
}

// CreateAnnotationHandler opens the article annotation of a report on behalf
// of the authenticated caller
func (rp Report) CreateAnnotationHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		config.ErrorStatus("invalid report id", http.StatusBadRequest, w, err)
		return
	}
	userID, _ := api.UserIDFromContext(r.Context())

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := rp.Service.CreateAnnotation(ctx, id, userID); err != nil {
		config.ErrorStatus(msgInternalError, http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Rapporto creato con successo"})
}

// ApplyFeeHandler creates or updates the fine of one implicated citizen
func (rp Report) ApplyFeeHandler(w http.ResponseWriter, r *http.Request) {
	var req models.FeeRequest
	if err := decodeBody(r, &req); err != nil || req.Value.CitizenID == "" || req.Value.ReportID == 0 {
		config.ErrorStatus(msgMissingData, http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	outcome, err := rp.Service.ApplyFee(ctx, req.Value)
	var partial *reports.PartialWriteError
	switch {
	case err == nil:
		api.RecordFee(string(outcome))
		msg := msgFeeUpdated
		if outcome == reports.FeeCreated {
			msg = msgFeeCreated
		}
		writeJSON(w, http.StatusOK, models.FeeResponse{Success: true, Message: msg})
	case errors.Is(err, reports.ErrReportNotFound):
		api.RecordFee("report_missing")
		writeJSON(w, http.StatusNotFound, models.FeeResponse{Success: false, Message: msgFeeReportMissing})
	case errors.Is(err, reports.ErrBillPaid):
		api.RecordFee("already_paid")
		writeJSON(w, http.StatusOK, models.FeeResponse{Success: false, Message: msgFeePaid})
	case errors.As(err, &partial):
		api.RecordFee("partial")
		writeJSON(w, http.StatusInternalServerError, models.FeeResponse{Success: false, Message: msgFeePartial, Partial: true})
	default:
		api.RecordFee("error")
		zap.S().Errorw("failed to apply fee", "reportId", req.Value.ReportID, "citizenId", req.Value.CitizenID, "error", err)
		writeJSON(w, http.StatusInternalServerError, models.FeeResponse{Success: false, Message: msgServerError})
	}
}

// SaveReportHandler overwrites a report and its articles
func (rp Report) SaveReportHandler(w http.ResponseWriter, r *http.Request) {
	var req models.SaveRequest
	if err := decodeBody(r, &req); err != nil || req.Value.ID == 0 {
		config.ErrorStatus(msgMissingData, http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := rp.Service.Save(ctx, req.Value); err != nil {
		config.ErrorStatus(msgInternalError, http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Rapporto salvato con successo"})
}

// DeleteReportHandler removes a report with its articles and penalties
func (rp Report) DeleteReportHandler(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteRequest
	if err := decodeBody(r, &req); err != nil || req.Value == 0 {
		config.ErrorStatus(msgMissingData, http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := rp.Service.Delete(ctx, req.Value); err != nil {
		config.ErrorStatus(msgInternalError, http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Rapporto eliminato con successo"})
}
