package reports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fivelives/tablet-api/databases"
	"github.com/fivelives/tablet-api/models"
)

// ListedJob is the job whose reports are shown by List
const ListedJob = "police"

var (
	// ErrReportNotFound is returned when a fee targets a report that does not exist
	ErrReportNotFound = errors.New("report not found")
	// ErrBillPaid is returned when a fee targets a bill that is already paid
	ErrBillPaid = errors.New("bill already paid")
)

// FeeOutcome tells whether ApplyFee created or updated the bill
type FeeOutcome string

// Fee outcomes
const (
	FeeCreated FeeOutcome = "created"
	FeeUpdated FeeOutcome = "updated"
)

// PartialWriteError reports a paired write whose game database half was
// committed while the app database half failed. The two stores disagree
// until someone reconciles them by hand.
type PartialWriteError struct {
	Op        string
	ReportID  int64
	CitizenID string
	Err       error
}

func (e *PartialWriteError) Error() string {
	if e.CitizenID != "" {
		return fmt.Sprintf("%s: report %d citizen %s: game database updated, app database not: %v", e.Op, e.ReportID, e.CitizenID, e.Err)
	}
	return fmt.Sprintf("%s: report %d: game database updated, app database not: %v", e.Op, e.ReportID, e.Err)
}

func (e *PartialWriteError) Unwrap() error {
	return e.Err
}

// Service joins the reports and bills of the game database with the articles
// and penalties of the app database
type Service struct {
	reports     databases.ReportDatabase
	bills       databases.BillDatabase
	annotations databases.AnnotationDatabase
}

// NewService returns a reports service over the given stores
func NewService(r databases.ReportDatabase, b databases.BillDatabase, a databases.AnnotationDatabase) *Service {
	return &Service{
		reports:     r,
		bills:       b,
		annotations: a,
	}
}

// Get returns the composite view of one report, or nil when the report does
// not exist in the game database
func (s *Service) Get(ctx context.Context, id int64) (*models.ReportView, error) {
	var (
		ann       *models.Annotation
		penalties []models.Penalty
		row       *models.ReportRow
		bills     []models.Bill
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ann, err = s.annotations.FindOne(gctx, id)
		if errors.Is(err, databases.ErrNotFound) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		var err error
		penalties, err = s.annotations.FindPenaltiesByReport(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		row, err = s.reports.FindOne(gctx, id)
		if errors.Is(err, databases.ErrNotFound) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		var err error
		bills, err = s.bills.FindByReport(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("get report %d: %w", id, err)
	}
	if row == nil {
		return nil, nil
	}

	view := buildView(*row, ann, penaltiesByCitizen(penalties), billsByCitizen(bills))
	return &view, nil
}

// List returns the composite view of every police report, newest first
func (s *Service) List(ctx context.Context) ([]models.ReportView, error) {
	var (
		anns      []models.Annotation
		penalties []models.Penalty
		rows      []models.ReportRow
		bills     []models.Bill
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		anns, err = s.annotations.Find(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		penalties, err = s.annotations.FindPenalties(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		rows, err = s.reports.FindByJob(gctx, ListedJob)
		return err
	})
	g.Go(func() error {
		var err error
		bills, err = s.bills.Find(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	annByReport := make(map[int64]*models.Annotation, len(anns))
	for i := range anns {
		annByReport[anns[i].ReportID] = &anns[i]
	}
	penByReport := map[int64][]models.Penalty{}
	for _, p := range penalties {
		penByReport[p.ReportID] = append(penByReport[p.ReportID], p)
	}
	billByReport := map[int64][]models.Bill{}
	for _, b := range bills {
		billByReport[b.ReportID] = append(billByReport[b.ReportID], b)
	}

	views := make([]models.ReportView, 0, len(rows))
	for _, row := range rows {
		views = append(views, buildView(row, annByReport[row.ID],
			penaltiesByCitizen(penByReport[row.ID]), billsByCitizen(billByReport[row.ID])))
	}
	return views, nil
}

// ApplyFee creates or updates the bill of one implicated citizen and stores
// the articles cited against them. The bill is written first; when the
// penalty write fails afterwards a *PartialWriteError is returned and the
// bill is kept.
func (s *Service) ApplyFee(ctx context.Context, fee models.FeeValue) (FeeOutcome, error) {
	exists, err := s.reports.Exists(ctx, fee.ReportID)
	if err != nil {
		return "", fmt.Errorf("apply fee: %w", err)
	}
	if !exists {
		return "", ErrReportNotFound
	}

	input := models.BillInput{
		ReportID:  fee.ReportID,
		CitizenID: fee.CitizenID,
		Title:     fee.Title,
		Concepts:  fee.Concepts,
		Job:       fee.Job,
		Author:    fee.Author,
		Price:     fee.Price,
		Months:    fee.Months,
	}
	if len(input.Concepts) == 0 {
		input.Concepts = emptyList
	}

	outcome := FeeUpdated
	bill, err := s.bills.FindOne(ctx, fee.ReportID, fee.CitizenID)
	switch {
	case errors.Is(err, databases.ErrNotFound):
		outcome = FeeCreated
		err = s.bills.InsertOne(ctx, input)
	case err != nil:
		return "", fmt.Errorf("apply fee: %w", err)
	case bill.Payed:
		return "", ErrBillPaid
	default:
		err = s.bills.UpdateOne(ctx, input)
	}
	if err != nil {
		return "", fmt.Errorf("apply fee: %w", err)
	}

	if err := s.annotations.UpsertPenalty(ctx, fee.ReportID, fee.CitizenID, fee.Articles); err != nil {
		return outcome, s.partial("apply fee", fee.ReportID, fee.CitizenID, err)
	}
	return outcome, nil
}

// Save overwrites the narrative fields of a report and upserts its articles
func (s *Service) Save(ctx context.Context, v models.SaveValue) error {
	update := models.ReportUpdate{
		Title:       v.Title,
		Location:    v.Location,
		Description: v.Description,
	}
	var err error
	if update.Implicated, err = storedPeople(v.Implicated); err != nil {
		return err
	}
	if update.Victims, err = storedPeople(v.Victims); err != nil {
		return err
	}
	if update.Cops, err = storedPeople(v.Cops); err != nil {
		return err
	}

	if err := s.reports.UpdateOne(ctx, v.ID, update); err != nil {
		return fmt.Errorf("save report %d: %w", v.ID, err)
	}
	if err := s.annotations.Upsert(ctx, v.ID, v.Articles); err != nil {
		return s.partial("save report", v.ID, "", err)
	}
	return nil
}

// Delete removes a report, its articles and its penalties. Bills stay in the
// game database.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.reports.DeleteOne(ctx, id); err != nil {
		return fmt.Errorf("delete report %d: %w", id, err)
	}
	if err := s.annotations.DeleteReport(ctx, id); err != nil {
		return s.partial("delete report", id, "", err)
	}
	return nil
}

// Create inserts an empty report owned by author and returns its id
func (s *Service) Create(ctx context.Context, author string) (int64, error) {
	id, err := s.reports.InsertOne(ctx, author)
	if err != nil {
		return 0, fmt.Errorf("create report: %w", err)
	}
	return id, nil
}

// CreateAnnotation inserts an empty article annotation owned by author
func (s *Service) CreateAnnotation(ctx context.Context, id int64, author string) error {
	if err := s.annotations.InsertOne(ctx, id, author); err != nil {
		return fmt.Errorf("create annotation %d: %w", id, err)
	}
	return nil
}

func (s *Service) partial(op string, reportID int64, citizenID string, err error) error {
	zap.S().Errorw("stores out of sync, manual reconciliation required",
		"op", op,
		"reportId", reportID,
		"citizenId", citizenID,
		"error", err,
	)
	return &PartialWriteError{Op: op, ReportID: reportID, CitizenID: citizenID, Err: err}
}

func storedPeople(people []models.PersonView) (json.RawMessage, error) {
	stored := make([]models.Person, 0, len(people))
	for _, p := range people {
		stored = append(stored, models.Person{CitizenID: p.ID, Name: p.Nome})
	}
	return json.Marshal(stored)
}

func penaltiesByCitizen(penalties []models.Penalty) map[string]models.Penalty {
	out := make(map[string]models.Penalty, len(penalties))
	for _, p := range penalties {
		out[p.CitizenID] = p
	}
	return out
}

func billsByCitizen(bills []models.Bill) map[string]models.Bill {
	out := make(map[string]models.Bill, len(bills))
	for _, b := range bills {
		out[b.CitizenID] = b
	}
	return out
}
