package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/fivelives/tablet-api/databases"
)

// Scheduler runs the periodic procura jobs
type Scheduler struct {
	cron     *cron.Cron
	schedule string
	PDB      databases.ProcuraDatabase
}

// NewScheduler creates a new scheduler instance. schedule is a standard
// five-field cron expression for the weekly rollover.
func NewScheduler(pDB databases.ProcuraDatabase, schedule string) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		schedule: schedule,
		PDB:      pDB,
	}
}

// Start registers the rollover job and starts the scheduler
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.rollover); err != nil {
		return fmt.Errorf("register rollover job %q: %w", s.schedule, err)
	}
	s.cron.Start()
	zap.S().Infow("Procura scheduler started", "schedule", s.schedule)
	return nil
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Procura scheduler stopped")
}

// rollover opens the next taxation week for every active company
func (s *Scheduler) rollover() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	week, rows, err := s.PDB.OpenNextWeek(ctx)
	if err != nil {
		zap.S().Errorw("failed to open next procura week", "error", err)
		return
	}

	zap.S().Infow("Procura week opened",
		"weekId", week.ID,
		"taxationsCreated", rows,
	)
}
