package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/fivelives/tablet-api/databases/mocks"
	"github.com/fivelives/tablet-api/models"
)

func TestRolloverOpensWeek(t *testing.T) {
	pdb := &mocks.ProcuraDatabase{}
	start, end := "2026-10-19", "2026-10-25"
	pdb.On("OpenNextWeek", mock.Anything).Return(&models.Week{ID: 42, Start: &start, End: &end}, int64(3), nil).Once()

	NewScheduler(pdb, "0 0 * * 1").rollover()
	pdb.AssertExpectations(t)
}

func TestRolloverStoreFailure(t *testing.T) {
	pdb := &mocks.ProcuraDatabase{}
	pdb.On("OpenNextWeek", mock.Anything).Return(nil, int64(0), errors.New("connection refused")).Once()

	NewScheduler(pdb, "0 0 * * 1").rollover()
	pdb.AssertExpectations(t)
}

func TestStartRejectsBadSchedule(t *testing.T) {
	s := NewScheduler(&mocks.ProcuraDatabase{}, "every monday")
	assert.Error(t, s.Start())
}

func TestStartStop(t *testing.T) {
	s := NewScheduler(&mocks.ProcuraDatabase{}, "0 0 * * 1")
	assert.NoError(t, s.Start())
	s.Stop()
}
