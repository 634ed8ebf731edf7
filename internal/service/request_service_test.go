package service

import (
	"sync"
	"testing"
	"time"

	"autoservice/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func absence(days int) AbsenceRequestRequest {
	start := time.Date(2026, 7, 6, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, days)
	return AbsenceRequestRequest{StartDate: &start, EndDate: &end, Type: model.AbsenceTypeVacation}
}

func TestRequestService_Add(t *testing.T) {
	f := newFixture(t)
	u := f.employee(t, "anna@example.com")

	_, err := f.requests.Add(f.ctx, u.ID, AbsenceRequestRequest{})
	requireResult(t, err, ResultNoDates)

	_, err = f.requests.Add(f.ctx, u.ID, absence(-2))
	requireResult(t, err, ResultBadDates)

	req := absence(4)
	req.Type = "holiday"
	_, err = f.requests.Add(f.ctx, u.ID, req)
	requireResult(t, err, ResultBadType)

	req.Type = ""
	r, err := f.requests.Add(f.ctx, u.ID, req)
	require.NoError(t, err)
	assert.Equal(t, model.RequestStatusPending, r.Status)
	assert.Equal(t, model.AbsenceTypeOther, r.Type)
}

func TestRequestService_ChangeStatus(t *testing.T) {
	f := newFixture(t)
	anna := f.employee(t, "anna@example.com")
	boss := f.employee(t, "boss@example.com")

	r, err := f.requests.Add(f.ctx, anna.ID, absence(4))
	require.NoError(t, err)

	_, err = f.requests.ChangeStatus(f.ctx, boss.ID, r.ID, model.RequestStatusPending)
	requireResult(t, err, ResultBadStatus)

	_, err = f.requests.ChangeStatus(f.ctx, anna.ID, r.ID, model.RequestStatusAccepted)
	requireResult(t, err, ResultCanNotAcceptOwnRequest)

	_, err = f.requests.ChangeStatus(f.ctx, boss.ID, 999, model.RequestStatusAccepted)
	assert.ErrorIs(t, err, ErrNotFound)

	decided, err := f.requests.ChangeStatus(f.ctx, boss.ID, r.ID, model.RequestStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, model.RequestStatusAccepted, decided.Status)
	require.NotNil(t, decided.DecidedBy)
	assert.Equal(t, boss.ID, *decided.DecidedBy)

	_, err = f.requests.ChangeStatus(f.ctx, boss.ID, r.ID, model.RequestStatusRejected)
	requireResult(t, err, ResultAlreadyDecided)

	_, err = f.requests.Edit(f.ctx, r.ID, absence(2))
	requireResult(t, err, ResultAlreadyDecided)

	stored, err := f.requests.Get(f.ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RequestStatusAccepted, stored.Status)
}

func TestRequestService_OwnRequestCanBeRejected(t *testing.T) {
	f := newFixture(t)
	anna := f.employee(t, "anna@example.com")

	r, err := f.requests.Add(f.ctx, anna.ID, absence(1))
	require.NoError(t, err)

	decided, err := f.requests.ChangeStatus(f.ctx, anna.ID, r.ID, model.RequestStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, model.RequestStatusRejected, decided.Status)
}

func TestRequestService_ConcurrentDecisionsKeepFirst(t *testing.T) {
	f := newFixture(t)
	anna := f.employee(t, "anna@example.com")
	boss := f.employee(t, "boss@example.com")
	r, err := f.requests.Add(f.ctx, anna.ID, absence(3))
	require.NoError(t, err)

	statuses := []int{model.RequestStatusAccepted, model.RequestStatusRejected, model.RequestStatusAccepted, model.RequestStatusRejected}
	decided := make([]*model.AbsenceRequest, len(statuses))
	errs := make([]error, len(statuses))
	var wg sync.WaitGroup
	for i, status := range statuses {
		wg.Add(1)
		go func(i, status int) {
			defer wg.Done()
			decided[i], errs[i] = f.requests.ChangeStatus(f.ctx, boss.ID, r.ID, status)
		}(i, status)
	}
	wg.Wait()

	var winner *model.AbsenceRequest
	for i, err := range errs {
		if err == nil {
			require.Nil(t, winner, "only one decision may be stored")
			winner = decided[i]
			continue
		}
		requireResult(t, err, ResultAlreadyDecided)
	}
	require.NotNil(t, winner)

	stored, err := f.requests.Get(f.ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, winner.Status, stored.Status)
}
