package recurrence

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budgettime-server/internal/access"
	"github.com/carson-networks/budgettime-server/internal/handlers/v1/records/recordstest"
	"github.com/carson-networks/budgettime-server/internal/ledger"
	"github.com/carson-networks/budgettime-server/internal/service"
)

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

func storedRecurrence(owner uuid.UUID) ledger.Recurrence {
	return ledger.Recurrence{
		Meta:        ledger.Meta{ID: newID(), User: owner},
		Amount:      decimal.RequireFromString("950"),
		Label:       "Rent",
		Type:        ledger.EntryTypeExpense,
		Frequency:   ledger.FrequencyMonthly,
		NextDueDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Active:      true,
		Account:     newID(),
	}
}

func TestHTTP_UpdateRecurrence_ClearsDayOfMonth(t *testing.T) {
	api, tokens := recordstest.NewAPI(t)
	svc := &recordstest.Service[ledger.Recurrence]{}
	defer svc.AssertExpectations(t)
	Register(api, svc)

	owner := newID()
	stored := storedRecurrence(owner)
	svc.On("Update", mock.Anything, access.User(owner), stored.ID, mock.MatchedBy(func(p service.Patch[ledger.Recurrence]) bool {
		patch, ok := p.(service.RecurrencePatch)
		return ok && patch.DayOfMonth.IsNull() && patch.Label.IsUnset()
	})).Return(stored, nil)

	resp := api.Patch("/v1/recurrences/"+stored.ID.String(), recordstest.Bearer(t, tokens, access.User(owner)), map[string]any{
		"noDayOfMonth": true,
	})

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.NotContains(t, resp.Body.String(), "dayOfMonth")
}

func TestHTTP_UpdateRecurrence_SetsDayOfMonth(t *testing.T) {
	api, tokens := recordstest.NewAPI(t)
	svc := &recordstest.Service[ledger.Recurrence]{}
	defer svc.AssertExpectations(t)
	Register(api, svc)

	owner := newID()
	stored := storedRecurrence(owner)
	svc.On("Update", mock.Anything, access.User(owner), stored.ID, mock.MatchedBy(func(p service.Patch[ledger.Recurrence]) bool {
		patch, ok := p.(service.RecurrencePatch)
		day, set := patch.DayOfMonth.Get()
		return ok && set && day == 5
	})).Return(stored, nil)

	resp := api.Patch("/v1/recurrences/"+stored.ID.String(), recordstest.Bearer(t, tokens, access.User(owner)), map[string]any{
		"dayOfMonth": 5,
	})

	assert.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
}

func TestHTTP_UpdateRecurrence_DayOfMonthConflict(t *testing.T) {
	api, tokens := recordstest.NewAPI(t)
	svc := &recordstest.Service[ledger.Recurrence]{}
	defer svc.AssertExpectations(t)
	Register(api, svc)

	owner := newID()
	resp := api.Patch("/v1/recurrences/"+newID().String(), recordstest.Bearer(t, tokens, access.User(owner)), map[string]any{
		"dayOfMonth":   5,
		"noDayOfMonth": true,
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
