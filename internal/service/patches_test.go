package service

import (
	"testing"

	"github.com/aarondl/opt/omitnull"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budgettime-server/internal/ledger"
)

func TestRecurrencePatch_DayOfMonth(t *testing.T) {
	day := 15
	stored := ledger.Recurrence{Label: "Rent", DayOfMonth: &day}

	unchanged := RecurrencePatch{}.Apply(stored)
	require.NotNil(t, unchanged.DayOfMonth)
	assert.Equal(t, 15, *unchanged.DayOfMonth)

	moved := RecurrencePatch{DayOfMonth: omitnull.From(28)}.Apply(stored)
	require.NotNil(t, moved.DayOfMonth)
	assert.Equal(t, 28, *moved.DayOfMonth)
	assert.Equal(t, 15, day, "stored value is not aliased")

	var clear omitnull.Val[int]
	clear.Null()
	cleared := RecurrencePatch{DayOfMonth: clear}.Apply(stored)
	assert.Nil(t, cleared.DayOfMonth)
	assert.Equal(t, "Rent", cleared.Label)
}
