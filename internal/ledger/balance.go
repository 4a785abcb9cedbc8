package ledger

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Leg is the total of one kind of movement touching an account.
type Leg struct {
	Status Status
	Type   EntryType
	// Outgoing is false only for transfers into the account via target_account.
	Outgoing bool
	Total    decimal.Decimal
}

// AccountBalance is the realized and forecast balance of an account.
type AccountBalance struct {
	Account   uuid.UUID
	Effective decimal.Decimal
	Projected decimal.Decimal
}

// Balance folds legs into an account balance. Amounts are magnitudes: income
// adds, expense subtracts, transfers move money from account to target.
// Effective counts only realized legs; Projected counts both.
func Balance(account Account, legs []Leg) AccountBalance {
	effective := decimal.Zero
	if account.InitialBalance.Valid {
		effective = account.InitialBalance.Decimal
	}
	projected := effective

	for _, leg := range legs {
		delta := legDelta(leg)
		projected = projected.Add(delta)
		if leg.Status == StatusEffective {
			effective = effective.Add(delta)
		}
	}

	return AccountBalance{
		Account:   account.ID,
		Effective: effective,
		Projected: projected,
	}
}

func legDelta(leg Leg) decimal.Decimal {
	amount := leg.Total.Abs()
	switch leg.Type {
	case EntryTypeIncome:
		return amount
	case EntryTypeExpense:
		return amount.Neg()
	case EntryTypeTransfer:
		if leg.Outgoing {
			return amount.Neg()
		}
		return amount
	}
	return decimal.Zero
}
