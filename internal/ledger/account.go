package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Account is a bank account owned by one user.
type Account struct {
	Meta
	Name           string
	Type           AccountType
	InitialBalance decimal.NullDecimal
}

func (a Account) Validate() error {
	if err := a.validateOwner(); err != nil {
		return err
	}
	if strings.TrimSpace(a.Name) == "" {
		return required("name")
	}
	if !a.Type.Valid() {
		return invalid("type", "must be one of %v", AccountTypes)
	}
	return nil
}
