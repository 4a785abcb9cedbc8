package ledger

import "encoding/json"

// Settings holds per-user preferences. Each user has at most one.
type Settings struct {
	Meta
	FiscalDayStart int
	ActiveParsers  json.RawMessage
}

func (s Settings) Validate() error {
	if err := s.validateOwner(); err != nil {
		return err
	}
	if err := validateDay("fiscal_day_start", s.FiscalDayStart); err != nil {
		return err
	}
	return validateJSON("active_parsers", s.ActiveParsers)
}
