package ledger

import "strings"

// Member is a person transactions can be attributed to.
type Member struct {
	Meta
	Name string
	Icon string
}

func (m Member) Validate() error {
	if err := m.validateOwner(); err != nil {
		return err
	}
	if strings.TrimSpace(m.Name) == "" {
		return required("name")
	}
	return nil
}
