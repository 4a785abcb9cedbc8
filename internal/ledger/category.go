package ledger

import "strings"

// Category is a user-defined spending category. Transactions reference it by
// name only, so deleting a category never touches transaction history.
type Category struct {
	Meta
	Name          string
	IconCodePoint int
	ColorHex      string
	IsSystem      bool
}

func (c Category) Validate() error {
	if err := c.validateOwner(); err != nil {
		return err
	}
	if strings.TrimSpace(c.Name) == "" {
		return required("name")
	}
	if c.IconCodePoint == 0 {
		return required("icon_code_point")
	}
	if strings.TrimSpace(c.ColorHex) == "" {
		return required("color_hex")
	}
	return nil
}
