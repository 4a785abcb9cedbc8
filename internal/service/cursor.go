package service

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Cursor identifies a position in a paginated result set.
type Cursor struct {
	Position int
	Limit    int
}

func (c *Cursor) bounds() (offset, limit int) {
	limit = DefaultLimit
	if c == nil {
		return 0, limit
	}
	if c.Limit > 0 {
		limit = min(c.Limit, MaxLimit)
	}
	return max(c.Position, 0), limit
}

// page trims rows fetched with limit+1 and returns the cursor of the next
// page, or nil on the last page.
func page[T any](rows []T, offset, limit int) ([]T, *Cursor) {
	if len(rows) <= limit {
		return rows, nil
	}
	return rows[:limit], &Cursor{
		Position: offset + limit,
		Limit:    limit,
	}
}
