package category

import (
	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budgettime-server/internal/access"
	"github.com/carson-networks/budgettime-server/internal/handlers/v1/records"
	"github.com/carson-networks/budgettime-server/internal/ledger"
	"github.com/carson-networks/budgettime-server/internal/service"
)

// Category is the API response model for a spending category.
type Category struct {
	ID            string `json:"id" doc:"Category UUID"`
	User          string `json:"user" doc:"Owner UUID"`
	Name          string `json:"name"`
	IconCodePoint int    `json:"iconCodePoint" doc:"Icon font code point"`
	ColorHex      string `json:"colorHex" doc:"Display colour, e.g. '#ff8800'"`
	IsSystem      bool   `json:"isSystem" doc:"Seeded by the app rather than the user"`
	Created       string `json:"created"`
	Updated       string `json:"updated"`
}

type CreateCategoryBody struct {
	Name          string `json:"name" minLength:"1"`
	IconCodePoint int    `json:"iconCodePoint"`
	ColorHex      string `json:"colorHex" minLength:"1"`
	IsSystem      bool   `json:"isSystem,omitempty"`
}

type UpdateCategoryBody struct {
	Name          *string `json:"name,omitempty" minLength:"1"`
	IconCodePoint *int    `json:"iconCodePoint,omitempty"`
	ColorHex      *string `json:"colorHex,omitempty" minLength:"1"`
	IsSystem      *bool   `json:"isSystem,omitempty"`
}

func toCategory(c ledger.Category) Category {
	return Category{
		ID:            c.ID.String(),
		User:          c.User.String(),
		Name:          c.Name,
		IconCodePoint: c.IconCodePoint,
		ColorHex:      c.ColorHex,
		IsSystem:      c.IsSystem,
		Created:       records.FormatTime(c.Created),
		Updated:       records.FormatTime(c.Updated),
	}
}

// Register registers the category endpoints with the Huma API.
func Register(api huma.API, svc records.RecordService[ledger.Category]) {
	(&records.Resource[ledger.Category, CreateCategoryBody, UpdateCategoryBody, Category]{
		Singular: "category",
		Plural:   "categories",
		Path:     "/v1/categories",
		Tag:      "Categories",
		Service:  svc,
		FromBody: func(actor access.Actor, body CreateCategoryBody) (ledger.Category, error) {
			return ledger.Category{
				Meta:          ledger.Meta{User: actor.ID},
				Name:          body.Name,
				IconCodePoint: body.IconCodePoint,
				ColorHex:      body.ColorHex,
				IsSystem:      body.IsSystem,
			}, nil
		},
		FromPatch: func(body UpdateCategoryBody) (service.Patch[ledger.Category], error) {
			return service.CategoryPatch{
				Name:          omit.FromPtr(body.Name),
				IconCodePoint: omit.FromPtr(body.IconCodePoint),
				ColorHex:      omit.FromPtr(body.ColorHex),
				IsSystem:      omit.FromPtr(body.IsSystem),
			}, nil
		},
		ToOutput: toCategory,
	}).Register(api)
}
