// Package records registers the list, view, create, update and delete
// operations shared by every ledger collection.
package records

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budgettime-server/internal/access"
	"github.com/carson-networks/budgettime-server/internal/ledger"
	"github.com/carson-networks/budgettime-server/internal/logging"
	"github.com/carson-networks/budgettime-server/internal/service"
)

// RecordService is the service surface a resource needs.
type RecordService[T ledger.Record] interface {
	List(ctx context.Context, actor access.Actor, query service.ListQuery) ([]T, *service.Cursor, error)
	Get(ctx context.Context, actor access.Actor, id uuid.UUID) (T, error)
	Create(ctx context.Context, actor access.Actor, record T) (T, error)
	Update(ctx context.Context, actor access.Actor, id uuid.UUID, patch service.Patch[T]) (T, error)
	Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error
}

// Resource exposes one collection under Path. Body is the create payload,
// PatchBody the update payload and Out the response model.
type Resource[T ledger.Record, Body, PatchBody, Out any] struct {
	Singular string
	Plural   string
	Path     string
	Tag      string
	Service  RecordService[T]

	FromBody  func(actor access.Actor, body Body) (T, error)
	FromPatch func(body PatchBody) (service.Patch[T], error)
	ToOutput  func(record T) Out

	// SkipList leaves GET Path to a handler registered by the caller.
	SkipList bool
}

// Cursor is the pagination cursor in responses.
type Cursor struct {
	Position int `json:"position" doc:"Offset of the next page"`
	Limit    int `json:"limit" doc:"Page size used for this cursor"`
}

// NewCursor converts a service cursor, nil on the last page.
func NewCursor(c *service.Cursor) *Cursor {
	if c == nil {
		return nil
	}
	return &Cursor{Position: c.Position, Limit: c.Limit}
}

// PageCursor converts the pagination query parameters into a service
// cursor, nil when neither is given.
func PageCursor(position, limit int) *service.Cursor {
	if position == 0 && limit == 0 {
		return nil
	}
	return &service.Cursor{Position: position, Limit: limit}
}

type ListInput struct {
	Position int `query:"position" minimum:"0" doc:"Offset of the page"`
	Limit    int `query:"limit" minimum:"0" maximum:"100" doc:"Page size, defaults to 20"`
}

type ListBody[Out any] struct {
	Items      []Out   `json:"items" doc:"Page of records"`
	NextCursor *Cursor `json:"nextCursor,omitempty" doc:"Cursor of the next page, absent on the last page"`
}

type ListOutput[Out any] struct {
	Body ListBody[Out]
}

type IDInput struct {
	ID string `path:"id" format:"uuid" doc:"Record UUID"`
}

type CreateInput[Body any] struct {
	Body Body
}

type UpdateInput[PatchBody any] struct {
	ID   string `path:"id" format:"uuid" doc:"Record UUID"`
	Body PatchBody
}

type RecordOutput[Out any] struct {
	Body Out
}

// maxBodyBytes leaves room for the largest JSON field plus the rest of the
// record.
const maxBodyBytes = ledger.MaxJSONSize + 64<<10

// Register adds the collection's operations to api.
func (r *Resource[T, Body, PatchBody, Out]) Register(api huma.API) {
	if !r.SkipList {
		huma.Register(api, huma.Operation{
			OperationID: "list-" + r.Plural,
			Method:      http.MethodGet,
			Path:        r.Path,
			Summary:     "List " + r.Plural,
			Description: fmt.Sprintf("Returns a page of the caller's %s.", r.Plural),
			Tags:        []string{r.Tag},
		}, r.list)
	}

	huma.Register(api, huma.Operation{
		OperationID: "get-" + r.Singular,
		Method:      http.MethodGet,
		Path:        r.Path + "/{id}",
		Summary:     "Get " + r.Singular,
		Tags:        []string{r.Tag},
	}, r.get)

	huma.Register(api, huma.Operation{
		OperationID:   "create-" + r.Singular,
		Method:        http.MethodPost,
		Path:          r.Path,
		Summary:       "Create " + r.Singular,
		DefaultStatus: http.StatusCreated,
		Tags:          []string{r.Tag},
		MaxBodyBytes:  maxBodyBytes,
	}, r.create)

	huma.Register(api, huma.Operation{
		OperationID:  "update-" + r.Singular,
		Method:       http.MethodPatch,
		Path:         r.Path + "/{id}",
		Summary:      "Update " + r.Singular,
		Description:  "Changes only the fields present in the body.",
		Tags:         []string{r.Tag},
		MaxBodyBytes: maxBodyBytes,
	}, r.update)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-" + r.Singular,
		Method:        http.MethodDelete,
		Path:          r.Path + "/{id}",
		Summary:       "Delete " + r.Singular,
		DefaultStatus: http.StatusNoContent,
		Tags:          []string{r.Tag},
	}, r.delete)
}

// Page converts a service page into the list response.
func (r *Resource[T, Body, PatchBody, Out]) Page(rows []T, next *service.Cursor) *ListOutput[Out] {
	items := make([]Out, len(rows))
	for i, row := range rows {
		items[i] = r.ToOutput(row)
	}
	return &ListOutput[Out]{Body: ListBody[Out]{Items: items, NextCursor: NewCursor(next)}}
}

func (r *Resource[T, Body, PatchBody, Out]) list(ctx context.Context, input *ListInput) (*ListOutput[Out], error) {
	actor, err := Actor(ctx)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.Time(ctx, "list"+r.Tag+"Ms")
	rows, next, err := r.Service.List(ctx, actor, service.ListQuery{Cursor: PageCursor(input.Position, input.Limit)})
	stopTimer()
	if err != nil {
		return nil, Error(err, "failed to list "+r.Plural)
	}

	logging.Add(ctx, r.Singular+"Count", len(rows))
	return r.Page(rows, next), nil
}

func (r *Resource[T, Body, PatchBody, Out]) get(ctx context.Context, input *IDInput) (*RecordOutput[Out], error) {
	actor, err := Actor(ctx)
	if err != nil {
		return nil, err
	}
	id, err := ParseID("id", input.ID)
	if err != nil {
		return nil, err
	}

	record, err := r.Service.Get(ctx, actor, id)
	if err != nil {
		return nil, Error(err, "failed to get "+r.Singular)
	}
	return &RecordOutput[Out]{Body: r.ToOutput(record)}, nil
}

func (r *Resource[T, Body, PatchBody, Out]) create(ctx context.Context, input *CreateInput[Body]) (*RecordOutput[Out], error) {
	actor, err := Actor(ctx)
	if err != nil {
		return nil, err
	}
	record, err := r.FromBody(actor, input.Body)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.Time(ctx, "create"+r.Tag+"Ms")
	created, err := r.Service.Create(ctx, actor, record)
	stopTimer()
	if err != nil {
		return nil, Error(err, "failed to create "+r.Singular)
	}

	logging.Add(ctx, r.Singular+"ID", created.RecordID().String())
	return &RecordOutput[Out]{Body: r.ToOutput(created)}, nil
}

func (r *Resource[T, Body, PatchBody, Out]) update(ctx context.Context, input *UpdateInput[PatchBody]) (*RecordOutput[Out], error) {
	actor, err := Actor(ctx)
	if err != nil {
		return nil, err
	}
	id, err := ParseID("id", input.ID)
	if err != nil {
		return nil, err
	}
	patch, err := r.FromPatch(input.Body)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.Time(ctx, "update"+r.Tag+"Ms")
	updated, err := r.Service.Update(ctx, actor, id, patch)
	stopTimer()
	if err != nil {
		return nil, Error(err, "failed to update "+r.Singular)
	}

	logging.Add(ctx, r.Singular+"ID", id.String())
	return &RecordOutput[Out]{Body: r.ToOutput(updated)}, nil
}

func (r *Resource[T, Body, PatchBody, Out]) delete(ctx context.Context, input *IDInput) (*struct{}, error) {
	actor, err := Actor(ctx)
	if err != nil {
		return nil, err
	}
	id, err := ParseID("id", input.ID)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.Time(ctx, "delete"+r.Tag+"Ms")
	err = r.Service.Delete(ctx, actor, id)
	stopTimer()
	if err != nil {
		return nil, Error(err, "failed to delete "+r.Singular)
	}

	logging.Add(ctx, r.Singular+"ID", id.String())
	return &struct{}{}, nil
}
