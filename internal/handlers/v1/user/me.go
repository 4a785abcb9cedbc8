package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budgettime-server/internal/access"
	"github.com/carson-networks/budgettime-server/internal/handlers/v1/records"
	"github.com/carson-networks/budgettime-server/internal/logging"
)

// userDeleter is the interface for deleting the calling user.
type userDeleter interface {
	DeleteMe(ctx context.Context, actor access.Actor) error
}

// DeleteMeHandler handles DELETE /v1/me.
type DeleteMeHandler struct {
	UserService userDeleter
}

func NewDeleteMeHandler(svc userDeleter) *DeleteMeHandler {
	return &DeleteMeHandler{UserService: svc}
}

// Register registers the delete-me endpoint with the Huma API.
func (h *DeleteMeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-me",
		Method:        http.MethodDelete,
		Path:          "/v1/me",
		Summary:       "Delete my account",
		Description:   "Deletes the caller and, by cascade, every record they own.",
		DefaultStatus: http.StatusNoContent,
		Tags:          []string{"Users"},
	}, h.handle)
}

func (h *DeleteMeHandler) handle(ctx context.Context, _ *struct{}) (*struct{}, error) {
	actor, err := records.Actor(ctx)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.Time(ctx, "deleteUserMs")
	err = h.UserService.DeleteMe(ctx, actor)
	stopTimer()
	if err != nil {
		return nil, records.Error(err, "failed to delete user")
	}

	logging.Add(ctx, "userID", actor.ID.String())
	return &struct{}{}, nil
}
