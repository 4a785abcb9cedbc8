package service

import (
	"context"

	"github.com/carson-networks/budgettime-server/internal/access"
	"github.com/carson-networks/budgettime-server/internal/operator/actions"
)

type UserService struct {
	processor Processor
}

func NewUserService(processor Processor) *UserService {
	return &UserService{processor: processor}
}

// DeleteMe removes the actor and, by cascade, everything the actor owns.
func (s *UserService) DeleteMe(ctx context.Context, actor access.Actor) error {
	return s.processor.Process(ctx, &actions.DeleteUser{Actor: actor})
}
