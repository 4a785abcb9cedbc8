package service

import (
	"github.com/carson-networks/budgettime-server/internal/operator/actions"
	"github.com/carson-networks/budgettime-server/internal/storage"
)

var (
	ErrNotFound = storage.ErrNotFound
	ErrConflict = actions.ErrConflict
)
