package handler

import (
	"context"
)

// RecalculationExecution is the scheduled-trigger entry point: rebuild the
// blotter from the earliest recorded transaction date through today. The
// usecase handles locking; a run that overlaps another surfaces as
// ConcurrencyError to the caller.
func (h *CashBlotterHandler) RecalculationExecution(ctx context.Context) error {
	return h.Usecase.RecalculateFromEarliest(ctx)
}
