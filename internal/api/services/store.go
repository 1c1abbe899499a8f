package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"clinicdesk/internal/api/middleware"
	"clinicdesk/internal/metrics"
	"clinicdesk/internal/repository"
)

var ErrInvalidInput = errors.New("invalid input")

// storeFailure records an unexpected repository error and wraps it for the caller.
// Not-found errors are part of the contract and pass through untouched.
func storeFailure(ctx context.Context, logger *slog.Logger, entity, op string, id int64, err error) error {
	var nf *repository.NotFoundError
	if errors.As(err, &nf) {
		return err
	}

	metrics.StoreErrors.WithLabelValues(entity, op).Inc()
	logger.ErrorContext(ctx, "store operation failed",
		"entity", entity,
		"op", op,
		"id", id,
		"err", err,
	)
	return fmt.Errorf("%s %s: %w", op, entity, err)
}

func logMutation(ctx context.Context, logger *slog.Logger, entity, op string, id int64) {
	attrs := []any{"entity", entity, "op", op, "id", id}
	if staff, ok := middleware.StaffFromContext(ctx); ok {
		attrs = append(attrs, "staff", staff)
	}
	logger.InfoContext(ctx, "entity changed", attrs...)
}
