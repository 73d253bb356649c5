package repository

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/famhub/choreboard/internal/domain"
)

// classifyStorageErr wraps transient infrastructure failures as
// ErrStorageUnavailable so the gateway can surface 503 and retry, while
// everything else stays an opaque internal error.
func classifyStorageErr(op string, err error) error {
	var connErr *pgconn.ConnectError
	var netErr net.Error
	switch {
	case errors.As(err, &connErr),
		errors.As(err, &netErr),
		pgconn.Timeout(err),
		errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w: %v", op, domain.ErrStorageUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
