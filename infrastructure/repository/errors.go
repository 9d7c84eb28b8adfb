package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// wrapQueryError acrescenta o código SQLSTATE quando o erro vem do postgres
func wrapQueryError(operation string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("%s (código %s): %w", operation, pqErr.Code, err)
	}
	return fmt.Errorf("%s: %w", operation, err)
}
