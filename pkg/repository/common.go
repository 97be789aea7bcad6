package repository

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"

	"github.com/umputun/autocat/pkg/domain"
)

// errCritical stops the repeater, criticalError matches it
var errCritical = errors.New("critical error")

// criticalError wraps a non-lock error, retrying it is pointless
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

func (e *criticalError) Unwrap() error {
	return e.err
}

func (e *criticalError) Is(target error) bool {
	return target == errCritical
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

// withRetry runs a write with backoff on lock errors, any other error ends it on the first attempt.
// Failures are wrapped as persistence failures under the given operation name, lock errors that
// outlast the retries are also marked busy.
func withRetry(ctx context.Context, op string, fn func() error) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		if err := fn(); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: err}
		}
		return nil
	}, errCritical)
	switch {
	case err == nil:
		return nil
	case isLockError(err):
		return fmt.Errorf("%w: %w: %s: %w", domain.ErrPersistence, domain.ErrBusy, op, err)
	default:
		return fmt.Errorf("%w: %s: %w", domain.ErrPersistence, op, err)
	}
}

// jsonColumn stores any JSON-serializable value in a TEXT column
type jsonColumn[T any] struct {
	V T
}

// Value implements driver.Valuer for database storage
func (j jsonColumn[T]) Value() (driver.Value, error) {
	data, err := json.Marshal(j.V)
	if err != nil {
		return nil, fmt.Errorf("marshal json column: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner for database retrieval
func (j *jsonColumn[T]) Scan(value any) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported json column type %T", value)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &j.V); err != nil {
		return fmt.Errorf("unmarshal json column: %w", err)
	}
	return nil
}
