package repository

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Sentinel failures the handlers translate to 404/400.
var (
	ErrNotFound = errors.New("record not found")
	ErrNoFields = errors.New("no fields provided")
)

// ValidationError reports caller-correctable input, e.g. a missing
// required field. Handlers map it to 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// storeTimeout bounds every round-trip so a hung store call cannot hang
// the request forever.
const storeTimeout = 10 * time.Second

func storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, storeTimeout)
}

// newID builds an opaque timestamp-derived token. Uniqueness only needs to
// hold within this service's practical write rate.
func newID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
