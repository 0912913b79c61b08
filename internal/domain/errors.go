package domain

import (
	"errors"
	"fmt"
)

var (
	ErrTopicNotFound     = errors.New("no curriculum entry for day")
	ErrAlreadyPosted     = errors.New("day already posted")
	ErrInvalidDay        = errors.New("day out of range")
	ErrRateLimited       = errors.New("generation backend rate limited")
	ErrRetriesExhausted  = errors.New("max retries exceeded due to rate limiting")
	ErrRunInProgress     = errors.New("workflow run already in progress")
	ErrRegenerationLimit = errors.New("regeneration limit reached")
	ErrCorruptFile       = errors.New("corrupt data file")
)

// PublishError is a failure reported by the publishing capability.
type PublishError struct {
	StatusCode int
	Detail     string
	Err        error
}

func (e *PublishError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("publish failed with status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("publish failed: %v", e.Err)
}

func (e *PublishError) Unwrap() error {
	return e.Err
}
