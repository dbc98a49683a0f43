package appError

import (
	"fmt"
)

// Err ... error struct for failures crossing the provider or storage boundary
type Err struct {
	ErrCode int
	ErrType string
	Err     error
}

func (e Err) Error() string {
	return fmt.Sprintf("%s", e.Err)
}

// Unwrap exposes the underlying error to errors.Is / errors.As.
func (e Err) Unwrap() error {
	return e.Err
}
