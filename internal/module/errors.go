package module

import "errors"

// ErrInvalidArguments matches every argument decoding or validation failure.
var ErrInvalidArguments = errors.New("invalid module arguments")

// ArgumentError carries a message in the host runtime's wording.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string {
	return e.Msg
}

// Is lets errors.Is(err, ErrInvalidArguments) match any ArgumentError.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArguments
}
