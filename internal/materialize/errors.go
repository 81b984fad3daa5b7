package materialize

import "errors"

// ErrEmptyPath is returned when a request has no target path.
var ErrEmptyPath = errors.New("path cannot be empty")
