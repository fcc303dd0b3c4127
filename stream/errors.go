package stream

import "errors"

// ErrSkip can be returned by a MapperFn to drop the current element
// without failing the run.
var ErrSkip = errors.New("stream: skip item")
