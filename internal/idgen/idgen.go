package idgen

import "github.com/google/uuid"

// NewFunc produces run and message identifiers. Override in tests for
// stable ids.
var NewFunc = func() string { return uuid.New().String() }

// New returns a new globally unique identifier as string.
func New() string { return NewFunc() }
