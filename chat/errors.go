package chat

import "errors"

// ErrEmptyMessage is returned when a message reaches the pipeline empty.
// Request validation rejects this at the boundary, so seeing it means a
// caller skipped validation.
var ErrEmptyMessage = errors.New("chat: message is empty")
