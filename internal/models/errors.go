package models

import "errors"

// ErrConflict is returned by the store when a unique constraint rejects a write.
var ErrConflict = errors.New("record already exists")
