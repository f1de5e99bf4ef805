package data

import "errors"

// ErrUnknownKey reports a lookup of a weapon, offhand, status or skill
// key that is not in its catalog. Catalog keys are fixed at compile time,
// so hitting this at runtime means a bad build or config.
var ErrUnknownKey = errors.New("data: unknown catalog key")
