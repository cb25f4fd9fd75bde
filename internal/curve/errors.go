package curve

import "errors"

// ErrUnknownKind indicates a distribution name that does not map to a Kind.
var ErrUnknownKind = errors.New("curve: unknown distribution kind")
