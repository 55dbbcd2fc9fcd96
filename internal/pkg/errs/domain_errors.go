package errs

import "errors"

// Cross-layer sentinels. Commands and queries mark their causes with these
// so the HTTP layer can map them without knowing repository details.
var (
	ErrForbidden = errors.New("forbidden")
	ErrNotFound  = errors.New("not found")
)
