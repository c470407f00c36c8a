package repositories

import "errors"

// ErrNotFound is wrapped by every repository lookup that matches no record,
// so messages read "product with ID x not found".
var ErrNotFound = errors.New("not found")
