package locale

import "errors"

// ErrInvalid indicates a locale the static data service does not translate to.
var ErrInvalid = errors.New("invalid locale")
