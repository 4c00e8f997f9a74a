package apperror

import "errors"

// ErrInvalidParameter is the single kind behind every rejected call into the game core:
// bad board size, out-of-range or occupied coordinates, moves on a finished board and
// an unset AI side all wrap it.
var ErrInvalidParameter = errors.New("invalid parameter")
