package corridor

import "errors"

// ErrInvalidSize is returned when the requested grid dimensions violate
// spec §6's preconditions (W >= 4, L >= 4, H >= 1) — the "no grid" case.
var ErrInvalidSize = errors.New("corridor: invalid grid size, width and length must be >= 4 and height >= 1")
