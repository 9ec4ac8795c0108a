package arena

import "errors"

// ErrBadAlignment is returned by Alloc when the requested alignment is not a
// power of two. The arena is left untouched.
var ErrBadAlignment = errors.New("arena: alignment must be a power of two")
