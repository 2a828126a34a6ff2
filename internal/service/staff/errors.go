package staff

import "errors"

var ErrProfileNotFound = errors.New("delivery staff profile not found")
