package machines

import "errors"

var ErrTransitionNotFound = errors.New("transition not found")
