package prompt

import "errors"

var ErrRegistryNotSet = errors.New("template registry not set")
