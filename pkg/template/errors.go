package template

import "errors"

var (
	ErrUnknownTemplate         = errors.New("unknown template")
	ErrInvalidDefinition       = errors.New("invalid template definition")
	ErrFailedToLoadDefinitions = errors.New("failed to load template definitions")
)
