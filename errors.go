package draftkit

import "errors"

var (
	ErrBuilderNotSet   = errors.New("prompt builder not set")
	ErrGeneratorNotSet = errors.New("generator not set")
	ErrSenderNotSet    = errors.New("mail sender not set")
)
