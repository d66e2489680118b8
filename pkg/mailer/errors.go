package mailer

import "errors"

var (
	ErrInvalidConfig = errors.New("mailer.errors.invalid_config")
	ErrInvalidParams = errors.New("mailer.errors.invalid_params")
	ErrFailedToSend  = errors.New("mailer.errors.failed_to_send")
)
