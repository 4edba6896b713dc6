package ticket

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidSubject        = errors.New("invalid subject")
	ErrInvalidStatus         = errors.New("invalid status")

	ErrTicketNotFound   = errors.New("ticket not found")
	ErrLocationNotFound = errors.New("location not found")
)
