package backup

import "errors"

var (
	ErrLocationNotFound = errors.New("location not found")
	ErrRunInProgress    = errors.New("backup already in progress for location")
	ErrBackupsDisabled  = errors.New("backups are disabled")
	ErrInvalidFrequency = errors.New("invalid backup frequency")
)
