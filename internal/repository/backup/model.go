package backup

import "time"

type BackupSettingsDB struct {
	APIKeyConfigured bool
	FrequencyHours   int
	Enabled          bool
	LastBackupAt     *time.Time
}

type LocationBackupDB struct {
	ID         int64
	LocationID int64
	BinID      string
	CreatedAt  time.Time
}
