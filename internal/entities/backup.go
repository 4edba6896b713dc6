package entities

import (
	"time"
)

// BackupSettings единственная на процесс строка настроек ротации.
type BackupSettings struct {
	APIKeyConfigured bool
	FrequencyHours   int
	Enabled          bool
	LastBackupAt     *time.Time
}

type BackupSettingsModify struct {
	APIKeyConfigured *bool
	FrequencyHours   *int
	Enabled          *bool
	LastBackupAt     *time.Time
}

// LocationBackup учетная запись снапшота во внешнем хранилище.
// После завершения ротации у локации живет не больше MaxBackupsPerLocation строк.
type LocationBackup struct {
	ID         int64
	LocationID int64
	BinID      string
	CreatedAt  time.Time
}

const MaxBackupsPerLocation = 5

// BackupRunReport итог прогона ротации: по каждой локации отдельный
// результат, отказ одной локации не валит остальные.
type BackupRunReport struct {
	StartedAt  time.Time
	FinishedAt time.Time
	Results    []LocationBackupResult
}

type LocationBackupResult struct {
	LocationID   int64
	LocationName string
	BinID        string
	Skipped      bool
	Error        string
}

func (r *BackupRunReport) Failed() int {
	failed := 0
	for _, res := range r.Results {
		if res.Error != "" {
			failed++
		}
	}
	return failed
}
