package backup

import (
	"parceltrack/internal/entities"
)

func ToSettingsDomain(s *BackupSettingsDB) *entities.BackupSettings {
	if s == nil {
		return nil
	}

	return &entities.BackupSettings{
		APIKeyConfigured: s.APIKeyConfigured,
		FrequencyHours:   s.FrequencyHours,
		Enabled:          s.Enabled,
		LastBackupAt:     s.LastBackupAt,
	}
}

func ToDomainList(backupsDB []LocationBackupDB) []entities.LocationBackup {
	if len(backupsDB) == 0 {
		return []entities.LocationBackup{}
	}

	result := make([]entities.LocationBackup, len(backupsDB))
	for i, backupDB := range backupsDB {
		result[i] = entities.LocationBackup{
			ID:         backupDB.ID,
			LocationID: backupDB.LocationID,
			BinID:      backupDB.BinID,
			CreatedAt:  backupDB.CreatedAt,
		}
	}
	return result
}
