package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"parceltrack/internal/entities"
	"parceltrack/pkg/logger"
)

const (
	// таймаут на выгрузку одной локации вместе с внешними вызовами
	perLocationTimeout = 2 * time.Minute

	// сколько локаций выгружается одновременно за один прогон
	maxConcurrentLocations = 4
)

type Manager struct {
	repository Repository
	locations  LocationRepository
	parcels    ParcelRepository
	gateway    Gateway
	log        serviceLogger

	// страховка от гонки планировщика и ручного запуска: по каждой
	// локации одновременно живет не больше одного прогона
	mu       sync.Mutex
	inflight map[int64]struct{}
}

func New(
	repository Repository,
	locations LocationRepository,
	parcels ParcelRepository,
	gateway Gateway,
	log serviceLogger,
) *Manager {
	return &Manager{
		repository: repository,
		locations:  locations,
		parcels:    parcels,
		gateway:    gateway,
		log:        log,
		inflight:   make(map[int64]struct{}),
	}
}

// RunForAllLocations прогоняет ротацию по всем локациям, не больше
// maxConcurrentLocations одновременно. Отказ одной локации логируется
// и попадает в отчет, остальные продолжаются. LastBackupAt обновляется
// один раз после прохода, безусловно.
func (m *Manager) RunForAllLocations(ctx context.Context) (*entities.BackupRunReport, error) {
	report := &entities.BackupRunReport{
		StartedAt: time.Now().UTC(),
	}

	locations, err := m.locations.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}

	report.Results = make([]entities.LocationBackupResult, len(locations))

	var g errgroup.Group
	g.SetLimit(maxConcurrentLocations)
	for i := range locations {
		g.Go(func() error {
			report.Results[i] = m.runLocation(ctx, &locations[i])
			return nil
		})
	}
	// отказы отдельных локаций оседают в отчете, не в ошибке группы
	_ = g.Wait()

	now := time.Now().UTC()
	err = m.repository.UpdateSettings(ctx, entities.BackupSettingsModify{
		LastBackupAt: &now,
	})
	if err != nil {
		m.log.Error("update last backup time",
			logger.NewField("error", err),
		)
	}

	report.FinishedAt = now
	return report, nil
}

// RunForLocation ручной прогон ротации для одной локации.
func (m *Manager) RunForLocation(ctx context.Context, locationID int64) (*entities.LocationBackupResult, error) {
	location, err := m.locations.GetByID(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("get location: %w", err)
	}

	result := m.runLocation(ctx, location)
	return &result, nil
}

func (m *Manager) runLocation(ctx context.Context, location *entities.Location) entities.LocationBackupResult {
	result := entities.LocationBackupResult{
		LocationID:   location.ID,
		LocationName: location.Name,
	}

	if !m.tryAcquire(location.ID) {
		m.log.Warn("backup already in progress, skipping",
			logger.NewField("location_id", location.ID),
		)
		result.Skipped = true
		return result
	}
	defer m.release(location.ID)

	ctx, cancel := context.WithTimeout(ctx, perLocationTimeout)
	defer cancel()

	binID, err := m.rotate(ctx, location)
	if err != nil {
		m.log.Error("backup incomplete for location",
			logger.NewField("location_id", location.ID),
			logger.NewField("location", location.Name),
			logger.NewField("error", err),
		)
		result.Error = err.Error()
		return result
	}

	result.BinID = binID
	return result
}

// rotate: сначала вытеснение до лимита, потом создание нового снапшота.
// Шаги не транзакционны: если удаленное удаление упало, локальная
// учетная запись все равно снимается — дрейф допустим, блокировка нет.
func (m *Manager) rotate(ctx context.Context, location *entities.Location) (string, error) {
	records, err := m.repository.ListByLocation(ctx, location.ID)
	if err != nil {
		return "", fmt.Errorf("list backups: %w", err)
	}

	// records отсортированы по возрасту, старые впереди
	for len(records) >= entities.MaxBackupsPerLocation {
		oldest := records[0]

		if err := m.gateway.DeleteBin(ctx, oldest.BinID); err != nil {
			m.log.Warn("remote snapshot delete failed, dropping local record anyway",
				logger.NewField("location_id", location.ID),
				logger.NewField("bin_id", oldest.BinID),
				logger.NewField("error", err),
			)
		}

		if err := m.repository.DeleteRecord(ctx, oldest.ID); err != nil {
			return "", fmt.Errorf("evict backup record %d: %w", oldest.ID, err)
		}

		records = records[1:]
	}

	payload, err := m.buildExport(ctx, location)
	if err != nil {
		return "", fmt.Errorf("build export: %w", err)
	}

	name := snapshotName(location.Name, time.Now().UTC())
	binID, err := m.gateway.CreateBin(ctx, name, payload)
	if err != nil {
		return "", fmt.Errorf("create snapshot: %w", err)
	}

	if _, err := m.repository.CreateRecord(ctx, location.ID, binID); err != nil {
		return "", fmt.Errorf("record snapshot %s: %w", binID, err)
	}

	return binID, nil
}

// ExportForDeletion одиночный прощальный снапшот при удалении локации.
// Ротации не подлежит и в учет LocationBackup не попадает.
func (m *Manager) ExportForDeletion(ctx context.Context, locationID int64) error {
	location, err := m.locations.GetByID(ctx, locationID)
	if err != nil {
		return fmt.Errorf("get location: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, perLocationTimeout)
	defer cancel()

	if err := m.gateway.ValidateKey(ctx); err != nil {
		return fmt.Errorf("blob store unreachable: %w", err)
	}

	payload, err := m.buildExport(ctx, location)
	if err != nil {
		return fmt.Errorf("build export: %w", err)
	}

	name := fmt.Sprintf("%s - deletion record %s", location.Name, time.Now().UTC().Format("2006-01-02"))
	if _, err := m.gateway.CreateBin(ctx, name, payload); err != nil {
		return fmt.Errorf("create deletion snapshot: %w", err)
	}

	return nil
}

// ExportTicket одиночная выгрузка тикета, возвращает удаленный id.
func (m *Manager) ExportTicket(ctx context.Context, ticket *entities.Ticket) (string, error) {
	location, err := m.locations.GetByID(ctx, ticket.LocationID)
	if err != nil {
		return "", fmt.Errorf("get location: %w", err)
	}

	export := entities.TicketExport{
		ExportedAt: time.Now().UTC(),
		Location:   location.Name,
		Subject:    ticket.Subject,
		Body:       ticket.Body,
		Status:     ticket.Status.String(),
		CreatedAt:  ticket.CreatedAt,
	}

	payload, err := json.Marshal(export)
	if err != nil {
		return "", fmt.Errorf("marshal ticket export: %w", err)
	}

	name := fmt.Sprintf("ticket #%d - %s", ticket.ID, time.Now().UTC().Format("2006-01-02"))
	binID, err := m.gateway.CreateBin(ctx, name, payload)
	if err != nil {
		return "", fmt.Errorf("create ticket snapshot: %w", err)
	}

	return binID, nil
}

func (m *Manager) Settings(ctx context.Context) (*entities.BackupSettings, error) {
	settings, err := m.repository.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("get backup settings: %w", err)
	}

	return settings, nil
}

// UpdateSettings меняет настройки ротации и возвращает итоговое состояние.
// Перевзвод таймера планировщика лежит на вызывающем.
func (m *Manager) UpdateSettings(ctx context.Context, settingsModify entities.BackupSettingsModify) (*entities.BackupSettings, error) {
	if settingsModify.FrequencyHours != nil && *settingsModify.FrequencyHours <= 0 {
		return nil, ErrInvalidFrequency
	}

	if err := m.repository.UpdateSettings(ctx, settingsModify); err != nil {
		return nil, fmt.Errorf("update backup settings: %w", err)
	}

	settings, err := m.repository.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("get backup settings: %w", err)
	}

	return settings, nil
}

func (m *Manager) tryAcquire(locationID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, busy := m.inflight[locationID]; busy {
		return false
	}
	m.inflight[locationID] = struct{}{}
	return true
}

func (m *Manager) release(locationID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.inflight, locationID)
}

func snapshotName(locationName string, at time.Time) string {
	return fmt.Sprintf("%s - %s", locationName, at.Format("2006-01-02"))
}
