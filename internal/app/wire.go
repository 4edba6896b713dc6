//go:build wireinject
// +build wireinject

package app

import (
	"net/http"

	"parceltrack/internal/gateway/jsonbin"
	archive_sweep_post "parceltrack/internal/handlers/rest/archive_sweep_post"
	backup_run_post "parceltrack/internal/handlers/rest/backup_run_post"
	backup_settings_get "parceltrack/internal/handlers/rest/backup_settings_get"
	backup_settings_put "parceltrack/internal/handlers/rest/backup_settings_put"
	location_delete "parceltrack/internal/handlers/rest/location_delete"
	location_get "parceltrack/internal/handlers/rest/location_get"
	location_post "parceltrack/internal/handlers/rest/location_post"
	location_pricing_put "parceltrack/internal/handlers/rest/location_pricing_put"
	location_put "parceltrack/internal/handlers/rest/location_put"
	locations_get "parceltrack/internal/handlers/rest/locations_get"
	parcel_deliver_post "parceltrack/internal/handlers/rest/parcel_deliver_post"
	parcel_get "parceltrack/internal/handlers/rest/parcel_get"
	parcel_post "parceltrack/internal/handlers/rest/parcel_post"
	parcels_bulk_patch "parceltrack/internal/handlers/rest/parcels_bulk_patch"
	parcels_search_get "parceltrack/internal/handlers/rest/parcels_search_get"
	storage_location_delete "parceltrack/internal/handlers/rest/storage_location_delete"
	storage_location_post "parceltrack/internal/handlers/rest/storage_location_post"
	ticket_get "parceltrack/internal/handlers/rest/ticket_get"
	ticket_post "parceltrack/internal/handlers/rest/ticket_post"
	ticket_status_put "parceltrack/internal/handlers/rest/ticket_status_put"
	tickets_get "parceltrack/internal/handlers/rest/tickets_get"
	"parceltrack/internal/handlers/tasks/backup_rotation"
	"parceltrack/internal/pkg/config"

	backupRepo "parceltrack/internal/repository/backup"
	locationRepo "parceltrack/internal/repository/location"
	parcelRepo "parceltrack/internal/repository/parcel"
	ticketRepo "parceltrack/internal/repository/ticket"
	backupService "parceltrack/internal/service/backup"
	locationService "parceltrack/internal/service/location"
	parcelService "parceltrack/internal/service/parcel"
	searchService "parceltrack/internal/service/search"
	ticketService "parceltrack/internal/service/ticket"

	"parceltrack/pkg/logger"
	"parceltrack/pkg/querier"
	"parceltrack/pkg/scheduler"
	"parceltrack/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Application struct {
	ServiceParcel   ServiceParcel
	ServiceSearch   ServiceSearch
	ServiceLocation ServiceLocation
	ServiceTicket   ServiceTicket
	ServiceBackup   ServiceBackup
	BackupScheduler *scheduler.Scheduler
}

type ServiceParcel interface {
	parcel_get.Service
	parcel_post.Service
	parcel_deliver_post.Service
	parcels_bulk_patch.Service
	archive_sweep_post.Service
}

type ServiceSearch interface {
	parcels_search_get.Service
}

type ServiceLocation interface {
	location_get.Service
	location_post.Service
	location_put.Service
	locations_get.Service
	location_delete.Service
	storage_location_post.Service
	storage_location_delete.Service
	location_pricing_put.Service
}

type ServiceTicket interface {
	ticket_get.Service
	ticket_post.Service
	tickets_get.Service
	ticket_status_put.Service
}

type ServiceBackup interface {
	backup_run_post.Service
	backup_settings_get.Service
	backup_settings_put.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideParcelRepository,
		provideLocationRepository,
		provideBackupRepository,
		provideTicketRepository,

		provideJSONBinGateway,

		provideServiceParcel,
		provideServiceSearch,
		provideServiceLocation,
		provideServiceTicket,
		provideServiceBackup,

		provideBackupRotationTask,
		provideBackupScheduler,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceParcel), new(*parcelService.Parcel)),
		wire.Bind(new(ServiceSearch), new(*searchService.Search)),
		wire.Bind(new(ServiceLocation), new(*locationService.Location)),
		wire.Bind(new(ServiceTicket), new(*ticketService.Ticket)),
		wire.Bind(new(ServiceBackup), new(*backupService.Manager)),

		wire.Bind(new(parcelService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(searchService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(searchService.LocationRepository), new(*locationRepo.Repository)),
		wire.Bind(new(locationService.Repository), new(*locationRepo.Repository)),
		wire.Bind(new(locationService.ParcelRepository), new(*parcelRepo.Repository)),
		wire.Bind(new(locationService.Exporter), new(*backupService.Manager)),
		wire.Bind(new(ticketService.Repository), new(*ticketRepo.Repository)),
		wire.Bind(new(ticketService.Exporter), new(*backupService.Manager)),
		wire.Bind(new(backupService.Repository), new(*backupRepo.Repository)),
		wire.Bind(new(backupService.LocationRepository), new(*locationRepo.Repository)),
		wire.Bind(new(backupService.ParcelRepository), new(*parcelRepo.Repository)),
		wire.Bind(new(backupService.Gateway), new(*jsonbin.Gateway)),

		wire.Bind(new(parcelService.TxManager), new(*tx.Manager)),
		wire.Bind(new(locationService.TxManager), new(*tx.Manager)),

		wire.Bind(new(backup_rotation.Service), new(*backupService.Manager)),
		wire.Bind(new(backup_rotation.SettingsRepository), new(*backupRepo.Repository)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideParcelRepository(querier *querier.Querier) *parcelRepo.Repository {
	return parcelRepo.New(querier)
}

func provideLocationRepository(querier *querier.Querier) *locationRepo.Repository {
	return locationRepo.New(querier)
}

func provideBackupRepository(querier *querier.Querier) *backupRepo.Repository {
	return backupRepo.New(querier)
}

func provideTicketRepository(querier *querier.Querier) *ticketRepo.Repository {
	return ticketRepo.New(querier)
}

// provideJSONBinGateway собирает шлюз блоб-хранилища. Таймауты запросов
// шлюз выставляет сам через контекст, клиенту свой не нужен.
func provideJSONBinGateway(cfg *config.Config) *jsonbin.Gateway {
	return jsonbin.New(&http.Client{}, cfg.Backup.BaseURL, cfg.Backup.APIKey)
}

func provideServiceParcel(
	repository parcelService.Repository,
	txManager parcelService.TxManager,
) *parcelService.Parcel {
	return parcelService.New(repository, txManager)
}

func provideServiceSearch(
	parcels searchService.Repository,
	locations searchService.LocationRepository,
) *searchService.Search {
	return searchService.New(parcels, locations)
}

func provideServiceLocation(
	repository locationService.Repository,
	parcels locationService.ParcelRepository,
	exporter locationService.Exporter,
	txManager locationService.TxManager,
	log logger.Logger,
) *locationService.Location {
	return locationService.New(repository, parcels, exporter, txManager, log)
}

func provideServiceTicket(
	repository ticketService.Repository,
	exporter ticketService.Exporter,
	log logger.Logger,
) *ticketService.Ticket {
	return ticketService.New(repository, exporter, log)
}

func provideServiceBackup(
	repository backupService.Repository,
	locations backupService.LocationRepository,
	parcels backupService.ParcelRepository,
	gateway backupService.Gateway,
	log logger.Logger,
) *backupService.Manager {
	return backupService.New(repository, locations, parcels, gateway, log)
}

func provideBackupRotationTask(
	log logger.Logger,
	backupService backup_rotation.Service,
	settings backup_rotation.SettingsRepository,
) *backup_rotation.BackupRotation {
	return backup_rotation.NewBackupRotation(log, backupService, settings)
}

func provideBackupScheduler(log logger.Logger, task *backup_rotation.BackupRotation) *scheduler.Scheduler {
	return scheduler.New(log, task)
}
