// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/runoshun/client-desk/internal/domain"
	"github.com/runoshun/client-desk/internal/infra/config"
	"github.com/runoshun/client-desk/internal/infra/idgen"
	"github.com/runoshun/client-desk/internal/infra/jsonstore"
	"github.com/runoshun/client-desk/internal/infra/logging"
	"github.com/runoshun/client-desk/internal/usecase"
)

// DataDirEnv overrides the default data directory.
const DataDirEnv = "DESK_DIR"

// Config holds the application paths.
type Config struct {
	DataDir   string // Directory holding the store, config and logs
	StorePath string // Path to desk.json
}

// NewConfig derives the paths for dataDir.
func NewConfig(dataDir string) Config {
	return Config{
		DataDir:   dataDir,
		StorePath: domain.StorePath(dataDir),
	}
}

// ResolveDataDir picks the data directory: the flag value, then $DESK_DIR,
// then $XDG_DATA_HOME/desk, then ~/.local/share/desk.
func ResolveDataDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if dir := os.Getenv(DataDirEnv); dir != "" {
		return filepath.Abs(dir)
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.New("cannot determine data directory: set --data-dir or " + DataDirEnv)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, domain.AppDirName), nil
}

// Store is the full set of persistence ports backed by one store.
type Store interface {
	domain.StoreInitializer
	domain.TaskRepository
	domain.ClientRepository
	domain.LedgerRepository
	domain.RegistryRepository
	domain.NotificationRepository
	domain.Exporter
	domain.Notifier
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks            domain.TaskRepository
	Clients          domain.ClientRepository
	Ledger           domain.LedgerRepository
	Registry         domain.RegistryRepository
	Notifications    domain.NotificationRepository
	Exporter         domain.Exporter
	StoreInitializer domain.StoreInitializer
	Notifier         domain.Notifier
	IDs              domain.IDGenerator
	Clock            domain.Clock
	Logger           domain.Logger
	ConfigLoader     domain.ConfigLoader
	ConfigManager    domain.ConfigManager

	// Pointer fields
	AppConfig *domain.Config
	closer    func() error

	// Configuration
	Config Config
}

// New creates a new Container for the given data directory.
func New(dataDir string) (*Container, error) {
	cfg := NewConfig(dataDir)

	configLoader := config.NewLoader(cfg.DataDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	logger := logging.New(cfg.DataDir, logging.ParseLevel(appConfig.Log.Level))

	c := NewWithDeps(cfg, jsonstore.New(cfg.StorePath), domain.RealClock{}, idgen.UUID{}, logger, appConfig)
	c.ConfigLoader = configLoader
	c.ConfigManager = config.NewManager(cfg.DataDir)
	c.closer = logger.Close
	return c, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
// A nil appConfig means the defaults.
func NewWithDeps(cfg Config, store Store, clock domain.Clock, ids domain.IDGenerator, logger domain.Logger, appConfig *domain.Config) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	if logger == nil {
		logger = domain.NopLogger{}
	}

	var notifier domain.Notifier = domain.NopNotifier{}
	if appConfig.Notify.Enabled {
		notifier = store
	}

	return &Container{
		Tasks:            store,
		Clients:          store,
		Ledger:           store,
		Registry:         store,
		Notifications:    store,
		Exporter:         store,
		StoreInitializer: store,
		Notifier:         notifier,
		IDs:              ids,
		Clock:            clock,
		Logger:           logger,
		AppConfig:        appConfig,
		Config:           cfg,
	}
}

// Close releases resources such as open log files.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}

// UseCase factory methods

// InitStoreUseCase returns a new InitStore use case.
func (c *Container) InitStoreUseCase() *usecase.InitStore {
	return usecase.NewInitStore(c.StoreInitializer)
}

// NewClientUseCase returns a new NewClient use case.
func (c *Container) NewClientUseCase() *usecase.NewClient {
	return usecase.NewNewClient(c.Clients, c.IDs, c.Clock, c.Logger)
}

// ListClientsUseCase returns a new ListClients use case.
func (c *Container) ListClientsUseCase() *usecase.ListClients {
	return usecase.NewListClients(c.Clients)
}

// ShowClientUseCase returns a new ShowClient use case.
func (c *Container) ShowClientUseCase() *usecase.ShowClient {
	return usecase.NewShowClient(c.Clients)
}

// EditClientUseCase returns a new EditClient use case.
func (c *Container) EditClientUseCase() *usecase.EditClient {
	return usecase.NewEditClient(c.Clients, c.Logger)
}

// DeleteClientUseCase returns a new DeleteClient use case.
func (c *Container) DeleteClientUseCase() *usecase.DeleteClient {
	return usecase.NewDeleteClient(c.Clients, c.Tasks, c.Ledger, c.Registry, c.Notifications, c.Logger)
}

// UseClientUseCase returns a new UseClient use case.
func (c *Container) UseClientUseCase() *usecase.UseClient {
	return usecase.NewUseClient(c.Clients)
}

// NewTaskUseCase returns a new NewTask use case.
func (c *Container) NewTaskUseCase() *usecase.NewTask {
	return usecase.NewNewTask(c.Tasks, c.Clients, c.IDs, c.Clock, c.Logger, c.AppConfig.Tasks)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks, c.Clients)
}

// ShowTaskUseCase returns a new ShowTask use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask(c.Tasks)
}

// EditTaskUseCase returns a new EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.Tasks, c.Notifier, c.IDs, c.Clock, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.Logger)
}

// UpdateStatusUseCase returns a new UpdateStatus use case.
func (c *Container) UpdateStatusUseCase() *usecase.UpdateStatus {
	return usecase.NewUpdateStatus(c.Tasks, c.Notifier, c.IDs, c.Clock, c.Logger, c.AppConfig.Tasks.Blocking)
}

// AddDependencyUseCase returns a new AddDependency use case.
func (c *Container) AddDependencyUseCase() *usecase.AddDependency {
	return usecase.NewAddDependency(c.Tasks, c.Logger)
}

// RemoveDependencyUseCase returns a new RemoveDependency use case.
func (c *Container) RemoveDependencyUseCase() *usecase.RemoveDependency {
	return usecase.NewRemoveDependency(c.Tasks, c.Logger)
}

// CheckDependenciesUseCase returns a new CheckDependencies use case.
func (c *Container) CheckDependenciesUseCase() *usecase.CheckDependencies {
	return usecase.NewCheckDependencies(c.Tasks, c.Clients)
}

// AddPaymentUseCase returns a new AddPayment use case.
func (c *Container) AddPaymentUseCase() *usecase.AddPayment {
	return usecase.NewAddPayment(c.Clients, c.Ledger, c.IDs, c.Clock, c.Logger)
}

// ListPaymentsUseCase returns a new ListPayments use case.
func (c *Container) ListPaymentsUseCase() *usecase.ListPayments {
	return usecase.NewListPayments(c.Clients, c.Ledger)
}

// SetPaymentStatusUseCase returns a new SetPaymentStatus use case.
func (c *Container) SetPaymentStatusUseCase() *usecase.SetPaymentStatus {
	return usecase.NewSetPaymentStatus(c.Ledger, c.Logger)
}

// DeletePaymentUseCase returns a new DeletePayment use case.
func (c *Container) DeletePaymentUseCase() *usecase.DeletePayment {
	return usecase.NewDeletePayment(c.Ledger, c.Logger)
}

// AddAdvanceUseCase returns a new AddAdvance use case.
func (c *Container) AddAdvanceUseCase() *usecase.AddAdvance {
	return usecase.NewAddAdvance(c.Clients, c.Ledger, c.IDs, c.Clock, c.Logger)
}

// ListAdvancesUseCase returns a new ListAdvances use case.
func (c *Container) ListAdvancesUseCase() *usecase.ListAdvances {
	return usecase.NewListAdvances(c.Clients, c.Ledger)
}

// DeleteAdvanceUseCase returns a new DeleteAdvance use case.
func (c *Container) DeleteAdvanceUseCase() *usecase.DeleteAdvance {
	return usecase.NewDeleteAdvance(c.Ledger, c.Logger)
}

// AddFeedbackUseCase returns a new AddFeedback use case.
func (c *Container) AddFeedbackUseCase() *usecase.AddFeedback {
	return usecase.NewAddFeedback(c.Clients, c.Ledger, c.IDs, c.Clock, c.Logger)
}

// ListFeedbackUseCase returns a new ListFeedback use case.
func (c *Container) ListFeedbackUseCase() *usecase.ListFeedback {
	return usecase.NewListFeedback(c.Clients, c.Ledger)
}

// AddReviewUseCase returns a new AddReview use case.
func (c *Container) AddReviewUseCase() *usecase.AddReview {
	return usecase.NewAddReview(c.Clients, c.Registry, c.IDs, c.Clock, c.Logger)
}

// ListReviewsUseCase returns a new ListReviews use case.
func (c *Container) ListReviewsUseCase() *usecase.ListReviews {
	return usecase.NewListReviews(c.Clients, c.Registry)
}

// SetReviewStatusUseCase returns a new SetReviewStatus use case.
func (c *Container) SetReviewStatusUseCase() *usecase.SetReviewStatus {
	return usecase.NewSetReviewStatus(c.Registry, c.Logger)
}

// DeleteReviewUseCase returns a new DeleteReview use case.
func (c *Container) DeleteReviewUseCase() *usecase.DeleteReview {
	return usecase.NewDeleteReview(c.Registry, c.Logger)
}

// AddAddressUseCase returns a new AddAddress use case.
func (c *Container) AddAddressUseCase() *usecase.AddAddress {
	return usecase.NewAddAddress(c.Clients, c.Registry, c.IDs, c.Logger)
}

// ListAddressesUseCase returns a new ListAddresses use case.
func (c *Container) ListAddressesUseCase() *usecase.ListAddresses {
	return usecase.NewListAddresses(c.Clients, c.Registry)
}

// DeleteAddressUseCase returns a new DeleteAddress use case.
func (c *Container) DeleteAddressUseCase() *usecase.DeleteAddress {
	return usecase.NewDeleteAddress(c.Registry, c.Logger)
}

// SummaryUseCase returns a new Summary use case.
func (c *Container) SummaryUseCase() *usecase.Summary {
	return usecase.NewSummary(c.Clients, c.Tasks, c.Ledger, c.Registry, c.Clock)
}

// ListNotificationsUseCase returns a new ListNotifications use case.
func (c *Container) ListNotificationsUseCase() *usecase.ListNotifications {
	return usecase.NewListNotifications(c.Notifications)
}

// ExportUseCase returns a new Export use case.
func (c *Container) ExportUseCase() *usecase.Export {
	return usecase.NewExport(c.Exporter)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.AppConfig)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
