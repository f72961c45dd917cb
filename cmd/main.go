package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createOrderHandler "github.com/KirillBalashovIS122/SkodaExpert/internal/api/handlers/create_order"
	deleteOrderHandler "github.com/KirillBalashovIS122/SkodaExpert/internal/api/handlers/delete_order"
	exportReportHandler "github.com/KirillBalashovIS122/SkodaExpert/internal/api/handlers/export_report"
	getAvailableSlotsHandler "github.com/KirillBalashovIS122/SkodaExpert/internal/api/handlers/get_available_slots"
	getCarModelsHandler "github.com/KirillBalashovIS122/SkodaExpert/internal/api/handlers/get_car_models"
	getEmployeeTasksHandler "github.com/KirillBalashovIS122/SkodaExpert/internal/api/handlers/get_employee_tasks"
	getOrderHandler "github.com/KirillBalashovIS122/SkodaExpert/internal/api/handlers/get_order"
	getOrdersHandler "github.com/KirillBalashovIS122/SkodaExpert/internal/api/handlers/get_orders"
	getReportHandler "github.com/KirillBalashovIS122/SkodaExpert/internal/api/handlers/get_report"
	getServicesHandler "github.com/KirillBalashovIS122/SkodaExpert/internal/api/handlers/get_services"
	loginHandler "github.com/KirillBalashovIS122/SkodaExpert/internal/api/handlers/login"
	manageCarModelsHandler "github.com/KirillBalashovIS122/SkodaExpert/internal/api/handlers/manage_car_models"
	manageClientsHandler "github.com/KirillBalashovIS122/SkodaExpert/internal/api/handlers/manage_clients"
	manageEmployeesHandler "github.com/KirillBalashovIS122/SkodaExpert/internal/api/handlers/manage_employees"
	manageServicesHandler "github.com/KirillBalashovIS122/SkodaExpert/internal/api/handlers/manage_services"
	orderReceiptHandler "github.com/KirillBalashovIS122/SkodaExpert/internal/api/handlers/order_receipt"
	registerHandler "github.com/KirillBalashovIS122/SkodaExpert/internal/api/handlers/register"
	updateTaskStatusHandler "github.com/KirillBalashovIS122/SkodaExpert/internal/api/handlers/update_task_status"
	"github.com/KirillBalashovIS122/SkodaExpert/internal/api/middleware"
	"github.com/KirillBalashovIS122/SkodaExpert/internal/config"
	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
	carModelsRepo "github.com/KirillBalashovIS122/SkodaExpert/internal/infra/storage/carmodels"
	carsRepo "github.com/KirillBalashovIS122/SkodaExpert/internal/infra/storage/cars"
	clientsRepo "github.com/KirillBalashovIS122/SkodaExpert/internal/infra/storage/clients"
	employeesRepo "github.com/KirillBalashovIS122/SkodaExpert/internal/infra/storage/employees"
	ordersRepo "github.com/KirillBalashovIS122/SkodaExpert/internal/infra/storage/orders"
	reportsRepo "github.com/KirillBalashovIS122/SkodaExpert/internal/infra/storage/reports"
	servicesRepo "github.com/KirillBalashovIS122/SkodaExpert/internal/infra/storage/services"
	tasksRepo "github.com/KirillBalashovIS122/SkodaExpert/internal/infra/storage/tasks"
	authService "github.com/KirillBalashovIS122/SkodaExpert/internal/service/auth"
	carModelsService "github.com/KirillBalashovIS122/SkodaExpert/internal/service/carmodels"
	catalogService "github.com/KirillBalashovIS122/SkodaExpert/internal/service/catalog"
	clientsService "github.com/KirillBalashovIS122/SkodaExpert/internal/service/clients"
	ordersService "github.com/KirillBalashovIS122/SkodaExpert/internal/service/orders"
	reportsService "github.com/KirillBalashovIS122/SkodaExpert/internal/service/reports"
	staffService "github.com/KirillBalashovIS122/SkodaExpert/internal/service/staff"
	tasksService "github.com/KirillBalashovIS122/SkodaExpert/internal/service/tasks"
	createOrderUC "github.com/KirillBalashovIS122/SkodaExpert/internal/usecase/create_order"
	getAvailableSlotsUC "github.com/KirillBalashovIS122/SkodaExpert/internal/usecase/get_available_slots"
	"github.com/KirillBalashovIS122/SkodaExpert/pkg/dbmetrics"
	"github.com/KirillBalashovIS122/SkodaExpert/pkg/logger"
	"github.com/KirillBalashovIS122/SkodaExpert/pkg/metrics"
	"github.com/KirillBalashovIS122/SkodaExpert/pkg/simpletxmanager"
	"github.com/KirillBalashovIS122/SkodaExpert/pkg/txmanager"
	"github.com/KirillBalashovIS122/SkodaExpert/pkg/types"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SkodaExpert...")
	log.Info("Configuration loaded from config.toml")

	// Расписание работы автосервиса
	schedule, err := buildSchedule(cfg.Booking)
	if err != nil {
		log.Fatal("Invalid booking schedule: %v", err)
	}
	log.Info("Working hours: %s-%s, slot granularity %d min",
		schedule.OpenTime, schedule.CloseTime, schedule.SlotGranularityMinutes)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		clientsRepository   *clientsRepo.Repository
		employeesRepository *employeesRepo.Repository
		carModelsRepository *carModelsRepo.Repository
		carsRepository      *carsRepo.Repository
		servicesRepository  *servicesRepo.Repository
		ordersRepository    *ordersRepo.Repository
		tasksRepository     *tasksRepo.Repository
		reportsRepository   *reportsRepo.Repository
	)

	var txMgr createOrderUC.TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		clientsRepository = clientsRepo.NewRepository(wrappedDB)
		employeesRepository = employeesRepo.NewRepository(wrappedDB)
		carModelsRepository = carModelsRepo.NewRepository(wrappedDB)
		carsRepository = carsRepo.NewRepository(wrappedDB)
		servicesRepository = servicesRepo.NewRepository(wrappedDB)
		ordersRepository = ordersRepo.NewRepository(wrappedDB)
		tasksRepository = tasksRepo.NewRepository(wrappedDB)
		reportsRepository = reportsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		clientsRepository = clientsRepo.NewRepository(db)
		employeesRepository = employeesRepo.NewRepository(db)
		carModelsRepository = carModelsRepo.NewRepository(db)
		carsRepository = carsRepo.NewRepository(db)
		servicesRepository = servicesRepo.NewRepository(db)
		ordersRepository = ordersRepo.NewRepository(db)
		tasksRepository = tasksRepo.NewRepository(db)
		reportsRepository = reportsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	authSvc := authService.NewService(
		clientsRepository,
		employeesRepository,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
		log,
	)
	catalogSvc := catalogService.NewService(servicesRepository, log)
	carModelsSvc := carModelsService.NewService(carModelsRepository, log)
	clientsSvc := clientsService.NewService(clientsRepository, carsRepository, log)
	staffSvc := staffService.NewService(employeesRepository, log)
	ordersSvc := ordersService.NewService(ordersRepository, log)
	tasksSvc := tasksService.NewService(tasksRepository, log)
	reportsSvc := reportsService.NewService(reportsRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		ordersRepository,
		servicesRepository,
		schedule,
		log,
	)
	createOrderUseCase := createOrderUC.NewUseCase(
		txMgr,
		ordersRepository,
		servicesRepository,
		carsRepository,
		carModelsRepository,
		employeesRepository,
		tasksRepository,
		schedule,
		log,
	)

	// Инициализируем handlers
	login := loginHandler.NewHandler(authSvc, log)
	register := registerHandler.NewHandler(authSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createOrder := createOrderHandler.NewHandler(createOrderUseCase, log)
	getOrder := getOrderHandler.NewHandler(ordersSvc, log)
	getOrders := getOrdersHandler.NewHandler(ordersSvc, log)
	deleteOrder := deleteOrderHandler.NewHandler(ordersSvc, log)
	orderReceipt := orderReceiptHandler.NewHandler(ordersSvc, log)
	getEmployeeTasks := getEmployeeTasksHandler.NewHandler(tasksSvc, log)
	updateTaskStatus := updateTaskStatusHandler.NewHandler(tasksSvc, log)
	getServices := getServicesHandler.NewHandler(catalogSvc, log)
	manageServices := manageServicesHandler.NewHandler(catalogSvc, log)
	getCarModels := getCarModelsHandler.NewHandler(carModelsSvc, log)
	manageCarModels := manageCarModelsHandler.NewHandler(carModelsSvc, log)
	manageEmployees := manageEmployeesHandler.NewHandler(staffSvc, log)
	manageClients := manageClientsHandler.NewHandler(clientsSvc, log)
	getReport := getReportHandler.NewHandler(reportsSvc, log)
	exportReport := exportReportHandler.NewHandler(reportsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Аутентификация
	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Каталог услуг и моделей
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/car-models", getCarModels.Handle).Methods(http.MethodGet)

	// Свободные слоты на день
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer-токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc, log))

	// --- Заказы ---
	protected.HandleFunc("/orders", createOrder.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/orders", getOrders.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/orders/{orderId}", getOrder.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/orders/{orderId}", deleteOrder.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/orders/{orderId}/receipt", orderReceipt.Handle).Methods(http.MethodGet)

	// --- Задачи механиков ---
	protected.HandleFunc("/employees/{employeeId}/tasks", getEmployeeTasks.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/tasks/{taskId}/status", updateTaskStatus.Handle).Methods(http.MethodPatch)

	// --- Справочники (для менеджеров) ---
	protected.HandleFunc("/services", manageServices.Create).Methods(http.MethodPost)
	protected.HandleFunc("/services/{serviceId}", manageServices.Update).Methods(http.MethodPut)
	protected.HandleFunc("/services/{serviceId}", manageServices.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/car-models", manageCarModels.Create).Methods(http.MethodPost)
	protected.HandleFunc("/car-models/{modelId}", manageCarModels.Update).Methods(http.MethodPut)
	protected.HandleFunc("/car-models/{modelId}", manageCarModels.Delete).Methods(http.MethodDelete)

	// --- Сотрудники ---
	protected.HandleFunc("/employees", manageEmployees.Create).Methods(http.MethodPost)
	protected.HandleFunc("/employees", manageEmployees.List).Methods(http.MethodGet)
	protected.HandleFunc("/employees/{employeeId}", manageEmployees.Get).Methods(http.MethodGet)
	protected.HandleFunc("/employees/{employeeId}", manageEmployees.Update).Methods(http.MethodPut)
	protected.HandleFunc("/employees/{employeeId}", manageEmployees.Delete).Methods(http.MethodDelete)

	// --- Клиенты ---
	protected.HandleFunc("/clients", manageClients.List).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{clientId}", manageClients.Get).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{clientId}", manageClients.Update).Methods(http.MethodPut)
	protected.HandleFunc("/clients/{clientId}", manageClients.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/clients/{clientId}/cars", manageClients.ListCars).Methods(http.MethodGet)

	// --- Отчеты (для менеджеров) ---
	protected.HandleFunc("/reports/summary", getReport.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reports/summary/export", exportReport.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

func buildSchedule(cfg config.BookingConfig) (domain.Schedule, error) {
	openTime, err := types.NewTimeStringFromString(cfg.OpenTime)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("open_time: %w", err)
	}
	closeTime, err := types.NewTimeStringFromString(cfg.CloseTime)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("close_time: %w", err)
	}
	if !openTime.IsBefore(closeTime) {
		return domain.Schedule{}, fmt.Errorf("open_time %s must be before close_time %s", openTime, closeTime)
	}

	return domain.Schedule{
		OpenTime:               openTime,
		CloseTime:              closeTime,
		SlotGranularityMinutes: cfg.SlotGranularityMinutes,
	}, nil
}
