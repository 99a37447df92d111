package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"reference-service/internal/controllers"
	"reference-service/internal/repositories"
	"reference-service/internal/services"
	"reference-service/pkg/config"
	"reference-service/pkg/middleware"
)

// Stores - два независимых хранилища: справочники и авторизация.
type Stores struct {
	Reference repositories.Querier
	Auth      repositories.Querier
}

func InitRouter(e *echo.Echo, stores Stores, cfg *config.Config, logger *zap.Logger) {
	logger.Info("InitRouter: Начало создания маршрутов")

	// --- 1. РЕПОЗИТОРИИ ---
	sessionRepo := repositories.NewSessionRepository(stores.Auth, logger)
	userRepo := repositories.NewUserRepository(stores.Auth, logger)

	objectRepo := repositories.NewObjectRepository(stores.Reference, logger)
	counterpartyRepo := repositories.NewCounterpartyRepository(stores.Reference, logger)
	detailsRepo := repositories.NewDetailsRepository(stores.Reference, logger)
	personRepo := repositories.NewPersonRepository(stores.Reference, logger)
	employeeRepo := repositories.NewEmployeeRepository(stores.Reference, logger)
	bankAccountRepo := repositories.NewBankAccountRepository(stores.Reference, logger)
	internalEmployeeRepo := repositories.NewInternalEmployeeRepository(stores.Reference, logger)

	// --- 2. СЕРВИСЫ ---
	sessionService := services.NewSessionService(sessionRepo, logger)
	objectService := services.NewObjectService(objectRepo, logger)
	personService := services.NewPersonService(personRepo, employeeRepo, logger)
	employeeService := services.NewEmployeeService(employeeRepo, logger)
	bankAccountService := services.NewBankAccountService(bankAccountRepo, logger)
	internalEmployeeService := services.NewInternalEmployeeService(internalEmployeeRepo, userRepo, logger)
	counterpartyService := services.NewCounterpartyService(counterpartyRepo, detailsRepo, logger)
	profileService := services.NewProfileService(counterpartyRepo, detailsRepo, personRepo, employeeRepo, bankAccountRepo, logger)

	// --- 3. КОНТРОЛЛЕРЫ ---
	objectController := controllers.NewObjectController(objectService, logger)
	personController := controllers.NewPersonController(personService, logger)
	employeeController := controllers.NewEmployeeController(employeeService, internalEmployeeService, logger)
	counterpartyController := controllers.NewCounterpartyController(
		counterpartyService, profileService, employeeService, bankAccountService, logger,
	)

	// --- 4. РОУТЕРЫ ---
	authMW := middleware.NewAuthMiddleware(sessionService, cfg.Session.CookieName, logger)
	secureGroup := e.Group("/api/ref", authMW.Auth)

	runObjectRouter(secureGroup, objectController)
	runPersonRouter(secureGroup, personController)
	runEmployeeRouter(secureGroup, employeeController, objectController)
	runCounterpartyRouter(secureGroup, counterpartyController)

	logger.Info("INIT_ROUTER: Создание маршрутов завершено")
}
