package seeders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"reference-service/internal/dto"
	"reference-service/internal/repositories"
	"reference-service/internal/services"
	apperrors "reference-service/pkg/errors"
	"reference-service/pkg/utils"
)

// Фиксированные id демо-данных: повторный запуск сидера ничего не дублирует.
const (
	DemoCounterpartyID = "00000000-0000-0000-0000-000000000001"
	DemoDirectorID     = "00000000-0000-0000-0000-000000000101"
	DemoEmployeeID     = "00000000-0000-0000-0000-000000000201"
	DemoBankAccountID  = "00000000-0000-0000-0000-000000000301"
	DemoObjectID       = "00000000-0000-0000-0000-000000000401"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// SeedDemo создаёт внутреннее ООО с директором, сотрудником, счётом и объектом.
func SeedDemo(ctx context.Context, db repositories.Querier, logger *zap.Logger) error {
	counterpartyRepo := repositories.NewCounterpartyRepository(db, logger)
	detailsRepo := repositories.NewDetailsRepository(db, logger)
	personRepo := repositories.NewPersonRepository(db, logger)
	employeeRepo := repositories.NewEmployeeRepository(db, logger)

	counterparties := services.NewCounterpartyService(counterpartyRepo, detailsRepo, logger)
	persons := services.NewPersonService(personRepo, employeeRepo, logger)
	employees := services.NewEmployeeService(employeeRepo, logger)
	accounts := services.NewBankAccountService(repositories.NewBankAccountRepository(db, logger), logger)
	objects := services.NewObjectService(repositories.NewObjectRepository(db, logger), logger)

	_, err := counterparties.FindCounterparty(ctx, DemoCounterpartyID)
	if err == nil {
		logger.Info("Демо-данные уже есть, пропускаем")
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	if _, err := counterparties.CreateCounterparty(ctx, dto.CreateCounterpartyDTO{
		ID:             utils.ToPtr(DemoCounterpartyID),
		Type:           "LLC",
		ShortName:      "Демо",
		FullName:       "ООО \"Демо\"",
		IsInternal:     utils.ToPtr(true),
		ContractPrefix: utils.ToPtr("DM"),
	}); err != nil {
		return fmt.Errorf("контрагент: %w", err)
	}

	if _, err := persons.CreatePerson(ctx, dto.CreatePersonDTO{
		ID:        utils.ToPtr(DemoDirectorID),
		Name:      "Иван",
		LastName:  "Иванов",
		Phone:     "+79990000001",
		Email:     "director@demo.local",
		BirthDate: "1980-01-15",
	}); err != nil {
		return fmt.Errorf("директор: %w", err)
	}

	if _, err := counterparties.CreateDetailsLLC(ctx, dto.CreateDetailsLLCDTO{
		CounterpartiesID: DemoCounterpartyID,
		INN:              "7701000000",
		KPP:              "770101001",
		OGRN:             "1027700000000",
		LegalAddress:     "Москва, ул. Примерная, 1",
		ActualAddress:    "Москва, ул. Примерная, 1",
		PostalAddress:    "Москва, ул. Примерная, 1",
		DirectorPersonID: DemoDirectorID,
		DateRegister:     utils.ToPtr("2010-03-01"),
	}); err != nil {
		return fmt.Errorf("реквизиты ООО: %w", err)
	}

	if _, err := employees.CreateEmployee(ctx, dto.CreateEmployeeDTO{
		ID:             utils.ToPtr(DemoEmployeeID),
		CounterpartyID: DemoCounterpartyID,
		PersonID:       DemoDirectorID,
		Position:       utils.ToPtr("Генеральный директор"),
		PhoneWork:      utils.ToPtr("+74950000001"),
		EmailWork:      utils.ToPtr("office@demo.local"),
		RoleType:       "director",
	}); err != nil {
		return fmt.Errorf("сотрудник: %w", err)
	}

	if _, err := accounts.CreateBankAccount(ctx, dto.CreateBankAccountDTO{
		ID:                   utils.ToPtr(DemoBankAccountID),
		CounterpartyID:       DemoCounterpartyID,
		BankName:             "Демо Банк",
		BIK:                  "044525000",
		CorrespondentAccount: "30101810400000000225",
		AccountNumber:        "40702810000000000001",
		AccountName:          "Расчётный счёт",
		IsMain:               utils.ToPtr(true),
	}); err != nil {
		return fmt.Errorf("банковский счёт: %w", err)
	}

	if _, err := objects.CreateObject(ctx, dto.CreateObjectDTO{
		ID:        utils.ToPtr(DemoObjectID),
		ShortName: utils.ToPtr("Офис"),
		FullName:  utils.ToPtr("Головной офис"),
		Address:   utils.ToPtr("Москва, ул. Примерная, 1"),
		ManagerID: utils.ToPtr(DemoEmployeeID),
	}); err != nil {
		return fmt.Errorf("объект: %w", err)
	}

	logger.Info("✅ Демо-данные созданы", zap.String("counterparty_id", DemoCounterpartyID))
	return nil
}

// SeedDevSession записывает в базу авторизации сессию разработчика.
// Возвращает сырой токен: в базе хранится только его хэш.
func SeedDevSession(ctx context.Context, db repositories.Querier, ttl time.Duration, logger *zap.Logger) (string, error) {
	token := strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")

	query, args, err := psql.Insert("sessions").
		Columns("id", "token_hash", "expires_at").
		Values(uuid.NewString(), services.HashToken(token), time.Now().UTC().Add(ttl)).
		ToSql()
	if err != nil {
		return "", err
	}
	if _, err := db.Exec(ctx, query, args...); err != nil {
		return "", fmt.Errorf("ошибка создания сессии: %w", err)
	}

	logger.Info("✅ Сессия разработчика создана", zap.Duration("ttl", ttl))
	return token, nil
}
