package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"reference-service/internal/dto"
	"reference-service/internal/services"
	apperrors "reference-service/pkg/errors"
	"reference-service/pkg/utils"
)

type CounterpartyController struct {
	service            services.CounterpartyServiceInterface
	profileService     services.ProfileServiceInterface
	employeeService    services.EmployeeServiceInterface
	bankAccountService services.BankAccountServiceInterface
	logger             *zap.Logger
}

func NewCounterpartyController(
	service services.CounterpartyServiceInterface,
	profileService services.ProfileServiceInterface,
	employeeService services.EmployeeServiceInterface,
	bankAccountService services.BankAccountServiceInterface,
	logger *zap.Logger,
) *CounterpartyController {
	return &CounterpartyController{
		service:            service,
		profileService:     profileService,
		employeeService:    employeeService,
		bankAccountService: bankAccountService,
		logger:             logger,
	}
}

func (c *CounterpartyController) GetCounterparties(ctx echo.Context) error {
	var filter dto.CounterpartyFilter
	if t := ctx.QueryParam("type"); t != "" {
		filter.Type = &t
	}
	if raw := ctx.QueryParam("is_internal"); raw != "" {
		isInternal, err := strconv.ParseBool(raw)
		if err != nil {
			return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("is_internal", "is_internal должен быть true или false"), c.logger)
		}
		filter.IsInternal = &isInternal
	}

	result, err := c.service.GetCounterparties(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Список контрагентов получен", http.StatusOK)
}

func (c *CounterpartyController) SearchCounterparties(ctx echo.Context) error {
	q := strings.TrimSpace(ctx.QueryParam("q"))
	if q == "" {
		return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("q", "параметр q обязателен"), c.logger)
	}
	result, err := c.service.SearchCounterparties(ctx.Request().Context(), q)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Поиск выполнен", http.StatusOK)
}

func (c *CounterpartyController) GetSummaries(ctx echo.Context) error {
	result, err := c.profileService.GetSummaries(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Сводка по контрагентам получена", http.StatusOK)
}

func (c *CounterpartyController) GetLLC(ctx echo.Context) error {
	result, err := c.profileService.GetLLC(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "ООО найдено", http.StatusOK)
}

func (c *CounterpartyController) GetIP(ctx echo.Context) error {
	result, err := c.profileService.GetIP(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "ИП найден", http.StatusOK)
}

func (c *CounterpartyController) GetPhys(ctx echo.Context) error {
	result, err := c.profileService.GetPhys(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Физлицо найдено", http.StatusOK)
}

func (c *CounterpartyController) GetFullProfile(ctx echo.Context) error {
	result, err := c.profileService.GetFullProfile(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Профиль контрагента получен", http.StatusOK)
}

func (c *CounterpartyController) GetEmployees(ctx echo.Context) error {
	result, err := c.employeeService.GetCounterpartyEmployees(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Сотрудники контрагента получены", http.StatusOK)
}

func (c *CounterpartyController) GetBankAccounts(ctx echo.Context) error {
	result, err := c.bankAccountService.GetBankAccounts(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Банковские счета получены", http.StatusOK)
}

func (c *CounterpartyController) CreateCounterparty(ctx echo.Context) error {
	var d dto.CreateCounterpartyDTO
	if err := bindAndValidate(ctx, &d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.CreateCounterparty(ctx.Request().Context(), d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Контрагент создан", http.StatusCreated)
}

func (c *CounterpartyController) CreateLLC(ctx echo.Context) error {
	var d dto.CreateDetailsLLCDTO
	if err := bindAndValidate(ctx, &d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.CreateDetailsLLC(ctx.Request().Context(), d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Данные ООО созданы", http.StatusCreated)
}

func (c *CounterpartyController) CreateIP(ctx echo.Context) error {
	var d dto.CreateDetailsIPDTO
	if err := bindAndValidate(ctx, &d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.CreateDetailsIP(ctx.Request().Context(), d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Данные ИП созданы", http.StatusCreated)
}

func (c *CounterpartyController) CreatePhys(ctx echo.Context) error {
	var d dto.CreateDetailsPhysDTO
	if err := bindAndValidate(ctx, &d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.CreateDetailsPhys(ctx.Request().Context(), d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Данные физлица созданы", http.StatusCreated)
}

func (c *CounterpartyController) CreateAdditionalOkved(ctx echo.Context) error {
	var d dto.CreateCounterpartyAdditionalDTO
	if err := bindAndValidate(ctx, &d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.CreateAdditional(ctx.Request().Context(), d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Дополнительный ОКВЭД добавлен", http.StatusCreated)
}

func (c *CounterpartyController) CreateBankAccount(ctx echo.Context) error {
	var d dto.CreateBankAccountDTO
	if err := bindAndValidate(ctx, &d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if d.CounterpartyID != ctx.Param("id") {
		return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("counterparty_id", "counterparty_id не совпадает"), c.logger)
	}
	result, err := c.bankAccountService.CreateBankAccount(ctx.Request().Context(), d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Банковский счёт создан", http.StatusCreated)
}

func bindAndValidate(ctx echo.Context, d interface{}) error {
	if err := ctx.Bind(d); err != nil {
		return apperrors.NewHttpError(http.StatusBadRequest, "Неверные данные", err, nil)
	}
	return ctx.Validate(d)
}
