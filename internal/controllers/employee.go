package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"reference-service/internal/dto"
	"reference-service/internal/services"
	apperrors "reference-service/pkg/errors"
	"reference-service/pkg/utils"
)

type EmployeeController struct {
	service         services.EmployeeServiceInterface
	internalService services.InternalEmployeeServiceInterface
	logger          *zap.Logger
}

func NewEmployeeController(
	service services.EmployeeServiceInterface,
	internalService services.InternalEmployeeServiceInterface,
	logger *zap.Logger,
) *EmployeeController {
	return &EmployeeController{service: service, internalService: internalService, logger: logger}
}

func (c *EmployeeController) GetEmployees(ctx echo.Context) error {
	result, err := c.service.GetEmployees(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Список сотрудников получен", http.StatusOK)
}

func (c *EmployeeController) GetInternalEmployees(ctx echo.Context) error {
	result, err := c.internalService.GetGroupedByDepartment(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Сотрудники по отделам получены", http.StatusOK)
}

func (c *EmployeeController) GetInternalDepartments(ctx echo.Context) error {
	result, err := c.internalService.GetDepartments(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Список отделов получен", http.StatusOK)
}

func (c *EmployeeController) CreateEmployee(ctx echo.Context) error {
	var d dto.CreateEmployeeDTO
	if err := ctx.Bind(&d); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверные данные", err, nil), c.logger)
	}
	if err := ctx.Validate(&d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.CreateEmployee(ctx.Request().Context(), d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Сотрудник создан", http.StatusCreated)
}
