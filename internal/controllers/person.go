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

type PersonController struct {
	service services.PersonServiceInterface
	logger  *zap.Logger
}

func NewPersonController(service services.PersonServiceInterface, logger *zap.Logger) *PersonController {
	return &PersonController{service: service, logger: logger}
}

func (c *PersonController) GetPersons(ctx echo.Context) error {
	result, err := c.service.GetPersons(ctx.Request().Context(), ctx.QueryParam("search"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Список лиц получен", http.StatusOK)
}

func (c *PersonController) GetPerson(ctx echo.Context) error {
	result, err := c.service.FindPerson(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Лицо найдено", http.StatusOK)
}

func (c *PersonController) CreatePerson(ctx echo.Context) error {
	var d dto.CreatePersonDTO
	if err := ctx.Bind(&d); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверные данные", err, nil), c.logger)
	}
	if err := ctx.Validate(&d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.CreatePerson(ctx.Request().Context(), d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Лицо создано", http.StatusCreated)
}
