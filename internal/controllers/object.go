package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"reference-service/internal/dto"
	"reference-service/internal/services"
	apperrors "reference-service/pkg/errors"
	"reference-service/pkg/utils"
)

type ObjectController struct {
	service services.ObjectServiceInterface
	logger  *zap.Logger
}

func NewObjectController(service services.ObjectServiceInterface, logger *zap.Logger) *ObjectController {
	return &ObjectController{service: service, logger: logger}
}

func (c *ObjectController) GetObjects(ctx echo.Context) error {
	result, err := c.service.GetObjects(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Список объектов получен", http.StatusOK)
}

func (c *ObjectController) GetObject(ctx echo.Context) error {
	result, err := c.service.FindObject(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Объект найден", http.StatusOK)
}

func (c *ObjectController) GetEmployeeObjects(ctx echo.Context) error {
	result, err := c.service.GetObjectsByEmployee(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Объекты менеджера получены", http.StatusOK)
}

func (c *ObjectController) CreateObject(ctx echo.Context) error {
	var d dto.CreateObjectDTO
	if err := ctx.Bind(&d); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверные данные", err, nil), c.logger)
	}
	if err := ctx.Validate(&d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.CreateObject(ctx.Request().Context(), d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Объект создан", http.StatusCreated)
}

func (c *ObjectController) UpdateObject(ctx echo.Context) error {
	rawBody, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Не удалось прочитать тело запроса", err, nil), c.logger)
	}
	ctx.Request().Body = io.NopCloser(bytes.NewBuffer(rawBody))

	sent, err := sentFields(rawBody)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверные данные", err, nil), c.logger)
	}

	var d dto.UpdateObjectDTO
	if err := ctx.Bind(&d); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверные данные", err, nil), c.logger)
	}
	if err := ctx.Validate(&d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	d.SentFields = sent
	// is_active в таблице NOT NULL, очищать его нельзя
	if d.Sent("is_active") && !d.IsActive.Valid {
		return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("is_active", "is_active не может быть null"), c.logger)
	}

	result, err := c.service.UpdateObject(ctx.Request().Context(), ctx.Param("id"), d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Объект обновлён", http.StatusOK)
}

// sentFields возвращает ключи верхнего уровня, присутствующие в теле.
func sentFields(rawBody []byte) (map[string]bool, error) {
	fields := map[string]json.RawMessage{}
	if len(bytes.TrimSpace(rawBody)) > 0 {
		if err := json.Unmarshal(rawBody, &fields); err != nil {
			return nil, err
		}
	}
	sent := make(map[string]bool, len(fields))
	for key := range fields {
		sent[key] = true
	}
	return sent, nil
}
