package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"

	"reference-service/internal/dto"
	"reference-service/pkg/utils"
)

var summaryHeaders = []interface{}{
	"ID", "Тип", "Краткое наименование", "Полное наименование", "Внутренний",
	"Адрес", "ИНН/ОГРН/КПП", "Контактное лицо", "Телефон", "Email",
}

func summaryToRow(item dto.CounterpartySummaryDTO) []interface{} {
	internal := "Нет"
	if item.IsInternal {
		internal = "Да"
	}
	return []interface{}{
		item.ID, item.TypeLabel, item.ShortName, item.FullName, internal,
		utils.SafeDeref(item.Address), item.InnOgrnKpp,
		utils.SafeDeref(item.ContactName), utils.SafeDeref(item.ContactPhone), utils.SafeDeref(item.ContactEmail),
	}
}

// ExportSummaries отдаёт сводку по контрагентам файлом xlsx.
func (c *CounterpartyController) ExportSummaries(ctx echo.Context) error {
	data, err := c.profileService.GetSummaries(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	f, err := buildSummaryWorkbook(data)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	defer f.Close()

	fileName := fmt.Sprintf("counterparties_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}

func buildSummaryWorkbook(data []dto.CounterpartySummaryDTO) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := fillSummarySheet(f, data); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func fillSummarySheet(f *excelize.File, data []dto.CounterpartySummaryDTO) error {
	sheet := "Контрагенты"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &summaryHeaders); err != nil {
		return err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "J1", style); err != nil {
		return err
	}

	for i, item := range data {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := summaryToRow(item)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	widths := []struct {
		from, to string
		width    float64
	}{
		{"C", "D", 35},
		{"F", "F", 40},
		{"G", "J", 25},
	}
	for _, w := range widths {
		if err := f.SetColWidth(sheet, w.from, w.to, w.width); err != nil {
			return err
		}
	}
	return nil
}
