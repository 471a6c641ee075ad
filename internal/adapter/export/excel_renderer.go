package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"bakusoq/internal/domain/entities"
	"bakusoq/internal/usecase/interfaces"
)

const (
	SheetName    = "見積書"
	yenNumFormat = "#,##0"
	qtyNumFormat = "#,##0.##"
)

type ExcelRenderer struct{}

var _ interfaces.IEstimateRenderer = (*ExcelRenderer)(nil)

func NewExcelRenderer() *ExcelRenderer {
	return &ExcelRenderer{}
}

func (r *ExcelRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (r *ExcelRenderer) Extension() string {
	return "xlsx"
}

func (r *ExcelRenderer) Render(e entities.Estimate) ([]byte, error) {
	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	if err := file.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, err
	}

	yenStyle, err := file.NewStyle(&excelize.Style{CustomNumFmt: strPtr(yenNumFormat)})
	if err != nil {
		return nil, err
	}
	qtyStyle, err := file.NewStyle(&excelize.Style{CustomNumFmt: strPtr(qtyNumFormat)})
	if err != nil {
		return nil, err
	}
	boldStyle, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	boldYenStyle, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, CustomNumFmt: strPtr(yenNumFormat)})
	if err != nil {
		return nil, err
	}

	set := func(col string, row int, value interface{}) {
		_ = file.SetCellValue(SheetName, fmt.Sprintf("%s%d", col, row), value)
	}
	style := func(from, to string, row, id int) {
		_ = file.SetCellStyle(SheetName, fmt.Sprintf("%s%d", from, row), fmt.Sprintf("%s%d", to, row), id)
	}

	set("A", 1, documentTitle)
	style("A", "A", 1, boldStyle)

	row := 3
	for _, kv := range headerRows(e) {
		set("A", row, kv[0])
		set("B", row, kv[1])
		row++
	}

	row++
	set("A", row, "区分")
	for i, h := range tableHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+2, row)
		_ = file.SetCellValue(SheetName, cell, h)
	}
	style("A", "F", row, boldStyle)
	row++

	for _, g := range e.Result.Groups() {
		set("A", row, g.Category)
		set("F", row, g.SubTotal)
		style("A", "A", row, boldStyle)
		style("F", "F", row, boldYenStyle)
		row++

		for _, it := range g.Items {
			set("B", row, it.Name)
			set("C", row, it.Unit)
			set("D", row, it.Quantity)
			set("E", row, it.UnitPrice)
			set("F", row, it.Total)
			style("D", "D", row, qtyStyle)
			style("E", "F", row, yenStyle)
			row++
		}
	}

	row++
	totals := []struct {
		label  string
		amount int64
	}{
		{"小計", e.Result.SubTotal},
		{"消費税(10%)", e.Result.Tax},
		{"合計", e.Result.Total},
	}
	for _, t := range totals {
		set("A", row, t.label)
		set("F", row, t.amount)
		style("A", "A", row, boldStyle)
		style("F", "F", row, boldYenStyle)
		row++
	}

	if e.Result.Notes != "" {
		row++
		set("A", row, "備考")
		set("B", row, e.Result.Notes)
	}

	_ = file.SetColWidth(SheetName, "A", "A", 22)
	_ = file.SetColWidth(SheetName, "B", "B", 32)
	_ = file.SetColWidth(SheetName, "C", "C", 8)
	_ = file.SetColWidth(SheetName, "D", "F", 14)

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func strPtr(s string) *string {
	return &s
}
