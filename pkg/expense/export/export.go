// Package export renders the expense ledger as an xlsx workbook for
// download.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"agriportal/entities"
)

const sheet = "経費帳"

// Workbook builds a spreadsheet with a header row, one row per expense
// (newest first, as listed), and a closing total row.
func Workbook(expenses []entities.Expense) (*excelize.File, error) {
	f := excelize.NewFile()
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	// drop the default sheet
	_ = f.DeleteSheet("Sheet1")

	headers := []string{"日付", "項目", "金額", "備考"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	total := 0
	for i, e := range expenses {
		row := i + 2
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), e.Date); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", row), e.Item); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("C%d", row), e.Amount); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("D%d", row), e.Description); err != nil {
			return nil, err
		}
		total += e.Amount
	}

	totalRow := len(expenses) + 2
	if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", totalRow), "合計"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, fmt.Sprintf("C%d", totalRow), total); err != nil {
		return nil, err
	}
	return f, nil
}
