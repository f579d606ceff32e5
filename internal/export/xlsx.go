// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/toeirei/roster/internal/model"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the users.
const SheetName = "Users"

var columns = []struct {
	header string
	width  float64
}{
	{"ID", 8},
	{"First Name", 16},
	{"Last Name", 16},
	{"Email", 32},
	{"Avatar", 48},
}

// WriteXLSX writes users as a single-sheet workbook with a header row.
func WriteXLSX(w io.Writer, users []model.User) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, col.header); err != nil {
			return err
		}
		name, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(SheetName, name, name, col.width); err != nil {
			return err
		}
	}

	for r, u := range users {
		row := []any{u.ID, u.FirstName, u.LastName, u.Email, u.Avatar}
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", r+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// ReadXLSX reads the users back from a workbook written by WriteXLSX.
func ReadXLSX(r io.Reader) ([]model.User, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}
	users := make([]model.User, 0, max(len(rows)-1, 0))
	for i, row := range rows {
		if i == 0 {
			continue
		}
		for len(row) < len(columns) {
			row = append(row, "")
		}
		id, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad id %q", i+1, row[0])
		}
		users = append(users, model.User{ID: id, FirstName: row[1], LastName: row[2], Email: row[3], Avatar: row[4]})
	}
	return users, nil
}
