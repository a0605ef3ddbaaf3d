package xlsx

import (
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/jsonxl-go/pkg/jsonxl/flatten"
	"github.com/ukaji3/jsonxl-go/pkg/jsonxl/tree"
)

// WriteFile writes a row set to a new workbook. Every distinct column name
// becomes a spreadsheet column, missing values are left blank, and the
// header row is centered. The file is only created once the whole sheet is
// assembled.
func WriteFile(path string, rs *flatten.RowSet) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	for ci, col := range rs.Columns {
		cell, err := excelize.CoordinatesToCellName(ci+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return err
		}
	}
	if len(rs.Columns) > 0 {
		if err := styleHeader(f, sheet, len(rs.Columns)); err != nil {
			return err
		}
	}

	for ri, row := range rs.Rows {
		for ci, col := range rs.Columns {
			val, ok := row[col]
			if !ok || val.Kind == tree.ScalarNull {
				// Nulls and absent values both map to blank cells.
				continue
			}
			cell, err := excelize.CoordinatesToCellName(ci+1, ri+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, val.Interface()); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}

// styleHeader centers the header row.
func styleHeader(f *excelize.File, sheet string, ncols int) error {
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(ncols, 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}
