package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateExcel renders the quotation into an xlsx workbook and returns
// the file contents as a byte slice.
func GenerateExcel(data Data) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := data.ProjectName
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if sheetName == "" {
		sheetName = "Quotation"
	}

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Columns A through G: #, item, spec, qty, unit price, total, remark.
	columns := []string{"A", "B", "C", "D", "E", "F", "G"}
	lastCol := columns[len(columns)-1]

	widths := []float64{5, 36, 28, 8, 14, 14, 36}
	for i, colRef := range columns {
		if err := f.SetColWidth(sheetName, colRef, colRef, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", colRef, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	cellStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create cell style: %w", err)
	}

	totalStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	// Header rows: title, customer, elevator summary.
	title := data.ProjectName
	if title == "" {
		title = "Elevator Modernization Quotation"
	}
	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", title)
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
		return nil, fmt.Errorf("merge customer row: %w", err)
	}
	f.SetCellValue(sheetName, "A2", "Customer: "+data.CustomerName)
	f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)

	if err := f.MergeCell(sheetName, "A3", lastCol+"3"); err != nil {
		return nil, fmt.Errorf("merge summary row: %w", err)
	}
	f.SetCellValue(sheetName, "A3", "Elevator: "+data.Summary)
	f.SetCellStyle(sheetName, "A3", lastCol+"3", subtitleStyle)

	// Table header at row 5.
	headers := []string{"#", "Item", "Specification", "Qty", "Unit Price", "Total", "Remark"}
	for i, h := range headers {
		f.SetCellValue(sheetName, fmt.Sprintf("%s5", columns[i]), h)
	}
	f.SetCellStyle(sheetName, "A5", lastCol+"5", headerStyle)

	rowNum := 6
	for _, r := range data.Rows {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), r.Index)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), r.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowNum), r.Spec)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowNum), formatQty(r.Quantity))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowNum), FormatCNY(r.UnitPrice))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowNum), FormatCNY(r.TotalPrice))
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", rowNum), r.Remark)
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("%s%d", lastCol, rowNum), cellStyle)
		rowNum++
	}

	// Grand total.
	rowNum++
	f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowNum), "Grand Total")
	f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowNum), FormatCNY(data.TotalPrice))
	f.SetCellStyle(sheetName, fmt.Sprintf("E%d", rowNum), fmt.Sprintf("F%d", rowNum), totalStyle)

	// Warnings, one per row under the table.
	if len(data.Warnings) > 0 {
		rowNum += 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), "Warnings:")
		for _, w := range data.Warnings {
			rowNum++
			f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), w)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "#999999", Style: 1},
		{Type: "right", Color: "#999999", Style: 1},
		{Type: "top", Color: "#999999", Style: 1},
		{Type: "bottom", Color: "#999999", Style: 1},
	}
}
