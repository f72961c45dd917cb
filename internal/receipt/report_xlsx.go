package receipt

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
)

// BuildReportXLSX формирует XLSX сводного отчета менеджера
// Каждый срез отчета на отдельном листе
func BuildReportXLSX(summary *domain.ReportSummary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "Summary"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	summaryRows := [][]interface{}{
		{"Period", periodLabel(summary)},
		{"Total orders", summary.TotalOrders},
		{"Total revenue", summary.TotalRevenue.StringFixed(2)},
	}
	if err := writeSheet(f, summarySheet, summaryRows); err != nil {
		return nil, err
	}

	serviceSheet := [][]interface{}{{"Service", "Orders", "Revenue"}}
	for _, row := range summary.ByService {
		serviceSheet = append(serviceSheet, []interface{}{row.ServiceName, row.OrderCount, row.Revenue.StringFixed(2)})
	}
	if err := addSheet(f, "By service", serviceSheet); err != nil {
		return nil, err
	}

	modelSheet := [][]interface{}{{"Brand", "Model", "Orders"}}
	for _, row := range summary.ByCarModel {
		modelSheet = append(modelSheet, []interface{}{row.Brand, row.ModelName, row.OrderCount})
	}
	if err := addSheet(f, "By car model", modelSheet); err != nil {
		return nil, err
	}

	employeeSheet := [][]interface{}{{"Employee", "Tasks", "Completed"}}
	for _, row := range summary.ByEmployee {
		employeeSheet = append(employeeSheet, []interface{}{row.EmployeeName, row.TaskCount, row.CompletedCount})
	}
	if err := addSheet(f, "By employee", employeeSheet); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report xlsx: %w", err)
	}

	return buf.Bytes(), nil
}

func addSheet(f *excelize.File, name string, rows [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to add sheet %q: %w", name, err)
	}
	return writeSheet(f, name, rows)
}

func writeSheet(f *excelize.File, name string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to build cell name: %w", err)
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return fmt.Errorf("failed to write sheet %q: %w", name, err)
		}
	}
	return nil
}
