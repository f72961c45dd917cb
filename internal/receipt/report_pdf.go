package receipt

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
)

// BuildReportPDF формирует PDF сводного отчета менеджера
func BuildReportPDF(summary *domain.ReportSummary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Revenue Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Revenue Report")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)
	writeLine(pdf, "Period", periodLabel(summary))
	writeLine(pdf, "Orders", fmt.Sprintf("%d", summary.TotalOrders))
	writeLine(pdf, "Revenue", summary.TotalRevenue.StringFixed(2))
	pdf.Ln(8)

	writeReportSection(pdf, "Revenue by service", []string{"Service", "Orders", "Revenue"}, serviceRows(summary))
	writeReportSection(pdf, "Orders by car model", []string{"Model", "Orders", ""}, carModelRows(summary))
	writeReportSection(pdf, "Tasks by employee", []string{"Employee", "Tasks", "Completed"}, employeeRows(summary))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func periodLabel(summary *domain.ReportSummary) string {
	from := "..."
	to := "..."
	if summary.From != nil {
		from = summary.From.Format(domain.DateFormat)
	}
	if summary.To != nil {
		to = summary.To.Format(domain.DateFormat)
	}
	return fmt.Sprintf("%s - %s", from, to)
}

func writeReportSection(pdf *gofpdf.Fpdf, title string, headers []string, rows [][3]string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 9, title)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(100, 7, headers[0], "B", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, headers[1], "B", 0, "R", false, 0, "")
	pdf.CellFormat(50, 7, headers[2], "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.CellFormat(100, 7, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, row[1], "", 0, "R", false, 0, "")
		pdf.CellFormat(50, 7, row[2], "", 1, "R", false, 0, "")
	}

	pdf.Ln(6)
}

func serviceRows(summary *domain.ReportSummary) [][3]string {
	rows := make([][3]string, 0, len(summary.ByService))
	for _, row := range summary.ByService {
		rows = append(rows, [3]string{
			row.ServiceName,
			fmt.Sprintf("%d", row.OrderCount),
			row.Revenue.StringFixed(2),
		})
	}
	return rows
}

func carModelRows(summary *domain.ReportSummary) [][3]string {
	rows := make([][3]string, 0, len(summary.ByCarModel))
	for _, row := range summary.ByCarModel {
		rows = append(rows, [3]string{
			fmt.Sprintf("%s %s", row.Brand, row.ModelName),
			fmt.Sprintf("%d", row.OrderCount),
			"",
		})
	}
	return rows
}

func employeeRows(summary *domain.ReportSummary) [][3]string {
	rows := make([][3]string, 0, len(summary.ByEmployee))
	for _, row := range summary.ByEmployee {
		rows = append(rows, [3]string{
			row.EmployeeName,
			fmt.Sprintf("%d", row.TaskCount),
			fmt.Sprintf("%d", row.CompletedCount),
		})
	}
	return rows
}
