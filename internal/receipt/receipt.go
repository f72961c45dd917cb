package receipt

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
)

// BuildOrderReceipt формирует PDF квитанцию заказа.
// Текст квитанции на английском: встроенные шрифты gofpdf не содержат кириллицу
func BuildOrderReceipt(details *domain.OrderDetails) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Order #%d", details.ID), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Car Service Receipt")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)
	writeLine(pdf, "Order", fmt.Sprintf("#%d", details.ID))
	writeLine(pdf, "Date", details.AppointmentDate.Format(domain.DateFormat))
	writeLine(pdf, "Time", fmt.Sprintf("%s - %s", details.StartTime, details.EndTime))
	pdf.Ln(4)

	writeLine(pdf, "Client", details.ClientName)
	writeLine(pdf, "Phone", details.ClientPhone)
	pdf.Ln(4)

	writeLine(pdf, "Car", fmt.Sprintf("%s %s (%d)", details.CarBrand, details.CarModelName, details.CarYear))
	writeLine(pdf, "VIN", details.CarVIN)
	writeLine(pdf, "Plate", details.CarLicensePlate)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(110, 8, "Service", "B", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Duration", "B", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, "Price", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, service := range details.Services {
		pdf.CellFormat(110, 8, service.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("%d min", service.DurationMinutes), "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, service.Price.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(150, 8, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, details.Total().StringFixed(2), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func writeLine(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(30, 7, label+":", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
}
