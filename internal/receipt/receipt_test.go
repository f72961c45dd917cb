package receipt

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
)

func sampleDetails() *domain.OrderDetails {
	return &domain.OrderDetails{
		Order: domain.Order{
			ID:              12,
			ClientID:        1,
			CarID:           10,
			AppointmentDate: time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
			StartTime:       "10:00",
			EndTime:         "11:30",
			CreatedAt:       time.Date(2026, 9, 1, 15, 4, 0, 0, time.UTC),
			Services: []domain.Service{
				{ID: 1, Name: "Oil change", Price: decimal.NewFromInt(3000), DurationMinutes: 60},
				{ID: 2, Name: "Brake inspection", Price: decimal.NewFromInt(1500), DurationMinutes: 30},
			},
		},
		ClientName:      "Ivan Petrov",
		ClientPhone:     "+79991234567",
		CarBrand:        "Skoda",
		CarModelName:    "Octavia",
		CarYear:         2020,
		CarVIN:          "TMBJJ7NE5L0123456",
		CarLicensePlate: "A123BC77",
	}
}

func sampleSummary() *domain.ReportSummary {
	return &domain.ReportSummary{
		TotalOrders:  5,
		TotalRevenue: decimal.NewFromInt(22500),
		ByService: []domain.ServiceRevenue{
			{ServiceName: "Oil change", OrderCount: 3, Revenue: decimal.NewFromInt(9000)},
		},
		ByCarModel: []domain.CarModelOrders{
			{Brand: "Skoda", ModelName: "Octavia", OrderCount: 4},
		},
		ByEmployee: []domain.EmployeeTaskStats{
			{EmployeeName: "Boris", TaskCount: 5, CompletedCount: 2},
		},
	}
}

func TestBuildOrderReceipt(t *testing.T) {
	data, err := BuildOrderReceipt(sampleDetails())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "expected PDF header")
}

func TestBuildReportPDF(t *testing.T) {
	data, err := BuildReportPDF(sampleSummary())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "expected PDF header")
}

func TestBuildReportXLSX(t *testing.T) {
	data, err := BuildReportXLSX(sampleSummary())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	// XLSX это ZIP-архив
	assert.True(t, bytes.HasPrefix(data, []byte("PK")), "expected ZIP header")
}
