package reports

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
	"github.com/KirillBalashovIS122/SkodaExpert/pkg/ptr"
)

type fakeReportsRepo struct {
	totalOrders  int64
	totalRevenue decimal.Decimal
	byService    []domain.ServiceRevenue
	byCarModel   []domain.CarModelOrders
	byEmployee   []domain.EmployeeTaskStats
}

func (f *fakeReportsRepo) Totals(_ context.Context, _ domain.ReportFilter) (int64, decimal.Decimal, error) {
	return f.totalOrders, f.totalRevenue, nil
}

func (f *fakeReportsRepo) RevenueByService(_ context.Context, _ domain.ReportFilter) ([]domain.ServiceRevenue, error) {
	return f.byService, nil
}

func (f *fakeReportsRepo) OrdersByCarModel(_ context.Context, _ domain.ReportFilter) ([]domain.CarModelOrders, error) {
	return f.byCarModel, nil
}

func (f *fakeReportsRepo) TaskStatsByEmployee(_ context.Context, _ domain.ReportFilter) ([]domain.EmployeeTaskStats, error) {
	return f.byEmployee, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestSummary(t *testing.T) {
	repo := &fakeReportsRepo{
		totalOrders:  5,
		totalRevenue: decimal.NewFromInt(15000),
		byService: []domain.ServiceRevenue{
			{ServiceName: "Oil change", OrderCount: 3, Revenue: decimal.NewFromInt(9000)},
		},
		byCarModel: []domain.CarModelOrders{
			{Brand: "Skoda", ModelName: "Octavia", OrderCount: 4},
		},
		byEmployee: []domain.EmployeeTaskStats{
			{EmployeeName: "Boris", TaskCount: 5, CompletedCount: 2},
		},
	}
	svc := NewService(repo, nopLogger{})
	manager := domain.Principal{ID: 1, Role: domain.RoleManager}

	summary, err := svc.Summary(context.Background(), manager, domain.ReportFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(5), summary.TotalOrders)
	assert.True(t, decimal.NewFromInt(15000).Equal(summary.TotalRevenue))
	assert.Len(t, summary.ByService, 1)
	assert.Len(t, summary.ByCarModel, 1)
	assert.Len(t, summary.ByEmployee, 1)
}

func TestSummary_AccessDenied(t *testing.T) {
	svc := NewService(&fakeReportsRepo{}, nopLogger{})

	for _, role := range []domain.Role{domain.RoleClient, domain.RoleMechanic} {
		_, err := svc.Summary(context.Background(), domain.Principal{ID: 2, Role: role}, domain.ReportFilter{})
		assert.ErrorIs(t, err, ErrAccessDenied, "role %s", role)
	}
}

func TestSummary_InvalidPeriod(t *testing.T) {
	svc := NewService(&fakeReportsRepo{}, nopLogger{})
	manager := domain.Principal{ID: 1, Role: domain.RoleManager}

	filter := domain.ReportFilter{
		From: ptr.Ptr(time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)),
		To:   ptr.Ptr(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)),
	}

	_, err := svc.Summary(context.Background(), manager, filter)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}
