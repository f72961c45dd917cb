package get_report

import (
	"net/url"
	"time"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
)

// ServiceRow выручка по услуге
type ServiceRow struct {
	ServiceName string `json:"serviceName"`
	OrderCount  int64  `json:"orderCount"`
	Revenue     string `json:"revenue"`
}

// CarModelRow заказы по модели
type CarModelRow struct {
	Brand      string `json:"brand"`
	ModelName  string `json:"modelName"`
	OrderCount int64  `json:"orderCount"`
}

// EmployeeRow статистика задач сотрудника
type EmployeeRow struct {
	EmployeeName   string `json:"employeeName"`
	TaskCount      int64  `json:"taskCount"`
	CompletedCount int64  `json:"completedCount"`
}

// ReportResponse HTTP response model
type ReportResponse struct {
	From *string `json:"from,omitempty"`
	To   *string `json:"to,omitempty"`

	TotalOrders  int64  `json:"totalOrders"`
	TotalRevenue string `json:"totalRevenue"`

	ByService  []ServiceRow  `json:"byService"`
	ByCarModel []CarModelRow `json:"byCarModel"`
	ByEmployee []EmployeeRow `json:"byEmployee"`
}

// FromDomainSummary конвертирует отчет в HTTP response
func FromDomainSummary(summary *domain.ReportSummary) *ReportResponse {
	resp := &ReportResponse{
		TotalOrders:  summary.TotalOrders,
		TotalRevenue: summary.TotalRevenue.StringFixed(2),
		ByService:    make([]ServiceRow, len(summary.ByService)),
		ByCarModel:   make([]CarModelRow, len(summary.ByCarModel)),
		ByEmployee:   make([]EmployeeRow, len(summary.ByEmployee)),
	}

	if summary.From != nil {
		from := summary.From.Format(domain.DateFormat)
		resp.From = &from
	}
	if summary.To != nil {
		to := summary.To.Format(domain.DateFormat)
		resp.To = &to
	}

	for i, row := range summary.ByService {
		resp.ByService[i] = ServiceRow{
			ServiceName: row.ServiceName,
			OrderCount:  row.OrderCount,
			Revenue:     row.Revenue.StringFixed(2),
		}
	}
	for i, row := range summary.ByCarModel {
		resp.ByCarModel[i] = CarModelRow{
			Brand:      row.Brand,
			ModelName:  row.ModelName,
			OrderCount: row.OrderCount,
		}
	}
	for i, row := range summary.ByEmployee {
		resp.ByEmployee[i] = EmployeeRow{
			EmployeeName:   row.EmployeeName,
			TaskCount:      row.TaskCount,
			CompletedCount: row.CompletedCount,
		}
	}

	return resp
}

// ParseFilter разбирает период отчета из query параметров
// Конец периода расширяется до конца дня, обе границы включительны
func ParseFilter(query url.Values) (domain.ReportFilter, error) {
	var filter domain.ReportFilter

	if from := query.Get("from"); from != "" {
		parsed, err := time.Parse(domain.DateFormat, from)
		if err != nil {
			return filter, err
		}
		filter.From = &parsed
	}

	if to := query.Get("to"); to != "" {
		parsed, err := time.Parse(domain.DateFormat, to)
		if err != nil {
			return filter, err
		}
		endOfDay := parsed.Add(24*time.Hour - time.Nanosecond)
		filter.To = &endOfDay
	}

	return filter, nil
}
