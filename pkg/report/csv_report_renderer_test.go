package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/DarkMythic1995/personal-finance-tracking-app/pkg/chart"
)

func TestCsvReportRendererImpl_RenderReport(t1 *testing.T) {
	january := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		report MonthlyReport
		want   string
	}{
		{
			name: "RenderReport with valid data",
			report: MonthlyReport{
				ReferenceMonth: january,
				Categories: []CategorySpending{
					{Category: "Groceries", Amount: decimal.NewFromInt(150)},
					{Category: "Rent", Amount: decimal.NewFromInt(950)},
				},
				Monthly: []MonthlySpending{
					{Month: january.AddDate(0, -1, 0), Amount: decimal.NewFromInt(400)},
					{Month: january, Amount: decimal.NewFromInt(1100)},
				},
				Progress: []BudgetProgress{
					{Category: "Groceries", Ratio: 37.5, Band: chart.BandHealthy},
					{Category: "Rent", Ratio: 95, Band: chart.BandWarning},
				},
			},
			want: "Category,Spent,Budget used %,Band\n" +
				"Groceries,150.00,37.5,healthy\n" +
				"Rent,950.00,95.0,warning\n" +
				"\n" +
				"Month,Spent\n" +
				"2023-12,400.00\n" +
				"2024-01,1100.00\n",
		},
		{
			name: "RenderReport with no data",
			report: MonthlyReport{
				ReferenceMonth: january,
			},
			want: "Category,Spent,Budget used %,Band\n" +
				"\n" +
				"Month,Spent\n",
		},
	}
	for _, tt := range tests {
		t1.Run(tt.name, func(t1 *testing.T) {
			renderer := NewCsvReportRenderer()
			got, err := renderer.RenderReport(tt.report)
			if err != nil {
				t1.Fatalf("RenderReport() error = %v", err)
			}
			if got != tt.want {
				t1.Errorf("RenderReport() = %q, want %q", got, tt.want)
			}
		})
	}
}
