package report

import (
	"bytes"
	"encoding/csv"
	"strconv"

	log "github.com/sirupsen/logrus"
)

type ReportRenderer interface {
	RenderReport(report MonthlyReport) (string, error)
}

type CsvReportRendererImpl struct {
}

func NewCsvReportRenderer() *CsvReportRendererImpl {
	return &CsvReportRendererImpl{}
}

// RenderReport renders the monthly report as two CSV sections: category
// spendings with budget progress, then the trailing monthly series.
func (t *CsvReportRendererImpl) RenderReport(report MonthlyReport) (string, error) {
	progressByCategory := make(map[string]BudgetProgress, len(report.Progress))
	for _, p := range report.Progress {
		progressByCategory[p.Category] = p
	}

	data := make([][]string, 0, len(report.Categories)+len(report.Monthly)+3)
	data = append(data, []string{"Category", "Spent", "Budget used %", "Band"})
	for _, spending := range report.Categories {
		p := progressByCategory[spending.Category]
		data = append(data, []string{
			spending.Category,
			spending.Amount.StringFixed(2),
			strconv.FormatFloat(p.Ratio, 'f', 1, 64),
			string(p.Band),
		})
	}
	data = append(data, []string{})
	data = append(data, []string{"Month", "Spent"})
	for _, spending := range report.Monthly {
		data = append(data, []string{
			spending.Month.Format("2006-01"),
			spending.Amount.StringFixed(2),
		})
	}

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		if len(row) == 0 {
			// csv.Writer rejects empty records; write the separator directly.
			b.WriteString("\n")
			continue
		}
		if err := writer.Write(row); err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
		writer.Flush()
	}

	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}
