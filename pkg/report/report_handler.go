package report

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/DarkMythic1995/personal-finance-tracking-app/internal/rest"
	"github.com/DarkMythic1995/personal-finance-tracking-app/internal/utils"
	"github.com/DarkMythic1995/personal-finance-tracking-app/pkg/chart"
)

type CategorySpendingDTO struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

type MonthlySpendingDTO struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

type BudgetProgressDTO struct {
	Category string      `json:"category"`
	Ratio    float64     `json:"ratio"`
	Band     chart.Band  `json:"band"`
	Color    chart.Color `json:"color"`
}

type MonthlyReportDTO struct {
	ReferenceMonth string                `json:"referenceMonth"`
	Categories     []CategorySpendingDTO `json:"categories"`
	Monthly        []MonthlySpendingDTO  `json:"monthly"`
	Progress       []BudgetProgressDTO   `json:"progress"`
}

type BarGeometryDTO struct {
	X      float64     `json:"x"`
	Y      float64     `json:"y"`
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Label  string      `json:"label"`
	Color  chart.Color `json:"color"`
}

type PointDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type LabelPositionDTO struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Text     string  `json:"text"`
	Rotation float64 `json:"rotation"`
}

type ChartsDTO struct {
	ReferenceMonth string             `json:"referenceMonth"`
	CategoryBars   []BarGeometryDTO   `json:"categoryBars"`
	MonthlyLine    []PointDTO         `json:"monthlyLine"`
	MonthlyLabels  []LabelPositionDTO `json:"monthlyLabels"`
}

type ReportHandler struct {
	reportService ReportService
	csvRenderer   ReportRenderer
	clock         utils.Clock
}

func NewReportHandler(reportService ReportService, csvRenderer ReportRenderer, clock utils.Clock) *ReportHandler {
	return &ReportHandler{reportService, csvRenderer, clock}
}

// GetSummary serves the monthly analytics snapshot as JSON, or as CSV when
// the client asks for text/csv. Without a month parameter the current
// calendar month is reported.
func (handler *ReportHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	referenceMonth, ok := handler.referenceMonth(w, r)
	if !ok {
		return
	}

	report, err := handler.reportService.MonthlyReport(r.Context(), referenceMonth)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if r.Header.Get("Accept") == "text/csv" {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		csv, err := handler.csvRenderer.RenderReport(report)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if _, err := w.Write([]byte(csv)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(convertToJsonResponse(&report)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetCharts runs the layout engine over the monthly report and returns
// renderer-agnostic drawing geometry for the requested canvas size.
func (handler *ReportHandler) GetCharts(w http.ResponseWriter, r *http.Request) {
	referenceMonth, ok := handler.referenceMonth(w, r)
	if !ok {
		return
	}
	width, err := parseCanvasDimension(r.URL.Query().Get("width"))
	if err != nil {
		writeBadRequest(w, "Invalid width", err.Error())
		return
	}
	height, err := parseCanvasDimension(r.URL.Query().Get("height"))
	if err != nil {
		writeBadRequest(w, "Invalid height", err.Error())
		return
	}

	report, err := handler.reportService.MonthlyReport(r.Context(), referenceMonth)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	categoryValues := make([]chart.DataPoint, 0, len(report.Categories))
	for _, spending := range report.Categories {
		categoryValues = append(categoryValues, chart.DataPoint{
			Label:  spending.Category,
			Amount: spending.Amount,
		})
	}
	monthlyValues := make([]chart.DataPoint, 0, len(report.Monthly))
	for _, spending := range report.Monthly {
		monthlyValues = append(monthlyValues, chart.DataPoint{
			Label:  spending.Month.Format("Jan 2006"),
			Amount: spending.Amount,
		})
	}

	bars := chart.LayoutBars(categoryValues, width, height)
	points, labels := chart.LayoutLine(monthlyValues, width, height)

	barsDTO := make([]BarGeometryDTO, 0, len(bars))
	for _, bar := range bars {
		barsDTO = append(barsDTO, BarGeometryDTO{
			X:      bar.X,
			Y:      bar.Y,
			Width:  bar.Width,
			Height: bar.Height,
			Label:  bar.Label,
			Color:  chart.PaletteColor(bar.ColorIndex),
		})
	}
	pointsDTO := make([]PointDTO, 0, len(points))
	for _, point := range points {
		pointsDTO = append(pointsDTO, PointDTO{X: point.X, Y: point.Y})
	}
	labelsDTO := make([]LabelPositionDTO, 0, len(labels))
	for _, label := range labels {
		labelsDTO = append(labelsDTO, LabelPositionDTO{
			X:        label.X,
			Y:        label.Y,
			Text:     label.Text,
			Rotation: label.Rotation,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ChartsDTO{
		ReferenceMonth: report.ReferenceMonth.Format("2006-01"),
		CategoryBars:   barsDTO,
		MonthlyLine:    pointsDTO,
		MonthlyLabels:  labelsDTO,
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *ReportHandler) referenceMonth(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	monthString := r.URL.Query().Get("month")
	if monthString == "" {
		return handler.clock.Now(), true
	}
	month, err := time.Parse("2006-01", monthString)
	if err != nil {
		writeBadRequest(w, "Invalid month format", "month must be in YYYY-MM format")
		return time.Time{}, false
	}
	return month, true
}

func parseCanvasDimension(value string) (float64, error) {
	dimension, err := strconv.ParseFloat(value, 64)
	if err != nil || dimension <= 0 {
		return 0, &canvasDimensionError{value}
	}
	return dimension, nil
}

type canvasDimensionError struct {
	value string
}

func (e *canvasDimensionError) Error() string {
	return "canvas dimension must be a positive number, got " + strconv.Quote(e.value)
}

func writeBadRequest(w http.ResponseWriter, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(rest.ErrorResponse{
		Error:   message,
		Details: details,
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func convertToJsonResponse(report *MonthlyReport) *MonthlyReportDTO {
	categories := make([]CategorySpendingDTO, 0, len(report.Categories))
	for _, spending := range report.Categories {
		categories = append(categories, CategorySpendingDTO{
			Category: spending.Category,
			Amount:   spending.Amount,
		})
	}
	monthly := make([]MonthlySpendingDTO, 0, len(report.Monthly))
	for _, spending := range report.Monthly {
		monthly = append(monthly, MonthlySpendingDTO{
			Month:  spending.Month.Format("2006-01"),
			Amount: spending.Amount,
		})
	}
	progress := make([]BudgetProgressDTO, 0, len(report.Progress))
	for _, p := range report.Progress {
		progress = append(progress, BudgetProgressDTO{
			Category: p.Category,
			Ratio:    p.Ratio,
			Band:     p.Band,
			Color:    chart.BandColor(p.Ratio),
		})
	}
	return &MonthlyReportDTO{
		ReferenceMonth: report.ReferenceMonth.Format("2006-01"),
		Categories:     categories,
		Monthly:        monthly,
		Progress:       progress,
	}
}
