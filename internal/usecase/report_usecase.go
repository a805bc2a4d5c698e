package usecase

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"clinic-booking-backend/internal/domain"

	"github.com/xuri/excelize/v2"
)

// ReportUsecase summarizes audited submit cycles. Only outcome counts are
// reported; the audit table holds no patient data to begin with.
type ReportUsecase interface {
	OutcomeReport(ctx context.Context, since time.Time) ([]byte, string, error)
}

var outcomeLabels = []struct {
	outcome domain.SubmissionOutcome
	label   string
}{
	{domain.OutcomeSuccess, "Enviada a WhatsApp"},
	{domain.OutcomeValidationFailed, "Campos inválidos"},
	{domain.OutcomeWeekendRejected, "Fin de semana"},
	{domain.OutcomeHandoffError, "Error al generar enlace"},
}

type reportUsecase struct {
	repo domain.SubmissionEventRepository
	now  func() time.Time
}

func NewReportUsecase(repo domain.SubmissionEventRepository, now func() time.Time) ReportUsecase {
	if now == nil {
		now = time.Now
	}
	return &reportUsecase{repo: repo, now: now}
}

// OutcomeReport builds an Excel workbook with one row per outcome.
func (u *reportUsecase) OutcomeReport(ctx context.Context, since time.Time) ([]byte, string, error) {
	counts, err := u.repo.CountByOutcomeSince(ctx, since)
	if err != nil {
		return nil, "", err
	}

	total := 0
	for _, n := range counts {
		total += n
	}

	f := excelize.NewFile()
	defer f.Close()
	sheetName := "Resultados"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{"RESULTADO", "DESCRIPCIÓN", "SOLICITUDES", "PORCENTAJE"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, h)
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#0F5E5A"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for i, row := range outcomeLabels {
		r := i + 2
		n := counts[row.outcome]
		share := 0.0
		if total > 0 {
			share = float64(n) / float64(total)
		}
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", r), string(row.outcome))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", r), row.label)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", r), n)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", r), share)
	}

	totalRow := len(outcomeLabels) + 2
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", totalRow), "TOTAL")
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", totalRow), total)
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", totalRow+2), "Desde")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", totalRow+2), since.Format(time.RFC3339))

	percent, _ := f.NewStyle(&excelize.Style{NumFmt: 10})
	f.SetCellStyle(sheetName, "D2", fmt.Sprintf("D%d", totalRow-1), percent)
	f.SetColWidth(sheetName, "A", "D", 24)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	filename := fmt.Sprintf("submission_outcomes_%s.xlsx", u.now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}
