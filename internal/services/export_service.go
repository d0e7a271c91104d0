package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"dashboard/internal/domain/models"
	"dashboard/internal/query"
	"dashboard/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ExportService renders PDF reports for the invoice ledger and the fund monitor.
type ExportService struct {
	Invoices  InvoiceService
	Funds     FundService
	RequestID string
}

// InvoiceReport renders every invoice matching criteria, not just one page.
func (s ExportService) InvoiceReport(ctx context.Context, criteria query.Criteria) ([]byte, string, error) {
	items, sums, err := s.Invoices.Filtered(ctx, criteria)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "export", "invoice_report", fmt.Sprintf("rows=%d", len(items)))
	return buildInvoiceReportPDF(items, sums, criteria)
}

func (s ExportService) FundReport(ctx context.Context) ([]byte, string, error) {
	ov, err := s.Funds.Overview(ctx)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "export", "fund_report", fmt.Sprintf("funds=%d", len(ov.Funds)))
	return buildFundReportPDF(ov)
}

func newReport(title string) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, strings.ToUpper(title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Generated: "+utils.FormatDateTime(utils.NowUTC())+" UTC")
	pdf.Ln(10)
	return pdf
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildInvoiceReportPDF(items []models.Invoice, sums map[string]float64, criteria query.Criteria) ([]byte, string, error) {
	pdf := newReport("Invoice report")

	if filters := describeCriteria(criteria); filters != "" {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 5, "Filters: "+filters, "", "", false)
		pdf.Ln(2)
	}

	widths := []float64{22, 24, 18, 70, 24, 32}
	headers := []string{"ID", "Date", "Type", "Description", "Category", "Amount"}
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, inv := range items {
		desc := cellText(inv.Description, 42)
		amount := utils.FormatUSD(inv.Amount)
		if inv.Type == "outcome" {
			amount = "-" + amount
		}
		cells := []string{inv.ID, inv.Date, inv.Type, utils.Fallback(desc, "-"), inv.Category, amount}
		for i, c := range cells {
			align := "L"
			if i == len(cells)-1 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 6, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 11)
	for _, line := range []string{
		fmt.Sprintf("Invoices      : %d", int(sums["totalInvoices"])),
		fmt.Sprintf("Total income  : %s", utils.FormatUSD(sums["totalIncome"])),
		fmt.Sprintf("Total outcome : %s", utils.FormatUSD(sums["totalOutcome"])),
		fmt.Sprintf("Net balance   : %s", utils.FormatUSD(sums["netBalance"])),
	} {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	data, err := output(pdf)
	if err != nil {
		return nil, "", err
	}
	return data, fmt.Sprintf("INVOICES_%s.pdf", utils.FormatDate(utils.NowUTC())), nil
}

func buildFundReportPDF(ov FundOverview) ([]byte, string, error) {
	pdf := newReport("Fund report")

	pdf.SetFont("Helvetica", "", 12)
	for _, line := range []string{
		fmt.Sprintf("Total balance : %s", utils.FormatUSD(ov.TotalBalance)),
		fmt.Sprintf("Monthly target: %s", utils.FormatUSD(ov.TotalTarget)),
		fmt.Sprintf("This month    : %s (%.0f%%)", utils.FormatUSD(ov.TotalProgress), ov.ProgressPercent),
		fmt.Sprintf("Company fund  : %s", utils.FormatUSD(ov.CompanyBalance)),
		fmt.Sprintf("Additional    : %s", utils.FormatUSD(ov.AdditionalBalance)),
	} {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	widths := []float64{45, 30, 30, 30, 20, 25}
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range []string{"Fund", "Balance", "Target", "This month", "%", "Health"} {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)
	for _, f := range ov.Funds {
		cells := []string{
			f.Name,
			utils.FormatUSD(f.Balance),
			utils.FormatUSD(f.MonthlyTarget),
			utils.FormatUSD(f.CurrentMonth),
			fmt.Sprintf("%.0f", f.PercentOfTarget),
			f.Health,
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(ov.UserTargets) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "User targets")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		for _, u := range ov.UserTargets {
			pdf.Cell(0, 6, fmt.Sprintf("%s (%s): %s / %s, %.0f%%, tasks %d/%d",
				u.Name, u.Role,
				utils.FormatUSD(u.CurrentProgress), utils.FormatUSD(u.MonthlyTarget),
				u.ProgressPercent, u.Tasks.Completed, u.Tasks.Total))
			pdf.Ln(6)
		}
	}

	data, err := output(pdf)
	if err != nil {
		return nil, "", err
	}
	return data, fmt.Sprintf("FUNDS_%s.pdf", utils.FormatDate(utils.NowUTC())), nil
}

// cellText flattens s onto one line and cuts it to limit bytes.
func cellText(s string, limit int) string {
	s = utils.NormalizeSpace(s)
	if len(s) > limit {
		s = s[:limit] + "..."
	}
	return s
}

func describeCriteria(c query.Criteria) string {
	parts := []string{}
	for _, k := range []string{"search", "type", "category", "status", "startDate", "endDate"} {
		if v := c.Get(k); v != "" {
			parts = append(parts, k+"="+v)
		}
	}
	return strings.Join(parts, ", ")
}
