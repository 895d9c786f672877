package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestorpme/gestor_backend/internal/core/domain"
	portsrepo "github.com/gestorpme/gestor_backend/internal/core/ports/repositories"
	portssvc "github.com/gestorpme/gestor_backend/internal/core/ports/services"
	"github.com/gestorpme/gestor_backend/internal/report"
	"github.com/gestorpme/gestor_backend/internal/utils"
)

type reportService struct {
	BaseService
	ledgerRepo     portsrepo.LedgerRepository
	payableRepo    portsrepo.BillRepository
	receivableRepo portsrepo.BillRepository
	saleRepo       portsrepo.SaleRepository
	inventoryRepo  portsrepo.InventoryRepository
	renderer       *report.Renderer
}

var _ portssvc.ReportSvcFacade = (*reportService)(nil)

// NewReportService creates a new instance of the report service.
func NewReportService(
	ledgerRepo portsrepo.LedgerRepository,
	payableRepo portsrepo.BillRepository,
	receivableRepo portsrepo.BillRepository,
	saleRepo portsrepo.SaleRepository,
	inventoryRepo portsrepo.InventoryRepository,
	renderer *report.Renderer,
) portssvc.ReportSvcFacade {
	return &reportService{
		ledgerRepo:     ledgerRepo,
		payableRepo:    payableRepo,
		receivableRepo: receivableRepo,
		saleRepo:       saleRepo,
		inventoryRepo:  inventoryRepo,
		renderer:       renderer,
	}
}

func (s *reportService) Render(w io.Writer, doc *report.Document) error {
	return s.renderer.Render(w, doc)
}

func (s *reportService) LedgerReport(ctx context.Context) (*report.Document, error) {
	entries, err := s.ledgerRepo.FindEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to load entries for ledger report")
		return nil, err
	}
	summary := AggregateEntries(entries)

	doc := &report.Document{
		Title:    "CASH FLOW REPORT",
		FileStem: "ledger-report",
		Summary: []report.SummaryField{
			{Label: "Total Credits", Value: utils.FormatMoney(summary.TotalCredit), Tone: report.ToneSuccess},
			{Label: "Total Debits", Value: utils.FormatMoney(summary.TotalDebit), Tone: report.ToneDanger},
			{Label: "Balance", Value: utils.FormatMoney(summary.Balance), Tone: balanceTone(summary.Balance)},
		},
		Columns: []report.Column{
			{Label: "Date", X: 45, Width: 100, Align: report.AlignLeft},
			{Label: "Kind", X: 155, Width: 70, Align: report.AlignCenter},
			{Label: "Description", X: 235, Width: 200, Align: report.AlignLeft},
			{Label: "Amount", X: 445, Width: 100, Align: report.AlignRight},
		},
		EmptyText: "No ledger entries found.",
	}
	for _, e := range entries {
		// Same rule as the aggregator: anything that is not a credit
		// weighs on the debit side.
		tone := report.ToneDanger
		if e.Kind == domain.Credit {
			tone = report.ToneSuccess
		}
		doc.Rows = append(doc.Rows, report.Row{
			{Text: utils.FormatReportDateTime(e.Timestamp)},
			{Text: strings.ToUpper(string(e.Kind)), Tone: tone},
			{Text: e.Description},
			{Text: utils.FormatMoney(e.Amount), Tone: tone},
		})
	}
	return doc, nil
}

func (s *reportService) PayablesReport(ctx context.Context) (*report.Document, error) {
	bills, err := s.payableRepo.FindBills(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to load payables for report")
		return nil, err
	}
	return s.billReport(bills, billReportSpec{
		title:      "ACCOUNTS PAYABLE REPORT",
		fileStem:   "payables-report",
		totalLabel: "Total Payable",
		amountTone: report.ToneDanger,
		emptyText:  "No payables found.",
	}), nil
}

func (s *reportService) ReceivablesReport(ctx context.Context) (*report.Document, error) {
	bills, err := s.receivableRepo.FindBills(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to load receivables for report")
		return nil, err
	}
	return s.billReport(bills, billReportSpec{
		title:      "ACCOUNTS RECEIVABLE REPORT",
		fileStem:   "receivables-report",
		totalLabel: "Total Receivable",
		amountTone: report.ToneSuccess,
		emptyText:  "No receivables found.",
	}), nil
}

type billReportSpec struct {
	title      string
	fileStem   string
	totalLabel string
	amountTone report.Tone
	emptyText  string
}

func (s *reportService) billReport(bills []domain.Bill, spec billReportSpec) *report.Document {
	total := decimal.Zero
	pending := 0
	for _, b := range bills {
		total = total.Add(b.Amount)
		if b.Status != domain.StatusSettled {
			pending++
		}
	}

	doc := &report.Document{
		Title:    spec.title,
		FileStem: spec.fileStem,
		Summary: []report.SummaryField{
			{Label: spec.totalLabel, Value: utils.FormatMoney(total), Tone: spec.amountTone},
			{Label: "Pending", Value: fmt.Sprintf("%d", pending), Tone: report.ToneNeutral},
			{Label: "Total Bills", Value: fmt.Sprintf("%d", len(bills)), Tone: report.ToneNeutral},
		},
		Columns: []report.Column{
			{Label: "Description", X: 45, Width: 200, Align: report.AlignLeft},
			{Label: "Amount", X: 255, Width: 100, Align: report.AlignRight},
			{Label: "Due Date", X: 365, Width: 100, Align: report.AlignCenter},
			{Label: "Status", X: 475, Width: 70, Align: report.AlignCenter},
		},
		EmptyText: spec.emptyText,
	}
	for _, b := range bills {
		statusTone := report.ToneDanger
		if b.Status == domain.StatusSettled {
			statusTone = report.ToneSuccess
		}
		doc.Rows = append(doc.Rows, report.Row{
			{Text: b.Description},
			{Text: utils.FormatMoney(b.Amount), Tone: spec.amountTone},
			{Text: utils.FormatReportDate(b.DueDate)},
			{Text: strings.ToUpper(string(b.Status)), Tone: statusTone},
		})
	}
	return doc
}

func (s *reportService) SalesReport(ctx context.Context) (*report.Document, error) {
	sales, err := s.saleRepo.FindSales(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to load sales for report")
		return nil, err
	}

	total := decimal.Zero
	dayStart, dayEnd := utils.LocalDayBounds(time.Now())
	today := 0
	for _, sale := range sales {
		total = total.Add(sale.Amount)
		if !sale.SoldAt.Before(dayStart) && sale.SoldAt.Before(dayEnd) {
			today++
		}
	}

	doc := &report.Document{
		Title:    "SALES REPORT",
		FileStem: "sales-report",
		Summary: []report.SummaryField{
			{Label: "Total Sales", Value: utils.FormatMoney(total), Tone: report.ToneSuccess},
			{Label: "Sales Today", Value: fmt.Sprintf("%d", today), Tone: report.ToneNeutral},
			{Label: "Total Count", Value: fmt.Sprintf("%d", len(sales)), Tone: report.ToneNeutral},
		},
		Columns: []report.Column{
			{Label: "Customer", X: 45, Width: 120, Align: report.AlignLeft},
			{Label: "Product", X: 175, Width: 120, Align: report.AlignLeft},
			{Label: "Amount", X: 305, Width: 80, Align: report.AlignRight},
			{Label: "Date", X: 395, Width: 80, Align: report.AlignCenter},
			{Label: "Invoice", X: 485, Width: 70, Align: report.AlignCenter},
		},
		EmptyText: "No sales found.",
	}
	for _, sale := range sales {
		doc.Rows = append(doc.Rows, report.Row{
			{Text: sale.Customer},
			{Text: sale.Product},
			{Text: utils.FormatMoney(sale.Amount), Tone: report.ToneSuccess},
			{Text: utils.FormatReportDate(sale.SoldAt)},
			{Text: sale.InvoiceNumber},
		})
	}
	return doc, nil
}

func (s *reportService) InventoryReport(ctx context.Context) (*report.Document, error) {
	lots, err := s.inventoryRepo.FindLots(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to load inventory for report")
		return nil, err
	}

	// Group lots by product, preserving first-seen order.
	type productTotals struct {
		quantity int64
		total    decimal.Decimal
	}
	order := make([]string, 0)
	byProduct := make(map[string]*productTotals)
	totalItems := int64(0)
	totalValue := decimal.Zero
	for _, lot := range lots {
		pt, ok := byProduct[lot.Product]
		if !ok {
			pt = &productTotals{total: decimal.Zero}
			byProduct[lot.Product] = pt
			order = append(order, lot.Product)
		}
		pt.quantity += lot.Quantity
		pt.total = pt.total.Add(lot.Total)
		totalItems += lot.Quantity
		totalValue = totalValue.Add(lot.Total)
	}

	doc := &report.Document{
		Title:    "INVENTORY REPORT",
		FileStem: "inventory-report",
		Summary: []report.SummaryField{
			{Label: "Total Items", Value: fmt.Sprintf("%d", totalItems), Tone: report.ToneNeutral},
			{Label: "Products", Value: fmt.Sprintf("%d", len(order)), Tone: report.ToneNeutral},
			{Label: "Total Value", Value: utils.FormatMoney(totalValue), Tone: report.ToneSuccess},
		},
		Columns: []report.Column{
			{Label: "Product", X: 45, Width: 250, Align: report.AlignLeft},
			{Label: "Quantity", X: 305, Width: 100, Align: report.AlignRight},
			{Label: "Total", X: 415, Width: 140, Align: report.AlignRight},
		},
		EmptyText: "No inventory lots found.",
	}
	for _, product := range order {
		pt := byProduct[product]
		doc.Rows = append(doc.Rows, report.Row{
			{Text: product},
			{Text: fmt.Sprintf("%d", pt.quantity)},
			{Text: utils.FormatMoney(pt.total)},
		})
	}
	return doc, nil
}

func balanceTone(balance decimal.Decimal) report.Tone {
	if balance.IsNegative() {
		return report.ToneDanger
	}
	return report.ToneSuccess
}
