// Package pdf renders the printable invoice and payment-receipt documents
// with the station letterhead.
//
// Invoice page layout (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Station name + address  │  Invoice N° + date        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BILL TO: client name + contact                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Description | Dur | Daily | Days | Slots | Rate | ₦  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: Subtotal / VAT / TOTAL  +  amount in words          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: bank details + payment terms                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	mentity "github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appbilling "github.com/emiratefm/airtime-billing/internal/application/billing"
	"github.com/emiratefm/airtime-billing/internal/domain/entity"
	"github.com/emiratefm/airtime-billing/pkg/format"
)

// ── Color palette ─────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var (
	_ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)
	_ appbilling.ReceiptPDFGenerator = (*MarotoPDFGenerator)(nil)
)

// MarotoPDFGenerator renders invoices and receipts with Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator builds the generator.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF renders the invoice and returns its bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	inv *entity.Invoice,
	station *entity.Station,
	client *entity.Client,
) ([]byte, error) {
	m := maroto.New(docConfig(documentTitle(inv.InvoiceType), station.Name))

	m.AddRows(invoiceHeaderRow(inv, station))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(billToRow(client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(serviceTableHeaderRow())
	for _, r := range serviceTableRows(inv.Services) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(invoiceTotalsRow(inv))
	m.AddRows(amountInWordsRow(inv.AmountInWords))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range invoiceFooterRows(inv, station) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate invoice: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerateReceiptPDF renders the payment receipt and returns its bytes.
func (g *MarotoPDFGenerator) GenerateReceiptPDF(
	_ context.Context,
	payment *entity.Payment,
	inv *entity.Invoice,
	station *entity.Station,
	client *entity.Client,
) ([]byte, error) {
	m := maroto.New(docConfig("Payment Receipt", station.Name))

	m.AddRows(receiptHeaderRow(payment, station))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(labeledRow("Received From", client.CompanyName))
	m.AddRows(labeledRow("Against Invoice", inv.InvoiceNumber))
	m.AddRows(labeledRow("Amount", format.Currency(payment.AmountPaid)))
	m.AddRows(labeledRow("Payment Method", payment.PaymentMethod))
	if payment.TransactionRef != "" {
		m.AddRows(labeledRow("Transaction Ref", payment.TransactionRef))
	}
	m.AddRows(labeledRow("Balance Before", format.Currency(payment.InvoiceBalanceBefore)))
	m.AddRows(labeledRow("Balance After", format.Currency(payment.InvoiceBalanceAfter)))

	receivedBy := payment.ReceivedBy
	if payment.Position != "" {
		receivedBy += " (" + payment.Position + ")"
	}
	m.AddRows(labeledRow("Received By", receivedBy))

	m.AddRows(line.NewRow(3))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New("Thank you for your business. This receipt was generated electronically and is valid without a signature.",
			props.Text{Size: 7, Color: colorGray, Top: 2}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate receipt: %w", err)
	}
	return doc.GetBytes(), nil
}

func docConfig(title, author string) *mentity.Config {
	return config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(author, true).
		Build()
}

func documentTitle(invoiceType string) string {
	if invoiceType == entity.TypeAdvanceBill {
		return "Advance Bill"
	}
	return "Proforma Invoice"
}

// ── Sections ──────────────────────────────────────────────────────────────────

// invoiceHeaderRow: station letterhead (left), document type + number + date (right).
func invoiceHeaderRow(inv *entity.Invoice, station *entity.Station) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(station.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(station.Address, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Tel: %s   |   Email: %s",
				nonEmpty(format.Phone(station.Phone), "—"),
				nonEmpty(station.Email, "—"),
			), props.Text{Size: 8, Top: 14, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(strings.ToUpper(documentTitle(inv.InvoiceType)), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(inv.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+inv.InvoiceDate.Format(format.DateDisplay), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// billToRow: the advertiser being billed.
func billToRow(client *entity.Client) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(client.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("%s   |   Tel: %s   |   Email: %s",
				nonEmpty(client.Address, "—"),
				nonEmpty(format.Phone(client.Phone), "—"),
				nonEmpty(client.Email, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// serviceTableHeaderRow: header of the service-line table.
func serviceTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Description", 4, align.Left),
		h("Dur.", 1, align.Center),
		h("Daily", 1, align.Center),
		h("Days", 1, align.Center),
		h("Slots", 1, align.Center),
		h("Rate/Slot", 2, align.Right),
		h("Amount", 2, align.Right),
	)
}

// serviceTableRows: one row per service line.
func serviceTableRows(lines []entity.ServiceLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(
				l.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				nonEmpty(l.Duration, "—"),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				format.Number(int64(l.DailySlots)),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				format.Number(int64(l.CampaignDays)),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				format.Number(int64(l.TotalSlots)),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				format.Currency(l.RatePerSlot),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				format.Currency(l.LineTotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// invoiceTotalsRow: totals block aligned to the right.
func invoiceTotalsRow(inv *entity.Invoice) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(4),
		col.New(4).Add(
			label("Subtotal:"),
			label(fmt.Sprintf("VAT (%s%%):", inv.VATRate.String())),
			grandLabel("TOTAL:"),
		),
		col.New(4).Add(
			value(format.Currency(inv.Subtotal)),
			value(format.Currency(inv.VATAmount)),
			grandValue(format.Currency(inv.TotalAmount)),
		),
	)
}

// amountInWordsRow: the total spelled out.
func amountInWordsRow(words string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("Amount in words: "+words, props.Text{
			Size: 8, Style: fontstyle.Italic, Color: colorGray, Top: 2,
		}),
	))
}

// invoiceFooterRows: bank details for transfers + payment terms.
func invoiceFooterRows(inv *entity.Invoice, station *entity.Station) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("PAYMENT DETAILS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	if station.BankName != "" {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Bank: %s   |   Account Name: %s   |   Account N°: %s",
				station.BankName,
				nonEmpty(station.AccountName, station.Name),
				nonEmpty(station.AccountNumber, "—"),
			), props.Text{Size: 8, Top: 1, Color: colorGray}),
		)))
	}
	if inv.PaymentTerms != "" {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("Terms: "+inv.PaymentTerms, props.Text{Size: 8, Top: 1, Color: colorGray}),
		)))
	}
	if inv.Notes != "" {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("Notes: "+inv.Notes, props.Text{Size: 8, Top: 1, Color: colorGray}),
		)))
	}
	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New("This document was generated electronically by "+station.Name+" and is valid without a signature.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2}),
	)))
	return rows
}

// receiptHeaderRow: letterhead + receipt number and date.
func receiptHeaderRow(payment *entity.Payment, station *entity.Station) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(station.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(station.Address, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PAYMENT RECEIPT", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(payment.ReceiptNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+payment.DateReceived.Format(format.DateDisplay), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// labeledRow: one "Label: value" line of the receipt body.
func labeledRow(label, value string) core.Row {
	return row.New(7).Add(
		col.New(4).Add(text.New(label+":", props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 1,
		})),
		col.New(8).Add(text.New(value, props.Text{Size: 9, Top: 1})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
