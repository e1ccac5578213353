// Package pdf renders quotation documents.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gulfbridge/portal/internal/clock"
	"github.com/gulfbridge/portal/internal/config"
	quotedomain "github.com/gulfbridge/portal/internal/quote/domain"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	mconfig "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/oklog/ulid/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Provider interface {
	// GenerateQuotation renders the quote as a PDF using the current
	// branding config. lang selects the header direction: "ar" leads with
	// the Arabic company name. The returned document ID appears in the
	// footer.
	GenerateQuotation(ctx context.Context, quote *quotedomain.Quote, lang string) (io.Reader, string, error)
}

type Params struct {
	fx.In

	Log       *zap.Logger
	Clock     clock.Clock
	Quotation *config.QuotationConfigHolder
}

type provider struct {
	log       *zap.Logger
	clock     clock.Clock
	quotation *config.QuotationConfigHolder
}

func New(p Params) Provider {
	return &provider{
		log:       p.Log.Named("providers.pdf"),
		clock:     p.Clock,
		quotation: p.Quotation,
	}
}

func (p *provider) GenerateQuotation(ctx context.Context, quote *quotedomain.Quote, lang string) (io.Reader, string, error) {
	cfg := p.quotation.Current()
	now := p.clock.Now()
	docID := ulid.Make().String()

	m := maroto.New(mconfig.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build())

	// Header: the requested language's company name leads, the other sits
	// opposite. Arabic flips the row right-to-left.
	headerLeft, headerRight := headerNames(cfg, lang)
	m.AddRow(14,
		text.NewCol(6, headerLeft, props.Text{
			Size:  14,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
		text.NewCol(6, headerRight, props.Text{
			Size:  14,
			Style: fontstyle.Bold,
			Align: align.Right,
		}),
	)

	m.AddRow(12,
		text.NewCol(12, "Quotation", props.Text{
			Size:  18,
			Style: fontstyle.Bold,
			Align: align.Center,
			Top:   2,
		}),
	)

	// Client block left, reference block right.
	m.AddRow(28,
		col.New(6).Add(
			text.New("Prepared for", props.Text{Style: fontstyle.Bold, Size: 9}),
			text.New(quote.Name, props.Text{Top: 5, Size: 9}),
			text.New(quote.Phone, props.Text{Top: 9, Size: 9}),
			text.New(quote.Email, props.Text{Top: 13, Size: 9}),
		),
		col.New(6).Add(
			text.New("Reference: "+quote.Reference(), props.Text{Size: 9, Align: align.Right}),
			text.New("Date: "+now.Format("2006-01-02"), props.Text{Top: 4, Size: 9, Align: align.Right}),
			text.New(entityLine(quote), props.Text{Top: 8, Size: 9, Align: align.Right}),
		),
	)

	// Items table.
	m.AddRow(8,
		text.NewCol(1, "No", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(5, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Unit Price", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)
	for i, item := range quote.Items {
		desc := item.ServiceName
		if item.DeliveryLocation != "" {
			desc += " / " + item.DeliveryLocation
		}
		m.AddRow(8,
			text.NewCol(1, fmt.Sprintf("%d", i+1), props.Text{Size: 9}),
			text.NewCol(5, desc, props.Text{Size: 9}),
			text.NewCol(2, money(item.PriceValue(), quote.Currency), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, item.Quantity, props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, money(item.LineTotal(), quote.Currency), props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Grand Total", props.Text{Style: fontstyle.Bold, Size: 10}),
		text.NewCol(2, money(quote.GrandTotal(), quote.Currency), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
		}),
	)

	if notes := truncateRunes(quote.AdminNotes, cfg.NotesLimit); notes != "" {
		m.AddRow(6,
			text.NewCol(12, "Notes", props.Text{Style: fontstyle.Bold, Size: 9, Top: 2}),
		)
		m.AddRow(20,
			text.NewCol(12, notes, props.Text{Size: 9}),
		)
	}

	m.AddRow(6,
		text.NewCol(12, "Terms & Conditions", props.Text{Style: fontstyle.Bold, Size: 9, Top: 2}),
	)
	for i, term := range cfg.Terms {
		m.AddRow(6,
			text.NewCol(12, fmt.Sprintf("%d. %s", i+1, term), props.Text{Size: 8}),
		)
	}

	footer := strings.Join([]string{cfg.Phone, cfg.Email, cfg.Address}, " | ")
	m.AddRow(10,
		text.NewCol(12, footer, props.Text{Size: 8, Align: align.Center, Top: 4}),
	)
	m.AddRow(5,
		text.NewCol(12, "Document ID: "+docID, props.Text{Size: 7, Align: align.Center}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, "", err
	}
	p.log.Info("quotation pdf generated",
		zap.String("reference", quote.Reference()), zap.String("doc_id", docID))
	return bytes.NewReader(doc.GetBytes()), docID, nil
}

// headerNames returns the company names in visual order for the requested
// language. Anything other than "ar" gets the English-leading layout.
func headerNames(cfg config.QuotationConfig, lang string) (left, right string) {
	if strings.EqualFold(strings.TrimSpace(lang), "ar") {
		return cfg.CompanyNameAr, cfg.CompanyNameEn
	}
	return cfg.CompanyNameEn, cfg.CompanyNameAr
}

func entityLine(quote *quotedomain.Quote) string {
	switch {
	case quote.EntityName != "" && quote.EntityType != "":
		return quote.EntityName + " (" + quote.EntityType + ")"
	case quote.EntityName != "":
		return quote.EntityName
	default:
		return quote.EntityType
	}
}

func money(v float64, currency string) string {
	return fmt.Sprintf("%.3f %s", v, currency)
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if limit <= 0 || len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
