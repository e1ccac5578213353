package pdf

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/gulfbridge/portal/internal/clock"
	"github.com/gulfbridge/portal/internal/config"
	quotedomain "github.com/gulfbridge/portal/internal/quote/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestProvider(t *testing.T) Provider {
	t.Helper()
	return New(Params{
		Log:       zap.NewNop(),
		Clock:     clock.NewFakeClock(time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)),
		Quotation: config.NewStaticQuotationConfigHolder(config.DefaultQuotationConfig()),
	})
}

func sampleQuote() *quotedomain.Quote {
	return &quotedomain.Quote{
		Name:     "Gulf Trading Co",
		Email:    "ops@gulftrading.example",
		Phone:    "+96550000000",
		Currency: "KWD",
		Year:     2026,
		Sequence: 3,
		Items: quotedomain.Items{
			{ServiceName: "Sea freight", Quantity: "2", Price: "120.500"},
		},
	}
}

func TestHeaderNamesFlipWithLanguage(t *testing.T) {
	cfg := config.DefaultQuotationConfig()

	left, right := headerNames(cfg, "en")
	assert.Equal(t, cfg.CompanyNameEn, left)
	assert.Equal(t, cfg.CompanyNameAr, right)

	left, right = headerNames(cfg, "ar")
	assert.Equal(t, cfg.CompanyNameAr, left)
	assert.Equal(t, cfg.CompanyNameEn, right)

	// Unknown or empty languages fall back to the English-leading layout.
	left, _ = headerNames(cfg, "")
	assert.Equal(t, cfg.CompanyNameEn, left)
	left, _ = headerNames(cfg, "fr")
	assert.Equal(t, cfg.CompanyNameEn, left)
}

func TestGenerateQuotationProducesDocument(t *testing.T) {
	p := newTestProvider(t)

	doc, docID, err := p.GenerateQuotation(context.Background(), sampleQuote(), "en")
	require.NoError(t, err)
	require.NotEmpty(t, docID)

	raw, err := io.ReadAll(doc)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "%PDF"))
}

func TestGenerateQuotationDocumentIDsAreUnique(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	// The clock is frozen, so distinct IDs prove the identifier does not
	// derive from the timestamp alone.
	_, first, err := p.GenerateQuotation(ctx, sampleQuote(), "en")
	require.NoError(t, err)
	_, second, err := p.GenerateQuotation(ctx, sampleQuote(), "ar")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
