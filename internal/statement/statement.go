package statement

import (
	"github.com/noah-isme/theater-billing/internal/catalog"
	"github.com/noah-isme/theater-billing/internal/pricing"
)

// Performance is one staging of a play for a given audience size.
type Performance struct {
	PlayID   string `json:"playID"`
	Audience int    `json:"audience"`
}

// Invoice is one billing unit: a customer and an ordered list of performances.
type Invoice struct {
	Customer     string        `json:"customer"`
	Performances []Performance `json:"performances"`
}

// LineItem is one statement row for one performance.
type LineItem struct {
	PlayName    string        `json:"playName"`
	AmountCents pricing.Money `json:"amountCents"`
	Audience    int           `json:"audience"`
}

// Statement is the computed billing statement for one invoice. Lines appear
// in the invoice's original performance order.
type Statement struct {
	Customer           string        `json:"customer"`
	Lines              []LineItem    `json:"lines"`
	TotalAmountCents   pricing.Money `json:"totalAmountCents"`
	TotalVolumeCredits int64         `json:"totalVolumeCredits"`
}

// Builder aggregates invoices into statements using a pricing engine.
type Builder struct {
	engine *pricing.Engine
}

// NewBuilder constructs a Builder.
func NewBuilder(engine *pricing.Engine) *Builder {
	return &Builder{engine: engine}
}

// Build walks the invoice's performances in order, resolving each play and
// computing its amount and volume credits. The first unresolved play ID,
// unknown play type, or negative audience aborts the whole build: a billing
// statement is never partially computed.
func (b *Builder) Build(invoice Invoice, plays catalog.Catalog) (*Statement, error) {
	st := &Statement{
		Customer: invoice.Customer,
		Lines:    make([]LineItem, 0, len(invoice.Performances)),
	}
	for _, perf := range invoice.Performances {
		play, err := plays.Resolve(perf.PlayID)
		if err != nil {
			return nil, err
		}
		amount, err := b.engine.Amount(play.Type, perf.Audience)
		if err != nil {
			return nil, err
		}
		st.Lines = append(st.Lines, LineItem{
			PlayName:    play.Name,
			AmountCents: amount,
			Audience:    perf.Audience,
		})
		st.TotalAmountCents += amount
		st.TotalVolumeCredits += b.engine.VolumeCredits(play.Type, perf.Audience)
	}
	return st, nil
}
