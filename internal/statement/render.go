package statement

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/noah-isme/theater-billing/internal/pricing"
)

var usdPrinter = message.NewPrinter(language.AmericanEnglish)

// USD renders an amount of cents as a US-locale dollar string, e.g. "$1,730.00".
func USD(cents pricing.Money) string {
	return usdPrinter.Sprintf("$%v", number.Decimal(float64(cents)/100,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// RenderText produces the plain-text statement layout:
//
//	Statement for BigCo
//	  Hamlet: $650.00 (55 seats)
//	Amount owed is $650.00
//	You earned 25 credits
func RenderText(st *Statement) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Statement for %s\n", st.Customer)
	for _, line := range st.Lines {
		fmt.Fprintf(&b, "  %s: %s (%d seats)\n", line.PlayName, USD(line.AmountCents), line.Audience)
	}
	fmt.Fprintf(&b, "Amount owed is %s\n", USD(st.TotalAmountCents))
	fmt.Fprintf(&b, "You earned %d credits\n", st.TotalVolumeCredits)
	return b.String()
}
