package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/noah-isme/theater-billing/internal/catalog"
	"github.com/noah-isme/theater-billing/internal/pricing"
	"github.com/noah-isme/theater-billing/internal/statement"
)

func main() {
	playsPath := flag.String("plays", "data/plays.json", "path to the plays catalog JSON document")
	invoicesPath := flag.String("invoices", "data/invoices.json", "path to the invoices JSON document")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	plays, err := catalog.LoadFile(*playsPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", *playsPath).Msg("load play catalog")
	}
	invoices, err := statement.ReadInvoicesFile(*invoicesPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", *invoicesPath).Msg("load invoices")
	}

	builder := statement.NewBuilder(pricing.NewEngine(pricing.DefaultRates()))
	for _, invoice := range invoices {
		st, err := builder.Build(invoice, plays)
		if err != nil {
			logger.Fatal().Err(err).Str("customer", invoice.Customer).Msg("build statement")
		}
		fmt.Print(statement.RenderText(st))
	}
}
