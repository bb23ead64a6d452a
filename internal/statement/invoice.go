package statement

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ReadInvoices decodes an invoices document: a JSON array of invoices, each
// with a customer and its performances.
func ReadInvoices(r io.Reader) ([]Invoice, error) {
	var invoices []Invoice
	if err := json.NewDecoder(r).Decode(&invoices); err != nil {
		return nil, fmt.Errorf("decode invoices: %w", err)
	}
	return invoices, nil
}

// ReadInvoicesFile reads and decodes the invoices document at path.
func ReadInvoicesFile(path string) ([]Invoice, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open invoices: %w", err)
	}
	defer f.Close()
	return ReadInvoices(f)
}
