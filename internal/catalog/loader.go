package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Load decodes a plays document of the form
// {"hamlet": {"name": "Hamlet", "type": "tragedy"}, ...}.
func Load(r io.Reader) (Catalog, error) {
	var plays Catalog
	if err := json.NewDecoder(r).Decode(&plays); err != nil {
		return nil, fmt.Errorf("decode plays: %w", err)
	}
	if plays == nil {
		plays = Catalog{}
	}
	return plays, nil
}

// LoadFile reads and decodes the plays document at path.
func LoadFile(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open plays: %w", err)
	}
	defer f.Close()
	return Load(f)
}
