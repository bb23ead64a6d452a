package catalog_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/theater-billing/internal/catalog"
)

func TestResolve(t *testing.T) {
	plays := catalog.Catalog{
		"hamlet": {Name: "Hamlet", Type: "tragedy"},
	}

	play, err := plays.Resolve("hamlet")
	require.NoError(t, err)
	require.Equal(t, "Hamlet", play.Name)
	require.Equal(t, "tragedy", play.Type)
}

func TestResolveUnknownID(t *testing.T) {
	plays := catalog.Catalog{}

	_, err := plays.Resolve("macbeth")
	require.Error(t, err)
	var unknown *catalog.UnknownPlayIDError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, "macbeth", unknown.PlayID)
	require.Contains(t, err.Error(), "macbeth")
}

func TestLoad(t *testing.T) {
	doc := `{
		"hamlet": {"name": "Hamlet", "type": "tragedy"},
		"as-like": {"name": "As You Like It", "type": "comedy"}
	}`

	plays, err := catalog.Load(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, plays, 2)
	require.Equal(t, "comedy", plays["as-like"].Type)
}

func TestLoadMalformed(t *testing.T) {
	_, err := catalog.Load(strings.NewReader(`{"hamlet": `))
	require.Error(t, err)
}

func TestEntriesSorted(t *testing.T) {
	plays := catalog.Catalog{
		"othello": {Name: "Othello", Type: "tragedy"},
		"as-like": {Name: "As You Like It", Type: "comedy"},
		"hamlet":  {Name: "Hamlet", Type: "tragedy"},
	}

	entries := plays.Entries()
	require.Len(t, entries, 3)
	require.Equal(t, []string{"as-like", "hamlet", "othello"},
		[]string{entries[0].ID, entries[1].ID, entries[2].ID})
}
