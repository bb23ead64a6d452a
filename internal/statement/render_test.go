package statement_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/theater-billing/internal/statement"
)

func TestUSD(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{50, "$0.50"},
		{40000, "$400.00"},
		{65000, "$650.00"},
		{173000, "$1,730.00"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, statement.USD(tc.cents))
	}
}

func TestRenderText(t *testing.T) {
	st, err := newBuilder().Build(testInvoice(), testPlays())
	require.NoError(t, err)

	want := "Statement for BigCo\n" +
		"  Hamlet: $650.00 (55 seats)\n" +
		"  As You Like It: $580.00 (35 seats)\n" +
		"  Othello: $500.00 (40 seats)\n" +
		"Amount owed is $1,730.00\n" +
		"You earned 47 credits\n"
	require.Equal(t, want, statement.RenderText(st))
}

func TestRenderTextEmptyInvoice(t *testing.T) {
	st, err := newBuilder().Build(statement.Invoice{Customer: "EmptyCo"}, testPlays())
	require.NoError(t, err)

	want := "Statement for EmptyCo\n" +
		"Amount owed is $0.00\n" +
		"You earned 0 credits\n"
	require.Equal(t, want, statement.RenderText(st))
}
