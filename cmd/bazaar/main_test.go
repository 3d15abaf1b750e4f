package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/bazaar/internal/modules/market"
)

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("BAZAAR_DATA_DIR", t.TempDir())
	t.Setenv("ANALYSIS_ENDPOINT_URL", "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		quoteDate = ""
		dataDir = ""
		featuredOrder = 0
	})

	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0.50", "0.50"},
		{"999.00", "999.00"},
		{"1000.00", "1,000.00"},
		{"123456.78", "1,23,456.78"},
		{"12345678.00", "1,23,45,678.00"},
		{"-98765.40", "-98,765.40"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, groupThousands(tt.in), tt.in)
	}
}

func TestQuoteCommand_MatchesGenerator(t *testing.T) {
	const day = "Mon Jan 01 2024"
	out := runCLI(t, "quote", "tcs", "--date", day)

	want, err := market.GenerateQuote("TCS", day)
	require.NoError(t, err)
	assert.Contains(t, out, "TCS")
	assert.Contains(t, out, formatINR(want.Price))
	assert.Contains(t, out, formatPct(want.ChangePct))
}

func TestMoversCommand(t *testing.T) {
	out := runCLI(t, "movers")
	assert.Contains(t, out, "Top gainers")
	assert.Contains(t, out, "Top losers")
}

func TestAnalyzeCommand_FallsBackToGenerated(t *testing.T) {
	out := runCLI(t, "analyze", "INFY")
	assert.Contains(t, out, "Infosys")
	assert.Contains(t, out, "Analyst split")
}

func TestFeaturedCommands(t *testing.T) {
	dir := t.TempDir()

	out := runCLI(t, "--data-dir", dir, "featured", "add", "TCS", "--order", "1")
	assert.Contains(t, out, "Featured TCS")

	out = runCLI(t, "--data-dir", dir, "featured", "list")
	assert.Contains(t, out, "TCS")
}

func TestTable(t *testing.T) {
	out := table([]string{"Symbol", "Price"}, [][]string{{"TCS", "₹3,500.00"}, {"INFY", "₹1,450.25"}})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6, out) // top border, header, separator, two rows, bottom border
	assert.Contains(t, lines[1], "Symbol")
	assert.Contains(t, lines[3], "TCS")
	assert.Contains(t, lines[4], "₹1,450.25")
}
