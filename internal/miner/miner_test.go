package miner

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodTable = `<table>
<tr><th>Segment</th><th>2023</th><th>2022</th></tr>
<tr><td>Hardware</td><td>1,250</td><td>1,100</td></tr>
<tr><td>Services</td><td>430</td><td>385</td></tr>
<tr><td>Total</td><td>1,680</td><td>1,485</td></tr>
</table>`

func page(body string) string {
	return "<html><body>" + body + "</body></html>"
}

func TestExtractTables_KeywordAdjacent(t *testing.T) {
	doc := page(`<p>Revenue by segment was as follows:</p>` + goodTable)

	seen := make(map[string]struct{})
	tables := ExtractTables(doc, []string{"revenue by segment"}, seen)

	require.Len(t, tables, 1)
	require.Len(t, tables[0], 4)
	assert.Equal(t, []string{"Segment", "2023", "2022"}, tables[0][0])
	assert.Equal(t, []string{"Hardware", "1,250", "1,100"}, tables[0][1])
}

func TestExtractTables_NoKeywordNoTable(t *testing.T) {
	doc := page(`<p>Liquidity and capital resources.</p>` + goodTable)

	tables := ExtractTables(doc, []string{"revenue by segment"}, make(map[string]struct{}))
	assert.Empty(t, tables)
}

func TestExtractTables_WholeWordBoundary(t *testing.T) {
	// "subscribers" inside a longer token must not match.
	doc := page(`<p>presubscriberspost</p>` + goodTable)

	tables := ExtractTables(doc, []string{"subscribers"}, make(map[string]struct{}))
	assert.Empty(t, tables)
}

func TestExtractTables_DedupWithinDocument(t *testing.T) {
	// Byte-identical tables come back once even when reached from
	// different keywords.
	doc := page(
		`<p>segment revenue</p>` + goodTable +
			`<p>revenue by segment</p>` + goodTable)

	tables := ExtractTables(doc, []string{"segment revenue", "revenue by segment"}, make(map[string]struct{}))
	assert.Len(t, tables, 1)
}

func TestExtractTables_DedupAcrossDocuments(t *testing.T) {
	doc := page(`<p>segment revenue</p>` + goodTable)
	seen := make(map[string]struct{})

	first := ExtractTables(doc, []string{"segment revenue"}, seen)
	second := ExtractTables(doc, []string{"segment revenue"}, seen)

	assert.Len(t, first, 1)
	assert.Empty(t, second)
}

func TestExtractTables_FirstTableWinsEvenIfUseless(t *testing.T) {
	// The ancestor walk stops at the first following table per occurrence.
	// A junk first table means that occurrence yields nothing, even when a
	// good table follows it.
	doc := page(`<div><p>segment revenue</p>` +
		`<table><tr><td></td><td></td></tr><tr><td></td><td></td></tr></table>` +
		goodTable + `</div>`)

	tables := ExtractTables(doc, []string{"segment revenue"}, make(map[string]struct{}))
	assert.Empty(t, tables)
}

func TestExtractTables_ColspanAlignment(t *testing.T) {
	doc := page(`<p>segment revenue</p><table>
<tr><th colspan="2">Period</th><th>Amount</th></tr>
<tr><td>Q1</td><td>2023</td><td>125</td></tr>
<tr><td>Q2</td><td>2023</td><td>140</td></tr>
</table>`)

	tables := ExtractTables(doc, []string{"segment revenue"}, make(map[string]struct{}))
	require.Len(t, tables, 1)
	assert.Equal(t, []string{"Period", "", "Amount"}, tables[0][0])
	assert.Equal(t, []string{"Q1", "2023", "125"}, tables[0][1])
}

func TestExtractTables_EmptyRowsStripped(t *testing.T) {
	doc := page(`<p>segment revenue</p><table>
<tr><th>Segment</th><th>2023</th></tr>
<tr><td></td><td></td></tr>
<tr><td>Hardware</td><td>1,250</td></tr>
<tr><td>Services</td><td>430</td></tr>
</table>`)

	tables := ExtractTables(doc, []string{"segment revenue"}, make(map[string]struct{}))
	require.Len(t, tables, 1)
	assert.Len(t, tables[0], 3)
	for _, row := range tables[0] {
		joined := strings.Join(row, "")
		assert.NotEmpty(t, strings.TrimSpace(joined))
	}
}

func TestIsUseful(t *testing.T) {
	good := [][]string{
		{"Segment", "2023", "2022"},
		{"Hardware", "1250", "1100"},
		{"Services", "430", "385"},
	}
	assert.True(t, IsUseful(good))

	t.Run("too few rows", func(t *testing.T) {
		assert.False(t, IsUseful(good[:2]))
	})

	t.Run("too few columns", func(t *testing.T) {
		assert.False(t, IsUseful([][]string{{"a"}, {"b"}, {"12"}}))
	})

	t.Run("empty 2x2", func(t *testing.T) {
		assert.False(t, IsUseful([][]string{{"", ""}, {"", ""}}))
	})

	t.Run("junk text rejected despite numbers", func(t *testing.T) {
		junk := [][]string{
			{"Table of Contents", "Page 12"},
			{"Item 1", "34"},
			{"Item 2", "56"},
		}
		assert.False(t, IsUseful(junk))
	})

	t.Run("junk only checked in leading rows", func(t *testing.T) {
		late := [][]string{
			{"Segment", "2023"},
			{"Hardware", "1250"},
			{"Services", "430"},
			{"Other", "15"},
			{"See Table of Contents", "99"},
		}
		assert.True(t, IsUseful(late))
	})

	t.Run("no numeric run", func(t *testing.T) {
		text := [][]string{
			{"Segment", "Trend"},
			{"Hardware", "up"},
			{"Services", "flat"},
		}
		assert.False(t, IsUseful(text))
	})

	t.Run("mostly empty grid", func(t *testing.T) {
		sparse := make([][]string, 4)
		for i := range sparse {
			sparse[i] = make([]string, 10)
		}
		sparse[0][0] = "12"
		assert.False(t, IsUseful(sparse))
	})
}

func TestFingerprint_Bounded(t *testing.T) {
	huge := [][]string{{strings.Repeat("x", 1000)}}
	fp := Fingerprint(huge)
	assert.LessOrEqual(t, len(fp), 300)

	assert.Equal(t,
		Fingerprint([][]string{{"a", "b"}}),
		Fingerprint([][]string{{"a", "b"}}))
	assert.NotEqual(t,
		Fingerprint([][]string{{"a", "b"}}),
		Fingerprint([][]string{{"a", "c"}}))
}

func TestLoadTopics(t *testing.T) {
	t.Run("default when unset", func(t *testing.T) {
		topics, err := LoadTopics("")
		require.NoError(t, err)
		assert.Equal(t, DefaultTopics, topics)
	})

	t.Run("yaml override", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "topics.yaml")
		require.NoError(t, os.WriteFile(path, []byte("topics:\n  - backlog\n  - bookings\n"), 0o644))

		topics, err := LoadTopics(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"backlog", "bookings"}, topics)
	})

	t.Run("empty file rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "topics.yaml")
		require.NoError(t, os.WriteFile(path, []byte("topics: []\n"), 0o644))

		_, err := LoadTopics(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTopics("/nonexistent/topics.yaml")
		assert.Error(t, err)
	})
}
