package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/edgar-extract/internal/concept"
	"github.com/sells-group/edgar-extract/internal/statement"
)

func TestBuildStrategy(t *testing.T) {
	s, explicit, err := buildStrategy("keyword")
	require.NoError(t, err)
	assert.NotNil(t, s)
	assert.False(t, explicit)

	s, explicit, err = buildStrategy("allowlist")
	require.NoError(t, err)
	assert.NotNil(t, s)
	assert.True(t, explicit)

	_, _, err = buildStrategy("heuristic")
	assert.Error(t, err)
}

func TestLineCount(t *testing.T) {
	stmts := map[concept.Category]statement.Statement{
		concept.IncomeStatement: {Lines: make([]statement.Line, 3)},
		concept.BalanceSheet:    {Lines: make([]statement.Line, 2)},
	}
	assert.Equal(t, 5, lineCount(stmts))
	assert.Zero(t, lineCount(nil))
}

func TestMaxWidth(t *testing.T) {
	assert.Equal(t, 3, maxWidth([][]string{{"a"}, {"a", "b", "c"}}))
	assert.Zero(t, maxWidth(nil))
}
