package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/edgar-extract/internal/concept"
	"github.com/sells-group/edgar-extract/internal/edgar"
)

func TestValue_Currency(t *testing.T) {
	assert.Equal(t, 1.235, Value(1_234_567.891, concept.Currency))
	assert.Equal(t, 1000.0, Value(1_000_000_000, concept.Currency))
	assert.Equal(t, -52.5, Value(-52_500_000, concept.Currency))
}

func TestValue_PerShare(t *testing.T) {
	assert.Equal(t, 2.3457, Value(2.34567, concept.CurrencyPerShare))
	assert.Equal(t, -0.01, Value(-0.01, concept.CurrencyPerShare))
}

func TestValue_ShareCount(t *testing.T) {
	assert.Equal(t, 15700.123, Value(15_700_123_456, concept.ShareCount))
}

func TestSelectUnit_PrefersDeclaredSemantics(t *testing.T) {
	units := map[string][]edgar.FactValue{
		UnitUSD:         {{End: "2022-12-31", Val: 1.0}},
		UnitUSDPerShare: {{End: "2022-12-31", Val: 2.0}},
	}

	values, ok := SelectUnit(units, concept.CurrencyPerShare)
	require.True(t, ok)
	assert.Equal(t, 2.0, values[0].Val)

	values, ok = SelectUnit(units, concept.Currency)
	require.True(t, ok)
	assert.Equal(t, 1.0, values[0].Val)
}

func TestSelectUnit_FallbackForMisfiledConcepts(t *testing.T) {
	// A per-share concept filed only under plain USD must still be found.
	units := map[string][]edgar.FactValue{
		UnitUSD: {{End: "2022-12-31", Val: 3.25}},
	}

	values, ok := SelectUnit(units, concept.CurrencyPerShare)
	require.True(t, ok)
	assert.Equal(t, 3.25, values[0].Val)
}

func TestSelectUnit_NoUsableBucket(t *testing.T) {
	units := map[string][]edgar.FactValue{
		"pure": {{End: "2022-12-31", Val: 9.0}},
	}

	_, ok := SelectUnit(units, concept.Currency)
	assert.False(t, ok)
}

func TestSeries(t *testing.T) {
	in := map[string]float64{"2022": 1_000_000_000, "2021": 750_000_000}
	out := Series(in, concept.Currency)
	assert.Equal(t, map[string]float64{"2022": 1000.0, "2021": 750.0}, out)

	assert.Nil(t, Series(nil, concept.Currency))
}
