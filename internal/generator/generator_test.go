package generator

import (
	"errors"
	"testing"
	"time"

	"StockDash/internal/calculator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.March, 2, 9, 30, 0, 0, time.UTC)

func fixedGenerator() *Generator {
	return &Generator{
		Now:      func() time.Time { return fixedNow },
		Location: time.UTC,
	}
}

func TestMulberry32_ReferenceStream(t *testing.T) {
	m := NewMulberry32(0)
	assert.Equal(t, uint32(1144304738), m.Next())
	assert.Equal(t, uint32(1416247), m.Next())
	assert.Equal(t, uint32(958946056), m.Next())
}

func TestMulberry32_SameSeedSameStream(t *testing.T) {
	a, b := NewMulberry32(12345), NewMulberry32(12345)
	for i := 0; i < 1000; i++ {
		va, vb := a.Float64(), b.Float64()
		require.Equal(t, va, vb)
		require.GreaterOrEqual(t, va, 0.0)
		require.Less(t, va, 1.0)
	}
}

func TestHashSeed(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
	}{
		{"", 0},
		{"A", 65},
		{"AAPL", 2001436},
		{"MSFT", 2375924},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HashSeed(tt.in), "HashSeed(%q)", tt.in)
	}
	// Long strings overflow int32 and must still be stable.
	assert.Equal(t, HashSeed("a very long identifier string"), HashSeed("a very long identifier string"))
}

func TestGenerate_ReferenceValues(t *testing.T) {
	series, err := fixedGenerator().Generate("AAPL", 3)
	require.NoError(t, err)
	require.Len(t, series, 3)

	want := []struct {
		date                   string
		open, high, low, close float64
		volume                 int64
	}{
		{"2024-02-29", 170.85, 172.38, 169.93, 171.24, 6198755},
		{"2024-03-01", 171.28, 174.05, 170.93, 173.01, 1789668},
		{"2024-03-02", 173.50, 174.02, 172.06, 173.49, 5728393},
	}
	for i, w := range want {
		p := series[i]
		assert.Equal(t, w.date, p.Date)
		assert.Equal(t, w.open, p.Open)
		assert.Equal(t, w.high, p.High)
		assert.Equal(t, w.low, p.Low)
		assert.Equal(t, w.close, p.Close)
		assert.Equal(t, w.volume, p.Volume)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	g := fixedGenerator()
	a, err := g.Generate("NVDA", DefaultDays)
	require.NoError(t, err)
	b, err := g.Generate("NVDA", DefaultDays)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_SeedSensitivity(t *testing.T) {
	g := fixedGenerator()
	a, err := g.Generate("AAPL", 1)
	require.NoError(t, err)
	b, err := g.Generate("MSFT", 1)
	require.NoError(t, err)
	assert.NotEqual(t, a[0].Open, b[0].Open)
}

func TestGenerate_Invariants(t *testing.T) {
	g := fixedGenerator()
	for _, ticker := range []string{"AAPL", "TSLA", "JNJ", "", "ZZZZZZ"} {
		series, err := g.Generate(ticker, DefaultDays)
		require.NoError(t, err)
		require.Len(t, series, DefaultDays)

		assert.Equal(t, "2024-03-02", series[len(series)-1].Date)
		prev, err := time.Parse(DateLayout, series[0].Date)
		require.NoError(t, err)

		for i, p := range series {
			assert.Greater(t, p.Low, 0.0)
			assert.LessOrEqual(t, p.Low, p.Open, "%s[%d]", ticker, i)
			assert.LessOrEqual(t, p.Low, p.Close, "%s[%d]", ticker, i)
			assert.LessOrEqual(t, p.Open, p.High, "%s[%d]", ticker, i)
			assert.LessOrEqual(t, p.Close, p.High, "%s[%d]", ticker, i)
			assert.GreaterOrEqual(t, p.Volume, int64(1_000_000))
			assert.Less(t, p.Volume, int64(10_000_000))
			for _, price := range []float64{p.Open, p.High, p.Low, p.Close} {
				assert.Equal(t, calculator.Round2(price), price, "%s[%d] not rounded to cents", ticker, i)
			}

			if i > 0 {
				d, err := time.Parse(DateLayout, p.Date)
				require.NoError(t, err)
				assert.Equal(t, prev.AddDate(0, 0, 1), d, "%s[%d]", ticker, i)
				prev = d
			}
		}
	}
}

func TestGenerate_PrefixIndependentOfLength(t *testing.T) {
	// The walk starts at the oldest point, so a longer series shares its
	// first prices with a shorter one but not its dates.
	g := fixedGenerator()
	short, err := g.Generate("META", 10)
	require.NoError(t, err)
	long, err := g.Generate("META", 20)
	require.NoError(t, err)
	for i := range short {
		assert.Equal(t, short[i].Close, long[i].Close)
	}
}

func TestGenerate_InvalidDays(t *testing.T) {
	for _, days := range []int{0, -1} {
		_, err := fixedGenerator().Generate("AAPL", days)
		assert.True(t, errors.Is(err, ErrInvalidDays))
	}
}

func TestGenerate_LocationDecidesToday(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	g := &Generator{
		Now:      func() time.Time { return time.Date(2024, time.March, 2, 20, 0, 0, 0, time.UTC) },
		Location: tokyo,
	}
	assert.Equal(t, "2024-03-03", g.Today())
	series, err := g.Generate("AAPL", 2)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-03", series[1].Date)
}
