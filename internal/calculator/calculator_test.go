package calculator

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"StockDash/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func closesSeries(closes ...float64) []model.OHLCV {
	out := make([]model.OHLCV, len(closes))
	for i, c := range closes {
		out[i] = model.OHLCV{
			Date:   fmt.Sprintf("2024-01-%02d", i+1),
			Open:   c,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: 1000,
		}
	}
	return out
}

func TestCalculateSMA(t *testing.T) {
	v, err := CalculateSMA([]float64{1, 2, 3, 4}, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)

	_, err = CalculateSMA([]float64{1}, 2)
	assert.Error(t, err)
	_, err = CalculateSMA([]float64{1}, 0)
	assert.Error(t, err)
}

func TestSMASeries_Alignment(t *testing.T) {
	got, err := SMASeries(closesSeries(10, 20, 30), 2)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.True(t, math.IsNaN(got[0]))
	assert.Equal(t, 15.0, got[1])
	assert.Equal(t, 25.0, got[2])
}

func TestSMASeries_RunningSumMatchesMean(t *testing.T) {
	series := closesSeries(10.11, 20.22, 30.33, 41.07, 52.5, 60.01, 13.37)
	const w = 3
	got, err := SMASeries(series, w)
	require.NoError(t, err)
	for i := range series {
		if i < w-1 {
			assert.True(t, math.IsNaN(got[i]), "index %d should be undefined", i)
			continue
		}
		sum := 0.0
		for j := i - w + 1; j <= i; j++ {
			sum += series[j].Close
		}
		assert.InDelta(t, Round2(sum/w), got[i], 1e-9, "index %d", i)
	}
}

func TestSMASeries_WindowEdges(t *testing.T) {
	series := closesSeries(1, 2, 3)

	got, err := SMASeries(series, 5)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for _, v := range got {
		assert.True(t, math.IsNaN(v))
	}

	got, err = SMASeries(series, 3)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got[2])

	got, err = SMASeries(nil, 3)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = SMASeries(series, 0)
	assert.Error(t, err)
}

func TestCalculateStats_Empty(t *testing.T) {
	_, err := CalculateStats(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInsufficientData))
}

func TestCalculateStats_SinglePoint(t *testing.T) {
	s, err := CalculateStats(closesSeries(42))
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.Change)
	assert.Equal(t, 0.0, s.ChangePct)
	assert.Equal(t, 43.0, s.High52w)
	assert.Equal(t, 41.0, s.Low52w)
	assert.Equal(t, int64(1000), s.AvgVolume)
	assert.Equal(t, 42.0, s.Last.Close)
	assert.Equal(t, 0.5, s.Position52w)
}

func TestCalculateStats_Change(t *testing.T) {
	s, err := CalculateStats(closesSeries(100, 103.5))
	require.NoError(t, err)
	assert.Equal(t, 3.5, s.Change)
	assert.Equal(t, 3.5, s.ChangePct)
	assert.Equal(t, 0.82, s.Position52w) // (103.5-99)/(104.5-99)

	s, err = CalculateStats(closesSeries(30, 20))
	require.NoError(t, err)
	assert.Equal(t, -10.0, s.Change)
	assert.Equal(t, -33.33, s.ChangePct)
}

func TestCalculateStats_TrailingYear(t *testing.T) {
	series := make([]model.OHLCV, 400)
	for i := range series {
		series[i] = model.OHLCV{Open: 50, High: 60, Low: 40, Close: 50, Volume: 100}
	}
	// Outside the trailing 365 points.
	series[0].High = 1000
	series[0].Low = 1
	series[0].Volume = 1_000_000
	// Inside.
	series[399].High = 70
	series[50].Low = 30
	series[50].Volume = 465

	s, err := CalculateStats(series)
	require.NoError(t, err)
	assert.Equal(t, 70.0, s.High52w)
	assert.Equal(t, 30.0, s.Low52w)
	assert.Equal(t, int64(101), s.AvgVolume)
	assert.Equal(t, 0.5, s.Position52w)
}

func TestCalculate52WeekPosition(t *testing.T) {
	pos, err := Calculate52WeekPosition(75, 100, 50)
	require.NoError(t, err)
	assert.Equal(t, 0.5, pos)

	pos, err = Calculate52WeekPosition(10, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, 0.5, pos)

	pos, _ = Calculate52WeekPosition(200, 100, 50)
	assert.Equal(t, 1.0, pos)

	_, err = Calculate52WeekPosition(1, 1, 2)
	assert.Error(t, err)
}

func TestPredictNextClose_Linear(t *testing.T) {
	assert.Equal(t, 18.0, PredictNextClose(closesSeries(10, 12, 14, 16), 60))
}

func TestPredictNextClose_UsesLookbackWindow(t *testing.T) {
	// The flat prefix falls outside a 3-point window.
	series := closesSeries(500, 500, 500, 1, 2, 3)
	assert.Equal(t, 4.0, PredictNextClose(series, 3))
}

func TestPredictNextClose_Fallback(t *testing.T) {
	assert.Equal(t, 0.0, PredictNextClose(nil, 60))
	assert.Equal(t, 42.5, PredictNextClose(closesSeries(42.5), 60))
	assert.Equal(t, 7.0, PredictNextClose(closesSeries(3, 7), 1))
}

func TestPredictNextClose_Flat(t *testing.T) {
	assert.Equal(t, 9.99, PredictNextClose(closesSeries(9.99, 9.99, 9.99), 0))
}

func TestPredictNextClose_Rounded(t *testing.T) {
	p := PredictNextClose(closesSeries(1, 1.333, 1.777, 2.01), 60)
	assert.Equal(t, Round2(p), p)
}

func TestCalculateRSI(t *testing.T) {
	rising := closesSeries(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16)
	rsi, err := CalculateRSI(rising, 14)
	require.NoError(t, err)
	assert.Equal(t, 100.0, rsi)

	rsi, err = CalculateRSI(closesSeries(1, 2), 14)
	require.NoError(t, err)
	assert.Equal(t, 50.0, rsi)

	_, err = CalculateRSI(rising, 0)
	assert.Error(t, err)
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{1.2351, 1.24},
		{-1.2351, -1.24},
		{3, 3},
		// Just below a half cent in binary: must not round up.
		{0.015, 0.01},
		{0.045, 0.04},
		{2.675, 2.67},
		// Exact binary ties go away from zero.
		{0.125, 0.13},
		{434.625, 434.63},
		{-434.625, -434.63},
		{0.375, 0.38},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round2(tt.in), "Round2(%v)", tt.in)
	}
	assert.True(t, math.IsNaN(Round2(math.NaN())))
}
