package model

// StatsSnapshot is a summary of a series at its newest point.
type StatsSnapshot struct {
	Last      OHLCV   `json:"last"`
	Change    float64 `json:"change"`
	ChangePct float64 `json:"changePct"`
	High52w   float64 `json:"high52w"`
	Low52w    float64 `json:"low52w"`
	AvgVolume int64   `json:"avgVolume"`

	// Position52w places the last close within the 52-week range, 0.0 ~ 1.0.
	Position52w float64 `json:"position52w"`
}
