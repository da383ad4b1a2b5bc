package recorder

// SnapshotRecord is one company's stats and prediction at a snapshot run.
type SnapshotRecord struct {
	RunID     string
	Ticker    string
	AsOf      string // calendar day of the newest point
	LastClose float64
	Change    float64
	ChangePct float64
	High52w   float64
	Low52w    float64
	AvgVolume int64
	Predicted float64
	DailyRSI  float64
}

// Recorder persists snapshot history for later analysis.
type Recorder interface {
	RecordSnapshot(rec *SnapshotRecord) error
	// History returns the latest snapshots of ticker, newest first.
	History(ticker string, limit int) ([]SnapshotRecord, error)
	Close() error
}
