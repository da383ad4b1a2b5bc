package recorder

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordSnapshot(_ *SnapshotRecord) error { return nil }
func (n *NoopRecorder) History(_ string, _ int) ([]SnapshotRecord, error) {
	return nil, nil
}
func (n *NoopRecorder) Close() error { return nil }
