package audit

// NoopRecorder is a no-op implementation used when no audit sink is
// configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) Append(_ *Record) error { return nil }
func (n *NoopRecorder) Close() error           { return nil }
