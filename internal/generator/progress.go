package generator

// ProgressReporter receives generation progress events. The CLI implements
// it with progress bars; tests use the no-op.
type ProgressReporter interface {
	OnDiscoveryComplete(moduleCount int)
	OnModuleComplete(file string)
	OnFinish(summary Summary)
}

// NoopProgress discards all progress events.
type NoopProgress struct{}

func (NoopProgress) OnDiscoveryComplete(int) {}
func (NoopProgress) OnModuleComplete(string) {}
func (NoopProgress) OnFinish(Summary) {}
