// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package organize

// Monitor receives ordered progress events at fixed run milestones. Events
// are advisory only and never influence control flow. Implement this to feed
// a UI; the engine falls back to a no-op when none is provided.
type Monitor interface {
	// Progress reports one milestone: the stage name, overall percentage,
	// and a human-readable message.
	Progress(stage string, percent int, message string)

	// Finish reports run completion.
	Finish(message string)

	// Fail reports the single final failure event with its message.
	Fail(message string)
}

type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (noopMonitor) Progress(string, int, string) {}
func (noopMonitor) Finish(string)                {}
func (noopMonitor) Fail(string)                  {}
