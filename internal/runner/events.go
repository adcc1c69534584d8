package runner

// Job pairs one input transcript with its output subtitle path.
// Jobs are immutable once submitted; the runner owns them for the
// duration of the run.
type Job struct {
	InputPath  string
	OutputPath string
}

// EventType classifies messages emitted during a run.
type EventType string

const (
	EventProgress EventType = "progress"
	EventError    EventType = "error"
	EventDone     EventType = "done"
)

// Event is one notification from a run. Progress events carry the overall
// percentage and the completed file's base name; error events carry the
// failed file's base name and the underlying message; the final Done event
// carries neither.
type Event struct {
	Type    EventType
	Percent int
	Label   string
	Message string
}
