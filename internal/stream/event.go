package stream

// Level indicates the severity/type of an engine event.
type Level int

const (
	LevelInfo Level = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// Event represents a playback status update.
//
// The engine never prints; front-ends decide how events reach the operator
// (plain prefixes in the CLI, log lines in the TUI) and whether verbose
// events are shown at all.
type Event struct {
	Message string
	Level   Level
}
