package action

// Kind classifies a structured action result for the presentation layer.
type Kind string

const (
	// KindMessage is player-facing prose.
	KindMessage Kind = "message"
	// KindError reports a failed action in player-facing terms.
	KindError Kind = "error"
)

// Result is the structured outcome of an action's primary effect. Actions
// emit results through a Sink instead of printing; the presentation layer
// decides how to show them.
type Result struct {
	Kind Kind
	Text string
	Data map[string]any
}

// Sink receives action results. The scene controller carries one; tests
// use a recording sink.
type Sink interface {
	Emit(Result)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Result)

func (f SinkFunc) Emit(r Result) { f(r) }
