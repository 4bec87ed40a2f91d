package event

// Sink receives discrete events at the moment they occur within a tick.
// The simulation core pushes; collaborators (audio, particles, logging)
// own all downstream state. Implementations must not call back into the
// world.
type Sink interface {
	Emit(ev Event)
}

// SinkFunc adapts a function to the Sink interface
type SinkFunc func(ev Event)

func (f SinkFunc) Emit(ev Event) { f(ev) }

// NopSink discards everything
type NopSink struct{}

func (NopSink) Emit(Event) {}

// Fanout forwards each event to every sink in order
type Fanout []Sink

func (f Fanout) Emit(ev Event) {
	for _, s := range f {
		s.Emit(ev)
	}
}
