package event

import "testing"

func TestQueueDrainOrder(t *testing.T) {
	q := NewQueue()
	q.Emit(Event{Type: TypeJump, Tick: 1})
	q.Emit(Event{Type: TypeLand, Tick: 2})
	q.Emit(Event{Type: TypeTag, Tick: 3})

	if q.Len() != 3 {
		t.Errorf("Expected Len to be 3, got %d", q.Len())
	}

	out := q.Drain()
	expected := []Type{TypeJump, TypeLand, TypeTag}
	if len(out) != len(expected) {
		t.Fatalf("Expected %d events, got %d", len(expected), len(out))
	}
	for i, ev := range out {
		if ev.Type != expected[i] {
			t.Errorf("Expected event %d to be %v, got %v", i, expected[i], ev.Type)
		}
	}

	if q.Len() != 0 {
		t.Errorf("Expected queue to be empty after drain, got %d", q.Len())
	}
	if q.Drain() != nil {
		t.Errorf("Expected nil drain on empty queue")
	}
}

func TestFanoutOrder(t *testing.T) {
	var order []int
	f := Fanout{
		SinkFunc(func(Event) { order = append(order, 1) }),
		SinkFunc(func(Event) { order = append(order, 2) }),
	}
	f.Emit(Event{Type: TypeJump})

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("Expected sinks to fire in order [1 2], got %v", order)
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ      Type
		expected string
	}{
		{TypeJump, "jump"},
		{TypeTag, "tag"},
		{TypeGameOver, "game_over"},
		{Type(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.expected {
			t.Errorf("Expected String to be %q, got %q", tt.expected, got)
		}
	}
}
