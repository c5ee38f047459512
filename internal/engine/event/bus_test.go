package event

import "testing"

type testEvent struct{ kind Kind }

func (e testEvent) Kind() Kind { return e.kind }

type recorder struct {
	name string
	log  *[]string
	got  []Kind
}

func (r *recorder) HandleEvent(e Event) {
	r.got = append(r.got, e.Kind())
	if r.log != nil {
		*r.log = append(*r.log, r.name)
	}
}

func TestRaiseDeliversToSubscribers(t *testing.T) {
	bus := NewBus()
	r := &recorder{}
	bus.Subscribe(r, ContextLost, ContextRecreated)

	bus.Raise(testEvent{ContextLost})
	bus.Raise(testEvent{EnvVarChanged})
	bus.Raise(testEvent{ContextRecreated})

	if len(r.got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(r.got))
	}
	if r.got[0] != ContextLost || r.got[1] != ContextRecreated {
		t.Errorf("unexpected events: %v", r.got)
	}
}

func TestSubscriptionOrder(t *testing.T) {
	bus := NewBus()
	var log []string
	a := &recorder{name: "a", log: &log}
	b := &recorder{name: "b", log: &log}
	bus.Subscribe(a, TexturePackChanged)
	bus.Subscribe(b, TexturePackChanged)

	bus.Raise(testEvent{TexturePackChanged})

	if len(log) != 2 || log[0] != "a" || log[1] != "b" {
		t.Errorf("expected [a b], got %v", log)
	}
}

func TestDuplicateSubscribe(t *testing.T) {
	bus := NewBus()
	r := &recorder{}
	bus.Subscribe(r, ContextLost)
	bus.Subscribe(r, ContextLost)

	if n := bus.Count(ContextLost); n != 1 {
		t.Errorf("expected 1 listener, got %d", n)
	}
	bus.Raise(testEvent{ContextLost})
	if len(r.got) != 1 {
		t.Errorf("expected 1 delivery, got %d", len(r.got))
	}
}

func TestUnsubscribe(t *testing.T) {
	bus := NewBus()
	r := &recorder{}
	other := &recorder{}
	bus.Subscribe(r, ContextLost, EnvVarChanged)
	bus.Subscribe(other, ContextLost)

	bus.Unsubscribe(r, ContextLost, EnvVarChanged)
	bus.Unsubscribe(r, ContextLost) // second call is a no-op

	bus.Raise(testEvent{ContextLost})
	bus.Raise(testEvent{EnvVarChanged})

	if len(r.got) != 0 {
		t.Errorf("unsubscribed listener received %v", r.got)
	}
	if len(other.got) != 1 {
		t.Errorf("remaining listener should receive 1 event, got %d", len(other.got))
	}
	if bus.Count(EnvVarChanged) != 0 {
		t.Errorf("expected no EnvVarChanged listeners, got %d", bus.Count(EnvVarChanged))
	}
}

type selfRemover struct {
	bus   *Bus
	calls int
}

func (s *selfRemover) HandleEvent(e Event) {
	s.calls++
	s.bus.Unsubscribe(s, e.Kind())
}

func TestUnsubscribeDuringRaise(t *testing.T) {
	bus := NewBus()
	s := &selfRemover{bus: bus}
	r := &recorder{}
	bus.Subscribe(s, ContextRecreated)
	bus.Subscribe(r, ContextRecreated)

	bus.Raise(testEvent{ContextRecreated})
	bus.Raise(testEvent{ContextRecreated})

	if s.calls != 1 {
		t.Errorf("self-removing listener called %d times, want 1", s.calls)
	}
	if len(r.got) != 2 {
		t.Errorf("second listener should see both events, got %d", len(r.got))
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{TextureFileChanged, "texture_file_changed"},
		{ContextRecreated, "context_recreated"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
