package event

import "testing"

type recorder struct {
	name string
	log  *[]string
	got  []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
	if r.log != nil {
		*r.log = append(*r.log, r.name)
	}
}

func TestDispatchDeliversOnlySubscribedType(t *testing.T) {
	d := NewDispatcher()
	hits := &recorder{}
	cleared := &recorder{}
	d.Subscribe(hits, TargetHit)
	d.Subscribe(cleared, TargetsCleared)

	d.Dispatch(TargetHit, ShotData{TargetID: 3, Remaining: 9})

	if len(hits.got) != 1 {
		t.Fatalf("TargetHit listener got %d events, expected 1", len(hits.got))
	}
	if got := hits.got[0]; got.Type != TargetHit || got.Shot.TargetID != 3 || got.Shot.Remaining != 9 {
		t.Errorf("unexpected event %+v", got)
	}
	if len(cleared.got) != 0 {
		t.Errorf("TargetsCleared listener got %d events, expected 0", len(cleared.got))
	}
}

func TestSubscribeToSeveralTypes(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(r, ShotFired, TargetHit, TargetsCleared)

	d.Dispatch(ShotFired, ShotData{TargetID: 1})
	d.Dispatch(TargetHit, ShotData{TargetID: 1})
	d.Dispatch(TargetsCleared, ShotData{TargetID: 1})

	want := []EventType{ShotFired, TargetHit, TargetsCleared}
	if len(r.got) != len(want) {
		t.Fatalf("got %d events, expected %d", len(r.got), len(want))
	}
	for i, e := range r.got {
		if e.Type != want[i] {
			t.Errorf("event %d = %s, expected %s", i, e.Type, want[i])
		}
	}
}

func TestListenersCalledInSubscribeOrder(t *testing.T) {
	d := NewDispatcher()
	var calls []string
	d.Subscribe(&recorder{name: "first", log: &calls}, TargetHit)
	d.Subscribe(&recorder{name: "second", log: &calls}, TargetHit)

	d.Dispatch(TargetHit, ShotData{})

	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Errorf("calls = %v, expected [first second]", calls)
	}
}

func TestDispatchWithoutListeners(t *testing.T) {
	d := NewDispatcher()
	d.Dispatch(TargetsCleared, ShotData{})
}
