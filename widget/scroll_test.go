// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"reflect"
	"testing"
	"time"

	"github.com/yujiangshui/react-web/f32"
	"github.com/yujiangshui/react-web/io/responder"
	"github.com/yujiangshui/react-web/io/touch"
	"github.com/yujiangshui/react-web/layout"
	"github.com/yujiangshui/react-web/unit"
)

var metric = unit.Metric{PxPerDp: 1}

type fakeScroller struct {
	offset f32.Point
}

func (f *fakeScroller) Offset() f32.Point     { return f.offset }
func (f *fakeScroller) SetOffset(p f32.Point) { f.offset = p }

// record wires every lifecycle callback of s to append its name.
func record(s *ScrollView, calls *[]string) {
	note := func(name string) func() {
		return func() { *calls = append(*calls, name) }
	}
	s.OnScrollBeginDrag = note("beginDrag")
	s.OnScrollEndDrag = note("endDrag")
	s.OnMomentumScrollBegin = note("momentumBegin")
	s.OnMomentumScrollEnd = note("momentumEnd")
	s.OnResponderGrant = note("grant")
	s.OnResponderReject = note("reject")
	s.OnResponderRelease = note("release")
	s.OnResponderTerminate = note("terminate")
}

func touchAt(k touch.Kind, x, y float32, ms int) touch.Event {
	return touch.Event{
		Kind:     k,
		Time:     time.Duration(ms) * time.Millisecond,
		Position: f32.Pt(x, y),
	}
}

func drag(s *ScrollView, distance float32, ms int) {
	s.Touch(touchAt(touch.Start, 0, 0, ms))
	s.Touch(touchAt(touch.Move, 0, distance/2, ms+10))
	s.Touch(touchAt(touch.Move, 0, distance, ms+20))
}

func TestDragCallbackSequence(t *testing.T) {
	var (
		reg   responder.Registry
		sc    fakeScroller
		s     ScrollView
		calls []string
	)
	record(&s, &calls)
	s.Mount(&reg, &sc, metric)

	drag(&s, 40, 0)
	s.Touch(touchAt(touch.End, 0, 60, 30))
	s.MomentumSettled()

	want := []string{"grant", "beginDrag", "endDrag", "momentumBegin", "release", "momentumEnd"}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("callbacks %v, expected %v", calls, want)
	}
	if reg.Owner() != nil {
		t.Error("slot still assigned after the gesture ended")
	}
}

func TestMomentumSettledWithoutSession(t *testing.T) {
	var (
		reg   responder.Registry
		sc    fakeScroller
		s     ScrollView
		calls []string
	)
	record(&s, &calls)
	s.Mount(&reg, &sc, metric)
	s.MomentumSettled()
	if len(calls) != 0 {
		t.Errorf("callbacks %v fired without a momentum session", calls)
	}
}

func TestUnthrottledScroll(t *testing.T) {
	var (
		reg responder.Registry
		sc  fakeScroller
		s   ScrollView
	)
	var offsets []f32.Point
	s.OnScroll = func(offset f32.Point, _ time.Duration) {
		offsets = append(offsets, offset)
	}
	s.Mount(&reg, &sc, metric)

	for i := 1; i <= 3; i++ {
		sc.offset = f32.Pt(0, float32(i*10))
		s.ScrollChanged(time.Duration(i) * 10 * time.Millisecond)
	}
	want := []f32.Point{f32.Pt(0, 10), f32.Pt(0, 20), f32.Pt(0, 30)}
	if !reflect.DeepEqual(offsets, want) {
		t.Errorf("forwarded offsets %v, expected %v", offsets, want)
	}
}

func TestThrottledScrollForwardsFirstImmediately(t *testing.T) {
	var (
		reg responder.Registry
		sc  fakeScroller
		s   ScrollView
	)
	s.ScrollEventThrottle = time.Hour
	count := 0
	s.OnScroll = func(f32.Point, time.Duration) { count++ }
	s.Mount(&reg, &sc, metric)

	s.ScrollChanged(0)
	if count != 1 {
		t.Fatalf("%d calls after a quiet period, expected an immediate forward", count)
	}
	s.ScrollChanged(time.Millisecond)
	s.ScrollChanged(2 * time.Millisecond)
	if count != 1 {
		t.Errorf("%d calls within the window, expected 1", count)
	}
}

func TestScrollToAndContentOffset(t *testing.T) {
	var (
		reg responder.Registry
		sc  fakeScroller
		s   ScrollView
	)
	s.Mount(&reg, &sc, metric)
	s.ScrollTo(30, 400)
	if got := sc.offset; got != f32.Pt(30, 400) {
		t.Errorf("primitive offset %v, expected (30, 400)", got)
	}
	if got := s.ContentOffset(); got != f32.Pt(30, 400) {
		t.Errorf("ContentOffset %v, expected (30, 400)", got)
	}
}

func TestDisabledNeverClaims(t *testing.T) {
	var (
		reg   responder.Registry
		sc    fakeScroller
		s     ScrollView
		calls []string
	)
	s.Disabled = true
	record(&s, &calls)
	s.Mount(&reg, &sc, metric)
	drag(&s, 40, 0)
	if len(calls) != 0 || reg.Owner() != nil {
		t.Errorf("disabled view claimed: callbacks %v, owner %v", calls, reg.Owner())
	}
}

func TestShouldSetResponderReceivesEvent(t *testing.T) {
	var (
		reg responder.Registry
		sc  fakeScroller
		s   ScrollView
	)
	var seen []touch.Event
	s.ShouldSetResponder = func(e touch.Event) bool {
		seen = append(seen, e)
		return false
	}
	s.Mount(&reg, &sc, metric)
	drag(&s, 40, 0)
	if reg.Owner() != nil {
		t.Error("slot claimed against the eligibility override")
	}
	if len(seen) != 1 || seen[0].Position != f32.Pt(0, 20) {
		t.Errorf("hook saw %v, expected the move past the threshold", seen)
	}
}

func TestTerminationBetweenViews(t *testing.T) {
	var (
		reg    responder.Registry
		sc     fakeScroller
		first  ScrollView
		second ScrollView
		calls1 []string
		calls2 []string
	)
	record(&first, &calls1)
	record(&second, &calls2)
	first.Mount(&reg, &sc, metric)
	second.Mount(&reg, &sc, metric)

	drag(&first, 40, 0)
	drag(&second, 40, 100)

	if reg.Owner() != responder.Claimant(&second) {
		t.Fatal("competing view did not win the slot")
	}
	want1 := []string{"grant", "beginDrag", "terminate"}
	if !reflect.DeepEqual(calls1, want1) {
		t.Errorf("first view callbacks %v, expected %v", calls1, want1)
	}
	want2 := []string{"grant", "beginDrag"}
	if !reflect.DeepEqual(calls2, want2) {
		t.Errorf("second view callbacks %v, expected %v", calls2, want2)
	}
}

func TestUnmountWhileActive(t *testing.T) {
	var (
		reg   responder.Registry
		sc    fakeScroller
		s     ScrollView
		calls []string
	)
	record(&s, &calls)
	s.Mount(&reg, &sc, metric)
	drag(&s, 40, 0)
	calls = calls[:0]

	s.Unmount()
	want := []string{"endDrag", "release"}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("teardown callbacks %v, expected %v", calls, want)
	}
	if reg.Owner() != nil {
		t.Error("slot leaked by unmount")
	}

	// Nothing fires after teardown.
	calls = calls[:0]
	drag(&s, 40, 100)
	s.ScrollChanged(200 * time.Millisecond)
	s.MomentumSettled()
	if len(calls) != 0 {
		t.Errorf("callbacks %v after unmount", calls)
	}
}

func TestUnmountIdempotent(t *testing.T) {
	var (
		reg responder.Registry
		sc  fakeScroller
		s   ScrollView
	)
	s.Unmount()
	s.Mount(&reg, &sc, metric)
	s.Unmount()
	s.Unmount()
}

func TestFrame(t *testing.T) {
	s := ScrollView{Horizontal: true, CenterContent: true}
	got := s.Frame()
	want := layout.Frame{
		Axis: layout.Horizontal, Main: layout.Constraint{Max: layout.Inf},
		CrossAlign: layout.Middle,
		BounceX:    true,
	}
	if got != want {
		t.Errorf("frame %+v, expected %+v", got, want)
	}
}
