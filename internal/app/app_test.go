package app

import (
	"path/filepath"
	"testing"

	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/touchtest"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	s, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	a, err := New(Config{Store: s})
	if err != nil {
		t.Fatalf("failed to create app: %v", err)
	}
	return a
}

func TestApp_HandleTouch_RecognizesSwipe(t *testing.T) {
	a := newTestApp(t)

	for _, ev := range touchtest.SwipeRight(0) {
		a.HandleTouch(ev)
	}

	history := a.History()
	found := false
	for _, ev := range history {
		if ev.Type == gesture.TypeSwipeRight && ev.State == gesture.StateEnded {
			found = true
			if ev.Data.Swipe == nil {
				t.Fatal("swipe event missing payload")
			}
			if ev.Data.Swipe.Velocity.X != 600.0 {
				t.Errorf("Velocity.X = %v, want 600.0", ev.Data.Swipe.Velocity.X)
			}
		}
	}
	if !found {
		t.Fatal("expected a swipe_right ended event in history")
	}
}

func TestApp_HandleTouch_LogsTerminalEvents(t *testing.T) {
	a := newTestApp(t)

	for _, ev := range touchtest.SwipeRight(0) {
		a.HandleTouch(ev)
	}

	events, err := a.Store().Events().ListRecent(10)
	if err != nil {
		t.Fatalf("failed to list events: %v", err)
	}
	if len(events) == 0 {
		t.Fatal("expected recognized events in the store log")
	}
	for _, e := range events {
		if e.SessionID != nil {
			t.Errorf("live event logged with session ID %v", *e.SessionID)
		}
	}
}

func TestApp_Disabled_IgnoresTouches(t *testing.T) {
	a := newTestApp(t)
	a.SetEnabled(false)

	for _, ev := range touchtest.SwipeRight(0) {
		a.HandleTouch(ev)
	}

	if got := len(a.History()); got != 0 {
		t.Errorf("history has %d events while disabled, want 0", got)
	}
}

func TestApp_EnabledPersists(t *testing.T) {
	a := newTestApp(t)
	a.SetEnabled(false)

	b, err := New(Config{Store: a.Store()})
	if err != nil {
		t.Fatalf("failed to create second app: %v", err)
	}
	if b.IsEnabled() {
		t.Error("disabled flag should survive a restart")
	}
}

func TestApp_RecordReplayRoundTrip(t *testing.T) {
	a := newTestApp(t)

	if err := a.StartRecording("double-tap"); err != nil {
		t.Fatalf("failed to start recording: %v", err)
	}
	for _, ev := range touchtest.TapChain(2, 50, 50, 0, 100) {
		a.HandleTouch(ev)
	}
	sess, err := a.StopRecording()
	if err != nil {
		t.Fatalf("failed to stop recording: %v", err)
	}
	if len(sess.Events) == 0 {
		t.Fatal("recorded session is empty")
	}

	liveDoubles := countType(a.History(), gesture.TypeDoubleTap)
	if liveDoubles == 0 {
		t.Fatal("live stream did not recognize a double tap")
	}

	recognized, err := a.ReplaySession(sess.ID)
	if err != nil {
		t.Fatalf("failed to replay session: %v", err)
	}

	replayDoubles := 0
	for _, ev := range recognized {
		if ev.Type == gesture.TypeDoubleTap && ev.State == gesture.StateEnded {
			replayDoubles++
		}
	}
	if replayDoubles != liveDoubles {
		t.Errorf("replay recognized %d double taps, live saw %d", replayDoubles, liveDoubles)
	}

	// Replay output is logged against the session
	logged, err := a.Store().Events().ListBySession(sess.ID)
	if err != nil {
		t.Fatalf("failed to list session events: %v", err)
	}
	if len(logged) == 0 {
		t.Error("replay did not log events against the session")
	}
}

func TestApp_ReplayIsDeterministic(t *testing.T) {
	a := newTestApp(t)

	if err := a.StartRecording("swipe"); err != nil {
		t.Fatalf("failed to start recording: %v", err)
	}
	for _, ev := range touchtest.SwipeRight(1000) {
		a.HandleTouch(ev)
	}
	sess, err := a.StopRecording()
	if err != nil {
		t.Fatalf("failed to stop recording: %v", err)
	}

	first, err := a.ReplaySession(sess.ID)
	if err != nil {
		t.Fatalf("first replay failed: %v", err)
	}
	second, err := a.ReplaySession(sess.ID)
	if err != nil {
		t.Fatalf("second replay failed: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("replays differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Type != second[i].Type || first[i].State != second[i].State ||
			first[i].Timestamp != second[i].Timestamp {
			t.Errorf("replay event %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestApp_ApplyPreset(t *testing.T) {
	a := newTestApp(t)

	if err := a.ApplyPreset("gaming"); err != nil {
		t.Fatalf("failed to apply preset: %v", err)
	}
	if a.Preset() != "gaming" {
		t.Errorf("Preset() = %q, want %q", a.Preset(), "gaming")
	}
	if got := a.GestureConfig().TapMaxDurationMs; got != 150 {
		t.Errorf("TapMaxDurationMs = %d, want 150", got)
	}

	// Preset survives a restart through settings
	b, err := New(Config{Store: a.Store()})
	if err != nil {
		t.Fatalf("failed to create second app: %v", err)
	}
	if b.Preset() != "gaming" {
		t.Errorf("restored preset = %q, want %q", b.Preset(), "gaming")
	}
}

func TestApp_ApplyPreset_Unknown(t *testing.T) {
	a := newTestApp(t)

	if err := a.ApplyPreset("warp-speed"); err == nil {
		t.Error("expected error for unknown preset")
	}
	if a.Preset() != "default" {
		t.Errorf("Preset() = %q after failed apply, want %q", a.Preset(), "default")
	}
}

func TestApp_StartRecording_AlreadyRecording(t *testing.T) {
	a := newTestApp(t)

	if err := a.StartRecording("one"); err != nil {
		t.Fatalf("failed to start recording: %v", err)
	}
	if err := a.StartRecording("two"); err == nil {
		t.Error("expected error starting a second recording")
	}
}

func TestApp_StopRecording_NotRecording(t *testing.T) {
	a := newTestApp(t)

	if _, err := a.StopRecording(); err == nil {
		t.Error("expected error stopping with no recording in progress")
	}
}

func countType(events []gesture.Event, typ gesture.Type) int {
	n := 0
	for _, ev := range events {
		if ev.Type == typ && ev.State == gesture.StateEnded {
			n++
		}
	}
	return n
}
