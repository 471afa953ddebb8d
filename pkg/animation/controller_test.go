package animation_test

import (
	"math"
	"testing"
	"time"

	"github.com/go-drift/skeleton/pkg/animation"
	skerrors "github.com/go-drift/skeleton/pkg/errors"
	skeletontest "github.com/go-drift/skeleton/pkg/testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestControllerForwardCompletes(t *testing.T) {
	clk := skeletontest.InstallFakeClock(t)
	c := animation.NewAnimationController(200 * time.Millisecond)

	var statuses []animation.AnimationStatus
	c.AddStatusListener(func(s animation.AnimationStatus) { statuses = append(statuses, s) })
	c.Forward()

	skeletontest.Pump(clk, 100*time.Millisecond)
	if !near(c.Value, 0.5) || !c.IsAnimating() {
		t.Fatalf("value = %v animating = %v, want 0.5 and running", c.Value, c.IsAnimating())
	}
	skeletontest.Pump(clk, 100*time.Millisecond)
	if !c.IsCompleted() || c.Value != 1 {
		t.Fatalf("status = %v value = %v, want completed at 1", c.Status(), c.Value)
	}
	if animation.HasActiveTickers() {
		t.Error("completed controller should release its ticker")
	}
	want := []animation.AnimationStatus{animation.AnimationForward, animation.AnimationCompleted}
	if len(statuses) != len(want) || statuses[0] != want[0] || statuses[1] != want[1] {
		t.Errorf("statuses = %v, want %v", statuses, want)
	}
}

func TestControllerRepeatReverse(t *testing.T) {
	clk := skeletontest.InstallFakeClock(t)
	c := animation.NewAnimationController(100 * time.Millisecond)
	c.Repeat(true)

	skeletontest.Pump(clk, 100*time.Millisecond)
	if c.Status() != animation.AnimationReverse {
		t.Fatalf("status after first pass = %v, want reverse", c.Status())
	}
	skeletontest.Pump(clk, 25*time.Millisecond)
	if !near(c.Value, 0.75) {
		t.Errorf("value on the way back = %v, want 0.75", c.Value)
	}
	skeletontest.Pump(clk, 75*time.Millisecond)
	if c.Status() != animation.AnimationForward || !c.IsRepeating() {
		t.Errorf("status = %v repeating = %v, want forward again", c.Status(), c.IsRepeating())
	}

	c.Stop()
	if c.IsAnimating() || c.IsRepeating() || animation.HasActiveTickers() {
		t.Error("Stop should end the repeat")
	}
}

func TestControllerZeroDuration(t *testing.T) {
	skeletontest.InstallFakeClock(t)
	c := animation.NewAnimationController(0)
	c.Forward()
	animation.StepTickers()
	if !c.IsCompleted() {
		t.Errorf("status = %v, want completed on the first frame", c.Status())
	}
}

func TestControllerListenersUnsubscribe(t *testing.T) {
	clk := skeletontest.InstallFakeClock(t)
	c := animation.NewAnimationController(100 * time.Millisecond)
	calls := 0
	unsubscribe := c.AddListener(func() { calls++ })
	c.Forward()
	skeletontest.Pump(clk, 10*time.Millisecond)
	unsubscribe()
	skeletontest.Pump(clk, 10*time.Millisecond)
	if calls != 1 {
		t.Errorf("listener ran %d times, want 1", calls)
	}
	c.Dispose()
	if c.IsAnimating() {
		t.Error("disposed controller should not animate")
	}
}

func TestResetReturnsToLowerBound(t *testing.T) {
	clk := skeletontest.InstallFakeClock(t)
	c := animation.NewAnimationController(100 * time.Millisecond)
	c.Forward()
	skeletontest.Pump(clk, 60*time.Millisecond)
	c.Reset()
	if c.Value != 0 || !c.IsDismissed() {
		t.Errorf("value = %v status = %v after Reset", c.Value, c.Status())
	}
}

func TestStepTickersRecoversPanics(t *testing.T) {
	clk := skeletontest.InstallFakeClock(t)
	var reported *skerrors.PanicError
	prev := skerrors.SetHandler(panicRecorder(func(err *skerrors.PanicError) { reported = err }))
	defer skerrors.SetHandler(prev)

	bad := animation.NewTicker(func(time.Duration) { panic("bad frame") })
	good := 0
	ok := animation.NewTicker(func(time.Duration) { good++ })
	bad.Start()
	ok.Start()

	skeletontest.Pump(clk, 16*time.Millisecond)
	if reported == nil || reported.Op != "animation.StepTickers" {
		t.Fatalf("panic not reported: %+v", reported)
	}
	if bad.IsActive() {
		t.Error("panicking ticker should be stopped")
	}
	if good != 1 {
		t.Errorf("healthy ticker ran %d times, want 1", good)
	}
}

func TestTickerElapsed(t *testing.T) {
	clk := skeletontest.InstallFakeClock(t)
	var seen time.Duration
	tk := animation.NewTicker(func(d time.Duration) { seen = d })
	if tk.Elapsed() != 0 {
		t.Error("inactive ticker should report zero elapsed")
	}
	tk.Start()
	skeletontest.Pump(clk, 40*time.Millisecond)
	if seen != 40*time.Millisecond || tk.Elapsed() != 40*time.Millisecond {
		t.Errorf("elapsed = %v / %v, want 40ms", seen, tk.Elapsed())
	}
	tk.Stop()
	if animation.ActiveTickerCount() != 0 {
		t.Error("stopped ticker should leave the active set")
	}
}

type panicRecorder func(*skerrors.PanicError)

func (panicRecorder) HandleError(*skerrors.SkeletonError) {}

func (r panicRecorder) HandlePanic(err *skerrors.PanicError) { r(err) }
