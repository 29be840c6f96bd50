package animation_test

import (
	"math"
	"testing"

	"github.com/go-drift/novelui/pkg/animation"
)

func approx(got, want float64) bool {
	return math.Abs(got-want) < 1e-3
}

func TestController_ForwardRunsToCompletion(t *testing.T) {
	c := animation.NewController(1.0)
	c.Forward()

	if !c.IsAnimating() || c.Status() != animation.StatusForward {
		t.Fatalf("after Forward: animating=%v status=%v", c.IsAnimating(), c.Status())
	}

	if !c.Update(0.5) {
		t.Fatal("animation should still be running at the midpoint")
	}
	if !approx(c.Value(), 0.5) {
		t.Errorf("midpoint value = %v, want 0.5", c.Value())
	}

	if c.Update(0.6) {
		t.Fatal("animation should have finished")
	}
	if !approx(c.Value(), 1.0) || !c.IsCompleted() {
		t.Errorf("final value = %v status = %v", c.Value(), c.Status())
	}
}

func TestController_ReverseTakesProportionalTime(t *testing.T) {
	c := animation.NewController(1.0)
	c.Seek(0.5)
	c.Reverse()

	// Half the travel gets half the duration.
	if !c.Update(0.25) {
		t.Fatal("reverse should still be running")
	}
	if !approx(c.Value(), 0.25) {
		t.Errorf("value after 0.25s = %v, want 0.25", c.Value())
	}
	if c.Update(0.3) {
		t.Fatal("reverse should have finished")
	}
	if !c.IsDismissed() {
		t.Errorf("status = %v, want dismissed", c.Status())
	}
}

func TestController_ZeroDurationSnaps(t *testing.T) {
	c := animation.NewController(0)
	c.Forward()

	if c.IsAnimating() {
		t.Error("zero duration should not animate")
	}
	if c.Value() != 1 || !c.IsCompleted() {
		t.Errorf("value = %v status = %v", c.Value(), c.Status())
	}
}

func TestController_ForwardAtUpperBoundIsNoOp(t *testing.T) {
	c := animation.NewController(1.0)
	c.Seek(1)
	c.Forward()

	if c.IsAnimating() {
		t.Error("forward at the upper bound should not start a sweep")
	}
	if !c.IsCompleted() {
		t.Errorf("status = %v, want completed", c.Status())
	}
}

func TestController_LoopRestartsFromOppositeBound(t *testing.T) {
	c := animation.NewController(1.0)
	c.Repeat = animation.RepeatLoop
	c.Forward()

	if !c.Update(1.2) {
		t.Fatal("loop should keep running past the bound")
	}
	if c.Status() != animation.StatusForward {
		t.Errorf("status after loop wrap = %v, want forward", c.Status())
	}
	if c.Value() >= 1 {
		t.Errorf("value after loop wrap = %v, want restart near 0", c.Value())
	}
}

func TestController_PingPongReversesAtBounds(t *testing.T) {
	c := animation.NewController(1.0)
	c.Repeat = animation.RepeatPingPong
	c.Forward()

	if !c.Update(1.2) {
		t.Fatal("ping-pong should keep running past the bound")
	}
	if c.Status() != animation.StatusReverse {
		t.Errorf("status after bound = %v, want reverse", c.Status())
	}

	if !c.Update(1.2) {
		t.Fatal("ping-pong should keep running past the lower bound")
	}
	if c.Status() != animation.StatusForward {
		t.Errorf("status after second bound = %v, want forward", c.Status())
	}
}

func TestController_StopHoldsCurrentValue(t *testing.T) {
	c := animation.NewController(1.0)
	c.Forward()
	c.Update(0.3)
	c.Stop()

	if c.IsAnimating() {
		t.Error("stopped controller should not be animating")
	}
	if !approx(c.Value(), 0.3) {
		t.Errorf("value after stop = %v, want 0.3", c.Value())
	}
	if !c.IsDismissed() {
		t.Errorf("status = %v, want dismissed below the upper bound", c.Status())
	}
}

func TestController_SeekClamps(t *testing.T) {
	c := animation.NewController(1.0)
	c.Seek(2)
	if c.Value() != 1 || !c.IsCompleted() {
		t.Errorf("seek past 1: value=%v status=%v", c.Value(), c.Status())
	}
	c.Seek(-1)
	if c.Value() != 0 || !c.IsDismissed() {
		t.Errorf("seek below 0: value=%v status=%v", c.Value(), c.Status())
	}
}

func TestController_ListenersFireAndUnsubscribe(t *testing.T) {
	c := animation.NewController(1.0)

	var values []float64
	unsubscribe := c.AddListener(func(v float64) {
		values = append(values, v)
	})

	var statuses []animation.Status
	c.AddStatusListener(func(s animation.Status) {
		statuses = append(statuses, s)
	})

	c.Forward()
	c.Update(0.5)
	unsubscribe()
	c.Update(0.6)

	if len(values) != 1 || !approx(values[0], 0.5) {
		t.Errorf("value listener calls = %v, want one call at 0.5", values)
	}
	if len(statuses) != 2 || statuses[0] != animation.StatusForward || statuses[1] != animation.StatusCompleted {
		t.Errorf("status listener calls = %v", statuses)
	}
}

func TestController_ResetReturnsToZero(t *testing.T) {
	c := animation.NewController(1.0)
	c.Forward()
	c.Update(0.7)
	c.Reset()

	if c.Value() != 0 || !c.IsDismissed() || c.IsAnimating() {
		t.Errorf("after reset: value=%v status=%v animating=%v",
			c.Value(), c.Status(), c.IsAnimating())
	}
}

func TestController_CurvedMotionStaysInBounds(t *testing.T) {
	c := animation.NewController(1.0)
	c.Curve = animation.EaseInOut
	c.Forward()

	for i := 0; i < 12; i++ {
		c.Update(0.1)
		if c.Value() < 0 || c.Value() > 1.0001 {
			t.Fatalf("curved value out of bounds: %v", c.Value())
		}
	}
	if !c.IsCompleted() {
		t.Errorf("status = %v, want completed", c.Status())
	}
}
