package tui

import (
	"testing"
	"time"
)

func TestDuckLatchKeyHold(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	d := NewDuckLatch(500 * time.Millisecond)

	d.Press(t0)
	if !d.key {
		t.Fatal("press should hold the duck")
	}

	steps := []struct {
		at      time.Duration
		release bool
	}{
		{100 * time.Millisecond, false},
		{499 * time.Millisecond, false},
		{500 * time.Millisecond, true},
		{600 * time.Millisecond, false}, // Fires once
	}
	for _, s := range steps {
		if got := d.Expire(t0.Add(s.at)); got != s.release {
			t.Errorf("Expire(+%v) = %v, expected %v", s.at, got, s.release)
		}
	}
	if d.key || d.mouse {
		t.Error("latch should be idle after expiring")
	}
}

func TestDuckLatchRepeatExtends(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	d := NewDuckLatch(500 * time.Millisecond)

	d.Press(t0)
	d.Press(t0.Add(400 * time.Millisecond))

	if d.Expire(t0.Add(700 * time.Millisecond)) {
		t.Error("auto-repeat should extend the hold")
	}
	if !d.Expire(t0.Add(900 * time.Millisecond)) {
		t.Error("hold should end 500ms after the last press")
	}
}

func TestDuckLatchMouse(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	d := NewDuckLatch(500 * time.Millisecond)

	d.MouseDown()
	if d.Expire(t0.Add(time.Hour)) {
		t.Error("mouse hold has no timeout")
	}
	if !d.MouseUp() {
		t.Error("button release should release the duck")
	}

	// Key hold outlives the button
	d.MouseDown()
	d.Press(t0)
	if d.MouseUp() {
		t.Error("key hold should keep the duck after the button is released")
	}
	if !d.Expire(t0.Add(time.Second)) {
		t.Error("key hold should expire")
	}

	// Button outlives the key hold
	d.MouseDown()
	d.Press(t0)
	if d.Expire(t0.Add(time.Second)) {
		t.Error("held button should keep the duck")
	}
	if !d.MouseUp() {
		t.Error("button release should release the duck")
	}
}

func TestDuckLatchDefaults(t *testing.T) {
	d := NewDuckLatch(0)
	if d.hold != DefaultDuckHold {
		t.Errorf("hold = %v, expected %v", d.hold, DefaultDuckHold)
	}

	d.Press(time.Now())
	d.MouseDown()
	d.Reset()
	if d.key || d.mouse || !d.until.IsZero() {
		t.Error("reset should drop every hold")
	}
}
