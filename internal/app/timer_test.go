package app

import (
	"testing"
	"time"
)

func TestStepsAccrueWithElapsedTime(t *testing.T) {
	fs := NewFixedStep(1000)
	fs.Reset()
	time.Sleep(5 * time.Millisecond)
	if n := fs.Steps(); n < 1 {
		t.Fatalf("no steps after 5ms at 1000 gen/s, got %d", n)
	}
}

func TestStepsCapped(t *testing.T) {
	fs := NewFixedStep(1000)
	fs.last = time.Now().Add(-10 * time.Second)
	if n := fs.Steps(); n > maxStepsPerFrame {
		t.Fatalf("burst of %d steps exceeds cap %d", n, maxStepsPerFrame)
	}
}

func TestResetDropsBacklog(t *testing.T) {
	fs := NewFixedStep(1000)
	fs.last = time.Now().Add(-time.Second)
	fs.Reset()
	if n := fs.Steps(); n != 0 {
		t.Fatalf("steps after reset: %d", n)
	}
}

func TestSetRateGuardsNonPositive(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.step != time.Second {
		t.Fatalf("rate 0 produced step %v, expected 1s", fs.step)
	}
}
