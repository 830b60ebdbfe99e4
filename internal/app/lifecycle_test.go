package app

import (
	"context"
	"testing"
	"time"
)

// TestSetupContext tests the SetupContext function.
func TestSetupContext(t *testing.T) {
	t.Parallel()
	t.Run("context is canceled after timeout", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := SetupContext(context.Background(), 50*time.Millisecond)
		defer cancel()

		select {
		case <-ctx.Done():
			t.Error("context should not be done immediately")
		default:
		}

		time.Sleep(100 * time.Millisecond)

		select {
		case <-ctx.Done():
			if ctx.Err() != context.DeadlineExceeded {
				t.Errorf("expected DeadlineExceeded, got %v", ctx.Err())
			}
		default:
			t.Error("context should be done after timeout")
		}
	})

	t.Run("context can be canceled manually", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := SetupContext(context.Background(), time.Hour)
		cancel()

		select {
		case <-ctx.Done():
		case <-time.After(100 * time.Millisecond):
			t.Error("context should be done after cancel")
		}
	})

	t.Run("zero timeout means no deadline", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := SetupContext(context.Background(), 0)
		defer cancel()

		if _, ok := ctx.Deadline(); ok {
			t.Error("expected no deadline for zero timeout")
		}
	})
}

// TestSetupLifecycle tests signal-based cancellation wiring.
func TestSetupLifecycle(t *testing.T) {
	t.Parallel()
	ctx, cancel := SetupLifecycle(context.Background())

	select {
	case <-ctx.Done():
		t.Error("lifecycle context should start alive")
	default:
	}

	cancel()
	select {
	case <-ctx.Done():
	case <-time.After(100 * time.Millisecond):
		t.Error("lifecycle context should be done after cancel")
	}
}
