package systems

import (
	"testing"

	"github.com/spaghettifunk/filare/engine/renderer/components"
)

func newTestCameraSystem(t *testing.T) *CameraSystem {
	t.Helper()
	cs, err := NewCameraSystem(&CameraSystemConfig{MaxCameraCount: 2})
	if err != nil {
		t.Fatalf("NewCameraSystem: %v", err)
	}
	return cs
}

func TestCameraSystemRejectsZeroCapacity(t *testing.T) {
	if _, err := NewCameraSystem(&CameraSystemConfig{MaxCameraCount: 0}); err == nil {
		t.Fatal("expected an error for zero capacity")
	}
}

func TestCameraSystemDefaultIsAlwaysAvailable(t *testing.T) {
	cs := newTestCameraSystem(t)

	def := cs.GetDefault()
	if def == nil {
		t.Fatal("no default camera")
	}

	acquired, err := cs.Acquire(components.DEFAULT_CAMERA_NAME)
	if err != nil {
		t.Fatalf("Acquire default: %v", err)
	}
	if acquired != def {
		t.Fatal("acquiring by the default name returned a different camera")
	}

	// Releasing the default is a no-op.
	cs.Release(components.DEFAULT_CAMERA_NAME)
	if cs.GetDefault() != def {
		t.Fatal("default camera was released")
	}
}

func TestCameraSystemAcquireIsStablePerName(t *testing.T) {
	cs := newTestCameraSystem(t)

	first, err := cs.Acquire("chase")
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	second, err := cs.Acquire("chase")
	if err != nil {
		t.Fatalf("Acquire again: %v", err)
	}
	if first != second {
		t.Fatal("same name produced different cameras")
	}

	other, err := cs.Acquire("top-down")
	if err != nil {
		t.Fatalf("Acquire other: %v", err)
	}
	if other == first {
		t.Fatal("different names share a camera")
	}
}

func TestCameraSystemRunsOutOfSlots(t *testing.T) {
	cs := newTestCameraSystem(t)

	if _, err := cs.Acquire("one"); err != nil {
		t.Fatalf("Acquire one: %v", err)
	}
	if _, err := cs.Acquire("two"); err != nil {
		t.Fatalf("Acquire two: %v", err)
	}
	if _, err := cs.Acquire("three"); err == nil {
		t.Fatal("expected acquisition past capacity to fail")
	}
}

func TestCameraSystemReleaseRecyclesSlot(t *testing.T) {
	cs := newTestCameraSystem(t)

	if _, err := cs.Acquire("one"); err != nil {
		t.Fatalf("Acquire one: %v", err)
	}
	if _, err := cs.Acquire("two"); err != nil {
		t.Fatalf("Acquire two: %v", err)
	}

	cs.Release("one")

	if _, err := cs.Acquire("three"); err != nil {
		t.Fatalf("Acquire after release: %v", err)
	}
}
