package core

import "testing"

func setupInput(t *testing.T) {
	t.Helper()
	if err := InputInitialize(); err != nil {
		t.Fatalf("InputInitialize: %v", err)
	}
	// The state is a package singleton; start each test neutral.
	*inputState = InputState{}
	t.Cleanup(func() {
		*inputState = InputState{}
		InputShutdown()
	})
}

func TestInputKeySnapshotRotation(t *testing.T) {
	setupInput(t)

	InputProcessKey(KEY_W, true)
	if !InputIsKeyDown(KEY_W) {
		t.Fatal("key not down after press")
	}
	if InputWasKeyDown(KEY_W) {
		t.Fatal("previous snapshot already shows the press")
	}

	// End of frame: current state becomes the previous one.
	InputUpdate(0.016)
	if !InputWasKeyDown(KEY_W) {
		t.Fatal("press did not rotate into the previous snapshot")
	}

	InputProcessKey(KEY_W, false)
	if !InputIsKeyUp(KEY_W) || !InputWasKeyDown(KEY_W) {
		t.Fatal("release edge not observable as up-now/down-before")
	}
}

func TestInputMouseDeltaSpansOneFrame(t *testing.T) {
	setupInput(t)

	InputProcessMouseMove(100, 50)
	InputUpdate(0.016)

	InputProcessMouseMove(130, 45)
	dx, dy := InputGetMouseDelta()
	if dx != 30 || dy != -5 {
		t.Fatalf("delta = (%d, %d), want (30, -5)", dx, dy)
	}

	// A new frame with no motion has zero delta.
	InputUpdate(0.016)
	dx, dy = InputGetMouseDelta()
	if dx != 0 || dy != 0 {
		t.Fatalf("idle delta = (%d, %d), want (0, 0)", dx, dy)
	}
}

func TestInputIgnoredWhenUninitialized(t *testing.T) {
	// Never initialized in this test; every call must be a safe no-op.
	InputShutdown()

	if err := InputProcessKey(KEY_A, true); err != nil {
		t.Fatalf("InputProcessKey: %v", err)
	}
	if InputIsKeyDown(KEY_A) {
		t.Fatal("uninitialized input reported a key down")
	}
}
