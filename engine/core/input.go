package core

import "sync"

type Button uint16

const (
	BUTTON_LEFT Button = iota
	BUTTON_RIGHT
	BUTTON_MIDDLE
	BUTTON_MAX_BUTTONS
)

// Key code definitions
type KeyCode uint16

const (
	KEY_BACKSPACE KeyCode = 0x08
	KEY_ENTER     KeyCode = 0x0D
	KEY_TAB       KeyCode = 0x09
	KEY_SHIFT     KeyCode = 0x10
	KEY_ESCAPE    KeyCode = 0x1B
	KEY_SPACE     KeyCode = 0x20
	KEY_END       KeyCode = 0x23
	KEY_HOME      KeyCode = 0x24
	KEY_LEFT      KeyCode = 0x25
	KEY_UP        KeyCode = 0x26
	KEY_RIGHT     KeyCode = 0x27
	KEY_DOWN      KeyCode = 0x28
	KEY_A         KeyCode = 0x41
	KEY_B         KeyCode = 0x42
	KEY_C         KeyCode = 0x43
	KEY_D         KeyCode = 0x44
	KEY_E         KeyCode = 0x45
	KEY_F         KeyCode = 0x46
	KEY_G         KeyCode = 0x47
	KEY_H         KeyCode = 0x48
	KEY_I         KeyCode = 0x49
	KEY_J         KeyCode = 0x4A
	KEY_K         KeyCode = 0x4B
	KEY_L         KeyCode = 0x4C
	KEY_M         KeyCode = 0x4D
	KEY_N         KeyCode = 0x4E
	KEY_O         KeyCode = 0x4F
	KEY_P         KeyCode = 0x50
	KEY_Q         KeyCode = 0x51
	KEY_R         KeyCode = 0x52
	KEY_S         KeyCode = 0x53
	KEY_T         KeyCode = 0x54
	KEY_U         KeyCode = 0x55
	KEY_V         KeyCode = 0x56
	KEY_W         KeyCode = 0x57
	KEY_X         KeyCode = 0x58
	KEY_Y         KeyCode = 0x59
	KEY_Z         KeyCode = 0x5A
	KEY_LSHIFT    KeyCode = 0xA0
	KEY_RSHIFT    KeyCode = 0xA1
	KEY_LCONTROL  KeyCode = 0xA2
	KEY_RCONTROL  KeyCode = 0xA3
	KEYS_MAX_KEYS KeyCode = 0x100
)

// Mouse state structure
type MouseState struct {
	X       int32
	Y       int32
	Buttons [BUTTON_MAX_BUTTONS]bool // button states (pressed/released)
}

// Keyboard state structure
type KeyboardState struct {
	Keys [KEYS_MAX_KEYS]bool
}

// Input state structure that holds current and previous states for keyboard and mouse
type InputState struct {
	KeyboardCurrent  KeyboardState
	KeyboardPrevious KeyboardState
	MouseCurrent     MouseState
	MousePrevious    MouseState
}

var onceInput sync.Once
var inputInitialized bool = false
var inputState *InputState = nil

func InputInitialize() error {
	onceInput.Do(func() {
		inputState = &InputState{}
	})
	inputInitialized = true
	LogInfo("Input subsystem initialized.")
	return nil
}

func InputShutdown() error {
	inputInitialized = false
	return nil
}

// InputUpdate rotates the current snapshots into the previous ones. It
// must run at the very end of a frame, after everything that wants to
// compare this frame's state against the last one.
func InputUpdate(deltaTime float64) error {
	if !inputInitialized {
		return nil
	}

	inputState.KeyboardPrevious = inputState.KeyboardCurrent
	inputState.MousePrevious = inputState.MouseCurrent

	return nil
}

// keyboard input
func InputIsKeyDown(key KeyCode) bool {
	if !inputInitialized {
		return false
	}
	return inputState.KeyboardCurrent.Keys[key]
}

func InputIsKeyUp(key KeyCode) bool {
	if !inputInitialized {
		return false
	}
	return !inputState.KeyboardCurrent.Keys[key]
}

func InputWasKeyDown(key KeyCode) bool {
	if !inputInitialized {
		return false
	}
	return inputState.KeyboardPrevious.Keys[key]
}

func InputWasKeyUp(key KeyCode) bool {
	if !inputInitialized {
		return false
	}
	return !inputState.KeyboardPrevious.Keys[key]
}

func InputProcessKey(key KeyCode, pressed bool) error {
	if !inputInitialized || key >= KEYS_MAX_KEYS {
		return nil
	}
	// Only handle this if the state actually changed.
	if inputState.KeyboardCurrent.Keys[key] != pressed {
		inputState.KeyboardCurrent.Keys[key] = pressed

		code := EVENT_CODE_KEY_RELEASED
		if pressed {
			code = EVENT_CODE_KEY_PRESSED
		}

		// Fire off an event for immediate processing.
		EventFire(EventContext{
			Type: code,
			Data: &KeyEvent{
				KeyCode: key,
			},
		})
	}
	return nil
}

// mouse input
func InputIsButtonDown(button Button) bool {
	if !inputInitialized {
		return false
	}
	return inputState.MouseCurrent.Buttons[button]
}

func InputIsButtonUp(button Button) bool {
	if !inputInitialized {
		return false
	}
	return !inputState.MouseCurrent.Buttons[button]
}

func InputGetMousePosition() (int32, int32) {
	if !inputInitialized {
		return 0, 0
	}
	return inputState.MouseCurrent.X, inputState.MouseCurrent.Y
}

func InputGetPreviousMousePosition() (int32, int32) {
	if !inputInitialized {
		return 0, 0
	}
	return inputState.MousePrevious.X, inputState.MousePrevious.Y
}

// InputGetMouseDelta returns the pointer motion accumulated since the
// previous frame's snapshot.
func InputGetMouseDelta() (int32, int32) {
	if !inputInitialized {
		return 0, 0
	}
	return inputState.MouseCurrent.X - inputState.MousePrevious.X,
		inputState.MouseCurrent.Y - inputState.MousePrevious.Y
}

func InputProcessButton(button Button, pressed bool) error {
	if !inputInitialized {
		return nil
	}
	// If the state changed, fire an event.
	if inputState.MouseCurrent.Buttons[button] != pressed {
		inputState.MouseCurrent.Buttons[button] = pressed

		code := EVENT_CODE_BUTTON_RELEASED
		if pressed {
			code = EVENT_CODE_BUTTON_PRESSED
		}
		EventFire(EventContext{
			Type: code,
			Data: &MouseEvent{
				Button: button,
			},
		})
	}
	return nil
}

func InputProcessMouseMove(x, y int32) error {
	if !inputInitialized {
		return nil
	}
	// Only process if actually different
	if inputState.MouseCurrent.X != x || inputState.MouseCurrent.Y != y {
		inputState.MouseCurrent.X = x
		inputState.MouseCurrent.Y = y

		EventFire(EventContext{
			Type: EVENT_CODE_MOUSE_MOVED,
			Data: &MouseEvent{
				PosX: uint16(x),
				PosY: uint16(y),
			},
		})
	}
	return nil
}

func InputProcessMouseWheel(zDelta int8) error {
	if !inputInitialized {
		return nil
	}
	EventFire(EventContext{
		Type: EVENT_CODE_MOUSE_WHEEL,
		Data: &MouseEvent{
			Scroll: zDelta,
		},
	})
	return nil
}
