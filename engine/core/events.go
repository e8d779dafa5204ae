package core

import "sync"

// EventCode identifies the kind of an event. Engine internal codes stay
// below 255; applications should use codes beyond that.
type EventCode uint16

const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT EventCode = 0x01
	// Keyboard key pressed. Data is a *KeyEvent.
	EVENT_CODE_KEY_PRESSED EventCode = 0x02
	// Keyboard key released. Data is a *KeyEvent.
	EVENT_CODE_KEY_RELEASED EventCode = 0x03
	// Mouse button pressed. Data is a *MouseEvent.
	EVENT_CODE_BUTTON_PRESSED EventCode = 0x04
	// Mouse button released. Data is a *MouseEvent.
	EVENT_CODE_BUTTON_RELEASED EventCode = 0x05
	// Mouse moved. Data is a *MouseEvent with the new position.
	EVENT_CODE_MOUSE_MOVED EventCode = 0x06
	// Mouse wheel scrolled. Data is a *MouseEvent with the scroll delta.
	EVENT_CODE_MOUSE_WHEEL EventCode = 0x07
	// Resized/resolution changed from the OS. Data is a *SystemEvent.
	EVENT_CODE_RESIZED EventCode = 0x08
	// A watched asset file changed on disk. Data is an *AssetEvent.
	EVENT_CODE_ASSET_MODIFIED EventCode = 0x09

	MAX_EVENT_CODE EventCode = 0xFF
)

// This should be more than enough codes...
const MAX_MESSAGE_CODES = 16384

// EventContext carries one fired event to its listeners.
type EventContext struct {
	Type EventCode
	Data interface{}
}

// KeyEvent is the payload of key press/release events.
type KeyEvent struct {
	KeyCode KeyCode
}

// MouseEvent is the payload of mouse button/move/wheel events.
type MouseEvent struct {
	Button Button
	PosX   uint16
	PosY   uint16
	Scroll int8
}

// SystemEvent is the payload of window-level events.
type SystemEvent struct {
	WindowWidth  uint32
	WindowHeight uint32
}

// AssetEvent is the payload of asset change notifications.
type AssetEvent struct {
	Path string
}

// FnOnEvent is invoked for every fired event of a registered code.
type FnOnEvent func(context EventContext)

type eventSystemState struct {
	// Lookup table for event codes.
	registered [MAX_MESSAGE_CODES][]FnOnEvent
}

var onceEvent sync.Once
var eventInitialized bool = false
var eventState *eventSystemState = nil

func EventSystemInitialize() bool {
	onceEvent.Do(func() {
		eventState = &eventSystemState{}
	})
	eventInitialized = true
	return true
}

func EventSystemShutdown() error {
	if eventState != nil {
		for i := 0; i < MAX_MESSAGE_CODES; i++ {
			eventState.registered[i] = nil
		}
	}
	eventInitialized = false
	return nil
}

// EventRegister adds a listener for the provided code. Listeners are
// invoked in registration order.
func EventRegister(code EventCode, onEvent FnOnEvent) bool {
	if !eventInitialized {
		return false
	}
	eventState.registered[code] = append(eventState.registered[code], onEvent)
	return true
}

// EventFire synchronously delivers the event to every listener of its
// code. Delivery happens on the caller's goroutine; the frame loop fires
// all engine events, so listeners never observe concurrent calls.
func EventFire(context EventContext) bool {
	if !eventInitialized {
		return false
	}
	listeners := eventState.registered[context.Type]
	if len(listeners) == 0 {
		return false
	}
	for _, fn := range listeners {
		fn(context)
	}
	return true
}
