package renderer

import "testing"

func TestInitializeRejectsUnsupportedBackend(t *testing.T) {
	for _, rt := range []RendererType{Vulkan, DirectX, Metal} {
		if err := Initialize(rt, "app", 1280, 720, nil); err == nil {
			t.Fatalf("backend %s accepted, want error", rt)
		}
	}
}
