package views

import (
	"testing"

	"github.com/spaghettifunk/filare/engine/math"
	"github.com/spaghettifunk/filare/engine/renderer/components"
	"github.com/spaghettifunk/filare/engine/renderer/metadata"
)

const tolerance = 1e-3

func testViewport() Viewport {
	return Viewport{Width: 1920, Height: 1080}
}

func testView() *WireframeView {
	return NewWireframeView(
		math.DegToRad(45),
		1.0,
		10000.0,
		math.NewPose(math.NewVec3Zero(), math.NewVec3Zero()),
		1.0,
		metadata.DefaultLineStyle(),
	)
}

func triangle(t *testing.T, points []math.Vec3) *metadata.Mesh {
	t.Helper()
	mesh, err := metadata.NewMesh("triangle", points, [][]uint32{{1, 2, 3}})
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	return mesh
}

func TestToScreenMapsCornersAndCenter(t *testing.T) {
	vp := testViewport()

	center, clipped := ToScreen(math.NewVec3(0, 0, 0.5), vp)
	if clipped {
		t.Fatal("center point reported clipped")
	}
	if !center.Compare(math.NewVec2(960, 540), tolerance) {
		t.Fatalf("center mapped to %+v", center)
	}

	low, _ := ToScreen(math.NewVec3(-1, -1, 0.5), vp)
	if !low.Compare(math.NewVec2(0, 0), tolerance) {
		t.Fatalf("(-1,-1) mapped to %+v", low)
	}

	high, _ := ToScreen(math.NewVec3(1, 1, 0.5), vp)
	if !high.Compare(math.NewVec2(1920, 1080), tolerance) {
		t.Fatalf("(1,1) mapped to %+v", high)
	}
}

func TestToScreenIsLinearInViewportSize(t *testing.T) {
	ndc := math.NewVec3(0.25, -0.5, 0)

	small, _ := ToScreen(ndc, Viewport{Width: 100, Height: 50})
	large, _ := ToScreen(ndc, Viewport{Width: 200, Height: 100})

	if !large.Compare(math.NewVec2(small.X*2, small.Y*2), tolerance) {
		t.Fatalf("doubling the viewport gave %+v from %+v", large, small)
	}
}

func TestToScreenClipFlag(t *testing.T) {
	vp := testViewport()

	if _, clipped := ToScreen(math.NewVec3(0, 0, 0.999), vp); clipped {
		t.Fatal("depth just inside the far plane reported clipped")
	}
	if _, clipped := ToScreen(math.NewVec3(0, 0, 1.0), vp); !clipped {
		t.Fatal("depth exactly at the limit not reported clipped")
	}
	if _, clipped := ToScreen(math.NewVec3(0, 0, 1.5), vp); !clipped {
		t.Fatal("depth past the limit not reported clipped")
	}
}

func TestBuildPacketRendersTriangleInFrontOfCamera(t *testing.T) {
	mesh := triangle(t, []math.Vec3{
		math.NewVec3(0, 0, 0),
		math.NewVec3(1, 0, 0),
		math.NewVec3(0, 1, 0),
	})

	camera := components.NewCamera()
	camera.SetPosition(math.NewVec3(0, 0, -5))

	vp := testViewport()
	packet := testView().BuildPacket(mesh, camera, vp, 0.016)

	if len(packet.Segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(packet.Segments))
	}
	for i, s := range packet.Segments {
		for _, p := range []math.Vec2{s.P0, s.P1} {
			if p.X < 0 || p.X > vp.Width || p.Y < 0 || p.Y > vp.Height {
				t.Fatalf("segment %d endpoint %+v is off screen", i, p)
			}
		}
	}

	// The origin vertex sits on the camera axis and must land dead
	// center.
	if !packet.Segments[0].P0.Compare(math.NewVec2(960, 540), 0.5) {
		t.Fatalf("origin vertex mapped to %+v", packet.Segments[0].P0)
	}
}

func TestBuildPacketSkipsFullyClippedFace(t *testing.T) {
	// Everything behind the camera.
	mesh := triangle(t, []math.Vec3{
		math.NewVec3(0, 0, -10),
		math.NewVec3(1, 0, -10),
		math.NewVec3(0, 1, -10),
	})

	packet := testView().BuildPacket(mesh, components.NewCamera(), testViewport(), 0.016)
	if len(packet.Segments) != 0 {
		t.Fatalf("expected no segments, got %d", len(packet.Segments))
	}
}

func TestBuildPacketKeepsPartiallyClippedFace(t *testing.T) {
	// One vertex behind the camera, two in front.
	mesh := triangle(t, []math.Vec3{
		math.NewVec3(0, 0, -5),
		math.NewVec3(1, 0, 5),
		math.NewVec3(0, 1, 5),
	})

	packet := testView().BuildPacket(mesh, components.NewCamera(), testViewport(), 0.016)
	if len(packet.Segments) != 3 {
		t.Fatalf("expected all 3 edges of a partially visible face, got %d", len(packet.Segments))
	}
}

func TestBuildPacketSurvivesDegenerateProjection(t *testing.T) {
	// Vertices on the eye plane divide by (almost) zero.
	mesh := triangle(t, []math.Vec3{
		math.NewVec3(0, 0, 0),
		math.NewVec3(1, 0, 0),
		math.NewVec3(0, 1, 0),
	})

	packet := testView().BuildPacket(mesh, components.NewCamera(), testViewport(), 0.016)
	if len(packet.Segments) != 0 {
		t.Fatalf("expected degenerate face to be dropped, got %d segments", len(packet.Segments))
	}
}

func TestBuildPacketObjectPoseMovesMesh(t *testing.T) {
	mesh := triangle(t, []math.Vec3{
		math.NewVec3(0, 0, 0),
		math.NewVec3(1, 0, 0),
		math.NewVec3(0, 1, 0),
	})

	camera := components.NewCamera()

	// With the object pushed out to z=100 the camera at the origin
	// sees it; with the identity pose the mesh sits on the eye plane
	// and is dropped.
	view := testView()
	view.ObjectPose = math.NewPose(math.NewVec3(0, 0, 100), math.NewVec3Zero())

	packet := view.BuildPacket(mesh, camera, testViewport(), 0.016)
	if len(packet.Segments) != 3 {
		t.Fatalf("expected 3 segments for the placed object, got %d", len(packet.Segments))
	}
}
