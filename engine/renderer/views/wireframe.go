package views

import (
	"github.com/spaghettifunk/filare/engine/core"
	"github.com/spaghettifunk/filare/engine/math"
	"github.com/spaghettifunk/filare/engine/renderer/components"
	"github.com/spaghettifunk/filare/engine/renderer/metadata"
)

// Homogeneous w below this magnitude cannot be divided through safely.
const degenerateW float32 = 1e-6

// Viewport is the drawable surface size in pixels.
type Viewport struct {
	Width  float32
	Height float32
}

func (vp Viewport) AspectRatio() float32 {
	return vp.Width / vp.Height
}

// WireframeView turns a mesh, a camera and a viewport into line
// segments. It owns the projection parameters and the placement of the
// single object in the scene.
type WireframeView struct {
	// FOV is the vertical field of view in radians.
	FOV      float32
	NearClip float32
	FarClip  float32

	ObjectPose  math.Pose
	ObjectScale float32

	Style metadata.LineStyle

	warnedDegenerate bool
}

func NewWireframeView(fovRadians, nearClip, farClip float32, pose math.Pose, scale float32, style metadata.LineStyle) *WireframeView {
	return &WireframeView{
		FOV:         fovRadians,
		NearClip:    nearClip,
		FarClip:     farClip,
		ObjectPose:  pose,
		ObjectScale: scale,
		Style:       style,
	}
}

// Transform builds the full object-to-clip matrix for one frame. The
// perspective matrix is rebuilt every time so viewport resizes take
// effect immediately.
func (v *WireframeView) Transform(camera *components.Camera, viewport Viewport) math.Mat4 {
	clip := math.NewMat4Perspective(v.FOV, viewport.AspectRatio(), v.NearClip, v.FarClip)
	model := v.ObjectPose.Matrix(v.ObjectScale)
	return clip.Mul(camera.GetView()).Mul(model)
}

// ToScreen maps a normalized device coordinate to pixel space. The
// returned flag is true when the point lies at or behind the eye plane
// or beyond the far plane and must not be drawn.
func ToScreen(ndc math.Vec3, viewport Viewport) (math.Vec2, bool) {
	screen := math.NewVec2(
		(ndc.X+1.0)*0.5*viewport.Width,
		(ndc.Y+1.0)*0.5*viewport.Height,
	)
	return screen, ndc.Z >= 1.0
}

type projectedVertex struct {
	screen  math.Vec2
	clipped bool
}

// project transforms every mesh vertex into pixel space, flagging
// vertices that fall outside the visible depth range.
func (v *WireframeView) project(mesh *metadata.Mesh, transform math.Mat4, viewport Viewport) []projectedVertex {
	out := make([]projectedVertex, len(mesh.Points))
	for i, p := range mesh.Points {
		h := transform.MulVec4(p.ToVec4(1.0))

		w := h.W
		if w < degenerateW && w > -degenerateW {
			if !v.warnedDegenerate {
				core.LogWarn("mesh %q: vertex %d projects to w=%g, treating as clipped", mesh.Name, i, w)
				v.warnedDegenerate = true
			}
			out[i] = projectedVertex{clipped: true}
			continue
		}

		ndc := math.NewVec3(h.X/w, h.Y/w, h.Z/w)
		if !ndc.IsFinite() {
			out[i] = projectedVertex{clipped: true}
			continue
		}

		screen, clipped := ToScreen(ndc, viewport)
		out[i] = projectedVertex{screen: screen, clipped: clipped}
	}
	return out
}

// BuildPacket projects the mesh through the camera and collects one
// segment per face edge. A face is dropped only when every one of its
// vertices is clipped; a partially clipped face keeps all of its edges,
// which lets lines run off screen instead of popping out early.
func (v *WireframeView) BuildPacket(mesh *metadata.Mesh, camera *components.Camera, viewport Viewport, deltaTime float64) *metadata.RenderPacket {
	transform := v.Transform(camera, viewport)
	verts := v.project(mesh, transform, viewport)

	segments := make([]metadata.Segment, 0, 3*len(mesh.Faces))
	for _, face := range mesh.Faces {
		allClipped := true
		for _, idx := range face {
			if !verts[idx].clipped {
				allClipped = false
				break
			}
		}
		if allClipped {
			continue
		}

		for i := range face {
			a := verts[face[i]]
			b := verts[face[(i+1)%len(face)]]
			segments = append(segments, metadata.Segment{P0: a.screen, P1: b.screen})
		}
	}

	return &metadata.RenderPacket{
		DeltaTime: deltaTime,
		Segments:  segments,
		Style:     v.Style,
	}
}
