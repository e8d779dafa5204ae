package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/spaghettifunk/filare/engine/core"
	"github.com/spaghettifunk/filare/engine/platform"
	"github.com/spaghettifunk/filare/engine/renderer/metadata"
)

// Segment endpoints arrive in pixel coordinates with the origin at the
// top left; the vertex shader rescales them to GL clip space and flips
// y so that pixel (0,0) lands in the top-left corner of the window.
var (
	vertexShaderSource = `
		#version 410
		in vec2 vp;
		uniform vec2 viewport;
		void main() {
			vec2 ndc = vp / viewport * 2.0 - 1.0;
			gl_Position = vec4(ndc.x, -ndc.y, 0.0, 1.0);
		}
	` + "\x00"

	fragmentShaderSource = `
		#version 410
		uniform vec4 line_colour;
		out vec4 frag_colour;
		void main() {
			frag_colour = line_colour;
		}
	` + "\x00"
)

type Backend struct {
	platform *platform.Platform

	program         uint32
	vao             uint32
	vbo             uint32
	viewportUniform int32
	colourUniform   int32

	framebufferWidth  uint32
	framebufferHeight uint32

	// scratch buffer reused across frames to avoid per-frame allocation
	vertices []float32
}

func New(p *platform.Platform) *Backend {
	return &Backend{
		platform: p,
	}
}

func (b *Backend) Initialize(appName string, appWidth, appHeight uint32) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize opengl: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	core.LogInfo("OpenGL version %s", version)

	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return err
	}
	b.program = program
	gl.UseProgram(b.program)

	b.viewportUniform = gl.GetUniformLocation(b.program, gl.Str("viewport\x00"))
	b.colourUniform = gl.GetUniformLocation(b.program, gl.Str("line_colour\x00"))

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)

	vertAttrib := uint32(gl.GetAttribLocation(b.program, gl.Str("vp\x00")))
	gl.EnableVertexAttribArray(vertAttrib)
	gl.VertexAttribPointer(vertAttrib, 2, gl.FLOAT, false, 0, gl.PtrOffset(0))

	gl.ClearColor(1.0, 1.0, 1.0, 1.0)

	b.framebufferWidth, b.framebufferHeight = b.platform.FramebufferSize()

	return nil
}

func (b *Backend) Shutdown() error {
	gl.DeleteBuffers(1, &b.vbo)
	gl.DeleteVertexArrays(1, &b.vao)
	gl.DeleteProgram(b.program)
	return nil
}

func (b *Backend) Resized(width, height uint16) error {
	// Uses the framebuffer size rather than the window size so high-DPI
	// scaling is accounted for.
	b.framebufferWidth, b.framebufferHeight = b.platform.FramebufferSize()
	return nil
}

func (b *Backend) BeginFrame(deltaTime float64) error {
	gl.Viewport(0, 0, int32(b.framebufferWidth), int32(b.framebufferHeight))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	return nil
}

func (b *Backend) DrawLines(segments []metadata.Segment, style metadata.LineStyle) error {
	if len(segments) == 0 {
		return nil
	}

	b.vertices = b.vertices[:0]
	for _, s := range segments {
		b.vertices = append(b.vertices, s.P0.X, s.P0.Y, s.P1.X, s.P1.Y)
	}

	gl.UseProgram(b.program)
	gl.Uniform2f(b.viewportUniform, float32(b.framebufferWidth), float32(b.framebufferHeight))
	gl.Uniform4f(b.colourUniform, style.Color[0], style.Color[1], style.Color[2], style.Color[3])
	gl.LineWidth(style.Width)

	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(b.vertices)*4, gl.Ptr(b.vertices), gl.DYNAMIC_DRAW)

	gl.DrawArrays(gl.LINES, 0, int32(len(segments)*2))

	return nil
}

func (b *Backend) EndFrame(deltaTime float64) error {
	b.platform.SwapBuffers()
	return nil
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		return 0, fmt.Errorf("failed to link program: %v", log)
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		return 0, fmt.Errorf("failed to compile %v: %v", source, log)
	}

	return shader, nil
}
