package main

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/stewi1014/juliaview/engine"
)

//go:embed shaders/blit.vert
var blitVertexShader string

//go:embed shaders/blit.frag
var blitFragmentShader string

func glDebugMessage(
	source,
	gltype,
	id,
	severity uint32,
	length int32,
	message string,
	user unsafe.Pointer,
) {
	level := slog.LevelDebug
	switch severity {
	case gl.DEBUG_SEVERITY_HIGH:
		level = slog.LevelError
	case gl.DEBUG_SEVERITY_MEDIUM:
		level = slog.LevelWarn
	}

	typeStr := "other"
	switch gltype {
	case gl.DEBUG_TYPE_ERROR:
		typeStr = "error"
	case gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR:
		typeStr = "deprecatedBehavior"
	case gl.DEBUG_TYPE_PERFORMANCE:
		typeStr = "performance"
	case gl.DEBUG_TYPE_PORTABILITY:
		typeStr = "portability"
	case gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR:
		typeStr = "undefinedBehavior"
	}

	slog.Log(context.Background(), level, "gl debug", "type", typeStr, "id", id, "message", message)
}

// blitter draws an engine.Frame over the whole GL viewport.
// It must be created and used with the same GL context current.
type blitter struct {
	vao     uint32
	vbo     uint32
	program uint32
	texture uint32

	frameLoc    int32
	viewportLoc int32

	width, height int32
	allocated     bool
}

// newBlitter initialises GL. The context it is going to draw with must be
// current.
func newBlitter(debug bool) (*blitter, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl.Init: %w", err)
	}
	slog.Info("OpenGL initialised", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	if debug {
		gl.DebugMessageCallback(glDebugMessage, nil)
		gl.Enable(gl.DEBUG_OUTPUT)
	}

	b := &blitter{}

	// One triangle covering the whole clip space.
	verticies := []float32{
		-1, -1,
		3, -1,
		-1, 3,
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verticies)*4, gl.Ptr(verticies), gl.STATIC_DRAW)

	if err := b.loadProgram(); err != nil {
		return nil, err
	}

	gl.GenTextures(1, &b.texture)
	gl.BindTexture(gl.TEXTURE_2D, b.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	return b, nil
}

func (b *blitter) loadProgram() error {
	vertexShader, err := compileShader(blitVertexShader+"\x00", gl.VERTEX_SHADER)
	if err != nil {
		return err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(blitFragmentShader+"\x00", gl.FRAGMENT_SHADER)
	if err != nil {
		return err
	}
	defer gl.DeleteShader(fragmentShader)

	b.program = gl.CreateProgram()
	gl.AttachShader(b.program, vertexShader)
	gl.AttachShader(b.program, fragmentShader)
	gl.BindFragDataLocation(b.program, 0, gl.Str("outputColor\x00"))
	gl.LinkProgram(b.program)

	var status int32
	gl.GetProgramiv(b.program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetProgramiv(b.program, gl.INFO_LOG_LENGTH, &l)

		log := strings.Repeat("\x00", int(l+1))
		gl.GetProgramInfoLog(b.program, l, nil, gl.Str(log))
		return fmt.Errorf("failed to link program: %v", log)
	}

	gl.UseProgram(b.program)
	b.frameLoc = gl.GetUniformLocation(b.program, gl.Str("frame\x00"))
	b.viewportLoc = gl.GetUniformLocation(b.program, gl.Str("viewport\x00"))

	vertexAttrib := uint32(gl.GetAttribLocation(b.program, gl.Str("vert\x00")))
	gl.EnableVertexAttribArray(vertexAttrib)
	gl.VertexAttribPointerWithOffset(vertexAttrib, 2, gl.FLOAT, false, 2*4, 0)

	return nil
}

// draw uploads f and draws it into a viewport of width x height pixels.
func (b *blitter) draw(f *engine.Frame, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, b.texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	if !b.allocated || b.width != int32(f.Width) || b.height != int32(f.Height) {
		b.width, b.height = int32(f.Width), int32(f.Height)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, b.width, b.height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(f.Pix))
		b.allocated = true
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, b.width, b.height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(f.Pix))
	}

	gl.UseProgram(b.program)
	gl.Uniform1i(b.frameLoc, 0)
	gl.Uniform2f(b.viewportLoc, float32(width), float32(height))
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	defer runtime.KeepAlive(source)
	cstring, free := gl.Strs(source)
	defer free()

	shader := gl.CreateShader(shaderType)
	gl.ShaderSource(shader, 1, cstring, nil)
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &l)

		log := strings.Repeat("\x00", int(l+1))
		gl.GetShaderInfoLog(shader, l, nil, gl.Str(log))
		return 0, fmt.Errorf("shader\n\"\n%v\n\"\nfailed to compile: %v", source, log)
	}

	return shader, nil
}
