package text

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
	"golang.org/x/image/font"

	"github.com/Faultbox/primview/internal/assets/shaders"
	"github.com/Faultbox/primview/internal/engine/shader"
	"github.com/Faultbox/primview/internal/logger"
	"github.com/Faultbox/primview/pkg/math"
)

// maxCachedStrings bounds the texture cache. Overlay text rarely changes,
// so the cache is simply flushed when it fills.
const maxCachedStrings = 64

type cacheKey struct {
	text   string
	colour [3]float32
}

type glyphTexture struct {
	id            uint32
	width, height int
}

// Overlay draws text in window coordinates with the origin at the top left.
type Overlay struct {
	face font.Face

	program uint32
	projLoc int32
	texLoc  int32
	vao     uint32
	vbo     uint32

	screenW, screenH int
	colour           [3]float32
	projection       math.Mat4

	cache map[cacheKey]*glyphTexture
	log   *zap.Logger
}

// NewOverlay compiles the text program and creates the quad buffers.
// A GL context must be current.
func NewOverlay(face font.Face) (*Overlay, error) {
	program, err := shader.CompileProgram(shaders.TextVertexShader, shaders.TextFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("text program: %w", err)
	}

	o := &Overlay{
		face:    face,
		program: program,
		projLoc: shader.GetUniform(program, "projection"),
		texLoc:  shader.GetUniform(program, "glyphs"),
		colour:  [3]float32{1, 1, 1},
		cache:   make(map[cacheKey]*glyphTexture),
		log:     logger.Named("text"),
	}

	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 6*4*4, nil, gl.DYNAMIC_DRAW)

	// Position (location = 0), UV (location = 1)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return o, nil
}

// SetScreenSize sets the logical window size text positions refer to.
func (o *Overlay) SetScreenSize(width, height int) {
	o.screenW = max(width, 1)
	o.screenH = max(height, 1)
	o.projection = screenProjection(o.screenW, o.screenH)
}

// SetColour sets the colour used by later RenderText calls.
func (o *Overlay) SetColour(r, g, b float32) {
	o.colour = [3]float32{r, g, b}
}

// RenderText draws text with its top-left corner at (x, y).
func (o *Overlay) RenderText(x, y float32, s string) error {
	if s == "" {
		return nil
	}
	if o.screenW == 0 {
		return fmt.Errorf("text: screen size not set")
	}

	tex := o.texture(s)
	quad := quadVertices(x, y, float32(tex.width), float32(tex.height))

	// Text is always filled and drawn over the scene
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	// Rasterized pixels are premultiplied
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(o.program)
	gl.UniformMatrix4fv(o.projLoc, 1, false, o.projection.Ptr())
	gl.Uniform1i(o.texLoc, 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)

	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(quad)*4, gl.Ptr(&quad[0]))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	return nil
}

func (o *Overlay) texture(s string) *glyphTexture {
	key := cacheKey{text: s, colour: o.colour}
	if tex, ok := o.cache[key]; ok {
		return tex
	}
	if len(o.cache) >= maxCachedStrings {
		o.flush()
	}

	img := Rasterize(o.face, s, toRGBA(o.colour))
	tex := upload(img)
	o.cache[key] = tex

	o.log.Debug("text texture created",
		zap.String("text", s),
		zap.Int("width", tex.width),
		zap.Int("height", tex.height),
	)
	return tex
}

func upload(img *image.RGBA) *glyphTexture {
	b := img.Bounds()
	tex := &glyphTexture{width: b.Dx(), height: b.Dy()}

	gl.GenTextures(1, &tex.id)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(tex.width), int32(tex.height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

func (o *Overlay) flush() {
	for key, tex := range o.cache {
		gl.DeleteTextures(1, &tex.id)
		delete(o.cache, key)
	}
}

// Delete releases the program, buffers and cached textures.
func (o *Overlay) Delete() {
	o.flush()
	gl.DeleteVertexArrays(1, &o.vao)
	gl.DeleteBuffers(1, &o.vbo)
	gl.DeleteProgram(o.program)
}

// screenProjection maps window pixels, y down, to clip space.
func screenProjection(width, height int) math.Mat4 {
	return math.Ortho(0, float32(width), float32(height), 0, -1, 1)
}

// quadVertices returns two triangles as x, y, u, v. Image row 0 is the top
// of the text, so v grows downwards with y.
func quadVertices(x, y, w, h float32) [24]float32 {
	x1, y1 := x+w, y+h
	return [24]float32{
		x, y, 0, 0,
		x, y1, 0, 1,
		x1, y1, 1, 1,
		x, y, 0, 0,
		x1, y1, 1, 1,
		x1, y, 1, 0,
	}
}

func toRGBA(c [3]float32) color.RGBA {
	return color.RGBA{
		R: unitToByte(c[0]),
		G: unitToByte(c[1]),
		B: unitToByte(c[2]),
		A: 0xff,
	}
}

func unitToByte(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xff
	default:
		return uint8(v*255 + 0.5)
	}
}
