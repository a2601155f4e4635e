package mesh

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/primview/internal/logger"
)

// ErrUnknownMesh is returned when drawing a name that was never added.
var ErrUnknownMesh = errors.New("unknown mesh")

// Built-in mesh names.
const (
	TeapotName = "teapot"
	CubeName   = "cube"
)

// gpuMesh holds the buffers of one uploaded mesh.
type gpuMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// Registry uploads meshes to the GPU and draws them by name.
type Registry struct {
	meshes map[string]*gpuMesh
	log    *zap.Logger
}

// NewRegistry creates an empty registry. A GL context must be current.
func NewRegistry() *Registry {
	return &Registry{
		meshes: make(map[string]*gpuMesh),
		log:    logger.Named("mesh"),
	}
}

// AddBuiltins uploads the teapot and the unit cube.
func (r *Registry) AddBuiltins(teapotDetail int) error {
	if err := r.Add(TeapotName, Teapot(teapotDetail)); err != nil {
		return err
	}
	return r.Add(CubeName, Cube(1))
}

// CreateSphere builds and uploads a UV sphere under name.
func (r *Registry) CreateSphere(name string, radius float32, precision int) error {
	if radius <= 0 {
		return fmt.Errorf("sphere %s: radius must be positive, got %g", name, radius)
	}
	return r.Add(name, Sphere(radius, precision))
}

// Add uploads m under name, replacing any mesh already stored there.
func (r *Registry) Add(name string, m *Mesh) error {
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return fmt.Errorf("mesh %s: no geometry", name)
	}

	g := &gpuMesh{
		indexCount: int32(len(m.Indices)),
	}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*int(VertexSize), unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	// Position (location = 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, VertexSize, 0)
	gl.EnableVertexAttribArray(0)

	// Normal (location = 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, VertexSize, 3*4)
	gl.EnableVertexAttribArray(1)

	// TexCoord (location = 2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, VertexSize, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if old, ok := r.meshes[name]; ok {
		old.delete()
	}
	r.meshes[name] = g

	r.log.Debug("mesh uploaded",
		zap.String("name", name),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("triangles", m.TriangleCount()),
		zap.Uint32("vao", g.vao),
	)
	return nil
}

// Draw issues one indexed draw call for the named mesh.
func (r *Registry) Draw(name string) error {
	g, ok := r.meshes[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMesh, name)
	}
	gl.BindVertexArray(g.vao)
	gl.DrawElements(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	return nil
}

// Delete releases every mesh.
func (r *Registry) Delete() {
	for name, g := range r.meshes {
		g.delete()
		delete(r.meshes, name)
	}
}

func (g *gpuMesh) delete() {
	gl.DeleteVertexArrays(1, &g.vao)
	gl.DeleteBuffers(1, &g.vbo)
	gl.DeleteBuffers(1, &g.ebo)
}
