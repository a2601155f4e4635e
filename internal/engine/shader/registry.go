package shader

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/primview/internal/logger"
	"github.com/Faultbox/primview/pkg/math"
)

// ErrUnknownProgram is returned when a program name was never loaded.
var ErrUnknownProgram = errors.New("unknown shader program")

// Program is a linked GL program with its uniform location cache.
type Program struct {
	Name string
	ID   uint32

	locations map[string]int32
	blocks    map[string]bool
}

func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := GetUniform(p.ID, name)
	p.locations[name] = loc
	return loc
}

// uniformBlock is a UBO shared by every program that declares the block.
type uniformBlock struct {
	buffer  uint32
	binding uint32
	size    int
}

// bindingTable hands out uniform buffer binding points, one per block name.
type bindingTable struct {
	next   uint32
	byName map[string]uint32
}

func (t *bindingTable) assign(name string) (point uint32, fresh bool) {
	if t.byName == nil {
		t.byName = make(map[string]uint32)
	}
	if p, ok := t.byName[name]; ok {
		return p, false
	}
	p := t.next
	t.byName[name] = p
	t.next++
	return p, true
}

// Registry keeps named programs and the uniform buffers they read.
// Setters act on the program selected by the last Use.
type Registry struct {
	src      SourceLoader
	programs map[string]*Program
	current  *Program

	bindings bindingTable
	blocks   map[string]*uniformBlock

	log *zap.Logger
}

// NewRegistry creates an empty registry reading sources through src.
func NewRegistry(src SourceLoader) *Registry {
	return &Registry{
		src:      src,
		programs: make(map[string]*Program),
		blocks:   make(map[string]*uniformBlock),
		log:      logger.Named("shader"),
	}
}

// Load compiles the program from the two source paths and stores it under
// name, replacing any program already there.
func (r *Registry) Load(name, vertexPath, fragmentPath string) error {
	id, err := LoadProgram(r.src, vertexPath, fragmentPath)
	if err != nil {
		return fmt.Errorf("program %s: %w", name, err)
	}

	if old, ok := r.programs[name]; ok {
		gl.DeleteProgram(old.ID)
		if r.current == old {
			r.current = nil
		}
	}
	r.programs[name] = &Program{
		Name:      name,
		ID:        id,
		locations: make(map[string]int32),
		blocks:    make(map[string]bool),
	}

	r.log.Info("program loaded",
		zap.String("name", name),
		zap.Uint32("id", id),
		zap.String("vertex", vertexPath),
		zap.String("fragment", fragmentPath),
	)
	return nil
}

// Program returns the named program.
func (r *Registry) Program(name string) (*Program, error) {
	p, ok := r.programs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProgram, name)
	}
	return p, nil
}

// Use makes the named program current.
func (r *Registry) Use(name string) error {
	p, err := r.Program(name)
	if err != nil {
		return err
	}
	gl.UseProgram(p.ID)
	r.current = p
	return nil
}

// SetFloat sets a float uniform on the current program.
func (r *Registry) SetFloat(name string, v float32) {
	if loc := r.uniform(name); loc >= 0 {
		gl.Uniform1f(loc, v)
	}
}

// SetVec3 sets a vec3 uniform on the current program.
func (r *Registry) SetVec3(name string, v math.Vec3) {
	if loc := r.uniform(name); loc >= 0 {
		gl.Uniform3f(loc, v.X, v.Y, v.Z)
	}
}

func (r *Registry) uniform(name string) int32 {
	if r.current == nil {
		r.log.Debug("uniform set with no program in use", zap.String("uniform", name))
		return -1
	}
	loc := r.current.location(name)
	if loc < 0 {
		r.log.Debug("uniform not active",
			zap.String("program", r.current.Name),
			zap.String("uniform", name),
		)
	}
	return loc
}

// SetUniformBlock uploads data into the buffer backing the named block and
// binds it for the current program.
func (r *Registry) SetUniformBlock(block string, data []float32) error {
	if r.current == nil {
		return fmt.Errorf("uniform block %s: no program in use", block)
	}
	if len(data) == 0 {
		return fmt.Errorf("uniform block %s: empty data", block)
	}

	ub := r.blocks[block]
	if ub == nil {
		point, _ := r.bindings.assign(block)
		ub = &uniformBlock{binding: point}
		gl.GenBuffers(1, &ub.buffer)
		r.blocks[block] = ub
		r.log.Debug("uniform buffer created",
			zap.String("block", block),
			zap.Uint32("binding", point),
		)
	}

	p := r.current
	if !p.blocks[block] {
		idx := gl.GetUniformBlockIndex(p.ID, gl.Str(block+"\x00"))
		if idx == gl.INVALID_INDEX {
			return fmt.Errorf("uniform block %s: not declared in program %s", block, p.Name)
		}
		gl.UniformBlockBinding(p.ID, idx, ub.binding)
		p.blocks[block] = true
	}

	size := len(data) * 4
	gl.BindBuffer(gl.UNIFORM_BUFFER, ub.buffer)
	if size != ub.size {
		gl.BufferData(gl.UNIFORM_BUFFER, size, gl.Ptr(data), gl.DYNAMIC_DRAW)
		ub.size = size
	} else {
		gl.BufferSubData(gl.UNIFORM_BUFFER, 0, size, gl.Ptr(data))
	}
	gl.BindBufferBase(gl.UNIFORM_BUFFER, ub.binding, ub.buffer)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
	return nil
}

// Delete releases every program and uniform buffer.
func (r *Registry) Delete() {
	for name, p := range r.programs {
		gl.DeleteProgram(p.ID)
		delete(r.programs, name)
	}
	for name, ub := range r.blocks {
		gl.DeleteBuffers(1, &ub.buffer)
		delete(r.blocks, name)
	}
	r.current = nil
}
