// Package renderer draws scene frames with the OpenGL 2.1 fixed-function
// pipeline.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/scenery/internal/engine/lighting"
	"github.com/Faultbox/scenery/internal/engine/scene"
	"github.com/Faultbox/scenery/internal/logger"
	"github.com/Faultbox/scenery/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer owns the GL state and the GPU copies of meshes and textures.
type Renderer struct {
	config  Config
	options Options
	log     *zap.Logger

	meshes   *meshCache
	textures *textureCache

	view   math.Mat4
	lights *lighting.Buffer
}

// New initializes OpenGL. It must be called after the GL context exists.
func New(cfg Config, opts Options) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r := &Renderer{
		config:   cfg,
		log:      logger.Named("renderer"),
		meshes:   newMeshCache(),
		textures: newTextureCache(),
		view:     math.Identity(),
		lights:   lighting.NewBuffer(),
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.NORMALIZE)
	gl.ClearColor(0, 0, 0, 1)

	// Scene lights carry all the illumination.
	noAmbient := [4]float32{0, 0, 0, 1}
	gl.LightModelfv(gl.LIGHT_MODEL_AMBIENT, &noAmbient[0])

	gl.EnableClientState(gl.VERTEX_ARRAY)
	gl.EnableClientState(gl.NORMAL_ARRAY)

	r.SetOptions(opts)
	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close releases every GPU resource.
func (r *Renderer) Close() {
	r.log.Info("closing renderer",
		zap.Int("meshes", r.meshes.len()),
		zap.Int("textures", r.textures.len()))
	r.meshes.release()
	r.textures.release()
}

// Purge releases the uploaded meshes and textures so that reloaded
// resources are uploaded afresh.
func (r *Renderer) Purge() {
	r.meshes.release()
	r.textures.release()
}

// Options returns the current render toggles.
func (r *Renderer) Options() Options {
	return r.options
}

// SetOptions applies render toggles.
func (r *Renderer) SetOptions(opts Options) {
	r.options = opts

	switch opts.Polygon {
	case PolygonLine:
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	case PolygonPoint:
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.POINT)
	default:
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	switch opts.Cull {
	case CullFront:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.FRONT)
	case CullNone:
		gl.Disable(gl.CULL_FACE)
	default:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	}

	if opts.Lighting {
		gl.Enable(gl.LIGHTING)
	} else {
		gl.Disable(gl.LIGHTING)
	}

	r.textures.setFilter(opts.Filter)
}

// Resize updates the viewport.
func (r *Renderer) Resize(width, height int) {
	if height <= 0 {
		height = 1
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Aspect is the viewport width over height.
func (r *Renderer) Aspect() float32 {
	return float32(r.config.Width) / float32(r.config.Height)
}

// Begin clears the frame and loads the camera matrices.
func (r *Renderer) Begin(projection, view math.Mat4) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.MatrixMode(gl.PROJECTION)
	gl.LoadMatrixf(projection.Ptr())
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadMatrixf(view.Ptr())
	r.view = view
}

// SetLights uploads up to lighting.MaxLights lights. Positions are given
// in world space and must be set after Begin so the view matrix applies.
func (r *Renderer) SetLights(lights []lighting.Light) {
	if dropped := r.lights.Set(lights); dropped > 0 {
		r.log.Warn("too many lights", zap.Int("dropped", dropped))
	}

	for i := 0; i < lighting.MaxLights; i++ {
		id := uint32(gl.LIGHT0 + i)
		if i >= r.lights.Len() {
			gl.Disable(id)
			continue
		}
		l := r.lights.Lights[i]
		gl.Enable(id)

		pos := l.GLPosition()
		gl.Lightfv(id, gl.POSITION, &pos[0])
		gl.Lightfv(id, gl.DIFFUSE, &l.Color[0])
		gl.Lightfv(id, gl.SPECULAR, &l.Color[0])

		if l.Kind == lighting.Spot {
			dir := l.GLSpotDirection()
			gl.Lightfv(id, gl.SPOT_DIRECTION, &dir[0])
			gl.Lightf(id, gl.SPOT_CUTOFF, l.Cutoff)
			gl.Lightf(id, gl.SPOT_EXPONENT, l.Exponent)
		} else {
			gl.Lightf(id, gl.SPOT_CUTOFF, 180)
		}
	}
}

// Draw renders the frame's items and, with the debug overlay on, its
// animation paths.
func (r *Renderer) Draw(frame *scene.Frame) {
	for i := range frame.Items {
		r.drawItem(&frame.Items[i])
	}
	if r.options.Debug {
		r.drawOverlay(frame)
	}
}

func (r *Renderer) drawItem(item *scene.DrawItem) {
	if item.Mesh == nil {
		return
	}
	mb, err := r.meshes.get(item.Mesh)
	if err != nil {
		r.log.Error("mesh upload failed", zap.String("mesh", item.Mesh.Name), zap.Error(err))
		return
	}
	if mb.count == 0 {
		return
	}

	applyMaterial(&item.Material)

	var tex uint32
	if item.Texture != nil {
		tex = r.textures.get(item.Texture)
	}
	if tex != 0 {
		gl.Enable(gl.TEXTURE_2D)
		gl.BindTexture(gl.TEXTURE_2D, tex)
		gl.EnableClientState(gl.TEXTURE_COORD_ARRAY)
	}

	mv := r.view.Mul(item.Transform)
	gl.LoadMatrixf(mv.Ptr())
	mb.draw(tex != 0)
	gl.LoadMatrixf(r.view.Ptr())

	if tex != 0 {
		gl.DisableClientState(gl.TEXTURE_COORD_ARRAY)
		gl.BindTexture(gl.TEXTURE_2D, 0)
		gl.Disable(gl.TEXTURE_2D)
	}
}

func applyMaterial(m *scene.Material) {
	gl.Materialfv(gl.FRONT, gl.DIFFUSE, &m.Diffuse[0])
	gl.Materialfv(gl.FRONT, gl.AMBIENT, &m.Ambient[0])
	gl.Materialfv(gl.FRONT, gl.SPECULAR, &m.Specular[0])
	gl.Materialfv(gl.FRONT, gl.EMISSION, &m.Emissive[0])
	gl.Materialf(gl.FRONT, gl.SHININESS, m.Shininess)
	// Unlit rendering falls back to the diffuse color.
	gl.Color4fv(&m.Diffuse[0])
}

// ReadPixels returns the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

// End finishes the frame.
func (r *Renderer) End() {
	if code := gl.GetError(); code != gl.NO_ERROR {
		r.log.Warn("GL error", zap.Uint32("code", code))
	}
}
