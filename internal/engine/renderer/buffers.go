package renderer

import (
	"errors"
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"

	"github.com/Faultbox/scenery/internal/engine/model"
	"github.com/Faultbox/scenery/internal/engine/texture"
)

var errNilMesh = errors.New("nil mesh")

// Interleaved vertex attribute offsets, matching model.Vertex.
const (
	offsetPosition = 0
	offsetNormal   = 12
	offsetTexCoord = 24
)

// meshBuffer is a mesh uploaded as a vertex and an index buffer.
type meshBuffer struct {
	vbo   uint32
	ibo   uint32
	count int32
}

func (b *meshBuffer) draw(textured bool) {
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.VertexPointer(3, gl.FLOAT, model.VertexStride, gl.PtrOffset(offsetPosition))
	gl.NormalPointer(gl.FLOAT, model.VertexStride, gl.PtrOffset(offsetNormal))
	if textured {
		gl.TexCoordPointer(2, gl.FLOAT, model.VertexStride, gl.PtrOffset(offsetTexCoord))
	}

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ibo)
	gl.DrawElements(gl.TRIANGLES, b.count, gl.UNSIGNED_INT, nil)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// meshCache uploads each mesh once, keyed by identity.
type meshCache struct {
	buffers map[*model.Mesh]*meshBuffer
}

func newMeshCache() *meshCache {
	return &meshCache{buffers: make(map[*model.Mesh]*meshBuffer)}
}

func (c *meshCache) get(m *model.Mesh) (*meshBuffer, error) {
	if m == nil {
		return nil, errNilMesh
	}
	if b, ok := c.buffers[m]; ok {
		return b, nil
	}

	b := &meshBuffer{count: int32(len(m.Indices))}
	if len(m.Vertices) > 0 && len(m.Indices) > 0 {
		gl.GenBuffers(1, &b.vbo)
		gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*model.VertexStride, unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

		gl.GenBuffers(1, &b.ibo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ibo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

		gl.BindBuffer(gl.ARRAY_BUFFER, 0)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	}
	c.buffers[m] = b
	return b, nil
}

func (c *meshCache) len() int {
	return len(c.buffers)
}

func (c *meshCache) release() {
	for m, b := range c.buffers {
		if b.vbo != 0 {
			gl.DeleteBuffers(1, &b.vbo)
		}
		if b.ibo != 0 {
			gl.DeleteBuffers(1, &b.ibo)
		}
		delete(c.buffers, m)
	}
}

// textureCache uploads each image once and keeps every texture's sampling
// in line with the current filter.
type textureCache struct {
	ids    map[*texture.Image]uint32
	filter Filter
}

func newTextureCache() *textureCache {
	return &textureCache{ids: make(map[*texture.Image]uint32)}
}

func (c *textureCache) get(img *texture.Image) uint32 {
	if id, ok := c.ids[img]; ok {
		return id
	}
	if img.Width == 0 || img.Height == 0 || len(img.Pix) < img.Width*img.Height*4 {
		c.ids[img] = 0
		return 0
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.GENERATE_MIPMAP, gl.TRUE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(img.Width), int32(img.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	applyFilter(c.filter)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	c.ids[img] = id
	return id
}

func (c *textureCache) setFilter(f Filter) {
	if f == c.filter {
		return
	}
	c.filter = f
	for _, id := range c.ids {
		if id == 0 {
			continue
		}
		gl.BindTexture(gl.TEXTURE_2D, id)
		applyFilter(f)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// applyFilter sets sampling on the bound texture.
func applyFilter(f Filter) {
	minFilter, magFilter := int32(gl.LINEAR_MIPMAP_LINEAR), int32(gl.LINEAR)
	switch f {
	case FilterBilinear:
		minFilter = gl.LINEAR
	case FilterNearest:
		minFilter, magFilter = gl.NEAREST, gl.NEAREST
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, minFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, magFilter)
}

func (c *textureCache) len() int {
	return len(c.ids)
}

func (c *textureCache) release() {
	for img, id := range c.ids {
		if id != 0 {
			gl.DeleteTextures(1, &id)
		}
		delete(c.ids, img)
	}
}
