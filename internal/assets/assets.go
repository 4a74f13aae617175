// Package assets loads the meshes and textures a scene references, each
// distinct file at most once.
package assets

import (
	"fmt"
	"path/filepath"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/scenery/internal/engine/model"
	"github.com/Faultbox/scenery/internal/engine/scene"
	"github.com/Faultbox/scenery/internal/engine/texture"
	"github.com/Faultbox/scenery/internal/logger"
)

// Paths maps names used in the scene to file paths.
type Paths interface {
	ModelPath(name string) string
	TexturePath(name string) string
}

// DirPaths resolves every name against a single directory.
type DirPaths string

func (d DirPaths) ModelPath(name string) string   { return joinDir(string(d), name) }
func (d DirPaths) TexturePath(name string) string { return joinDir(string(d), name) }

func joinDir(dir, name string) string {
	if dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// Loaders decode files. The zero value uses model.Load and texture.Load.
type Loaders struct {
	Mesh    func(path string) (*model.Mesh, error)
	Texture func(path string) (*texture.Image, error)
}

type meshEntry struct {
	mesh *model.Mesh
	err  error
}

type textureEntry struct {
	img *texture.Image
	err error
}

// Store caches loaded meshes and textures by scene name. Failed loads are
// cached as well, so a missing file is read and reported once.
type Store struct {
	paths   Paths
	loaders Loaders
	log     *zap.Logger

	mu       sync.RWMutex
	meshes   map[string]meshEntry
	textures map[string]textureEntry

	// Stats
	hits   int
	misses int
}

var _ scene.Resolver = (*Store)(nil)

// NewStore creates an empty store.
func NewStore(paths Paths, loaders Loaders) *Store {
	if loaders.Mesh == nil {
		loaders.Mesh = model.Load
	}
	if loaders.Texture == nil {
		loaders.Texture = texture.Load
	}
	return &Store{
		paths:    paths,
		loaders:  loaders,
		log:      logger.Named("assets"),
		meshes:   make(map[string]meshEntry),
		textures: make(map[string]textureEntry),
	}
}

// LoadMesh returns the mesh for name, loading it on first use.
func (s *Store) LoadMesh(name string) (*model.Mesh, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.meshes[name]; ok {
		s.hits++
		return e.mesh, e.err
	}
	s.misses++

	path := s.paths.ModelPath(name)
	mesh, err := s.loaders.Mesh(path)
	if err != nil {
		err = fmt.Errorf("model %s: %w", name, err)
		s.log.Warn("model unavailable", zap.String("file", path), zap.Error(err))
	} else {
		s.log.Debug("model loaded",
			zap.String("file", path),
			zap.Int("vertices", len(mesh.Vertices)),
			zap.Int("triangles", mesh.TriangleCount()))
	}
	s.meshes[name] = meshEntry{mesh: mesh, err: err}
	return mesh, err
}

// LoadTexture returns the texture for name, loading it on first use.
func (s *Store) LoadTexture(name string) (*texture.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.textures[name]; ok {
		s.hits++
		return e.img, e.err
	}
	s.misses++

	path := s.paths.TexturePath(name)
	img, err := s.loaders.Texture(path)
	if err != nil {
		err = fmt.Errorf("texture %s: %w", name, err)
		s.log.Warn("texture unavailable", zap.String("file", path), zap.Error(err))
	} else {
		s.log.Debug("texture loaded",
			zap.String("file", path),
			zap.Int("width", img.Width),
			zap.Int("height", img.Height))
	}
	s.textures[name] = textureEntry{img: img, err: err}
	return img, err
}

// LoadWorld loads every file the world references. The returned error
// combines all failures; the store stays usable and draws without the
// missing resources.
func (s *Store) LoadWorld(w *scene.World) error {
	var errs error
	for _, name := range w.ModelFiles() {
		_, err := s.LoadMesh(name)
		errs = multierr.Append(errs, err)
	}
	for _, name := range w.TextureFiles() {
		_, err := s.LoadTexture(name)
		errs = multierr.Append(errs, err)
	}
	return errs
}

// Mesh implements scene.Resolver.
func (s *Store) Mesh(name string) *model.Mesh {
	mesh, _ := s.LoadMesh(name)
	return mesh
}

// Texture implements scene.Resolver.
func (s *Store) Texture(name string) *texture.Image {
	img, _ := s.LoadTexture(name)
	return img
}

// Meshes returns every successfully loaded mesh.
func (s *Store) Meshes() []*model.Mesh {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Mesh, 0, len(s.meshes))
	for _, e := range s.meshes {
		if e.mesh != nil {
			out = append(out, e.mesh)
		}
	}
	return out
}

// Clear drops every cached entry.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meshes = make(map[string]meshEntry)
	s.textures = make(map[string]textureEntry)
	s.hits = 0
	s.misses = 0
}

// Stats returns cache statistics.
func (s *Store) Stats() (hits, misses int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hits, s.misses
}
