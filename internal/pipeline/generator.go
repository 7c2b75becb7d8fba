// Package pipeline drives a full generation pass: sampling, hull building and
// morph projection. It owns the buffers a host uploads to its renderer.
package pipeline

import (
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-pcg/internal/config"
	"github.com/Faultbox/midgard-pcg/internal/logger"
	"github.com/Faultbox/midgard-pcg/pkg/hull"
	"github.com/Faultbox/midgard-pcg/pkg/math"
)

// Step selects what the host shows next.
type Step int

const (
	StepHull       Step = iota // show the hull mesh
	StepMorph                  // show the sphere-projected mesh
	StepRegenerate             // sample a new cloud and rebuild both meshes
)

func (s Step) String() string {
	switch s {
	case StepHull:
		return "hull"
	case StepMorph:
		return "morph"
	case StepRegenerate:
		return "regenerate"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

// Stats summarises the last generation pass.
type Stats struct {
	Seed          uint64        `yaml:"seed"`
	Requested     int           `yaml:"requested_points"`
	Points        int           `yaml:"points"`
	TerminalFaces int           `yaml:"terminal_faces"`
	MeshFaces     int           `yaml:"mesh_faces"`
	Vertices      int           `yaml:"vertices"`
	Indices       int           `yaml:"indices"`
	Depth         int           `yaml:"depth"`
	Simplex       [4]math.Vec3  `yaml:"simplex"`
	Bounds        math.Box3     `yaml:"bounds"`
	Elapsed       time.Duration `yaml:"elapsed"`
}

// Generator holds the output of the most recent generation pass.
// It is not safe for concurrent use.
type Generator struct {
	cfg *config.Config
	log *zap.Logger

	seed uint64
	rng  *rand.Rand

	Points []math.Vec3
	Faces  []hull.Face
	Hull   *hull.Mesh
	Morph  *hull.Mesh

	active *hull.Mesh
	stats  Stats
}

// New creates a generator. Nothing is generated until Regenerate is called.
func New(cfg *config.Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	seed := cfg.Sampler.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	return &Generator{
		cfg:  cfg,
		log:  logger.Named("pipeline"),
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}, nil
}

// Seed returns the seed of the generator's random stream.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Stats returns the summary of the last successful pass.
func (g *Generator) Stats() Stats {
	return g.stats
}

// Active returns the mesh last selected by Step, or nil.
func (g *Generator) Active() *hull.Mesh {
	return g.active
}

// Reset drops every buffer from the previous pass.
func (g *Generator) Reset() {
	g.Points = nil
	g.Faces = nil
	g.Hull = nil
	g.Morph = nil
	g.active = nil
	g.stats = Stats{}
}

// Regenerate samples a fresh cloud and rebuilds the hull and morph meshes.
// All buffers are cleared first, so on error the generator holds only the
// points of the failed pass.
func (g *Generator) Regenerate() error {
	g.Reset()
	start := time.Now()

	g.Points = hull.GeneratePoints(g.rng, g.cfg.Sampler.Radius, g.cfg.Sampler.Count)
	g.log.Debug("sampled point cloud",
		zap.Int("requested", g.cfg.Sampler.Count),
		zap.Int("points", len(g.Points)),
		zap.Float32("radius", g.cfg.Sampler.Radius),
	)

	res, err := hull.BuildHull(g.Points, hull.Options{
		MaxDepth:        g.cfg.Hull.MaxDepth,
		MaxFaces:        g.cfg.Hull.MaxFaces,
		CoplanarEpsilon: g.cfg.Hull.CoplanarEpsilon,
	})
	if err != nil {
		g.log.Warn("hull build failed", zap.Int("points", len(g.Points)), zap.Error(err))
		return fmt.Errorf("building hull: %w", err)
	}
	g.log.Debug("subdivided hull",
		zap.Int("terminal_faces", len(res.Faces)),
		zap.Int("mesh_faces", len(res.Welded)),
		zap.Int("depth", res.Depth),
	)

	morph, err := hull.BuildMorph(res.Mesh.Vertices, res.Mesh.Indices, g.cfg.MorphRadius())
	if err != nil {
		return fmt.Errorf("building morph: %w", err)
	}

	g.Faces = res.Faces
	g.Hull = res.Mesh
	g.Morph = morph
	g.active = g.Hull
	g.stats = Stats{
		Seed:          g.seed,
		Requested:     g.cfg.Sampler.Count,
		Points:        len(g.Points),
		TerminalFaces: len(res.Faces),
		MeshFaces:     len(res.Welded),
		Vertices:      len(res.Mesh.Vertices),
		Indices:       len(res.Mesh.Indices),
		Depth:         res.Depth,
		Simplex:       [4]math.Vec3{res.Simplex.V0, res.Simplex.V1, res.Simplex.V2, res.Simplex.V3},
		Bounds:        res.Mesh.Bounds(),
		Elapsed:       time.Since(start),
	}

	g.log.Info("generated meshes",
		zap.Int("points", g.stats.Points),
		zap.Int("vertices", g.stats.Vertices),
		zap.Int("triangles", g.Hull.TriangleCount()),
		zap.Duration("elapsed", g.stats.Elapsed),
	)
	return nil
}

// Step performs one host action and returns the mesh to display.
func (g *Generator) Step(step Step) (*hull.Mesh, error) {
	switch step {
	case StepHull:
		if g.Hull == nil {
			return nil, fmt.Errorf("step %s: no hull generated", step)
		}
		g.active = g.Hull
	case StepMorph:
		if g.Morph == nil {
			return nil, fmt.Errorf("step %s: no morph generated", step)
		}
		g.active = g.Morph
	case StepRegenerate:
		if err := g.Regenerate(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown step %s", step)
	}

	g.log.Debug("step", zap.Stringer("step", step))
	return g.active, nil
}
