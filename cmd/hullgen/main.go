// hullgen samples a random point cloud, builds its approximate hull and the
// sphere morph target, and exports the meshes.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-pcg/internal/config"
	"github.com/Faultbox/midgard-pcg/internal/export"
	"github.com/Faultbox/midgard-pcg/internal/logger"
	"github.com/Faultbox/midgard-pcg/internal/pipeline"
)

func main() {
	config.ParseFlags()

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	switch args[0] {
	case "points":
		err = cmdPoints(cfg)
	case "hull":
		err = cmdMesh(cfg, pipeline.StepHull)
	case "morph":
		err = cmdMesh(cfg, pipeline.StepMorph)
	case "run":
		err = cmdRun(cfg)
	case "info":
		err = cmdInfo(cfg)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", args[0]), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`hullgen - point cloud hull and sphere morph generator

Usage:
  hullgen [flags] <command>

Commands:
  points   Sample the point cloud and export it
  hull     Build and export the hull mesh
  morph    Build and export the sphere morph target
  run      Build and export both meshes plus a YAML summary
  info     Print generation statistics

Flags:
  -config <file>        Config file (default ./hullgen.yaml)
  -radius <r>           Sampling cube half-extent
  -count <n>            Number of points to sample
  -seed <n>             Random seed (0 = random)
  -morph-radius <r>     Morph sphere radius
  -out <dir>            Export directory
  -format obj|stl       Mesh export format
  -debug                Enable debug logging

Examples:
  hullgen -count 500 -seed 7 run
  hullgen -format stl -out meshes morph
  hullgen -radius 10 info`)
}

func newGenerator(cfg *config.Config) (*pipeline.Generator, error) {
	g, err := pipeline.New(cfg)
	if err != nil {
		return nil, err
	}
	if err := g.Regenerate(); err != nil {
		return nil, err
	}
	return g, nil
}

func cmdPoints(cfg *config.Config) error {
	g, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	// The hull may legitimately fail on tiny clouds; the points are still kept.
	if err := g.Regenerate(); err != nil {
		logger.Warn("hull not built", zap.Error(err))
	}

	path, err := export.SavePoints(cfg.Export.Dir, cfg.Export.Name+"_points", g.Points)
	if err != nil {
		return err
	}
	fmt.Printf("Exported: %s (%d points, seed %d)\n", path, len(g.Points), g.Seed())
	return nil
}

func cmdMesh(cfg *config.Config, step pipeline.Step) error {
	g, err := newGenerator(cfg)
	if err != nil {
		return err
	}

	m, err := g.Step(step)
	if err != nil {
		return err
	}

	path, err := export.SaveMesh(cfg.Export.Dir, cfg.Export.Name+"_"+step.String(), cfg.Export.Format, m)
	if err != nil {
		return err
	}
	fmt.Printf("Exported: %s (%d vertices, %d triangles)\n", path, len(m.Vertices), m.TriangleCount())
	return nil
}

func cmdRun(cfg *config.Config) error {
	g, err := newGenerator(cfg)
	if err != nil {
		return err
	}

	for _, step := range []pipeline.Step{pipeline.StepHull, pipeline.StepMorph} {
		m, err := g.Step(step)
		if err != nil {
			return err
		}
		path, err := export.SaveMesh(cfg.Export.Dir, cfg.Export.Name+"_"+step.String(), cfg.Export.Format, m)
		if err != nil {
			return err
		}
		fmt.Printf("Exported: %s\n", path)
	}

	path, err := export.SaveSummary(cfg.Export.Dir, cfg.Export.Name+"_summary", g.Stats())
	if err != nil {
		return err
	}
	fmt.Printf("Exported: %s\n", path)
	return nil
}

func cmdInfo(cfg *config.Config) error {
	g, err := newGenerator(cfg)
	if err != nil {
		return err
	}

	st := g.Stats()
	fmt.Printf("Seed:            %d\n", st.Seed)
	fmt.Printf("Points:          %d of %d requested\n", st.Points, st.Requested)
	fmt.Printf("Terminal faces:  %d\n", st.TerminalFaces)
	fmt.Printf("Mesh faces:      %d\n", st.MeshFaces)
	fmt.Printf("Vertices:        %d\n", st.Vertices)
	fmt.Printf("Indices:         %d\n", st.Indices)
	fmt.Printf("Max depth:       %d\n", st.Depth)
	fmt.Printf("Bounds:          %v .. %v\n", st.Bounds.Min, st.Bounds.Max)
	fmt.Printf("Elapsed:         %v\n", st.Elapsed)
	fmt.Println()
	fmt.Println("Initial simplex:")
	for i, v := range st.Simplex {
		fmt.Printf("  v%d  (%g, %g, %g)\n", i, v.X, v.Y, v.Z)
	}
	return nil
}
