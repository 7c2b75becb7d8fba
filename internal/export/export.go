// Package export writes generated meshes to disk for inspection in external
// tools: Wavefront OBJ, ASCII STL and a YAML run summary.
package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-pcg/pkg/hull"
	"github.com/Faultbox/midgard-pcg/pkg/math"
)

// ErrUnknownFormat is returned for export formats other than obj and stl.
var ErrUnknownFormat = errors.New("unknown export format")

// WriteOBJ writes m as a Wavefront OBJ object. Normals are per index slot,
// so every corner references its own vn line.
func WriteOBJ(w io.Writer, name string, m *hull.Mesh) error {
	if err := m.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %d vertices, %d triangles\n", len(m.Vertices), m.TriangleCount())
	fmt.Fprintf(bw, "o %s\n", name)
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z)
	}
	for _, n := range m.Normals {
		fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
	}
	// OBJ indices are 1-based.
	for i := 0; i+2 < len(m.Indices); i += 3 {
		fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n",
			m.Indices[i]+1, i+1,
			m.Indices[i+1]+1, i+2,
			m.Indices[i+2]+1, i+3,
		)
	}
	return bw.Flush()
}

// WriteSTL writes m as an ASCII STL solid. STL stores one normal per facet;
// the geometric normal of each triangle is used since the per-corner
// directions have no STL representation.
func WriteSTL(w io.Writer, name string, m *hull.Mesh) error {
	if err := m.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "solid %s\n", name)
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := m.Vertices[m.Indices[i]]
		b := m.Vertices[m.Indices[i+1]]
		c := m.Vertices[m.Indices[i+2]]
		n := b.Sub(a).Cross(c.Sub(a)).Normalize()

		fmt.Fprintf(bw, "  facet normal %g %g %g\n", n.X, n.Y, n.Z)
		fmt.Fprintln(bw, "    outer loop")
		for _, v := range [3]math.Vec3{a, b, c} {
			fmt.Fprintf(bw, "      vertex %g %g %g\n", v.X, v.Y, v.Z)
		}
		fmt.Fprintln(bw, "    endloop")
		fmt.Fprintln(bw, "  endfacet")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)
	return bw.Flush()
}

// WritePoints writes a point cloud as OBJ vertices only.
func WritePoints(w io.Writer, points []math.Vec3) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %d points\n", len(points))
	for _, p := range points {
		fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
	}
	return bw.Flush()
}

// WriteSummary writes v as YAML.
func WriteSummary(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// Ext returns the file extension for format.
func Ext(format string) (string, error) {
	switch format {
	case "obj":
		return ".obj", nil
	case "stl":
		return ".stl", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// SaveMesh writes m to dir/name.<ext> in the given format and returns the path.
func SaveMesh(dir, name, format string, m *hull.Mesh) (string, error) {
	ext, err := Ext(format)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, name+ext)
	err = writeFile(path, func(w io.Writer) error {
		if format == "stl" {
			return WriteSTL(w, name, m)
		}
		return WriteOBJ(w, name, m)
	})
	return path, err
}

// SavePoints writes points to dir/name.obj and returns the path.
func SavePoints(dir, name string, points []math.Vec3) (string, error) {
	path := filepath.Join(dir, name+".obj")
	return path, writeFile(path, func(w io.Writer) error {
		return WritePoints(w, points)
	})
}

// SaveSummary writes v to dir/name.yaml and returns the path.
func SaveSummary(dir, name string, v any) (string, error) {
	path := filepath.Join(dir, name+".yaml")
	return path, writeFile(path, func(w io.Writer) error {
		return WriteSummary(w, v)
	})
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
