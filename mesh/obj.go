package mesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chewxy/math32"

	"rasterizer/math3d"
	"rasterizer/raster"
)

var ErrMalformedOBJ = errors.New("mesh: malformed obj")

type objVertex struct {
	position math3d.Vec3
	color    raster.Color
	colored  bool
}

// LoadOBJFile opens path and reads it with LoadOBJ.
func LoadOBJFile(path string) (*Mesh, error) {
	objFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer objFile.Close()

	model, err := LoadOBJ(objFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return model, nil
}

// LoadOBJ reads the geometry of a Wavefront OBJ stream. Only "v" and "f"
// records are used; faces with more than three corners are split into a
// fan around their first corner. A vertex may carry an RGB color in [0, 1]
// after its position, otherwise triangle corners are colored red, green and
// blue in order. Texture and normal indices in faces are accepted and
// ignored.
func LoadOBJ(reader io.Reader) (*Mesh, error) {
	var vertices []objVertex
	var model *Mesh = &Mesh{}

	scanner := bufio.NewScanner(reader)
	line := 0

	for scanner.Scan() {
		line++

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			vertex, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedOBJ, line, err)
			}

			vertices = append(vertices, vertex)
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%w: line %d: face needs at least 3 corners", ErrMalformedOBJ, line)
			}

			corners := make([]objVertex, 0, len(fields)-1)
			for _, field := range fields[1:] {
				index, err := resolveIndex(field, len(vertices))
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedOBJ, line, err)
				}

				corners = append(corners, vertices[index])
			}

			for index := 1; index < len(corners)-1; index++ {
				model.appendTriangle(corners[0], corners[index], corners[index+1])
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}

	return model, nil
}

func (mesh *Mesh) appendTriangle(corners ...objVertex) {
	var triangle Triangle
	var colors TriangleColors

	for index, corner := range corners {
		triangle.Vertices[index] = corner.position

		if corner.colored {
			colors[index] = corner.color
		} else {
			colors[index] = CornerColors[index]
		}
	}

	mesh.Triangles = append(mesh.Triangles, triangle)
	mesh.Colors = append(mesh.Colors, colors)
}

func parseVertex(fields []string) (vertex objVertex, err error) {
	if len(fields) != 3 && len(fields) != 4 && len(fields) != 6 {
		return vertex, fmt.Errorf("vertex has %d values", len(fields))
	}

	values := make([]float32, len(fields))
	for index, field := range fields {
		value, err := strconv.ParseFloat(field, 32)
		if err != nil {
			return vertex, err
		}

		values[index] = float32(value)
	}

	vertex.position = math3d.Vec3{X: values[0], Y: values[1], Z: values[2]}

	if len(values) == 6 {
		vertex.color = raster.Color{R: unitToByte(values[3]), G: unitToByte(values[4]), B: unitToByte(values[5]), A: 0xff}
		vertex.colored = true
	}

	return vertex, nil
}

func unitToByte(value float32) uint8 {
	return uint8(math32.Round(math32.Max(0, math32.Min(1, value)) * 255))
}

// resolveIndex turns the position part of a face corner ("7", "7/2",
// "7//3", "-1") into a zero-based vertex index.
func resolveIndex(field string, count int) (int, error) {
	position, _, _ := strings.Cut(field, "/")

	index, err := strconv.Atoi(position)
	if err != nil {
		return 0, fmt.Errorf("face corner %q: %w", field, err)
	}

	if index < 0 {
		index += count
	} else {
		index--
	}

	if index < 0 || index >= count {
		return 0, fmt.Errorf("face corner %q: vertex %d out of range", field, index+1)
	}

	return index, nil
}
