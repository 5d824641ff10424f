package loaders

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// createBinaryPLY builds a square of 4 vertices and 2 triangles, with
// optional normals and colors interleaved in each vertex record
func createBinaryPLY(order binary.ByteOrder, includeNormals, includeColors bool) []byte {
	var buf bytes.Buffer

	format := "binary_little_endian"
	if order == binary.ByteOrder(binary.BigEndian) {
		format = "binary_big_endian"
	}

	buf.WriteString("ply\n")
	buf.WriteString("format " + format + " 1.0\n")
	buf.WriteString("comment generated for tests\n")
	buf.WriteString("element vertex 4\n")
	buf.WriteString("property float x\n")
	buf.WriteString("property float y\n")
	buf.WriteString("property float z\n")
	if includeNormals {
		buf.WriteString("property float nx\nproperty float ny\nproperty float nz\n")
	}
	if includeColors {
		buf.WriteString("property uchar red\nproperty uchar green\nproperty uchar blue\n")
	}
	buf.WriteString("element face 2\n")
	buf.WriteString("property list uchar int vertex_indices\n")
	buf.WriteString("end_header\n")

	vertices := [][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	for _, v := range vertices {
		binary.Write(&buf, order, v)
		if includeNormals {
			binary.Write(&buf, order, [3]float32{0, 0, 1})
		}
		if includeColors {
			binary.Write(&buf, order, [3]uint8{255, 128, 0})
		}
	}

	for _, f := range [][3]int32{{0, 1, 2}, {0, 2, 3}} {
		binary.Write(&buf, order, uint8(3))
		binary.Write(&buf, order, f)
	}
	return buf.Bytes()
}

func checkSquare(t *testing.T, mesh *MeshData) {
	t.Helper()
	if len(mesh.Vertices) != 4 {
		t.Fatalf("Expected 4 vertices, got %d", len(mesh.Vertices))
	}
	if mesh.Vertices[2] != core.NewVec3(1, 1, 0) {
		t.Errorf("Expected vertex 2 at (1,1,0), got %v", mesh.Vertices[2])
	}
	expected := []int{0, 1, 2, 0, 2, 3}
	if len(mesh.Faces) != len(expected) {
		t.Fatalf("Expected %d indices, got %d", len(expected), len(mesh.Faces))
	}
	for i := range expected {
		if mesh.Faces[i] != expected[i] {
			t.Errorf("Face index %d: expected %d, got %d", i, expected[i], mesh.Faces[i])
		}
	}
}

func TestReadPLY_Binary(t *testing.T) {
	tests := []struct {
		name           string
		order          binary.ByteOrder
		includeNormals bool
		includeColors  bool
	}{
		{"little endian positions", binary.LittleEndian, false, false},
		{"little endian with normals and colors", binary.LittleEndian, true, true},
		{"big endian positions", binary.BigEndian, false, false},
		{"big endian with colors", binary.BigEndian, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := createBinaryPLY(tt.order, tt.includeNormals, tt.includeColors)
			mesh, err := ReadPLY(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("ReadPLY failed: %v", err)
			}
			checkSquare(t, mesh)
		})
	}
}

func TestReadPLY_ASCIIFanTriangulation(t *testing.T) {
	data := `ply
format ascii 1.0
element vertex 4
property float x
property float y
property float z
property float confidence
element face 1
property list uchar int vertex_indices
end_header
0 0 0 0.5
1 0 0 0.5
1 1 0 0.5
0 1 0 0.5
4 0 1 2 3
`
	mesh, err := ReadPLY(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ReadPLY failed: %v", err)
	}
	// A quad becomes two triangles sharing vertex 0
	checkSquare(t, mesh)
}

func TestReadPLY_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing magic", "format ascii 1.0\nend_header\n"},
		{"unsupported format", "ply\nformat binary_middle_endian 1.0\nend_header\n"},
		{"truncated header", "ply\nformat ascii 1.0\nelement vertex 1\n"},
		{"bad element count", "ply\nformat ascii 1.0\nelement vertex many\nend_header\n"},
		{"truncated body", "ply\nformat ascii 1.0\nelement vertex 2\nproperty float x\nproperty float y\nproperty float z\nend_header\n0 0 0\n1 1\n"},
		{"degenerate face", "ply\nformat ascii 1.0\nelement vertex 2\nproperty float x\nproperty float y\nproperty float z\nelement face 1\nproperty list uchar int vertex_indices\nend_header\n0 0 0\n1 1 1\n2 0 1\n"},
		{"unknown binary type", "ply\nformat binary_little_endian 1.0\nelement vertex 1\nproperty quad x\nend_header\n\x00\x00\x00\x00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadPLY(strings.NewReader(tt.data)); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestLoadPLY_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.ply")
	if err := os.WriteFile(path, createBinaryPLY(binary.LittleEndian, true, false), 0644); err != nil {
		t.Fatalf("Failed to write test PLY: %v", err)
	}

	mesh, err := LoadPLY(path)
	if err != nil {
		t.Fatalf("LoadPLY failed: %v", err)
	}
	checkSquare(t, mesh)

	if _, err := LoadPLY(filepath.Join(t.TempDir(), "missing.ply")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestGetTypeSize(t *testing.T) {
	tests := map[string]int{
		"char": 1, "uchar": 1, "short": 2, "ushort": 2,
		"int": 4, "uint": 4, "float": 4, "double": 8,
		"int32": 4, "float64": 8, "quad": 0,
	}
	for dataType, expected := range tests {
		if got := getTypeSize(dataType); got != expected {
			t.Errorf("getTypeSize(%q) = %d, expected %d", dataType, got, expected)
		}
	}
}
