package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/skeleton/pkg/graphics"
	"github.com/go-drift/skeleton/pkg/skeleton"
)

// UpdateSnapshotsEnv rewrites golden files instead of comparing when set to 1.
const UpdateSnapshotsEnv = "SKELETON_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures a shape tree and the operations it paints.
type Snapshot struct {
	Shapes     *ShapeNode  `json:"shapes,omitempty"`
	DisplayOps []DisplayOp `json:"displayOps,omitempty"`
}

// ShapeNode is one serialized shape.
type ShapeNode struct {
	ID string `json:"id"`
	// Frame is left, top, width, height in the parent's coordinates.
	Frame        [4]float64   `json:"frame"`
	CornerRadius float64      `json:"cornerRadius,omitempty"`
	Opacity      float64      `json:"opacity"`
	Colors       []string     `json:"colors"`
	Points       [4]float64   `json:"points,omitempty"`
	Animations   []string     `json:"animations,omitempty"`
	Children     []*ShapeNode `json:"children,omitempty"`
}

// CaptureShape captures s, its sublayers and what they paint.
func CaptureShape(s *skeleton.Shape) *Snapshot {
	if s == nil {
		return &Snapshot{}
	}
	counter := &kindCounter{}
	frame := s.Frame()
	return &Snapshot{
		Shapes: captureShapeNode(s, counter),
		DisplayOps: RecordOps(s, graphics.Size{
			Width:  frame.Right,
			Height: frame.Bottom,
		}),
	}
}

// CaptureLayer captures the mask of l. Display operations are only recorded
// while the layer is attached or fading out.
func CaptureLayer(l *skeleton.Layer) *Snapshot {
	mask := l.Mask()
	if mask == nil {
		return &Snapshot{}
	}
	snap := CaptureShape(mask)
	frame := mask.Frame()
	snap.DisplayOps = RecordOps(l, graphics.Size{Width: frame.Right, Height: frame.Bottom})
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When SKELETON_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateSnapshotsEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to path, creating directories as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff from other to this snapshot, or "" when they
// serialize identically.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return lineDiff(string(b), string(a))
}

// kindCounter assigns stable IDs like "fill#0", "gradient#1".
type kindCounter struct {
	counts map[string]int
}

func (c *kindCounter) next(kind string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[kind]
	c.counts[kind] = n + 1
	return fmt.Sprintf("%s#%d", kind, n)
}

func captureShapeNode(s *skeleton.Shape, counter *kindCounter) *ShapeNode {
	frame := s.Frame()
	node := &ShapeNode{
		ID:           counter.next(s.Kind().String()),
		Frame:        [4]float64{round2(frame.Left), round2(frame.Top), round2(frame.Width()), round2(frame.Height())},
		CornerRadius: round2(s.CornerRadius()),
		Opacity:      round2(s.PresentationOpacity()),
		Animations:   s.AnimationKeys(),
	}
	for _, c := range s.Colors() {
		node.Colors = append(node.Colors, serializeColor(c))
	}
	if s.Kind() == skeleton.ShapeGradient {
		p := s.PresentationPoints()
		node.Points = [4]float64{round2(p.Start.X), round2(p.Start.Y), round2(p.End.X), round2(p.End.Y)}
	}
	for _, child := range s.Sublayers() {
		node.Children = append(node.Children, captureShapeNode(child, counter))
	}
	return node
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// lineDiff lists the lines that differ at each position.
func lineDiff(expected, actual string) string {
	want := strings.Split(expected, "\n")
	got := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")
	for i := 0; i < max(len(want), len(got)); i++ {
		var e, a string
		if i < len(want) {
			e = want[i]
		}
		if i < len(got) {
			a = got[i]
		}
		if e == a {
			continue
		}
		if i < len(want) {
			fmt.Fprintf(&buf, "-%s\n", e)
		}
		if i < len(got) {
			fmt.Fprintf(&buf, "+%s\n", a)
		}
	}
	return buf.String()
}
