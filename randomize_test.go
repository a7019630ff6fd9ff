package letterplay

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRandomizePathSameSeedIsReproducible(t *testing.T) {
	p := samplePath()
	a := RandomizePath(p, 42)
	b := RandomizePath(p, 42)
	if diff := cmp.Diff(a.Commands(), b.Commands()); diff != "" {
		t.Errorf("same seed produced different paths (-a +b):\n%s", diff)
	}
}

func TestRandomizePathDifferentSeedsDiffer(t *testing.T) {
	p := samplePath()
	a := RandomizePath(p, 1)
	b := RandomizePath(p, 2)
	if diff := cmp.Diff(a.Commands(), b.Commands()); diff == "" {
		t.Error("different seeds produced identical paths")
	}
}

func TestRandomizePathOffsetsAreBounded(t *testing.T) {
	p := samplePath()
	got := RandomizePath(p, 7)

	var i int
	orig := make([]Point, 0, 16)
	p.EachPoint(func(_ PointRef, pt Point) { orig = append(orig, pt) })
	got.EachPoint(func(ref PointRef, pt Point) {
		d := pt.Sub(orig[i])
		if d.X < -10 || d.X >= 10 || d.Y < -10 || d.Y >= 10 {
			t.Errorf("point %d (%+v) moved by %v, want offsets in [-10,10)", i, ref, d)
		}
		i++
	})
}

func TestRandomizePathDoesNotMutateInput(t *testing.T) {
	p := samplePath()
	RandomizePath(p, 3)
	if diff := cmp.Diff(samplePath().Commands(), p.Commands()); diff != "" {
		t.Errorf("input path mutated (-want +got):\n%s", diff)
	}
}

func TestRandomizePathKeepsStructure(t *testing.T) {
	p := samplePath()
	got := RandomizePath(p, 11)
	if got.Len() != p.Len() {
		t.Fatalf("command count = %d, want %d", got.Len(), p.Len())
	}
	for i, cmd := range got.Commands() {
		if _, isClose := cmd.(Close); isClose {
			if _, wasClose := p.Commands()[i].(Close); !wasClose {
				t.Errorf("command %d became Close", i)
			}
		}
	}
}
