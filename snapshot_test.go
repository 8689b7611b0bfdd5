package fastscape

import (
	"path/filepath"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	d := NewDomain(12, DefaultParams())
	d.BuildTerrain(99)
	d.Evaluate(3, false)

	fp := filepath.Join(t.TempDir(), "state.gob")
	if err := d.SaveGob(fp); err != nil {
		t.Fatalf("SaveGob: %v", err)
	}
	d2, err := LoadGobDomain(fp)
	if err != nil {
		t.Fatalf("LoadGobDomain: %v", err)
	}
	if d2.GD.Ncol != 12 || d2.Par != d.Par {
		t.Fatal("snapshot lost configuration")
	}
	for i := range d.H {
		if d2.H[i] != d.H[i] {
			t.Fatalf("cell %d differs after round trip", i)
		}
	}

	// a resumed run must continue exactly where the source run would
	d.Evaluate(2, false)
	d2.Evaluate(2, false)
	for i := range d.H {
		if d2.H[i] != d.H[i] {
			t.Fatalf("cell %d diverges after resume", i)
		}
	}
}
