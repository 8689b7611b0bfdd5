package dem

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestIndexing(t *testing.T) {
	gd := New(7)
	if gd.Ncells() != 49 {
		t.Fatalf("Ncells = %d", gd.Ncells())
	}
	for cid := 0; cid < gd.Ncells(); cid++ {
		r, c := gd.RowCol(cid)
		if gd.CellID(r, c) != cid {
			t.Fatalf("CellID(RowCol(%d)) = %d", cid, gd.CellID(r, c))
		}
	}
	if !gd.IsHalo(0) || gd.IsHalo(gd.CellID(1, 1)) {
		t.Fatal("halo classification")
	}
	if gd.IsInner(gd.CellID(1, 3)) || !gd.IsInner(gd.CellID(3, 3)) {
		t.Fatal("interior classification")
	}
}

func TestSaveAscii(t *testing.T) {
	const dim = 6
	gd := New(dim)
	h := make([]float64, gd.Ncells())
	for i := range h {
		h[i] = float64(i) / 10.
	}

	fp := filepath.Join(t.TempDir(), "out.asc")
	if err := gd.SaveAscii(fp, h); err != nil {
		t.Fatalf("SaveAscii: %v", err)
	}

	b, err := os.ReadFile(fp)
	if err != nil {
		t.Fatalf("%v", err)
	}
	lns := strings.Split(strings.TrimRight(string(b), "\n"), "\n")
	if len(lns) != 6+dim-2 {
		t.Fatalf("%d lines, expected %d", len(lns), 6+dim-2)
	}
	for i, want := range []string{"ncols 4", "nrows 4", "xllcorner 637500.000", "yllcorner 206000.000", "cellsize 500.000", "NODATA_value -9999"} {
		if lns[i] != want {
			t.Fatalf("header line %d: %q, expected %q", i, lns[i], want)
		}
	}
	for r := 0; r < dim-2; r++ {
		flds := strings.Fields(lns[6+r])
		if len(flds) != dim-2 {
			t.Fatalf("row %d holds %d values, expected %d", r, len(flds), dim-2)
		}
	}

	if err := gd.SaveAscii(fp, h[:5]); err == nil {
		t.Fatal("expected size-mismatch error")
	}
}
