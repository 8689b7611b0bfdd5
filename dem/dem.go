package dem

// Definition describes a square, uniform raster DEM with a two-cell collar:
// the outermost ring is a zero-elevation halo that is never written, and the
// second ring is a fixed-elevation drain that receives flow but no uplift.
type Definition struct {
	Nrow, Ncol   int
	Cwidth       float64 // uniform cell width [m]
	Eorig, Norig float64 // lower-left corner easting/northing [m]
	NoData       float64
}

// New returns a dim x dim raster definition with the default georeference.
func New(dim int) *Definition {
	return &Definition{
		Nrow:   dim,
		Ncol:   dim,
		Cwidth: 500.,
		Eorig:  637500.,
		Norig:  206000.,
		NoData: -9999.,
	}
}

// Ncells total cell count, halo included
func (gd *Definition) Ncells() int { return gd.Nrow * gd.Ncol }

// CellArea [m²]
func (gd *Definition) CellArea() float64 { return gd.Cwidth * gd.Cwidth }

// CellID flattens a (row,col) pair to a cell id (row-major)
func (gd *Definition) CellID(r, c int) int { return r*gd.Ncol + c }

// RowCol inverts a cell id
func (gd *Definition) RowCol(cid int) (r, c int) { return cid / gd.Ncol, cid % gd.Ncol }

// IsHalo reports whether a cell lies on the outermost (read-only) ring.
func (gd *Definition) IsHalo(cid int) bool {
	r, c := gd.RowCol(cid)
	return r == 0 || c == 0 || r == gd.Nrow-1 || c == gd.Ncol-1
}

// IsInner reports whether a cell elevation is mutable, i.e. lies inside both
// boundary rings.
func (gd *Definition) IsInner(cid int) bool {
	r, c := gd.RowCol(cid)
	return r >= 2 && c >= 2 && r <= gd.Nrow-3 && c <= gd.Ncol-3
}
