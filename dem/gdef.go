package dem

import (
	"fmt"

	"github.com/maseology/goHydro/grid"
)

// FromGDEF rescales a raster definition to the cell width of a grid
// definition file, keeping the dim x dim extent of the model run.
func FromGDEF(fp string, dim int) (*Definition, error) {
	g, err := grid.ReadGDEF(fp, true)
	if err != nil {
		return nil, fmt.Errorf("FromGDEF: %v", err)
	}
	gd := New(dim)
	gd.Cwidth = g.CellWidth()
	return gd, nil
}
