package dem

import (
	"fmt"
	"strings"

	"github.com/maseology/mmio"
)

// SaveAscii writes elevations to an ESRI ASCII grid, dropping the outermost
// halo ring so the emitted raster is (Nrow-2)x(Ncol-2). Rows are written
// top-to-bottom, values left-to-right.
func (gd *Definition) SaveAscii(fp string, h []float64) error {
	if len(h) != gd.Ncells() {
		return fmt.Errorf("SaveAscii: grid size mismatch: %d cells given, definition holds %d", len(h), gd.Ncells())
	}
	tw, err := mmio.NewTXTwriter(fp)
	if err != nil {
		return fmt.Errorf("SaveAscii: %v", err)
	}
	defer tw.Close()

	tw.WriteLine(fmt.Sprintf("ncols %d", gd.Ncol-2))
	tw.WriteLine(fmt.Sprintf("nrows %d", gd.Nrow-2))
	tw.WriteLine(fmt.Sprintf("xllcorner %.3f", gd.Eorig))
	tw.WriteLine(fmt.Sprintf("yllcorner %.3f", gd.Norig))
	tw.WriteLine(fmt.Sprintf("cellsize %.3f", gd.Cwidth))
	tw.WriteLine(fmt.Sprintf("NODATA_value %.0f", gd.NoData))

	var sb strings.Builder
	for r := 1; r < gd.Nrow-1; r++ {
		sb.Reset()
		for c := 1; c < gd.Ncol-1; c++ {
			fmt.Fprintf(&sb, "%.6g ", h[r*gd.Ncol+c])
		}
		tw.WriteLine(sb.String())
	}
	return nil
}
