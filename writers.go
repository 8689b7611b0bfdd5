package fastscape

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"sync"
)

var gwg sync.WaitGroup

func writeFloats32(fp string, f []float64) error {
	f32 := func() []float32 {
		o := make([]float32, len(f))
		for i, v := range f {
			o[i] = float32(v)
		}
		return o
	}()
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, f32); err != nil {
		return fmt.Errorf("writeFloats32 failed: %v", err)
	}
	if err := os.WriteFile(fp, buf.Bytes(), 0644); err != nil { // see: https://en.wikipedia.org/wiki/File_system_permissions
		return fmt.Errorf("writeFloats32 failed: %v", err)
	}
	return nil
}

func writeInts(fp string, i []int32) error {
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, i); err != nil {
		return fmt.Errorf("writeInts failed: %v", err)
	}
	if err := os.WriteFile(fp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writeInts failed: %v", err)
	}
	return nil
}

// DumpBins writes elevation, drainage area and receiver grids as little-
// endian binaries for external inspection. The arrays are copied first and
// written in the background; call WaitDumps before exiting.
func (d *Domain) DumpBins(prfx string) {
	hh := append([]float64{}, d.H...)
	aa := append([]float64{}, d.Accum...)
	rr := make([]int32, len(d.Top.Rec))
	for i, v := range d.Top.Rec {
		rr[i] = int32(v)
	}
	gwg.Add(3)
	go func() { defer gwg.Done(); writeFloats32(prfx+"h.bin", hh) }()
	go func() { defer gwg.Done(); writeFloats32(prfx+"accum.bin", aa) }()
	go func() { defer gwg.Done(); writeInts(prfx+"rec.bin", rr) }()
}

// WaitDumps blocks until all background writes complete.
func WaitDumps() { gwg.Wait() }
