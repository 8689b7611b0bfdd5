package fastscape

import (
	"encoding/gob"
	"fmt"
	"os"
)

type snapshot struct {
	Dim int
	H   []float64
	Par Params
}

// SaveGob snapshots the elevation state so a long run can be resumed.
func (d *Domain) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" Domain.SaveGob %v", err)
	}
	if err := gob.NewEncoder(f).Encode(snapshot{Dim: d.GD.Ncol, H: d.H, Par: d.Par}); err != nil {
		return fmt.Errorf(" Domain.SaveGob %v", err)
	}
	f.Close()
	return nil
}

// LoadGobDomain rebuilds a domain from a snapshot; flow topology and
// accumulation are rederived on the next step.
func LoadGobDomain(fp string) (*Domain, error) {
	var s snapshot
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	if err := gob.NewDecoder(f).Decode(&s); err != nil {
		return nil, err
	}
	f.Close()
	d := NewDomain(s.Dim, s.Par)
	copy(d.H, s.H)
	return d, nil
}
