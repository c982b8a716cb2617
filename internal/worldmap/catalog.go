package worldmap

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"worldmap/internal/geom"
)

// Catalog maps resolution tags to loaded datasets.
type Catalog struct {
	sets map[Resolution]*geom.Dataset
}

// NewCatalog builds a catalog from already loaded datasets.
func NewCatalog(sets map[Resolution]*geom.Dataset) *Catalog {
	c := &Catalog{sets: make(map[Resolution]*geom.Dataset, len(sets))}
	for r, d := range sets {
		if d != nil {
			c.sets[r] = d
		}
	}
	return c
}

// LoadCatalog loads every configured path. Tags sharing a path share one dataset.
func LoadCatalog(paths map[Resolution]string, log *zap.Logger) (*Catalog, error) {
	byPath := make(map[string]*geom.Dataset)
	sets := make(map[Resolution]*geom.Dataset)
	for _, r := range Resolutions {
		path := paths[r]
		if path == "" {
			continue
		}
		d, ok := byPath[path]
		if !ok {
			var err error
			d, err = geom.LoadFile(path)
			if err != nil {
				return nil, fmt.Errorf("resolution %s: %w", r, err)
			}
			byPath[path] = d
			log.Info("dataset loaded",
				zap.Stringer("resolution", r),
				zap.String("path", path),
				zap.Int("points", d.Len()))
		}
		sets[r] = d
	}
	if len(sets) == 0 {
		return nil, errors.New("no dataset configured")
	}
	return NewCatalog(sets), nil
}

// Get returns the dataset for r.
func (c *Catalog) Get(r Resolution) (*geom.Dataset, bool) {
	d, ok := c.sets[r]
	return d, ok
}

// Available returns the configured tags in ascending detail.
func (c *Catalog) Available() []Resolution {
	var out []Resolution
	for _, r := range Resolutions {
		if _, ok := c.sets[r]; ok {
			out = append(out, r)
		}
	}
	return out
}

// Next returns the configured tag after r, wrapping around.
func (c *Catalog) Next(r Resolution) Resolution {
	avail := c.Available()
	for i, a := range avail {
		if a == r {
			return avail[(i+1)%len(avail)]
		}
	}
	if len(avail) > 0 {
		return avail[0]
	}
	return r
}
