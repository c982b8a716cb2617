package geom

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LoadFile reads a dataset, choosing the parser by file extension.
// Unknown extensions are read as whitespace "x y" records.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	defer f.Close()

	pts, err := load(strings.ToLower(filepath.Ext(path)), f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	d, err := NewDataset(filepath.Base(path), pts)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return d, nil
}

func load(ext string, r io.Reader) ([]Point, error) {
	switch ext {
	case ".csv":
		return LoadCSV(r)
	case ".kml":
		return LoadKML(r)
	case ".wkt":
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return ParseWKT(string(data))
	case ".geojson", ".json":
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return LoadGeoJSON(data)
	default:
		return LoadPoints(r)
	}
}
