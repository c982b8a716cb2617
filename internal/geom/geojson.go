package geom

import (
	"encoding/json"
	"errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// LoadGeoJSON flattens every vertex of a FeatureCollection, Feature or bare
// geometry into a point sequence, in document order.
func LoadGeoJSON(data []byte) ([]Point, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}
	var pts []Point
	switch head.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, err
		}
		for _, f := range fc.Features {
			pts = appendVertices(pts, f.Geometry)
		}
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, err
		}
		pts = appendVertices(pts, f.Geometry)
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, err
		}
		pts = appendVertices(pts, g.Geometry())
	}
	if len(pts) == 0 {
		return nil, errors.New("geojson: no coordinates found")
	}
	return pts, nil
}

func appendVertices(pts []Point, g orb.Geometry) []Point {
	switch g := g.(type) {
	case orb.Point:
		pts = append(pts, g)
	case orb.MultiPoint:
		pts = append(pts, g...)
	case orb.LineString:
		pts = append(pts, g...)
	case orb.Ring:
		pts = append(pts, g...)
	case orb.MultiLineString:
		for _, ls := range g {
			pts = append(pts, ls...)
		}
	case orb.Polygon:
		for _, ring := range g {
			pts = append(pts, ring...)
		}
	case orb.MultiPolygon:
		for _, poly := range g {
			for _, ring := range poly {
				pts = append(pts, ring...)
			}
		}
	case orb.Collection:
		for _, sub := range g {
			pts = appendVertices(pts, sub)
		}
	}
	return pts
}
