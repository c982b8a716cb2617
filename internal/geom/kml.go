package geom

import (
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"
)

type kmlCoords struct {
	Coordinates string `xml:"coordinates"`
}

type kmlPlacemark struct {
	Point      *kmlCoords `xml:"Point"`
	LineString *kmlCoords `xml:"LineString"`
}

type kmlDoc struct {
	Placemarks []kmlPlacemark `xml:"Document>Placemark"`
	Bare       []kmlPlacemark `xml:"Placemark"`
}

// LoadKML extracts Point and LineString vertices from Placemarks.
// KML coordinates are "lon,lat[,alt]"; altitude is ignored.
func LoadKML(r io.Reader) ([]Point, error) {
	var doc kmlDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	var pts []Point
	for _, pm := range append(doc.Placemarks, doc.Bare...) {
		for _, c := range []*kmlCoords{pm.Point, pm.LineString} {
			if c == nil {
				continue
			}
			pts = appendKMLTuples(pts, c.Coordinates)
		}
	}
	if len(pts) == 0 {
		return nil, errors.New("kml: no points found")
	}
	return pts, nil
}

// coordinates may contain multiple tuples separated by whitespace
func appendKMLTuples(pts []Point, s string) []Point {
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		pts = append(pts, Point{lon, lat})
	}
	return pts
}
