package geom

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

var errTooFewFields = errors.New("want two whitespace separated values")

// LoadPoints reads one "x y" record per line. Blank lines are skipped and
// columns after the second are ignored.
func LoadPoints(r io.Reader) ([]Point, error) {
	var pts []Point
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, &ParseError{Line: line, Text: text, Err: errTooFewFields}
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		pts = append(pts, Point{x, y})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(pts) == 0 {
		return nil, ErrEmptyDataset
	}
	return pts, nil
}
