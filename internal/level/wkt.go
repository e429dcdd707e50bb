package level

import (
	"errors"
	"strconv"
	"strings"

	"freeselect/internal/geom"
)

// parseWKT places one object per vertex of a POINT, MULTIPOINT, LINESTRING or
// POLYGON. Polygon rings keep their closing vertex out of the result.
func parseWKT(wkt string) ([]Object, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return nil, errors.New("empty wkt")
	}
	parseTuples := func(block string) []geom.Point {
		var out []geom.Point
		for _, tup := range strings.Split(block, ",") {
			tup = strings.Trim(strings.TrimSpace(tup), "()")
			parts := strings.Fields(tup)
			if len(parts) < 2 {
				continue
			}
			x, e1 := strconv.ParseFloat(parts[0], 64)
			y, e2 := strconv.ParseFloat(parts[1], 64)
			if e1 != nil || e2 != nil {
				continue
			}
			out = append(out, geom.Pt(x, y))
		}
		return out
	}
	inner := func(open, close string) (string, error) {
		i := strings.Index(s, open)
		j := strings.LastIndex(s, close)
		if i < 0 || j <= i {
			return "", errors.New("wkt: invalid")
		}
		return s[i+len(open) : j], nil
	}
	up := strings.ToUpper(s)
	var pts []geom.Point
	kind := "block"
	switch {
	case strings.HasPrefix(up, "MULTIPOINT"), strings.HasPrefix(up, "POINT"), strings.HasPrefix(up, "LINESTRING"):
		block, err := inner("(", ")")
		if err != nil {
			return nil, err
		}
		pts = parseTuples(block)
		if strings.HasPrefix(up, "LINESTRING") {
			kind = "path"
		}
	case strings.HasPrefix(up, "POLYGON"):
		block, err := inner("((", "))")
		if err != nil {
			return nil, err
		}
		rings := strings.Split(normalizeRings(block), "),(")
		for _, ring := range rings {
			rp := geom.Polygon(parseTuples(ring))
			if rp.IsClosed() {
				rp = rp[:len(rp)-1]
			}
			pts = append(pts, rp...)
		}
		kind = "wall"
	default:
		return nil, errors.New("unsupported wkt type")
	}
	objs := make([]Object, 0, len(pts))
	for _, p := range pts {
		objs = append(objs, Object{Kind: kind, Pos: p, Size: BlockSize})
	}
	return objs, nil
}

func normalizeRings(s string) string {
	s = strings.ReplaceAll(s, "), (", "),(")
	return strings.ReplaceAll(s, ") , (", "),(")
}
