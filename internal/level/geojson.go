package level

import (
	"encoding/json"
	"math"

	"freeselect/internal/geom"
)

// parseGeoJSON turns features into objects. Point features become one object;
// every vertex of a line or polygon becomes an object of the feature's kind.
// Properties "id", "kind" and "size" are honoured when present.
func parseGeoJSON(data []byte) ([]Object, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	var objs []Object
	parsePoint := func(v any) (pt geom.Point, ok bool) {
		if a, ok := v.([]any); ok && len(a) >= 2 {
			x, xok := a[0].(float64)
			y, yok := a[1].(float64)
			if xok && yok {
				return geom.Pt(x, y), true
			}
		}
		return geom.Point{}, false
	}
	// walk descends through nested coordinate arrays down to positions
	var walk func(v any, proto Object)
	walk = func(v any, proto Object) {
		if pt, ok := parsePoint(v); ok {
			o := proto
			o.Pos = pt
			objs = append(objs, o)
			return
		}
		arr, ok := v.([]any)
		if !ok {
			return
		}
		for _, el := range arr {
			before := len(objs)
			walk(el, proto)
			if len(objs) > before {
				// an explicit id only applies to the first object of a feature
				proto.ID = 0
			}
		}
	}
	protoOf := func(props map[string]any) Object {
		o := Object{Kind: "block", Size: BlockSize}
		if props == nil {
			return o
		}
		if k, ok := props["kind"].(string); ok && k != "" {
			o.Kind = k
		}
		if s, ok := props["size"].(float64); ok && s > 0 {
			o.Size = s
		}
		if id, ok := props["id"].(float64); ok && id > 0 && id <= math.MaxUint32 && id == math.Trunc(id) {
			o.ID = ObjectID(id)
		}
		return o
	}
	walkGeom := func(g map[string]any, props map[string]any) {
		if g == nil {
			return
		}
		switch g["type"] {
		case "Point", "MultiPoint", "LineString", "MultiLineString", "Polygon", "MultiPolygon":
			walk(g["coordinates"], protoOf(props))
		}
	}
	t, _ := raw["type"].(string)
	switch t {
	case "Feature":
		g, _ := raw["geometry"].(map[string]any)
		props, _ := raw["properties"].(map[string]any)
		walkGeom(g, props)
	case "FeatureCollection":
		if fs, ok := raw["features"].([]any); ok {
			for _, f := range fs {
				fm, ok := f.(map[string]any)
				if !ok {
					continue
				}
				g, _ := fm["geometry"].(map[string]any)
				props, _ := fm["properties"].(map[string]any)
				walkGeom(g, props)
			}
		}
	default:
		walkGeom(raw, nil)
	}
	return objs, nil
}
