package level

import (
	"encoding/xml"
	"strconv"
	"strings"

	"freeselect/internal/geom"
)

// parseKML extracts Placemark > Point coordinates ("x,y[,z]", z ignored).
// The placemark name, when set, becomes the object kind.
func parseKML(data []byte) ([]Object, error) {
	type kmlPoint struct {
		Coordinates string `xml:"coordinates"`
	}
	type kmlPlacemark struct {
		Name  string    `xml:"name"`
		Point *kmlPoint `xml:"Point"`
	}
	type kmlDoc struct {
		Placemarks []kmlPlacemark `xml:"Placemark"`
		Document   struct {
			Placemarks []kmlPlacemark `xml:"Placemark"`
		} `xml:"Document"`
	}
	var doc kmlDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	var objs []Object
	for _, pm := range append(doc.Placemarks, doc.Document.Placemarks...) {
		if pm.Point == nil {
			continue
		}
		kind := strings.TrimSpace(pm.Name)
		if kind == "" {
			kind = "block"
		}
		for _, tuple := range strings.Fields(pm.Point.Coordinates) {
			vals := strings.Split(tuple, ",")
			if len(vals) < 2 {
				continue
			}
			x, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
			y, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
			if err1 != nil || err2 != nil {
				continue
			}
			objs = append(objs, Object{Kind: kind, Pos: geom.Pt(x, y), Size: BlockSize})
		}
	}
	return objs, nil
}
