package level

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strconv"
	"strings"

	"freeselect/internal/geom"
)

// parseCSV reads rows of x,y with optional id, kind and size columns.
// Column detection is case-insensitive: x|lon|lng|longitude, y|lat|latitude.
func parseCSV(data []byte) ([]Object, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	recs, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("empty csv")
	}
	idxX, idxY, idxID, idxKind, idxSize := -1, -1, -1, -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "x", "lon", "lng", "long", "longitude":
			if idxX == -1 {
				idxX = i
			}
		case "y", "lat", "latitude":
			if idxY == -1 {
				idxY = i
			}
		case "id":
			idxID = i
		case "kind", "type":
			idxKind = i
		case "size":
			idxSize = i
		}
	}
	if idxX == -1 || idxY == -1 {
		return nil, errors.New("csv: x/y columns not found")
	}
	field := func(row []string, i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	var objs []Object
	for _, row := range recs[1:] {
		x, err1 := strconv.ParseFloat(field(row, idxX), 64)
		y, err2 := strconv.ParseFloat(field(row, idxY), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		o := Object{Kind: "block", Pos: geom.Pt(x, y), Size: BlockSize}
		if k := field(row, idxKind); k != "" {
			o.Kind = k
		}
		if s, err := strconv.ParseFloat(field(row, idxSize), 64); err == nil && s > 0 {
			o.Size = s
		}
		if id, err := strconv.ParseUint(field(row, idxID), 10, 32); err == nil {
			o.ID = ObjectID(id)
		}
		objs = append(objs, o)
	}
	return objs, nil
}
