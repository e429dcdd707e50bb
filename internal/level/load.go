package level

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrUnsupported = errors.New("unsupported level format")
	ErrNoObjects   = errors.New("no objects found")
)

// Extensions lists the file extensions Load understands.
var Extensions = []string{".geojson", ".json", ".csv", ".kml", ".wkt"}

// Supported reports whether Load can open path.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load reads a level file, choosing the parser by extension.
func Load(path string) (*Level, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !Supported(path) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load level: %w", err)
	}
	var objs []Object
	switch ext {
	case ".geojson", ".json":
		objs, err = parseGeoJSON(data)
	case ".csv":
		objs, err = parseCSV(data)
	case ".kml":
		objs, err = parseKML(data)
	case ".wkt":
		objs, err = parseWKT(string(data))
	}
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", filepath.Base(path), err)
	}
	if len(objs) == 0 {
		return nil, fmt.Errorf("load level %s: %w", filepath.Base(path), ErrNoObjects)
	}
	return New(filepath.Base(path), objs), nil
}
