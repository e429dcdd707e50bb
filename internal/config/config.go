// Package config loads the lasso settings file.
//
// Settings live in a TOML file. A missing file means defaults. A file that
// is not valid TOML is rejected as a whole. Otherwise each setting is taken
// on its own: unknown keys, values of the wrong type and values that would
// break the selector (a grid size below MinGridSize, an unparsable colour)
// are replaced by their defaults and reported, so nothing invalid reaches
// the scan loop.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"slices"
	"time"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
)

// MinGridSize is the finest lasso sample spacing accepted, in world units.
const MinGridSize = 1.0

// Modifier backends.
const (
	ModifierBind  = "bind"
	ModifierPoll  = "poll"
	ModifierTouch = "touch"
)

// Settings mirrors the settings file.
type Settings struct {
	LassoAlwaysEnabled bool    `toml:"lasso-always-enabled"`
	GuaranteeCenter    bool    `toml:"guarantee-center"`
	MakePointsBoxes    bool    `toml:"make-points-boxes"`
	Chroma             bool    `toml:"chroma"`
	GridSize           float64 `toml:"grid-size"`
	// ChromaSpeed is seconds per tint segment.
	ChromaSpeed float64 `toml:"chroma-speed"`
	SelectColor string  `toml:"select-color"`

	Modifier         string `toml:"modifier"`
	MacKeycode       uint16 `toml:"mac-keycode"`
	SecondMacKeycode uint16 `toml:"second-mac-keycode"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		LassoAlwaysEnabled: false,
		GuaranteeCenter:    true,
		MakePointsBoxes:    false,
		Chroma:             false,
		GridSize:           15,
		ChromaSpeed:        0.5,
		SelectColor:        "#FFFFFFFF",
		Modifier:           ModifierBind,
		MacKeycode:         58, // left option
		SecondMacKeycode:   61, // right option
	}
}

var ErrInvalid = errors.New("invalid setting")

// FieldError reports one setting that was replaced by its default.
type FieldError struct {
	Key     string
	Value   any
	Default any
	Reason  string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s = %v: %s (using %v)", e.Key, e.Value, e.Reason, e.Default)
}

func (e *FieldError) Unwrap() error { return ErrInvalid }

// Sanitize replaces invalid values with defaults and returns one FieldError
// per replacement, joined. The receiver is always valid afterwards.
func (s *Settings) Sanitize() error {
	def := Defaults()
	var errs []error
	if !positive(s.GridSize) || s.GridSize < MinGridSize {
		errs = append(errs, &FieldError{Key: "grid-size", Value: s.GridSize, Default: def.GridSize, Reason: fmt.Sprintf("must be a number of at least %g", MinGridSize)})
		s.GridSize = def.GridSize
	}
	if !positive(s.ChromaSpeed) {
		errs = append(errs, &FieldError{Key: "chroma-speed", Value: s.ChromaSpeed, Default: def.ChromaSpeed, Reason: "must be a positive number"})
		s.ChromaSpeed = def.ChromaSpeed
	}
	if _, err := ParseColor(s.SelectColor); err != nil {
		errs = append(errs, &FieldError{Key: "select-color", Value: s.SelectColor, Default: def.SelectColor, Reason: err.Error()})
		s.SelectColor = def.SelectColor
	}
	switch s.Modifier {
	case ModifierBind, ModifierPoll, ModifierTouch:
	case "":
		s.Modifier = def.Modifier
	default:
		errs = append(errs, &FieldError{Key: "modifier", Value: s.Modifier, Default: def.Modifier, Reason: "unknown backend"})
		s.Modifier = def.Modifier
	}
	return errors.Join(errs...)
}

func positive(v float64) bool { return v > 0 && !math.IsInf(v, 0) }

// Color is the parsed select colour. Sanitize guarantees it parses.
func (s Settings) Color() color.RGBA {
	c, err := ParseColor(s.SelectColor)
	if err != nil {
		c, _ = ParseColor(Defaults().SelectColor)
	}
	return c
}

// ChromaSegment is ChromaSpeed as a duration.
func (s Settings) ChromaSegment() time.Duration {
	return time.Duration(s.ChromaSpeed * float64(time.Second))
}

// fields maps each settings key to its field.
var fields = map[string]func(*Settings) any{
	"lasso-always-enabled": func(s *Settings) any { return &s.LassoAlwaysEnabled },
	"guarantee-center":     func(s *Settings) any { return &s.GuaranteeCenter },
	"make-points-boxes":    func(s *Settings) any { return &s.MakePointsBoxes },
	"chroma":               func(s *Settings) any { return &s.Chroma },
	"grid-size":            func(s *Settings) any { return &s.GridSize },
	"chroma-speed":         func(s *Settings) any { return &s.ChromaSpeed },
	"select-color":         func(s *Settings) any { return &s.SelectColor },
	"modifier":             func(s *Settings) any { return &s.Modifier },
	"mac-keycode":          func(s *Settings) any { return &s.MacKeycode },
	"second-mac-keycode":   func(s *Settings) any { return &s.SecondMacKeycode },
}

// assign stores a decoded TOML value into dst, or explains why it cannot.
func assign(dst, v any) (reason string, ok bool) {
	switch d := dst.(type) {
	case *bool:
		b, ok := v.(bool)
		if !ok {
			return "must be true or false", false
		}
		*d = b
	case *float64:
		switch n := v.(type) {
		case float64:
			*d = n
		case int64:
			*d = float64(n)
		default:
			return "must be a number", false
		}
	case *string:
		str, ok := v.(string)
		if !ok {
			return "must be a string", false
		}
		*d = str
	case *uint16:
		n, ok := v.(int64)
		if !ok || n < 0 || n > math.MaxUint16 {
			return "must be a key code between 0 and 65535", false
		}
		*d = uint16(n)
	}
	return "", true
}

func deref(p any) any {
	switch p := p.(type) {
	case *bool:
		return *p
	case *float64:
		return *p
	case *string:
		return *p
	case *uint16:
		return *p
	}
	return nil
}

// Parse decodes settings from TOML on top of the defaults and sanitizes them.
// Invalid TOML fails as a whole and yields the defaults. Otherwise unknown
// keys and bad values come back as joined FieldErrors together with usable
// settings.
func Parse(data []byte) (Settings, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Defaults(), fmt.Errorf("parse settings: %w", err)
	}
	s, def := Defaults(), Defaults()
	var errs []error
	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		field, ok := fields[key]
		if !ok {
			errs = append(errs, &FieldError{Key: key, Value: raw[key], Reason: "unknown setting, ignored"})
			continue
		}
		if reason, ok := assign(field(&s), raw[key]); !ok {
			errs = append(errs, &FieldError{Key: key, Value: raw[key], Default: deref(field(&def)), Reason: reason})
		}
	}
	if err := s.Sanitize(); err != nil {
		errs = append(errs, err)
	}
	return s, errors.Join(errs...)
}

// Load reads the settings file at path. A missing file yields the defaults
// without error. A malformed file yields the defaults and the parse error.
// Replaced values are logged as warnings and not returned as an error.
func Load(path string, log *zap.Logger) (Settings, error) {
	if log == nil {
		log = zap.NewNop()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Info("settings file not found, using defaults", zap.String("path", path))
			return Defaults(), nil
		}
		return Defaults(), fmt.Errorf("read settings %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil && !errors.Is(err, ErrInvalid) {
		return s, fmt.Errorf("%s: %w", path, err)
	}
	var fe *FieldError
	for _, e := range unjoin(err) {
		if errors.As(e, &fe) {
			log.Warn("invalid setting replaced by default",
				zap.String("key", fe.Key),
				zap.Any("value", fe.Value),
				zap.Any("default", fe.Default),
				zap.String("reason", fe.Reason))
		}
	}
	return s, nil
}

// unjoin flattens joined errors, nested ones included.
func unjoin(err error) []error {
	if err == nil {
		return nil
	}
	j, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}
	var out []error
	for _, e := range j.Unwrap() {
		out = append(out, unjoin(e)...)
	}
	return out
}
