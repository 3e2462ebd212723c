// Package shading selects the render program for a shading mode and
// marshals material and light parameters into it.
package shading

import (
	"fmt"
	"strings"
)

// Mode is the user-facing shading choice.
type Mode int

const (
	None Mode = iota
	Gouraud
	Phong
	BlinnPhong
)

// Modes lists every mode in key order.
var Modes = []Mode{None, Gouraud, Phong, BlinnPhong}

var modeNames = map[Mode]string{
	None:       "none",
	Gouraud:    "gouraud",
	Phong:      "phong",
	BlinnPhong: "blinn-phong",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts the names printed by String, case-insensitively.
// "blinn" and "blinnphong" are accepted for BlinnPhong.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "flat":
		return None, nil
	case "gouraud":
		return Gouraud, nil
	case "phong":
		return Phong, nil
	case "blinn-phong", "blinnphong", "blinn":
		return BlinnPhong, nil
	}
	return None, fmt.Errorf("unknown shading mode %q", s)
}

// MarshalText implements encoding.TextMarshaler for config files.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for config files.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
