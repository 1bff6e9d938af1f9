package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FieldSpec configures the background field: particle counts per width tier,
// link/interaction distances, drift speed, and theme colors. All values have
// working defaults; the embedded field.yaml overrides them.
type FieldSpec struct {
	Name            string  `yaml:"name"`
	DesktopCount    int     `yaml:"desktop_count"`
	MobileCount     int     `yaml:"mobile_count"`
	MobileWidth     float64 `yaml:"mobile_width"`
	LinkDistance    float64 `yaml:"link_distance"`
	InfluenceRadius float64 `yaml:"influence_radius"`
	ForceScale      float64 `yaml:"force_scale"`
	DriftSpeed      float64 `yaml:"drift_speed"`
	NodeRadius      float64 `yaml:"node_radius"`
	PulseFrames     int     `yaml:"pulse_frames"`
	PulseChance     float64 `yaml:"pulse_chance"`
	Theme           Theme   `yaml:"theme"`
}

type Theme struct {
	Background string  `yaml:"background"`
	Node       string  `yaml:"node"`
	Link       string  `yaml:"link"`
	LinkAlpha  float64 `yaml:"link_alpha"`
	Accent     string  `yaml:"accent"`
	Text       string  `yaml:"text"`
}

// DefaultFieldSpec is the fallback when field.yaml is missing or invalid;
// the deck must still run with no spec files at all.
func DefaultFieldSpec() FieldSpec {
	return FieldSpec{
		Name:            "neural-field",
		DesktopCount:    90,
		MobileCount:     40,
		MobileWidth:     820,
		LinkDistance:    140,
		InfluenceRadius: 160,
		ForceScale:      2.5,
		DriftSpeed:      0.6,
		NodeRadius:      2,
		PulseFrames:     90,
		PulseChance:     0.012,
		Theme: Theme{
			Background: "#0a0e17",
			Node:       "#64ffda",
			Link:       "#64ffda",
			LinkAlpha:  0.45,
			Accent:     "#ff6f91",
			Text:       "#e6f1ff",
		},
	}
}

// Count returns the particle count tier for a surface width.
func (s FieldSpec) Count(width float64) int {
	if width < s.MobileWidth {
		return s.MobileCount
	}
	return s.DesktopCount
}

func (s FieldSpec) Validate() error {
	if s.DesktopCount <= 0 || s.MobileCount <= 0 {
		return fmt.Errorf("prefabs: field %q: particle counts must be positive", s.Name)
	}
	if s.LinkDistance <= 0 {
		return fmt.Errorf("prefabs: field %q: link_distance must be positive", s.Name)
	}
	if s.InfluenceRadius < 0 {
		return fmt.Errorf("prefabs: field %q: influence_radius must not be negative", s.Name)
	}
	if s.PulseChance < 0 || s.PulseChance > 1 {
		return fmt.Errorf("prefabs: field %q: pulse_chance must be in [0,1]", s.Name)
	}
	return nil
}

// SectionsSpec is the portfolio content: one entry per deck section plus the
// hero typewriter phrases.
type SectionsSpec struct {
	Sections   []SectionSpec  `yaml:"sections"`
	Typewriter TypewriterSpec `yaml:"typewriter"`
}

type SectionSpec struct {
	ID       string        `yaml:"id"`
	Title    string        `yaml:"title"`
	Body     []string      `yaml:"body"`
	Projects []ProjectSpec `yaml:"projects"`
	Skills   []SkillSpec   `yaml:"skills"`
	Email    string        `yaml:"email"`
}

type ProjectSpec struct {
	Name    string   `yaml:"name"`
	Summary string   `yaml:"summary"`
	Stack   []string `yaml:"stack"`
}

type SkillSpec struct {
	Label  string  `yaml:"label"`
	Weight float64 `yaml:"weight"`
}

type TypewriterSpec struct {
	Phrases     []string `yaml:"phrases"`
	TypeDelay   int      `yaml:"type_delay"`
	DeleteDelay int      `yaml:"delete_delay"`
	HoldDelay   int      `yaml:"hold_delay"`
}

func (s SectionsSpec) Validate() error {
	if len(s.Sections) == 0 {
		return fmt.Errorf("prefabs: sections spec has no sections")
	}
	seen := make(map[string]bool, len(s.Sections))
	for _, sec := range s.Sections {
		if sec.ID == "" {
			return fmt.Errorf("prefabs: section %q: missing id", sec.Title)
		}
		if seen[sec.ID] {
			return fmt.Errorf("prefabs: duplicate section id %q", sec.ID)
		}
		seen[sec.ID] = true
	}
	return nil
}

// LoadSpec reads and unmarshals a yaml spec by file name.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadFieldSpec loads field.yaml, falling back to defaults on any error.
func LoadFieldSpec() (FieldSpec, error) {
	spec, err := LoadSpec[FieldSpec]("field.yaml")
	if err != nil {
		return DefaultFieldSpec(), err
	}
	if err := spec.Validate(); err != nil {
		return DefaultFieldSpec(), err
	}
	return spec, nil
}

func LoadSectionsSpec() (*SectionsSpec, error) {
	spec, err := LoadSpec[SectionsSpec]("sections.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// ParseHexColor parses "#rgb" or "#rrggbb" into an opaque color.
func ParseHexColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return color.NRGBA{}, fmt.Errorf("prefabs: bad hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("prefabs: bad hex color %q: %w", s, err)
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}

// Color parses a theme color, substituting fallback on error.
func (t Theme) Color(field string, fallback color.NRGBA) color.NRGBA {
	var raw string
	switch field {
	case "background":
		raw = t.Background
	case "node":
		raw = t.Node
	case "link":
		raw = t.Link
	case "accent":
		raw = t.Accent
	case "text":
		raw = t.Text
	}
	c, err := ParseHexColor(raw)
	if err != nil {
		return fallback
	}
	return c
}
