// Package layout holds layout tables: for every theme and panel kind the
// canvas size, template background and ordered list of drawing elements
// with their fixed coordinates.
package layout

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"panelgen/common"
)

// Canonical panel sizes.
const (
	PanelWidth  = 1080
	PanelHeight = 1350
)

// Color is NRGBA color written as "#RRGGBB" or "#RRGGBBAA".
type Color color.NRGBA

// ParseColor parses hex color.
func ParseColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xFF
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func (c Color) String() string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = parsed
	return nil
}

func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}

// NRGBA returns color or def when c is nil.
func (c *Color) NRGBA(def color.NRGBA) color.NRGBA {
	if c == nil {
		return def
	}
	return color.NRGBA(*c)
}

// Box is element position: [x, y] or [x, y, w, h]. Position only boxes take
// their size from the drawn image.
type Box struct {
	X, Y, W, H int
}

func (b *Box) UnmarshalYAML(node *yaml.Node) error {
	var v []int
	if err := node.Decode(&v); err != nil {
		return err
	}
	switch len(v) {
	case 2:
		*b = Box{X: v[0], Y: v[1]}
	case 4:
		*b = Box{X: v[0], Y: v[1], W: v[2], H: v[3]}
	default:
		return fmt.Errorf("line %d: box must have 2 or 4 values, got %d", node.Line, len(v))
	}
	return nil
}

func (b Box) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	vals := []int{b.X, b.Y}
	if b.Sized() {
		vals = append(vals, b.W, b.H)
	}
	for _, v := range vals {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(v)})
	}
	return n, nil
}

// Sized reports whether box has explicit size.
func (b Box) Sized() bool {
	return b.W > 0 && b.H > 0
}

// Point returns top left corner.
func (b Box) Point() image.Point {
	return image.Pt(b.X, b.Y)
}

// Rect returns box rectangle, zero sized for position only boxes.
func (b Box) Rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.W, b.Y+b.H)
}

func (b Box) String() string {
	if b.Sized() {
		return fmt.Sprintf("[%d,%d %dx%d]", b.X, b.Y, b.W, b.H)
	}
	return fmt.Sprintf("[%d,%d]", b.X, b.Y)
}

// Text parameters of text, stats and title elements. Zero values are taken
// from engine configuration.
type Text struct {
	Font          string `yaml:"font,omitempty" validate:"omitempty,oneof=regular bold title"`
	Size          int    `yaml:"size" validate:"gt=0"`
	MinSize       int    `yaml:"min_size,omitempty" validate:"gte=0"`
	Step          int    `yaml:"step,omitempty" validate:"gte=0"`
	Spacing       int    `yaml:"spacing,omitempty" validate:"gte=0"`
	Color         *Color `yaml:"color,omitempty"`
	Accent        *Color `yaml:"accent,omitempty"`
	TrimSentences bool   `yaml:"trim_sentences,omitempty"`
}

// Effects of title elements.
type Effects struct {
	Shadows      int    `yaml:"shadows" validate:"gte=0,lte=8"`
	ShadowStep   int    `yaml:"shadow_step" validate:"gte=0"`
	ShadowColor  *Color `yaml:"shadow_color,omitempty"`
	Outline      int    `yaml:"outline" validate:"gte=0,lte=16"`
	OutlineColor *Color `yaml:"outline_color,omitempty"`
}

// Gradient parameters. Border is used by edge, top and bottom kinds, box
// kind fades element box.
type Gradient struct {
	Kind     common.GradientKind `yaml:"kind"`
	Border   int                 `yaml:"border,omitempty" validate:"gte=0"`
	MinAlpha uint8               `yaml:"min_alpha,omitempty"`
	MaxAlpha uint8               `yaml:"max_alpha"`
}

// Circle parameters.
type Circle struct {
	Stroke      int    `yaml:"stroke,omitempty" validate:"gte=0"`
	StrokeColor *Color `yaml:"stroke_color,omitempty"`
}

// Element is a single drawing operation.
type Element struct {
	Kind common.ElementKind `yaml:"kind"`
	// Field names panel input value used by element ("photo",
	// "counters.0.icon").
	Field string `yaml:"field,omitempty"`
	// Value is literal text or asset key used when Field is not set.
	Value string `yaml:"value,omitempty"`
	// Prefix is prepended to input value to form asset key.
	Prefix string `yaml:"prefix,omitempty"`
	// File marks input values which are file paths rather than asset keys.
	File        bool               `yaml:"file,omitempty"`
	Box         Box                `yaml:"box"`
	Fit         common.FitMode     `yaml:"fit,omitempty"`
	Orientation common.Orientation `yaml:"orientation,omitempty"`
	Color       *Color             `yaml:"color,omitempty"`
	Text        *Text              `yaml:"text,omitempty"`
	Effects     *Effects           `yaml:"effects,omitempty"`
	Gradient    *Gradient          `yaml:"gradient,omitempty"`
	Circle      *Circle            `yaml:"circle,omitempty"`
	// Optional elements are skipped silently when input has no value.
	Optional bool `yaml:"optional,omitempty"`
}

// Panel is layout table of a single panel kind.
type Panel struct {
	Width      int    `yaml:"width" validate:"gt=0"`
	Height     int    `yaml:"height" validate:"gt=0"`
	Background string `yaml:"background,omitempty"`
	// Split cuts finished canvas into that many panels of equal width.
	Split    int       `yaml:"split,omitempty" validate:"gte=0,lte=4"`
	Elements []Element `yaml:"elements" validate:"dive"`
}

// Parts returns number of output images produced by panel.
func (p *Panel) Parts() int {
	return max(p.Split, 1)
}

// Theme is set of panel layouts.
type Theme struct {
	Name   string            `yaml:"-"`
	Panels map[string]*Panel `yaml:"panels" validate:"required,dive,keys,required,endkeys,required"`
}

// Themes maps theme name to its layouts.
type Themes map[string]*Theme

type document struct {
	Version int    `yaml:"version" validate:"eq=1"`
	Themes  Themes `yaml:"themes" validate:"required,dive,keys,required,endkeys,required"`
}
