package layout

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"sort"

	validator "github.com/go-playground/validator/v10"
	"github.com/maruel/natural"
	"github.com/rupor-github/gencfg"
	yaml "gopkg.in/yaml.v3"

	"panelgen/common"
	"panelgen/utils/debug"
)

//go:embed themes.yaml
var builtinThemes []byte

// Default returns builtin layout tables.
func Default() (Themes, error) {
	return Parse(builtinThemes)
}

// Load reads layout tables from file, empty path selects builtin ones.
func Load(path string) (Themes, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read layout tables: %w", err)
	}
	themes, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("unable to load layout tables from %s: %w", path, err)
	}
	return themes, nil
}

// Parse decodes and validates layout tables.
func Parse(data []byte) (Themes, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode layout tables: %w", err)
	}
	if err := gencfg.Validate(&doc, gencfg.WithAdditionalChecks(checkTables)); err != nil {
		return nil, err
	}
	for name, th := range doc.Themes {
		th.Name = name
	}
	return doc.Themes, nil
}

// checkTables verifies what tags cannot express: panel kinds, element
// parameters required by element kind and that element boxes stay inside
// of the canvas.
func checkTables(sl validator.StructLevel) {
	doc := sl.Current().Interface().(document)
	for name, th := range doc.Themes {
		if th == nil {
			continue
		}
		for kind, p := range th.Panels {
			if p == nil {
				continue
			}
			where := fmt.Sprintf("Themes[%s].Panels[%s]", name, kind)
			if _, err := common.ParsePanelKind(kind); err != nil {
				sl.ReportError(kind, where, "Panels", "panel_kind", kind)
				continue
			}
			if p.Width%p.Parts() != 0 {
				sl.ReportError(p.Split, where+".Split", "Split", "split", fmt.Sprint(p.Width))
			}
			for i, el := range p.Elements {
				if tag, param := checkElement(p, &el); tag != "" {
					sl.ReportError(el, fmt.Sprintf("%s.Elements[%d]", where, i), "Elements", tag, param)
				}
			}
		}
	}
}

func checkElement(p *Panel, el *Element) (string, string) {
	if !el.Kind.IsValid() || !el.Fit.IsValid() || !el.Orientation.IsValid() {
		return "enum", ""
	}
	b := el.Box
	if b.X < 0 || b.Y < 0 || b.W < 0 || b.H < 0 || b.X+b.W > p.Width || b.Y+b.H > p.Height {
		return "bounds", fmt.Sprintf("%dx%d", p.Width, p.Height)
	}
	needsBox := true
	switch el.Kind {
	case common.ElementKindImage, common.ElementKindIcon, common.ElementKindChart:
		// position only boxes draw image at its own size
		needsBox = false
	case common.ElementKindGradient:
		if el.Gradient == nil || !el.Gradient.Kind.IsValid() {
			return "gradient", ""
		}
		needsBox = el.Gradient.Kind == common.GradientKindBox
	case common.ElementKindText, common.ElementKindStats, common.ElementKindTitle:
		if el.Text == nil {
			return "text", ""
		}
	}
	if needsBox && !b.Sized() {
		return "box", ""
	}
	if (el.Kind.NeedsImage() || el.Kind.NeedsText()) && el.Field == "" && el.Value == "" {
		return "field", ""
	}
	return "", ""
}

// Panel returns layout table for panel kind of a theme.
func (t Themes) Panel(theme string, kind common.PanelKind) (*Panel, error) {
	th, ok := t[theme]
	if !ok {
		return nil, fmt.Errorf("unknown theme %q: %w", theme, common.ErrInvalidInput)
	}
	p, ok := th.Panels[kind.String()]
	if !ok {
		return nil, fmt.Errorf("theme %q has no %s panel: %w", theme, kind, common.ErrInvalidInput)
	}
	return p, nil
}

// Names returns sorted theme names.
func (t Themes) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))
	return names
}

// Dump returns human readable tree of theme layout tables.
func (t *Theme) Dump() string {
	tw := debug.NewTreeWriter()
	tw.Line(0, "theme %s", t.Name)

	kinds := make([]string, 0, len(t.Panels))
	for kind := range t.Panels {
		kinds = append(kinds, kind)
	}
	sort.Sort(natural.StringSlice(kinds))

	for _, kind := range kinds {
		p := t.Panels[kind]
		tw.Line(1, "panel %s %dx%d", kind, p.Width, p.Height)
		tw.Field(2, "background", p.Background)
		if p.Parts() > 1 {
			tw.Field(2, "split", p.Split)
		}
		for i, el := range p.Elements {
			tw.Line(2, "%d: %s %s", i, el.Kind, el.Box)
			tw.Field(3, "field", el.Field)
			tw.Field(3, "value", el.Value)
			tw.Field(3, "prefix", el.Prefix)
			tw.Field(3, "file", el.File)
			if el.Kind.NeedsImage() {
				tw.Field(3, "fit", el.Fit.String())
			}
			if el.Orientation != common.OrientationAny {
				tw.Field(3, "orientation", el.Orientation)
			}
			tw.Field(3, "color", el.Color)
			if el.Text != nil {
				tw.Line(3, "text")
				tw.Field(4, "font", el.Text.Font)
				tw.Field(4, "size", el.Text.Size)
				tw.Field(4, "min_size", el.Text.MinSize)
				tw.Field(4, "spacing", el.Text.Spacing)
				tw.Field(4, "color", el.Text.Color)
				tw.Field(4, "accent", el.Text.Accent)
				tw.Field(4, "trim_sentences", el.Text.TrimSentences)
			}
			if el.Effects != nil {
				tw.Line(3, "effects shadows=%d step=%d outline=%d", el.Effects.Shadows, el.Effects.ShadowStep, el.Effects.Outline)
			}
			if el.Gradient != nil {
				tw.Line(3, "gradient %s border=%d alpha=%d..%d", el.Gradient.Kind, el.Gradient.Border, el.Gradient.MinAlpha, el.Gradient.MaxAlpha)
			}
			if el.Circle != nil {
				tw.Field(3, "stroke", el.Circle.Stroke)
				tw.Field(3, "stroke_color", el.Circle.StrokeColor)
			}
			tw.Field(3, "optional", el.Optional)
		}
	}
	return tw.String()
}
