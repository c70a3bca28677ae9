package layout

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	validator "github.com/go-playground/validator/v10"
	yaml "gopkg.in/yaml.v3"

	"panelgen/common"
)

func TestDefault(t *testing.T) {
	themes, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if got := themes.Names(); len(got) != 2 || got[0] != "alt" || got[1] != "basic" {
		t.Errorf("Names() = %v", got)
	}
	for _, name := range themes.Names() {
		for _, kind := range common.PanelKindValues() {
			p, err := themes.Panel(name, kind)
			if err != nil {
				t.Errorf("theme %s: %v", name, err)
				continue
			}
			if p.Height != PanelHeight || p.Width != PanelWidth*p.Parts() {
				t.Errorf("theme %s panel %s: size %dx%d with %d parts", name, kind, p.Width, p.Height, p.Parts())
			}
			if len(p.Elements) == 0 {
				t.Errorf("theme %s panel %s has no elements", name, kind)
			}
		}
		if themes[name].Name != name {
			t.Errorf("theme name = %q, want %q", themes[name].Name, name)
		}
	}

	counter, _ := themes.Panel("basic", common.PanelKindCounter)
	if counter.Parts() != 2 {
		t.Errorf("counter panel parts = %d, want 2", counter.Parts())
	}
}

func TestPanel_Errors(t *testing.T) {
	themes, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := themes.Panel("missing", common.PanelKindCover); !errors.Is(err, common.ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}

	themes = Themes{"empty": {Name: "empty", Panels: map[string]*Panel{}}}
	if _, err := themes.Panel("empty", common.PanelKindCover); !errors.Is(err, common.ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

const minimal = `version: 1
themes:
  test:
    panels:
      cover:
        width: 1080
        height: 1350
        elements:
          - kind: text
            field: title
            box: %s
            text: {size: 40}
`

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
		tag     string
	}{
		{"valid", strings.Replace(minimal, "%s", "[0, 0, 1080, 200]", 1), false, ""},
		{"out of bounds", strings.Replace(minimal, "%s", "[100, 0, 1080, 200]", 1), true, "bounds"},
		{"negative", strings.Replace(minimal, "%s", "[-1, 0, 100, 200]", 1), true, "bounds"},
		{"unsized text", strings.Replace(minimal, "%s", "[10, 10]", 1), true, "box"},
		{"unknown panel", strings.Replace(strings.Replace(minimal, "%s", "[0, 0, 10, 10]", 1), "cover:", "poster:", 1), true, "panel_kind"},
		{"no text params", strings.Replace(strings.Replace(minimal, "%s", "[0, 0, 10, 10]", 1), "text: {size: 40}", "optional: true", 1), true, "text"},
		{"no field", strings.Replace(strings.Replace(minimal, "%s", "[0, 0, 10, 10]", 1), "field: title", "optional: true", 1), true, "field"},
		{"zero size", strings.Replace(strings.Replace(minimal, "%s", "[0, 0, 10, 10]", 1), "size: 40", "size: 0", 1), true, "gt"},
		{"bad version", strings.Replace(strings.Replace(minimal, "%s", "[0, 0, 10, 10]", 1), "version: 1", "version: 2", 1), true, "eq"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}
			var verrs validator.ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("error %v is not validation error", err)
			}
			found := false
			for _, fe := range verrs {
				if fe.Tag() == tt.tag {
					found = true
				}
			}
			if !found {
				t.Errorf("no %q violation in %v", tt.tag, err)
			}
		})
	}
}

func TestParse_Decoding(t *testing.T) {
	for name, data := range map[string]string{
		"unknown field": strings.Replace(minimal, "%s", "[0, 0, 10, 10]\n            colour: red", 1),
		"bad box":       strings.Replace(minimal, "%s", "[0, 0, 10]", 1),
		"bad kind":      strings.Replace(strings.Replace(minimal, "%s", "[0, 0, 10, 10]", 1), "kind: text", "kind: sparkles", 1),
	} {
		if _, err := Parse([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestParse_SplitWidth(t *testing.T) {
	data := strings.Replace(minimal, "%s", "[0, 0, 10, 10]", 1)
	data = strings.Replace(data, "width: 1080", "width: 1081\n        split: 2", 1)
	if _, err := Parse([]byte(data)); err == nil {
		t.Error("expected error for width not divisible by split")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layouts.yaml")
	if err := os.WriteFile(path, []byte(strings.Replace(minimal, "%s", "[0, 0, 1080, 200]", 1)), 0644); err != nil {
		t.Fatal(err)
	}
	themes, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	p, err := themes.Panel("test", common.PanelKindCover)
	if err != nil {
		t.Fatal(err)
	}
	el := p.Elements[0]
	if el.Kind != common.ElementKindText || el.Field != "title" || el.Box != (Box{0, 0, 1080, 200}) || el.Text.Size != 40 {
		t.Errorf("element = %+v", el)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	if themes, err := Load(""); err != nil || len(themes) != 2 {
		t.Errorf("Load(\"\") = %d themes, %v", len(themes), err)
	}
}

func TestColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#FFC83D", Color{0xFF, 0xC8, 0x3D, 0xFF}, false},
		{"000000A0", Color{0, 0, 0, 0xA0}, false},
		{"#fff", Color{}, true},
		{"#GGGGGG", Color{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	var c struct {
		C *Color `yaml:"c"`
	}
	if err := yaml.Unmarshal([]byte(`c: "#102030"`), &c); err != nil {
		t.Fatal(err)
	}
	if c.C.String() != "#102030" {
		t.Errorf("round trip = %s", c.C)
	}
	out, err := yaml.Marshal(c)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "#102030") {
		t.Errorf("marshaled = %s", out)
	}

	var nilColor *Color
	def := color.NRGBA{1, 2, 3, 4}
	if nilColor.NRGBA(def) != def {
		t.Error("nil color must return default")
	}
}

func TestBox(t *testing.T) {
	var b Box
	if err := yaml.Unmarshal([]byte(`[10, 20]`), &b); err != nil {
		t.Fatal(err)
	}
	if b.Sized() || b.Point().X != 10 || b.Point().Y != 20 {
		t.Errorf("box = %+v", b)
	}
	out, err := yaml.Marshal(Box{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(out)) != "[1, 2, 3, 4]" {
		t.Errorf("marshaled = %q", out)
	}
}

func TestDump(t *testing.T) {
	themes, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	out := themes["basic"].Dump()
	for _, want := range []string{
		"theme basic\n",
		"  panel counter 2160x1350\n",
		"    split: 2\n",
		"      field: \"photo\"\n",
		"        font: \"title\"\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump has no %q", want)
		}
	}
	// natural ordering of panel kinds
	if strings.Index(out, "panel counter") > strings.Index(out, "panel cover") {
		t.Error("panels are not sorted")
	}
}
