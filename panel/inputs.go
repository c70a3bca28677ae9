// Package panel assembles finished panels: it validates typed per panel
// input, draws layout table elements onto a canvas and writes resulting PNG
// files.
package panel

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/rupor-github/gencfg"
	yaml "gopkg.in/yaml.v3"

	"panelgen/common"
)

// Input is validated data of a single panel. Fields flattens it into values
// referenced by layout elements ("team_a.logo", "counters.1.stat").
type Input interface {
	Kind() common.PanelKind
	Fields() map[string]string
}

type (
	Team struct {
		Name string `yaml:"name" validate:"required"`
		// Logo is asset key under "teams/".
		Logo string `yaml:"logo"`
	}

	Counter struct {
		Icon string `yaml:"icon" validate:"required"`
		Name string `yaml:"name" validate:"required"`
		Stat string `yaml:"stat"`
	}

	Entry struct {
		Icon  string `yaml:"icon"`
		Name  string `yaml:"name" validate:"required"`
		Value string `yaml:"value" validate:"required"`
	}

	CoverInput struct {
		Photo    string `yaml:"photo"`
		Title    string `yaml:"title" validate:"required"`
		TeamA    Team   `yaml:"team_a"`
		TeamB    Team   `yaml:"team_b"`
		Score    string `yaml:"score" validate:"required"`
		Subtitle string `yaml:"subtitle"`
		Link     string `yaml:"link" validate:"omitempty,url"`
	}

	MVPInput struct {
		Photo    string   `yaml:"photo"`
		Hero     string   `yaml:"hero" validate:"required"`
		TeamLogo string   `yaml:"team_logo"`
		Player   string   `yaml:"player" validate:"required"`
		Stats    []string `yaml:"stats" validate:"max=8,dive,required"`
		Story    string   `yaml:"story"`
		Score    string   `yaml:"score"`
	}

	StatsInput struct {
		Title   string `yaml:"title" validate:"required"`
		TeamA   Team   `yaml:"team_a"`
		TeamB   Team   `yaml:"team_b"`
		Chart   string `yaml:"chart" validate:"required"`
		Summary string `yaml:"summary"`
	}

	CounterInput struct {
		Hero     string    `yaml:"hero" validate:"required"`
		Title    string    `yaml:"title" validate:"required"`
		Story    string    `yaml:"story"`
		Counters []Counter `yaml:"counters" validate:"min=1,max=4,dive"`
	}

	RankingInput struct {
		Title   string  `yaml:"title" validate:"required"`
		Entries []Entry `yaml:"entries" validate:"min=1,max=5,dive"`
	}

	StoryInput struct {
		Photo      string   `yaml:"photo"`
		Title      string   `yaml:"title" validate:"required"`
		Text       string   `yaml:"text" validate:"required"`
		Highlights []string `yaml:"highlights" validate:"max=4,dive,required"`
	}
)

func (in *CoverInput) Kind() common.PanelKind   { return common.PanelKindCover }
func (in *MVPInput) Kind() common.PanelKind     { return common.PanelKindMvp }
func (in *StatsInput) Kind() common.PanelKind   { return common.PanelKindStats }
func (in *CounterInput) Kind() common.PanelKind { return common.PanelKindCounter }
func (in *RankingInput) Kind() common.PanelKind { return common.PanelKindRanking }
func (in *StoryInput) Kind() common.PanelKind   { return common.PanelKindStory }

func (t Team) fields(prefix string, m map[string]string) {
	m[prefix+".name"] = t.Name
	m[prefix+".logo"] = t.Logo
}

// bullets turns list into stat lines, every item starts with a bullet.
func bullets(items []string) string {
	var b strings.Builder
	for i, s := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("• ")
		b.WriteString(strings.TrimSpace(s))
	}
	return b.String()
}

func (in *CoverInput) Fields() map[string]string {
	m := map[string]string{
		"photo":    in.Photo,
		"title":    in.Title,
		"score":    in.Score,
		"subtitle": in.Subtitle,
		"link":     in.Link,
	}
	in.TeamA.fields("team_a", m)
	in.TeamB.fields("team_b", m)
	return m
}

func (in *MVPInput) Fields() map[string]string {
	return map[string]string{
		"photo":     in.Photo,
		"hero":      in.Hero,
		"team_logo": in.TeamLogo,
		"player":    in.Player,
		"stats":     bullets(in.Stats),
		"story":     in.Story,
		"score":     in.Score,
	}
}

func (in *StatsInput) Fields() map[string]string {
	m := map[string]string{
		"title":   in.Title,
		"chart":   in.Chart,
		"summary": in.Summary,
	}
	in.TeamA.fields("team_a", m)
	in.TeamB.fields("team_b", m)
	return m
}

func (in *CounterInput) Fields() map[string]string {
	m := map[string]string{
		"hero":  in.Hero,
		"title": in.Title,
		"story": in.Story,
	}
	for i, c := range in.Counters {
		p := "counters." + strconv.Itoa(i)
		m[p+".icon"] = c.Icon
		m[p+".name"] = c.Name
		m[p+".stat"] = c.Stat
	}
	return m
}

func (in *RankingInput) Fields() map[string]string {
	m := map[string]string{"title": in.Title}
	for i, e := range in.Entries {
		p := "entries." + strconv.Itoa(i)
		m[p+".icon"] = e.Icon
		m[p+".name"] = e.Name
		m[p+".value"] = e.Value
	}
	return m
}

func (in *StoryInput) Fields() map[string]string {
	return map[string]string{
		"photo":      in.Photo,
		"title":      in.Title,
		"text":       in.Text,
		"highlights": bullets(in.Highlights),
	}
}

// NewInput returns empty input of panel kind.
func NewInput(kind common.PanelKind) (Input, error) {
	switch kind {
	case common.PanelKindCover:
		return &CoverInput{}, nil
	case common.PanelKindMvp:
		return &MVPInput{}, nil
	case common.PanelKindStats:
		return &StatsInput{}, nil
	case common.PanelKindCounter:
		return &CounterInput{}, nil
	case common.PanelKindRanking:
		return &RankingInput{}, nil
	case common.PanelKindStory:
		return &StoryInput{}, nil
	}
	return nil, fmt.Errorf("unknown panel kind %d: %w", kind, common.ErrInvalidInput)
}

// DecodeInput decodes YAML node into typed input of panel kind and validates
// it. Unknown keys are rejected.
func DecodeInput(kind common.PanelKind, node *yaml.Node) (Input, error) {
	in, err := NewInput(kind)
	if err != nil {
		return nil, err
	}
	if node == nil || node.Kind == 0 {
		return nil, fmt.Errorf("%s: no input: %w", kind, common.ErrInvalidInput)
	}

	// yaml.Node.Decode does not support strict mode, go through bytes
	data, err := yaml.Marshal(node)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", kind, common.ErrInvalidInput, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(in); err != nil {
		return nil, fmt.Errorf("%s: unable to decode input: %w: %w", kind, common.ErrInvalidInput, err)
	}
	if err := ValidateInput(in); err != nil {
		return nil, err
	}
	return in, nil
}

// ValidateInput checks input constraints.
func ValidateInput(in Input) error {
	if err := gencfg.Validate(in); err != nil {
		return fmt.Errorf("%s: %w: %w", in.Kind(), common.ErrInvalidInput, err)
	}
	return nil
}
