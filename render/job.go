// Package render drives panel building from job files: one YAML file
// describes a single subject (match, draft, ranking) and the panels to
// publish for it.
package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rupor-github/gencfg"
	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"

	"panelgen/common"
	"panelgen/panel"
)

// DateFormat is format of subject date in job files.
const DateFormat = time.DateOnly

type (
	subjectEntry struct {
		Category *common.Category `yaml:"category" validate:"required"`
		Date     string           `yaml:"date" validate:"required,datetime=2006-01-02"`
		MatchID  string           `yaml:"match_id" validate:"required"`
	}

	panelEntry struct {
		Index string           `yaml:"index" validate:"required"`
		Kind  common.PanelKind `yaml:"kind"`
		Input yaml.Node        `yaml:"input" validate:"-"`
	}

	jobFile struct {
		Subject subjectEntry `yaml:"subject"`
		Theme   string       `yaml:"theme,omitempty"`
		Panels  []panelEntry `yaml:"panels" validate:"min=1,dive"`
	}
)

// Job is decoded job file.
type Job struct {
	Name     string
	Subject  panel.Subject
	Theme    string
	Requests []*panel.Request
	// Invalid combines input errors of panels which were left out of
	// Requests. Valid panels of the same job are still built.
	Invalid error
}

// LoadJob reads job file. Relative file inputs of its panels are resolved
// against directory of the job file.
func LoadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read job file: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	job, err := ParseJob(data, filepath.Dir(abs))
	if err != nil {
		return nil, fmt.Errorf("job %s: %w", path, err)
	}
	job.Name = path
	return job, nil
}

// ParseJob decodes job, baseDir is used for relative file inputs.
func ParseJob(data []byte, baseDir string) (*Job, error) {
	var jf jobFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&jf); err != nil {
		return nil, fmt.Errorf("unable to decode job: %w: %w", common.ErrInvalidInput, err)
	}
	if err := gencfg.Validate(&jf); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidInput, err)
	}
	category := *jf.Subject.Category
	if !category.IsValid() {
		return nil, fmt.Errorf("bad subject category %d: %w", category, common.ErrInvalidInput)
	}
	date, err := time.Parse(DateFormat, jf.Subject.Date)
	if err != nil {
		return nil, fmt.Errorf("bad subject date: %w: %w", common.ErrInvalidInput, err)
	}

	job := &Job{
		Subject: panel.Subject{Category: category, Date: date, MatchID: jf.Subject.MatchID},
		Theme:   jf.Theme,
	}
	seen := make(map[string]struct{}, len(jf.Panels))
	for i := range jf.Panels {
		p := &jf.Panels[i]
		if _, ok := seen[p.Index]; ok {
			return nil, fmt.Errorf("duplicate panel index %q: %w", p.Index, common.ErrInvalidInput)
		}
		seen[p.Index] = struct{}{}

		in, err := panel.DecodeInput(p.Kind, &p.Input)
		if err != nil {
			job.Invalid = multierr.Append(job.Invalid, fmt.Errorf("panel %s: %w", p.Index, err))
			continue
		}
		job.Requests = append(job.Requests, &panel.Request{
			Subject: job.Subject,
			Theme:   job.Theme,
			Index:   p.Index,
			Input:   in,
			BaseDir: baseDir,
		})
	}
	return job, nil
}
