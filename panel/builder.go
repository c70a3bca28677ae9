package panel

import (
	"context"
	"fmt"
	"image"
	"time"

	"go.uber.org/zap"

	"panelgen/assets"
	"panelgen/common"
	"panelgen/compose"
	"panelgen/config"
	"panelgen/layout"
	"panelgen/typeset"
)

// Request describes a single panel to build.
type Request struct {
	Subject Subject
	// Theme selects layout tables, empty means configured default.
	Theme string
	// Index names output file(s) of the panel.
	Index string
	Input Input
	// BaseDir is used to resolve relative file inputs (photos, charts).
	BaseDir string
}

// Builder draws panels. It keeps only read only state and is safe to use
// from multiple goroutines, every build gets its own canvas and font faces.
type Builder struct {
	cfg    *config.EngineConfig
	themes layout.Themes
	assets *assets.Resolver
	fonts  *typeset.Fonts
	log    *zap.Logger
}

func NewBuilder(cfg *config.EngineConfig, themes layout.Themes, res *assets.Resolver, fonts *typeset.Fonts, log *zap.Logger) *Builder {
	return &Builder{
		cfg:    cfg,
		themes: themes,
		assets: res,
		fonts:  fonts,
		log:    log.Named("panel"),
	}
}

func (b *Builder) theme(name string) string {
	if name == "" {
		return b.cfg.Theme
	}
	return name
}

// background returns template image of the panel or nil when panel has none
// or it is missing.
func (b *Builder) background(p *layout.Panel, log *zap.Logger) (image.Image, error) {
	if p.Background == "" {
		return nil, nil
	}
	img, err := b.assets.ImageSized(p.Background, p.Width, p.Height)
	if err != nil {
		if common.Fatal(err) {
			return nil, fmt.Errorf("background %s: %w", p.Background, err)
		}
		log.Warn("Background template not found, using transparent canvas", zap.String("asset", p.Background), zap.Error(err))
		return nil, nil
	}
	return img, nil
}

// Render draws panel of input kind using layout of the theme and returns
// finished image(s). Double wide panels are split into parts left to right.
// Missing assets only skip elements which need them, any other failure
// aborts the panel.
func (b *Builder) Render(theme string, in Input, baseDir string) ([]*image.RGBA, error) {
	if in == nil {
		return nil, fmt.Errorf("no input: %w", common.ErrInvalidInput)
	}
	theme = b.theme(theme)
	p, err := b.themes.Panel(theme, in.Kind())
	if err != nil {
		return nil, err
	}
	log := b.log.With(zap.String("theme", theme), zap.Stringer("kind", in.Kind()))

	tmpl, err := b.background(p, log)
	if err != nil {
		return nil, err
	}
	canvas, err := compose.FromTemplate(tmpl, p.Width, p.Height)
	if err != nil {
		return nil, err
	}

	faces := b.fonts.NewFaces()
	defer func() {
		if err := faces.Close(); err != nil {
			log.Debug("Unable to release font faces", zap.Error(err))
		}
	}()

	d := &drawer{
		cfg:     b.cfg,
		assets:  b.assets,
		canvas:  canvas,
		text:    typeset.NewRenderer(canvas, faces),
		fields:  in.Fields(),
		baseDir: baseDir,
		log:     log,
	}
	for i := range p.Elements {
		el := &p.Elements[i]
		if err := d.draw(el); err != nil {
			if common.Fatal(err) {
				return nil, fmt.Errorf("element %d (%s %s): %w", i, el.Kind, el.Field, err)
			}
			log.Warn("Element skipped", zap.Int("element", i), zap.Stringer("element_kind", el.Kind), zap.String("field", el.Field), zap.Error(err))
		}
	}

	if p.Parts() == 1 {
		return []*image.RGBA{canvas}, nil
	}
	return compose.SplitHorizontal(canvas, p.Parts())
}

// Build renders requested panel and writes its part(s) under configured
// output root. Returns names of written files.
func (b *Builder) Build(ctx context.Context, req *Request) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	parts, err := b.Render(req.Theme, req.Input, req.BaseDir)
	if err != nil {
		return nil, fmt.Errorf("panel %s: %w", req.Index, err)
	}

	files := make([]string, 0, len(parts))
	for i, part := range parts {
		name := OutputPath(b.cfg.OutputRoot, req.Subject, req.Index, i, len(parts), b.cfg.FileNameTransliterate)
		if err := SavePNG(part, name, b.cfg.Compression); err != nil {
			return files, fmt.Errorf("panel %s: %w", req.Index, err)
		}
		files = append(files, name)
	}
	b.log.Debug("Panel written", zap.String("index", req.Index), zap.Strings("files", files), zap.Duration("elapsed", time.Since(start)))
	return files, nil
}
