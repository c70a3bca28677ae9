package state

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"panelgen/assets"
	"panelgen/common"
	"panelgen/layout"
	"panelgen/panel"
	"panelgen/typeset"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start: time.Now(),
	}
}

// Prepare loads layout tables, indexes resource root and parses fonts. Work
// is done once, subsequent calls return result of the first one.
func (e *LocalEnv) Prepare() error {
	e.prepareOnce.Do(func() {
		e.prepareErr = e.initialize()
	})
	return e.prepareErr
}

func (e *LocalEnv) initialize() error {
	if e.Cfg == nil || e.Log == nil {
		return errors.New("program environment is not configured")
	}
	conf := &e.Cfg.Engine
	log := e.Log.Named("init")

	themes, err := e.LoadThemes()
	if err != nil {
		return err
	}
	if _, ok := themes[conf.Theme]; !ok {
		return fmt.Errorf("default theme %q is not defined, available: %v", conf.Theme, themes.Names())
	}

	res, err := assets.New(conf.ResourceRoot, conf.Fallbacks, e.Log)
	if err != nil {
		return err
	}

	data := make(map[string][]byte)
	for role, name := range map[string]string{
		typeset.FontRegular: conf.Fonts.Regular,
		typeset.FontBold:    conf.Fonts.Bold,
		typeset.FontTitle:   conf.Fonts.Title,
	} {
		if name == "" {
			continue
		}
		raw, err := res.Bytes(name)
		if errors.Is(err, common.ErrAssetMissing) {
			log.Warn("Font file not found", zap.String("role", role), zap.String("file", name))
			continue
		}
		if err != nil {
			return fmt.Errorf("unable to read %s font: %w", role, err)
		}
		data[role] = raw
	}
	fonts, err := typeset.NewFonts(data, conf.Text.DPI, log)
	if err != nil {
		return err
	}

	e.Themes, e.Assets, e.Fonts = themes, res, fonts
	log.Debug("Engine prepared",
		zap.Strings("themes", themes.Names()), zap.Int("assets", len(res.Keys())), zap.Duration("elapsed", e.Uptime()))
	return nil
}

// LoadThemes returns layout tables from configured file or built-in ones.
func (e *LocalEnv) LoadThemes() (layout.Themes, error) {
	if e.Cfg == nil || e.Cfg.Engine.LayoutsPath == "" {
		return layout.Default()
	}
	return layout.Load(e.Cfg.Engine.LayoutsPath)
}

// Builder returns panel builder sharing prepared state.
func (e *LocalEnv) Builder() (*panel.Builder, error) {
	if err := e.Prepare(); err != nil {
		return nil, err
	}
	return panel.NewBuilder(&e.Cfg.Engine, e.Themes, e.Assets, e.Fonts, e.Log), nil
}
