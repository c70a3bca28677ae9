package render

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"panelgen/panel"
	"panelgen/state"
)

// Run is CLI action of render command: it builds panels of all job files
// given as arguments.
func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("render")

	if cmd.Args().Len() == 0 {
		return errors.New("no job files have been specified")
	}
	if out := cmd.String("out"); len(out) > 0 {
		env.Cfg.Engine.OutputRoot = filepath.Clean(out)
	}
	if theme := cmd.String("theme"); len(theme) > 0 {
		env.Cfg.Engine.Theme = theme
	}

	log.Info("Processing starting", zap.Strings("jobs", cmd.Args().Slice()), zap.String("destination", env.Cfg.Engine.OutputRoot))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, env, cmd.Args().Slice(), log)
}

// process handles rendering independently of CLI framework.
func process(ctx context.Context, env *state.LocalEnv, jobs []string, log *zap.Logger) (err error) {
	builder, err := env.Builder()
	if err != nil {
		return fmt.Errorf("unable to prepare engine: %w", err)
	}

	var reqs []*panel.Request
	for i, name := range jobs {
		job, er := LoadJob(name)
		if er != nil {
			log.Error("Unable to load job", zap.String("job", name), zap.Error(er))
			err = multierr.Append(err, er)
			continue
		}
		if env.Rpt != nil {
			env.Rpt.Store(fmt.Sprintf("jobs/%02d-%s", i, filepath.Base(name)), name)
		}
		if job.Invalid != nil {
			log.Error("Job has invalid panels", zap.String("job", name), zap.Error(job.Invalid))
			err = multierr.Append(err, fmt.Errorf("job %s: %w", name, job.Invalid))
		}
		log.Debug("Job loaded", zap.String("job", name), zap.Stringer("subject", job.Subject), zap.Int("panels", len(job.Requests)))
		reqs = append(reqs, job.Requests...)
	}
	if len(reqs) == 0 {
		return multierr.Append(err, errors.New("nothing to render"))
	}

	results, er := builder.BuildAll(ctx, reqs)
	err = multierr.Append(err, er)

	files := panel.Files(results)
	if env.Rpt != nil {
		for _, f := range files {
			if rel, er := filepath.Rel(env.Cfg.Engine.OutputRoot, f); er == nil {
				env.Rpt.Store(filepath.ToSlash(filepath.Join("panels", rel)), f)
			}
		}
	}
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	log.Info("Panels written", zap.Int("files", len(files)), zap.Int("panels", len(results)), zap.Int("failed", failed))
	return err
}
