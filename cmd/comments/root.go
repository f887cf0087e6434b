package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/telkomindonesia/openapi-comments/internal/comment"
	"github.com/telkomindonesia/openapi-comments/internal/config"
	"github.com/telkomindonesia/openapi-comments/internal/document"
)

type app struct {
	cfgFile string
	path    string
	method  string
	output  string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "comments",
		Short:         "Read and edit comment lists stored in OpenAPI specification extensions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			a.cfg, err = config.Load(a.cfgFile, cmd.Flags())
			if err != nil {
				return fmt.Errorf("fail to load config: %w", err)
			}
			a.logger = a.cfg.Logger(cmd.ErrOrStderr())
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file")
	pf.String("extension", comment.DefaultExtension, "extension holding the comment list")
	pf.String("log-level", "warn", "log level: debug, info, warn, error")
	pf.Bool("validate", false, "validate the rendered spec before writing it")
	pf.StringVar(&a.path, "path", "", "operation path; the info object is used when empty")
	pf.StringVar(&a.method, "method", "get", "operation method")

	root.AddCommand(
		a.getCmd(),
		a.hasCmd(),
		a.mapCmd(),
		a.listCmd(),
		a.addCmd(),
		a.setCmd(),
		a.dropCmd(),
		a.targetsCmd(),
	)
	return root
}

func (a *app) target() document.Target {
	if a.path == "" {
		return document.InfoTarget
	}
	return document.Target{Path: a.path, Method: a.method}
}

func (a *app) load(spec string) (d *document.Document, l comment.List, err error) {
	d, err = document.Load(spec, a.logger)
	if err != nil {
		return nil, nil, err
	}
	l, err = d.Comments(a.target(), a.cfg.Extension)
	if err != nil {
		return nil, nil, err
	}
	a.logger.Debug("comments loaded",
		slog.String("spec", spec),
		slog.String("target", a.target().String()),
		slog.Int("count", len(l)))
	return
}

// edit applies fn to the comment list of the selected target and writes the
// resulting spec.
func (a *app) edit(cmd *cobra.Command, spec string, fn func(comment.List) (comment.List, error)) error {
	d, l, err := a.load(spec)
	if err != nil {
		return err
	}
	l, err = fn(l)
	if err != nil {
		return err
	}
	if err = d.SetComments(a.target(), a.cfg.Extension, l); err != nil {
		return fmt.Errorf("fail to store comments: %w", err)
	}

	b, err := d.Render()
	if err != nil {
		return err
	}
	if a.cfg.Validate {
		if err = document.Validate(context.Background(), b); err != nil {
			return err
		}
	}

	if a.output == "" {
		if _, err := cmd.OutOrStdout().Write(b); err != nil {
			return fmt.Errorf("fail to write stdout: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(a.output, b, 0644); err != nil {
		return fmt.Errorf("fail to write file: %w", err)
	}
	a.logger.Info("spec written", slog.String("output", a.output))
	return nil
}

func (a *app) outputFlag(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().StringVarP(&a.output, "output", "o", "", "destination file; stdout when empty")
	return cmd
}
