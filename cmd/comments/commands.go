package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/telkomindonesia/openapi-comments/internal/comment"
	"github.com/telkomindonesia/openapi-comments/internal/document"
	"gopkg.in/yaml.v3"
)

func (a *app) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <spec> <key>",
		Short: "Print the value of the first comment with the given key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, l, err := a.load(args[0])
			if err != nil {
				return err
			}
			v, err := l.Item(args[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		},
	}
}

func (a *app) hasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "has <spec> <key>",
		Short: "Print whether a comment with the given key exists",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, l, err := a.load(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), l.ContainsKey(args[1]))
			return err
		},
	}
}

func (a *app) mapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "map <spec>",
		Short: "Print named comments as a key/value mapping",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, l, err := a.load(args[0])
			if err != nil {
				return err
			}
			return encodeYAML(cmd, l.ToOrderedMap())
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <spec>",
		Short: "Print the comment list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, l, err := a.load(args[0])
			if err != nil {
				return err
			}
			return encodeYAML(cmd, l)
		},
	}
}

func (a *app) addCmd() *cobra.Command {
	return a.outputFlag(&cobra.Command{
		Use:   "add <spec> <name> <value>",
		Short: "Append a comment, keeping existing comments with the same name",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.edit(cmd, args[0], func(l comment.List) (comment.List, error) {
				return l.Add(comment.New(args[1], args[2])), nil
			})
		},
	})
}

func (a *app) setCmd() *cobra.Command {
	return a.outputFlag(&cobra.Command{
		Use:   "set <spec> <name> <value>",
		Short: "Replace every comment with the given name, or append it",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.edit(cmd, args[0], func(l comment.List) (comment.List, error) {
				return l.Set(comment.New(args[1], args[2]))
			})
		},
	})
}

func (a *app) dropCmd() *cobra.Command {
	return a.outputFlag(&cobra.Command{
		Use:   "drop <spec> <key>",
		Short: "Remove every comment with the given key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.edit(cmd, args[0], func(l comment.List) (comment.List, error) {
				return l.DropByKey(args[1]), nil
			})
		},
	})
}

func (a *app) targetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets <spec>",
		Short: "List the info object and operations with their comment count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := document.Load(args[0], a.logger)
			if err != nil {
				return err
			}
			for _, t := range d.Targets() {
				l, err := d.Comments(t, a.cfg.Extension)
				if err != nil {
					return err
				}
				if _, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", t, len(l)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func encodeYAML(cmd *cobra.Command, v any) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("fail to encode yaml: %w", err)
	}
	return enc.Close()
}
