package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lucasgdosr/deque/v2/internal/config"
	"github.com/lucasgdosr/deque/v2/internal/logging"
	"github.com/lucasgdosr/deque/v2/internal/walk"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dequewalk [flags] <root>",
		Short: "List a directory tree breadth-first or depth-first",
		Long: `dequewalk prints every entry below <root>, one slash separated path per
line, relative to <root>. Flags may also be set through DEQUEWALK_* environment
variables or a config file.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.BuildViper(cmd.Flags())
			if err != nil {
				return err
			}
			cfg, err := config.GetConfig(v)
			if err != nil {
				return err
			}

			log, err := logging.New("dequewalk", cfg.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() {
				_ = log.Sync()
			}()

			root := args[0]
			w, err := walk.New(os.DirFS(root), cfg.Walk, log)
			if err != nil {
				return err
			}
			log.Debug("walking",
				zap.String("root", root),
				zap.String("order", string(cfg.Walk.Order)),
				zap.Int("maxDepth", cfg.Walk.MaxDepth),
			)

			out := cmd.OutOrStdout()
			var count int
			err = w.Walk(cmd.Context(), ".", func(e walk.Entry) error {
				count++
				_, err := fmt.Fprintln(out, e.Path)
				return err
			})
			if err != nil {
				log.Error("walk failed", zap.Error(err))
				return err
			}
			log.Info("walk finished", zap.Int("entries", count))
			return nil
		},
	}
	cmd.Flags().AddFlagSet(config.BuildFlagSet())
	return cmd
}
