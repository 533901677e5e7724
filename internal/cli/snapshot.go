package cli

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

func newSnapshotCmd(root *rootOptions) *cobra.Command {
	var (
		src    sourceFlags
		file   string
		status int
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Store a response body in Redis so the redis source can serve it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file == "" {
				return errors.New("--file is required")
			}

			cfg, err := root.config(cmd, &src)
			if err != nil {
				return err
			}
			cfg.Source = SourceRedis
			if err := cfg.Validate(); err != nil {
				return err
			}

			body, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read body: %w", err)
			}

			logger := newLogger(cmd.ErrOrStderr(), root.debug)

			tr, rdb, err := newRedisTransport(cfg, logger)
			if err != nil {
				return err
			}
			defer rdb.Close()

			url, _ := cfg.ResolveURL()
			if err := tr.Store(cmd.Context(), url, status, body); err != nil {
				return err
			}

			logger.Info().Str("key", tr.Key(url)).Int("status", status).Int("bytes", len(body)).Msg("snapshot stored")
			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().StringVar(&file, "file", "", "file holding the response body")
	cmd.Flags().IntVar(&status, "status", http.StatusOK, "HTTP status stored with the body")

	return cmd
}
