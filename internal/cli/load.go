package cli

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/giopellizzoni/contacts"
	"github.com/giopellizzoni/contacts/httptransport"
	"github.com/giopellizzoni/contacts/redistransport"
)

func newLoadCmd(root *rootOptions) *cobra.Command {
	var (
		src    sourceFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load the employee list once and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.config(cmd, &src)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("output") {
				cfg.Output = output
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), root.debug)

			transport, closeTransport, err := newTransport(cfg, logger)
			if err != nil {
				return err
			}
			defer closeTransport()

			url, _ := cfg.ResolveURL()

			loader, err := contacts.NewContactsLoader(
				contacts.WithURL(url),
				contacts.WithTransport(transport),
				contacts.WithLogger(logger),
			)
			if err != nil {
				return err
			}
			defer loader.Close()

			results := make(chan contacts.Result, 1)
			loader.Load(func(r contacts.Result) { results <- r })

			select {
			case r := <-results:
				if r.Err != nil {
					logger.Error().Err(r.Err).Str("url", url).Msg("load failed")
					return r.Err
				}

				logger.Info().Str("url", url).Int("employees", len(r.Employees)).Msg("loaded")
				return render(cmd.OutOrStdout(), cfg.Output, r.Employees)
			case <-cmd.Context().Done():
				return cmd.Context().Err()
			}
		},
	}

	src.register(cmd)
	src.registerSource(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table or json")

	return cmd
}

// newTransport builds the transport selected by cfg.Source and a function releasing its resources.
func newTransport(cfg Config, logger zerolog.Logger) (contacts.Transport, func(), error) {
	switch cfg.Source {
	case SourceRedis:
		tr, rdb, err := newRedisTransport(cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		return tr, func() { _ = rdb.Close() }, nil
	case SourceHTTP:
		httpCfg := httptransport.DefaultConfig()
		if cfg.HTTP.Timeout > 0 {
			httpCfg.Timeout = cfg.HTTP.Timeout
		}

		opts := []httptransport.Option{
			httptransport.WithConfig(httpCfg),
			httptransport.WithLogger(logger),
		}
		if cfg.HTTP.APIKey != "" {
			opts = append(opts, httptransport.WithHeader("X-Api-Key", cfg.HTTP.APIKey))
		}

		return httptransport.New(opts...), func() {}, nil
	}

	return nil, nil, fmt.Errorf("%w: unknown source %q", ErrInvalidConfig, cfg.Source)
}

func newRedisTransport(cfg Config, logger zerolog.Logger) (*redistransport.Transport, redis.UniversalClient, error) {
	rdb := redis.NewUniversalClient(&redis.UniversalOptions{Addrs: []string{cfg.Redis.Addr}})

	tr, err := redistransport.New(
		redistransport.WithClient(rdb),
		redistransport.WithPrefix(cfg.Redis.Prefix),
		redistransport.WithLogger(logger),
	)
	if err != nil {
		_ = rdb.Close()
		return nil, nil, err
	}

	return tr, rdb, nil
}
