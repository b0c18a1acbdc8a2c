package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/langcard/internal/config"
	"github.com/matzehuels/langcard/internal/server"
	"github.com/matzehuels/langcard/pkg/github"
)

// serveCommand creates the HTTP service command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		addr       string
		token      string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP card service",
		Long: `Start the HTTP service exposing GET /api/top-langs.

Configuration is read from the --config TOML file when given; --addr and
--token override it. The GITHUB_TOKEN environment variable is the fallback
credential source.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if token == "" {
				token = cfg.GitHub.Token
			}
			if token == "" {
				token = os.Getenv("GITHUB_TOKEN")
			}

			client, err := github.NewClient(token)
			if err != nil {
				return err
			}

			responseCache, err := newCacheFromConfig(cmd, cfg.Cache)
			if err != nil {
				return err
			}
			defer responseCache.Close()

			c.Logger.Info("starting service",
				"addr", cfg.Addr, "cache", cfg.Cache.Backend, "ttl", cfg.Cache.TTL())

			srv := server.New(cfg, client, responseCache, c.Logger)
			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to the TOML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&token, "token", "", "GitHub API token (overrides config)")

	return cmd
}
