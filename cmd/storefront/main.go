// Command storefront runs the Plaza Sales storefront API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type rootOptions struct {
	profile string
	envFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Plaza Sales storefront API",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return loadEnv(opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.profile, "profile", "",
		"configuration profile (configs/{profile}.yaml); defaults to $APP_ENVIRONMENT or local")
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before configuration, if present")

	serve := newServeCmd(opts)
	root.AddCommand(serve, newMigrateCmd(opts))

	// storefront with no subcommand serves.
	root.Args = cobra.NoArgs
	root.RunE = serve.RunE

	return root
}

// loadEnv loads the dotenv file without overriding variables already set,
// then settles the profile.
func loadEnv(opts *rootOptions) error {
	if opts.envFile != "" {
		err := godotenv.Load(opts.envFile)
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("loading %s: %w", opts.envFile, err)
		}
	}

	if opts.profile == "" {
		opts.profile = os.Getenv("APP_ENVIRONMENT")
	}

	if opts.profile == "" {
		opts.profile = "local"
	}

	return nil
}
