package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/plazasales/storefront/internal/adapters/visitor"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply visitor store migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return migrate(cmd.Context(), opts.profile)
		},
	}
}

func migrate(ctx context.Context, profile string) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(profile)
	if err != nil {
		return err
	}

	logger := newLogger(cfg)

	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return err
	}

	defer func() { err = errors.Join(err, db.Close()) }()

	applied, err := visitor.Migrate(ctx, db, logger)
	if err != nil {
		return fmt.Errorf("migrating visitor store: %w", err)
	}

	logger.Info("visitor store up to date", slog.Int("applied", applied))

	return nil
}
