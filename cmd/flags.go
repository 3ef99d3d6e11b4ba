package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/gnames/geodb/internal/iodb"
	geodb "github.com/gnames/geodb/pkg"
	"github.com/gnames/geodb/pkg/db"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n", geodb.Version, geodb.Build)
		os.Exit(0)
	}
}

// interruptContext is cancelled by Ctrl-C, so long stages stop
// their workers.
func interruptContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// connectDB connects to PostgreSQL with settings from cfg.
func connectDB(ctx context.Context) (db.Operator, error) {
	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return nil, err
	}

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)
	return op, nil
}

// requireSchema returns an error if the database has no tables.
func requireSchema(ctx context.Context, op db.Operator) error {
	hasTables, err := op.HasTables(ctx)
	if err != nil {
		return err
	}
	if !hasTables {
		return iodb.EmptyDatabaseError(cfg.Database.Host, cfg.Database.Database)
	}
	return nil
}
