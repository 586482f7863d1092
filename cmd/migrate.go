package cmd

import (
	"fmt"
	"strings"

	"github.com/killallgit/planner-api/internal/database"
	"github.com/killallgit/planner-api/pkg/config"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage the database schema of the Workout Planner API.

Tables are created and updated from the application models, so migrations
only ever add tables and columns.

Available subcommands:
  up      - Create missing tables and columns
  status  - Show which tables are missing`,
}

// migrateUpCmd applies pending migrations
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Create missing tables and columns",
	Long: `Bring the database schema up to date with the application models.

Existing data is kept; nothing is dropped.`,
	RunE: runMigrateUp,
}

// migrateStatusCmd shows migration status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Long:  `List the application tables that do not exist in the configured database yet.`,
	RunE:  runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateCmd.PersistentFlags().Bool("dry-run", false, "show what would be done without making changes")
}

func openConfiguredDB(cmd *cobra.Command) (*config.Config, *database.DB, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	return cfg, db, nil
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	cfg, db, err := openConfiguredDB(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	out := cmd.OutOrStdout()
	pending := db.PendingTables()
	if dryRun {
		fmt.Fprintln(out, "Dry run mode - no changes will be made")
		printPending(cmd, pending)
		return nil
	}

	if err := db.Migrate(); err != nil {
		return err
	}
	created, err := db.SeedDefaultExercise(cfg.Clips.DefaultExerciseID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Migration complete (%d tables created)\n", len(pending))
	if created {
		fmt.Fprintf(out, "Created default exercise %d\n", cfg.Clips.DefaultExerciseID)
	}
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	_, db, err := openConfiguredDB(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Database Migration Status")
	fmt.Fprintln(out, strings.Repeat("=", 50))
	printPending(cmd, db.PendingTables())
	return nil
}

func printPending(cmd *cobra.Command, pending []string) {
	out := cmd.OutOrStdout()
	if len(pending) == 0 {
		fmt.Fprintln(out, "Schema is up to date")
		return
	}
	fmt.Fprintln(out, "Pending tables:")
	for _, table := range pending {
		fmt.Fprintf(out, "  • %s\n", table)
	}
}
