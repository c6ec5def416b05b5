package migrate

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/vendra-inc/vendra/internal/infrastructure/config"
	"github.com/vendra-inc/vendra/internal/infrastructure/database"
	"github.com/vendra-inc/vendra/internal/infrastructure/migration"
	"github.com/vendra-inc/vendra/internal/shared/logger"
)

var (
	env   string
	name  string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations: apply pending migrations, roll back, check status and create new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
		newSeedCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.MarkFlagRequired("name")

	return cmd
}

func initEnv() (logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return logger.NewLogger(), nil
}

func scriptsPath() (string, error) {
	return filepath.Abs("./internal/infrastructure/migration/scripts")
}

func runUp(cmd *cobra.Command, args []string) error {
	log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	path, err := scriptsPath()
	if err != nil {
		return err
	}

	strategy := migration.NewGolangMigrateStrategy(path)
	if err := strategy.Migrate(database.Get()); err != nil {
		return fmt.Errorf("migration up failed: %w", err)
	}

	log.Infow("migrations applied")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	path, err := scriptsPath()
	if err != nil {
		return err
	}

	strategy, ok := migration.NewGolangMigrateStrategy(path).(*migration.GolangMigrateStrategy)
	if !ok {
		return fmt.Errorf("unexpected migration strategy type")
	}

	if err := strategy.MigrateDown(database.Get(), steps); err != nil {
		return fmt.Errorf("migration down failed: %w", err)
	}

	log.Infow("migrations rolled back", "steps", steps)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	_, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	path, err := scriptsPath()
	if err != nil {
		return err
	}

	strategy, ok := migration.NewGolangMigrateStrategy(path).(*migration.GolangMigrateStrategy)
	if !ok {
		return fmt.Errorf("unexpected migration strategy type")
	}

	version, dirty, err := strategy.GetVersion(database.Get())
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	fmt.Printf("version: %d\ndirty: %v\n", version, dirty)
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	path, err := scriptsPath()
	if err != nil {
		return err
	}

	timestamp := time.Now().UTC().Format("20060102150405")
	upFile := filepath.Join(path, fmt.Sprintf("%s_%s.up.sql", timestamp, name))
	downFile := filepath.Join(path, fmt.Sprintf("%s_%s.down.sql", timestamp, name))

	for _, f := range []string{upFile, downFile} {
		if err := os.WriteFile(f, []byte("-- "+name+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to create migration file %s: %w", f, err)
		}
		fmt.Println("created", f)
	}

	return nil
}
