package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vendra-inc/vendra/internal/infrastructure/auth"
	"github.com/vendra-inc/vendra/internal/infrastructure/config"
	"github.com/vendra-inc/vendra/internal/infrastructure/database"
	"github.com/vendra-inc/vendra/internal/infrastructure/persistence/seeds"
)

var seedFile string

func newSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Apply a seed fixture",
		Long:  `Load a YAML fixture of softwares, services, packages, departments and staff and insert it into the database. Rows that already exist (matched by name, email for staff) are left untouched.`,
		RunE:  runSeed,
	}

	cmd.Flags().StringVarP(&seedFile, "file", "f", "./configs/seed.yaml", "Path to the seed fixture")

	return cmd
}

func runSeed(cmd *cobra.Command, args []string) error {
	log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	fixture, err := seeds.Load(seedFile)
	if err != nil {
		return err
	}

	hasher := auth.NewBcryptPasswordHasher(config.Get().Auth.Password.BcryptCost)

	if err := seeds.Apply(database.Get(), fixture, hasher); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	log.Infow("seed fixture applied",
		"file", seedFile,
		"softwares", len(fixture.Softwares),
		"services", len(fixture.Services),
		"packages", len(fixture.Packages),
		"departments", len(fixture.Departments),
		"staff", len(fixture.Staff),
	)
	return nil
}
