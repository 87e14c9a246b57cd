package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/marwanbukhori/commit-life/internal/config"
	"github.com/marwanbukhori/commit-life/internal/db"
	"github.com/marwanbukhori/commit-life/internal/model"
	"github.com/marwanbukhori/commit-life/internal/repository"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "commitctl",
		Short: "Operations CLI for the commit-life server",
	}

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(promoteCmd())
	rootCmd.AddCommand(premiumCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
			if err != nil {
				return err
			}
			defer database.Close()
			return db.RunMigrations(database.DB, cfg.DBDriver)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
			if err != nil {
				return err
			}
			defer database.Close()
			return db.MigrateDown(database.DB, cfg.DBDriver)
		},
	})

	return cmd
}

func promoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "promote <email>",
		Short: "Grant the admin role to a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
			if err != nil {
				return err
			}
			defer database.Close()

			users := repository.NewUserRepository(database)
			user, err := users.ByEmail(args[0])
			if err != nil {
				return err
			}

			user.Role = model.RoleAdmin
			user.UpdatedAt = time.Now()
			err = users.Update(user)
			if err != nil {
				return err
			}

			fmt.Printf("promoted %s to admin\n", user.Email)
			return nil
		},
	}
}

func premiumCmd() *cobra.Command {
	var months int

	cmd := &cobra.Command{
		Use:   "premium <email>",
		Short: "Grant premium access to a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
			if err != nil {
				return err
			}
			defer database.Close()

			users := repository.NewUserRepository(database)
			user, err := users.ByEmail(args[0])
			if err != nil {
				return err
			}

			expiry := time.Now().AddDate(0, months, 0)
			user.IsPremium = true
			user.PremiumExpiresAt = &expiry
			user.UpdatedAt = time.Now()
			err = users.Update(user)
			if err != nil {
				return err
			}

			fmt.Printf("granted premium to %s until %s\n", user.Email, expiry.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().IntVar(&months, "months", 1, "How many months of premium to grant")
	return cmd
}
