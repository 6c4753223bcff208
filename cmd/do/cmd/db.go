package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/Abhinay9346/portfolio/internal/db"
	"github.com/spf13/cobra"
)

func DBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Database migrations",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg := loadConfig()
				database, err := openDB(cfg)
				if err != nil {
					return err
				}
				defer db.Close(database)

				return db.RunMigrations(cmd.Context(), database.DB, cfg.DBDriver)
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the latest migration",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg := loadConfig()
				database, err := openDB(cfg)
				if err != nil {
					return err
				}
				defer db.Close(database)

				return db.MigrateDown(cmd.Context(), database.DB, cfg.DBDriver)
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show applied and pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg := loadConfig()
				database, err := openDB(cfg)
				if err != nil {
					return err
				}
				defer db.Close(database)

				status, err := db.MigrationStatus(cmd.Context(), database.DB, cfg.DBDriver)
				if err != nil {
					return err
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED\tFILE")
				for _, s := range status {
					applied := "-"
					if !s.AppliedAt.IsZero() {
						applied = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Source.Version, s.State, applied, s.Source.Path)
				}
				return tw.Flush()
			},
		},
	)

	return cmd
}
