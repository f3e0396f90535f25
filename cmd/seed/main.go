package main

import (
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"mealmentor/database"
	"mealmentor/internal/config"
	"mealmentor/internal/fixtures"
	"mealmentor/internal/logger"
	"mealmentor/internal/utils"
)

var fixturesPath string

func connect() (*gorm.DB, *config.Config, error) {
	cfg := config.Load(".env", "../../.env")
	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	cfg.LogWarnings(zlog)
	db, err := database.ConnectDatabase(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := database.MigrateDatabase(db); err != nil {
		return nil, nil, err
	}
	return db, cfg, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "seed",
		Short:         "Manage MealMentor fixture data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&fixturesPath, "fixtures", "", "fixture YAML file (default: FIXTURES_PATH or the embedded sample)")

	root.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Replace fixture tables with the fixture file",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, cfg, err := connect()
			if err != nil {
				return err
			}
			path := fixturesPath
			if path == "" {
				path = cfg.FixturesPath
			}
			set, err := fixtures.Load(path)
			if err != nil {
				return err
			}
			if err := utils.SeedFixtures(db, set); err != nil {
				return err
			}
			zap.L().Info("Seeding completed")
			return printCounts(cmd, db)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete all fixture rows (stored profiles are kept)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := connect()
			if err != nil {
				return err
			}
			if err := utils.ClearFixtures(db); err != nil {
				return err
			}
			return printCounts(cmd, db)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "count",
		Short: "Show row counts of fixture tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := connect()
			if err != nil {
				return err
			}
			return printCounts(cmd, db)
		},
	})

	return root
}

func printCounts(cmd *cobra.Command, db *gorm.DB) error {
	counts, err := utils.CountFixtures(db)
	if err != nil {
		return err
	}
	tables := make([]string, 0, len(counts))
	for t := range counts {
		tables = append(tables, t)
	}
	sort.Strings(tables)
	for _, t := range tables {
		fmt.Fprintf(cmd.OutOrStdout(), "%-16s %d\n", t, counts[t])
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}
