// Package cli implements the momentum CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"momentum/internal/clock"
	"momentum/internal/config"
	"momentum/internal/repository"
	"momentum/internal/service"
)

var (
	dbPath   string
	userFlag string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "momentum",
	Short: "Personal task coach with recurrence and behavioral insights",
	Long:  "Track tasks and goals, keep streaks, and let the analyzer surface patterns in how you work. SQLite-backed, single binary.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $MOMENTUM_DB or ~/.momentum/momentum.db)")
	RootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "User ID (default: $MOMENTUM_USER or \"local\")")
}

// app bundles the wired services for a command invocation.
type app struct {
	cfg      config.Config
	db       *gorm.DB
	tasks    *service.TaskService
	query    *service.QueryService
	goals    *service.GoalService
	insights *service.InsightService
}

func openApp() (*app, error) {
	cfg := config.Load()
	if dbPath != "" {
		cfg.DatabasePath = dbPath
	}
	if userFlag != "" {
		cfg.DefaultUser = userFlag
	}

	db, err := repository.NewDB(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	taskRepo := repository.NewTaskRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	insightRepo := repository.NewInsightRepository(db)
	clk := clock.System{}

	return &app{
		cfg:      cfg,
		db:       db,
		tasks:    service.NewTaskService(taskRepo, clk),
		query:    service.NewQueryService(clk),
		goals:    service.NewGoalService(goalRepo),
		insights: service.NewInsightService(taskRepo, goalRepo, insightRepo, clk),
	}, nil
}

func (a *app) user() string { return a.cfg.DefaultUser }

func (a *app) close() {
	if sqlDB, err := a.db.DB(); err == nil {
		sqlDB.Close()
	}
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
