package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/popstack/internal/app"
	"github.com/llehouerou/popstack/internal/config"
	"github.com/llehouerou/popstack/internal/errmsg"
	applog "github.com/llehouerou/popstack/internal/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println(errmsg.Format(errmsg.OpConfigLoad, err))
		os.Exit(1)
	}
	os.Exit(run(cfg))
}

func run(cfg *config.Config) int {
	logger, closeLog, err := applog.Open(cfg.LogPath(), cfg.LogLevel())
	if err != nil {
		// Keep going without a log file; the TUI owns the terminal.
		fmt.Println(errmsg.Format(errmsg.OpLogOpen, err))
		logger, closeLog = applog.Discard(), func() {}
	}
	defer closeLog()

	logger.Info("starting", zap.String("level", cfg.LogLevel()), zap.String("log", cfg.LogPath()))

	p := tea.NewProgram(app.New(cfg, logger), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("program failed", zap.Error(err))
		fmt.Printf("Error running program: %v\n", err)
		return 1
	}
	return 0
}
