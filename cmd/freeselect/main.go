package main

import (
	"flag"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"freeselect/internal/config"
	"freeselect/internal/level"
	"freeselect/internal/logging"
	"freeselect/internal/tui"
)

func main() {
	cfgPath := flag.String("config", "freeselect.toml", "settings file")
	logPath := flag.String("log", "", "log file (empty disables logging)")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: freeselect [flags] [level file]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger, closer := logging.New(logging.Options{Path: *logPath, Debug: *debug})
	defer closer.Close()
	defer logger.Sync()

	settings, err := config.Load(*cfgPath, logger)
	if err != nil {
		logger.Error("settings", zap.Error(err))
	}

	demo := level.Grid(24, 16, 2*level.BlockSize)
	var m tea.Model
	if flag.NArg() > 0 {
		m = tui.NewWithPath(flag.Arg(0), demo, settings, logger)
	} else {
		m = tui.New(demo, settings, logger)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}
