// Command robosketch runs the stroke-to-robot-program pipeline from the
// command line: it reads stroke sample files, processes them into motion
// paths and exports controller programs in the configured dialect.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/robosketch/engine/internal/config"
	"github.com/robosketch/engine/internal/logging"
)

const appName = "robosketch"

func main() {
	if err := config.Load("."); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	var fileSink io.Writer
	if logsDir := config.GetString("logsDir"); logsDir != "" {
		if err := os.MkdirAll(logsDir, 0o755); err == nil {
			path := logging.LogFilePath(logsDir, appName, time.Now())
			if logFile, err := os.Create(path); err == nil {
				defer logFile.Close()
				fileSink = logFile
			}
		}
	}
	logger := logging.Setup(config.GetString("logLevel"), os.Stderr, fileSink)

	cli := newCLI(logger)
	if err := cli.run(os.Args[1:]); err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
