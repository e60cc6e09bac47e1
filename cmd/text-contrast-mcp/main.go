package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/ironsheep/text-contrast-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// logLevelEnv is consulted when --log-level is not given.
const logLevelEnv = "TEXT_CONTRAST_MCP_LOG_LEVEL"

var logLevel string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "text-contrast-mcp",
		Short: "MCP server deciding light or dark text over images",
		Long: `text-contrast-mcp measures the WCAG relative luminance of the part of a
background image that sits beneath a foreground element, so callers can pick
light or dark text for it.

Without a subcommand it serves MCP over stdin/stdout. Configure it in your
MCP client (e.g., Claude Desktop).`,
		Version:      Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			logger.Debug("starting", "version", Version, "built", BuildTime, "commit", GitCommit)
			return server.New(logger).Run()
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (trace, debug, info, warn, error, off); defaults to $"+logLevelEnv+" or info")
	root.SetVersionTemplate(versionString() + "\n")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newLuminanceCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
		},
	}
}

func versionString() string {
	return fmt.Sprintf("text-contrast-mcp %s\n  Build time: %s\n  Git commit: %s", Version, BuildTime, GitCommit)
}

// newLogger writes to stderr; stdout is reserved for the MCP protocol.
func newLogger() hclog.Logger {
	level := logLevel
	if level == "" {
		level = os.Getenv(logLevelEnv)
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "text-contrast-mcp",
		Output: os.Stderr,
		Level:  parseLevel(level),
	})
}

func parseLevel(s string) hclog.Level {
	if strings.TrimSpace(s) == "" {
		return hclog.Info
	}
	level := hclog.LevelFromString(s)
	if level == hclog.NoLevel {
		return hclog.Info
	}
	return level
}
