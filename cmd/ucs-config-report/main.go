// Copyright 2025 The ucs-config-report Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/ucstools/ucs-config-report/pkg/config"
)

// version is stamped at build time via -ldflags.
var version = "dev"

type rootFlags struct {
	endpoint     string
	username     string
	passwordEnv  string
	passwordFile string
	keyEnv       string
	batchFile    string
	configFile   string
	envFile      string
	format       string
	output       string
	logFile      string
	verbose      bool
	insecure     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "ucs-config-report",
		Short: "Generate offline inventory and best-practice reports for UCS Manager domains",
		Long: `ucs-config-report connects to one or more Cisco UCS Manager domains,
collects inventory and configuration over the XML API, and writes one
self-contained offline report per domain, including best-practice
recommendations derived from the collected data.

Single target:
  ucs-config-report --endpoint ucs1.example.com --username admin

Batch (YAML file of targets):
  ucs-config-report --batch domains.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configFile)
			if err != nil {
				return err
			}
			parseLogConfig(cfg, &flags)

			log, closeLog, err := setupLogging(&flags)
			if err != nil {
				return err
			}
			defer closeLog()

			if err := run(cmd.Context(), log, cfg, &flags); err != nil {
				log.Error("run failed", "error", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.endpoint, "endpoint", "", "UCS Manager address (host or host:port)")
	cmd.Flags().StringVar(&flags.username, "username", "", "UCS Manager username")
	cmd.Flags().StringVar(&flags.passwordEnv, "password-env", "UCS_PASSWORD", "environment variable holding the password")
	cmd.Flags().StringVar(&flags.passwordFile, "password-file", "", "encrypted password file (see encrypt-password)")
	cmd.Flags().StringVar(&flags.keyEnv, "key-env", "UCS_KEY", "environment variable holding the password-file passphrase")
	cmd.Flags().StringVar(&flags.batchFile, "batch", "", "YAML batch file of targets")
	cmd.Flags().StringVar(&flags.configFile, "config", "", "tool configuration file (TOML)")
	cmd.Flags().StringVar(&flags.envFile, "env-file", "", "load environment variables from this file (default: .env if present)")
	cmd.Flags().StringVar(&flags.format, "format", "", "report format: html, text, json (default html)")
	cmd.Flags().StringVarP(&flags.output, "out", "o", "", "report output path (single target only)")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "also write the log to this file")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging")
	cmd.Flags().BoolVar(&flags.insecure, "insecure", false, "skip TLS certificate verification")

	cmd.AddCommand(newEncryptPasswordCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tool version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}

// setupLogging builds the slog logger: tinted console output, optionally
// mirrored to a plain log file. Colors turn off when a log file is in
// play so the file stays readable.
func setupLogging(flags *rootFlags) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if flags.verbose {
		level = slog.LevelDebug
	}

	var w io.Writer = os.Stderr
	closeLog := func() {}
	noColor := false

	if flags.logFile != "" {
		f, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = io.MultiWriter(os.Stderr, f)
		closeLog = func() { f.Close() }
		noColor = true
	}

	log := slog.New(tint.NewHandler(w, &tint.Options{
		Level:   level,
		NoColor: noColor,
	}))
	return log, closeLog, nil
}

func parseLogConfig(cfg *config.Config, flags *rootFlags) {
	if flags.logFile == "" && cfg.Log.File != "" {
		flags.logFile = cfg.Log.File
	}
	if !flags.verbose && strings.EqualFold(cfg.Log.Level, "debug") {
		flags.verbose = true
	}
}
