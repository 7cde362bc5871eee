package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ucstools/ucs-config-report/pkg/catalog"
	"github.com/ucstools/ucs-config-report/pkg/config"
	"github.com/ucstools/ucs-config-report/pkg/creds"
	"github.com/ucstools/ucs-config-report/pkg/inventory"
	"github.com/ucstools/ucs-config-report/pkg/render"
	"github.com/ucstools/ucs-config-report/pkg/rules"
	"github.com/ucstools/ucs-config-report/pkg/ucsm"
)

// run resolves targets and processes each one sequentially. A failed
// target is logged and skipped in batch mode; with a single target its
// error propagates.
func run(ctx context.Context, log *slog.Logger, cfg *config.Config, flags *rootFlags) error {
	if err := creds.LoadDotenv(flags.envFile); err != nil {
		return err
	}

	engine := rules.NewEngine(rules.Defaults())
	sections := catalog.Sections(catalog.Options{SeverityOrder: cfg.Faults.SeverityOrder})
	if err := catalog.Validate(sections, engine.Inputs()); err != nil {
		// Startup invariant violation: refuse to process any target.
		return err
	}
	builder := inventory.NewBuilder(sections)

	formatName := flags.format
	if formatName == "" {
		formatName = cfg.Output.Format
	}
	format, err := render.ParseFormat(formatName)
	if err != nil {
		return err
	}
	renderer := render.NewRenderer(format)

	targets, batch, err := resolveTargets(flags)
	if err != nil {
		return err
	}

	var failed int
	for _, target := range targets {
		tlog := log.With("endpoint", target.Endpoint)
		if err := runTarget(ctx, tlog, cfg, flags, builder, engine, renderer, target); err != nil {
			failed++
			tlog.Error("target failed, no report written", "error", err)
			if !batch {
				return fmt.Errorf("target %s: %w", target.Endpoint, err)
			}
			continue
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d targets failed", failed, len(targets))
	}
	return nil
}

func resolveTargets(flags *rootFlags) ([]config.Target, bool, error) {
	switch {
	case flags.batchFile != "" && flags.endpoint != "":
		return nil, false, errors.New("--batch and --endpoint are mutually exclusive")
	case flags.batchFile != "":
		targets, err := config.LoadTargets(flags.batchFile)
		return targets, true, err
	case flags.endpoint != "":
		if flags.username == "" {
			return nil, false, errors.New("--username is required with --endpoint")
		}
		return []config.Target{{
			Endpoint:     flags.endpoint,
			Username:     flags.username,
			PasswordEnv:  flags.passwordEnv,
			PasswordFile: flags.passwordFile,
			Output:       flags.output,
		}}, false, nil
	default:
		return nil, false, errors.New("either --endpoint or --batch is required")
	}
}

// resolvePassword walks the credential chain: encrypted file, then
// environment, then (interactively, single-target use) a prompt.
func resolvePassword(flags *rootFlags, target config.Target, interactive bool) (string, error) {
	if target.PasswordFile != "" {
		passphrase, err := creds.FromEnv(flags.keyEnv)
		if err != nil && interactive {
			passphrase, err = creds.Prompt("Passphrase for " + target.PasswordFile)
		}
		if err != nil {
			return "", err
		}
		return creds.ReadSecretFile(target.PasswordFile, passphrase)
	}
	if target.PasswordEnv != "" {
		pw, err := creds.FromEnv(target.PasswordEnv)
		if err == nil {
			return pw, nil
		}
		if !interactive {
			return "", err
		}
	}
	if interactive {
		return creds.Prompt(fmt.Sprintf("Password for %s@%s", target.Username, target.Endpoint))
	}
	return "", fmt.Errorf("target %s supplies no password source", target.Endpoint)
}

func runTarget(ctx context.Context, log *slog.Logger, cfg *config.Config, flags *rootFlags,
	builder *inventory.Builder, engine *rules.Engine, renderer *render.Renderer, target config.Target) error {

	password, err := resolvePassword(flags, target, flags.batchFile == "")
	if err != nil {
		return err
	}

	client := ucsm.NewClient(target.Endpoint, ucsm.Config{
		Timeout:            cfg.Timeout(),
		InsecureSkipVerify: cfg.HTTP.InsecureSkipVerify || flags.insecure,
	})

	log.Info("connecting")
	session, err := client.Login(ctx, target.Username, password)
	if err != nil {
		return err
	}
	defer func() {
		if err := session.Logout(context.WithoutCancel(ctx)); err != nil {
			log.Warn("logout failed", "error", err)
		}
	}()

	meta := inventory.Meta{
		RunID:       uuid.NewString(),
		Endpoint:    target.Endpoint,
		Version:     session.Version(),
		ToolVersion: version,
		CollectedAt: time.Now(),
	}

	log.Info("collecting inventory", "run_id", meta.RunID, "ucs_version", meta.Version)
	doc, err := builder.Build(ctx, session, meta)
	if err != nil {
		return err
	}

	results := engine.Evaluate(doc)

	outPath := target.Output
	if outPath == "" {
		name := fmt.Sprintf("%s-%s%s",
			sanitizeFilename(target.Endpoint),
			meta.CollectedAt.Format("20060102-150405"),
			renderer.Extension())
		outPath = filepath.Join(cfg.Output.Directory, name)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	if err := renderer.Render(f, doc, results); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	log.Info("report written", "path", outPath,
		"sections", len(doc.Sections), "recommendations", len(results))
	return nil
}

func sanitizeFilename(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, s)
}
