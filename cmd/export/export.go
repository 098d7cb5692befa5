package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	sitebuilder "github.com/mainul35/dynamic-site-builder-sub000"
	"github.com/mainul35/dynamic-site-builder-sub000/internal/adapters/cli"
	"github.com/mainul35/dynamic-site-builder-sub000/internal/adapters/fs"
	"github.com/mainul35/dynamic-site-builder-sub000/internal/adapters/httpfetch"
)

var staticCmd = &cobra.Command{
	Use:   "static <pages.json>",
	Short: "Export a static HTML/CSS/JS bundle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd, args[0], false)
	},
}

var projectCmd = &cobra.Command{
	Use:   "project <pages.json>",
	Short: "Export a server-rendered Spring Boot project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd, args[0], true)
	},
}

func runExport(cmd *cobra.Command, inputPath string, server bool) error {
	out := cli.NewOutput()
	if flagNoColor {
		out.DisableColors()
	}

	target := "static"
	if server {
		target = "project"
	}
	out.PrintHeader("Site Export (" + target + ")")

	cfg, err := loadConfig(flagConfig)
	if err != nil {
		out.PrintError("%v", err)
		return err
	}

	name := flagProjectName
	if name == "" {
		name = cfg.ProjectName
	}
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	}

	logger := slog.With("run", uuid.NewString(), "target", target)

	data, err := os.ReadFile(inputPath)
	if err != nil {
		out.PrintError("read input: %v", err)
		return err
	}
	pages, err := sitebuilder.ParsePages(data)
	if err != nil {
		out.PrintError("parse input: %v", err)
		return err
	}
	logger.Info("starting export", "project", name, "pages", len(pages))

	baseURL := resolveAssetBaseURL(cfg)
	exporter := sitebuilder.New(
		sitebuilder.WithAssetBaseURL(baseURL),
		sitebuilder.WithFetcher(httpfetch.New(baseURL, resolveTimeout(cfg))),
	)
	options := resolveOptions(cmd.Flags(), cfg)
	if options.Minify {
		out.PrintWarning("minify is reserved and currently has no effect")
	}

	var result *sitebuilder.Result
	if server {
		result, err = exporter.ExportProject(cmd.Context(), name, pages, options)
	} else {
		result, err = exporter.ExportStatic(cmd.Context(), name, pages, options)
	}
	if err != nil {
		out.PrintError("export failed: %v", err)
		return err
	}

	for _, diag := range result.Diagnostics {
		logger.Warn(diag.Message, "component", diag.ComponentID, "severity", diag.Severity)
	}

	if err := writeOutput(result.Files); err != nil {
		out.PrintError("%v", err)
		return err
	}

	report := cli.NewExportReport(out, flagOut)
	report.AddSteps(result.Steps)
	report.AddDiagnostics(result.Diagnostics)
	report.AddFiles(result.Files)
	report.Render()
	return nil
}

func writeOutput(files []sitebuilder.ProjectFile) error {
	if flagZip || strings.HasSuffix(flagOut, ".zip") {
		archive, err := os.Create(flagOut)
		if err != nil {
			return fmt.Errorf("create archive %s: %w", flagOut, err)
		}
		defer archive.Close()
		return fs.WriteArchive(archive, files)
	}
	return fs.NewOSWriter(flagOut).WriteFiles(files)
}
