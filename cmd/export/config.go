package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"

	sitebuilder "github.com/mainul35/dynamic-site-builder-sub000"
)

const defaultTimeout = 10 * time.Second

// exportConfig is the optional export.yaml file. Flags win over
// environment variables, which win over this file.
type exportConfig struct {
	ProjectName    string      `yaml:"projectName"`
	AssetBaseURL   string      `yaml:"assetBaseUrl"`
	FetchTimeoutMS int         `yaml:"fetchTimeoutMs"`
	Options        yamlOptions `yaml:"options"`
}

type yamlOptions struct {
	IncludeCSS *bool `yaml:"includeCss"`
	IncludeJS  *bool `yaml:"includeJs"`
	Minify     *bool `yaml:"minify"`
	SinglePage *bool `yaml:"singlePage"`
}

func loadConfig(path string) (*exportConfig, error) {
	if path == "" {
		if _, err := os.Stat("export.yaml"); err != nil {
			return &exportConfig{}, nil
		}
		path = "export.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg exportConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

func resolveAssetBaseURL(cfg *exportConfig) string {
	if flagAssetBaseURL != "" {
		return flagAssetBaseURL
	}
	if v := os.Getenv("DSB_ASSET_BASE_URL"); v != "" {
		return v
	}
	return cfg.AssetBaseURL
}

func resolveTimeout(cfg *exportConfig) time.Duration {
	if flagTimeoutMS > 0 {
		return time.Duration(flagTimeoutMS) * time.Millisecond
	}
	if v := os.Getenv("DSB_FETCH_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	if cfg.FetchTimeoutMS > 0 {
		return time.Duration(cfg.FetchTimeoutMS) * time.Millisecond
	}
	return defaultTimeout
}

func resolveOptions(cmd flagChecker, cfg *exportConfig) sitebuilder.ExportOptions {
	opts := sitebuilder.DefaultExportOptions()

	if cfg.Options.IncludeCSS != nil {
		opts.IncludeCSS = *cfg.Options.IncludeCSS
	}
	if cfg.Options.IncludeJS != nil {
		opts.IncludeJS = *cfg.Options.IncludeJS
	}
	if cfg.Options.Minify != nil {
		opts.Minify = *cfg.Options.Minify
	}
	if cfg.Options.SinglePage != nil {
		opts.SinglePage = *cfg.Options.SinglePage
	}

	if cmd.Changed("inline-css") {
		opts.IncludeCSS = !flagInlineCSS
	}
	if cmd.Changed("inline-js") {
		opts.IncludeJS = !flagInlineJS
	}
	if cmd.Changed("single-page") {
		opts.SinglePage = flagSinglePage
	}
	if cmd.Changed("minify") {
		opts.Minify = flagMinify
	}
	return opts
}

type flagChecker interface {
	Changed(name string) bool
}
