package main

import (
	"github.com/spf13/cobra"
)

var (
	flagOut          string
	flagProjectName  string
	flagConfig       string
	flagAssetBaseURL string
	flagTimeoutMS    int
	flagZip          bool
	flagNoColor      bool

	flagInlineCSS  bool
	flagInlineJS   bool
	flagSinglePage bool
	flagMinify     bool
)

var rootCmd = &cobra.Command{
	Use:   "export",
	Short: "Compile page-builder definitions into deployable output",
	Long: `Compiles a declarative page document into a static HTML/CSS/JS
bundle or a server-rendered Spring Boot project.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagOut, "out", "o", "dist", "output directory (or .zip path with --zip)")
	rootCmd.PersistentFlags().StringVarP(&flagProjectName, "name", "n", "", "project name (default: input file name)")
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "config file (default: export.yaml when present)")
	rootCmd.PersistentFlags().StringVar(&flagAssetBaseURL, "asset-base-url", "", "origin for root-relative asset references")
	rootCmd.PersistentFlags().IntVar(&flagTimeoutMS, "timeout-ms", 0, "asset fetch timeout in milliseconds")
	rootCmd.PersistentFlags().BoolVar(&flagZip, "zip", false, "write a zip archive instead of a directory")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")

	rootCmd.PersistentFlags().BoolVar(&flagInlineCSS, "inline-css", false, "inline the stylesheet into each document")
	rootCmd.PersistentFlags().BoolVar(&flagInlineJS, "inline-js", false, "inline the script into each document")
	rootCmd.PersistentFlags().BoolVar(&flagSinglePage, "single-page", false, "emit a self-contained document per page")
	rootCmd.PersistentFlags().BoolVar(&flagMinify, "minify", false, "reserved, currently a no-op")

	rootCmd.AddCommand(staticCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(validateCmd)
}
