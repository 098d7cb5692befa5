package main

import (
	"os"

	"github.com/spf13/cobra"

	sitebuilder "github.com/mainul35/dynamic-site-builder-sub000"
	"github.com/mainul35/dynamic-site-builder-sub000/internal/adapters/cli"
)

var validateCmd = &cobra.Command{
	Use:   "validate <pages.json>",
	Short: "Check a page document against the tree invariants without exporting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cli.NewOutput()
		if flagNoColor {
			out.DisableColors()
		}
		out.PrintHeader("Site Export (validate)")

		data, err := os.ReadFile(args[0])
		if err != nil {
			out.PrintError("read input: %v", err)
			return err
		}
		pages, err := sitebuilder.ParsePages(data)
		if err != nil {
			out.PrintError("parse input: %v", err)
			return err
		}

		diags, err := sitebuilder.New().Validate(pages)
		for _, diag := range diags {
			out.PrintDiagnostic(diag)
		}
		if err != nil {
			out.PrintError("invalid: %v", err)
			return err
		}

		out.PrintSuccess("%d pages valid (%d warnings)", len(pages), len(diags))
		return nil
	},
}
