// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/josemreis/nnb-converter/internal/convert"
	"github.com/josemreis/nnb-converter/internal/preview"
	"github.com/josemreis/nnb-converter/pkg/types"
)

var previewCmd = &cobra.Command{
	Use:   "preview -f NOTEBOOK.nnb",
	Short: "Show a notebook's Markdown conversion in the terminal",
	Long: `Preview converts a notebook to Markdown in memory and prints it styled for
the terminal. Nothing is written to disk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file-to-convert")
		if file == "" && len(args) == 1 {
			file = args[0]
		}
		if file == "" {
			return fmt.Errorf("no notebook given: use -f/--file-to-convert")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		conv := convert.New(cfg, logger)
		conv.Frontmatter = false

		md, err := conv.Render(file, types.FormatMarkdown)
		if err != nil {
			return err
		}
		styled, err := preview.Render(md, cfg.Preview)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), styled)
		return nil
	},
	Args: cobra.MaximumNArgs(1),
}

func init() {
	previewCmd.Flags().StringP("file-to-convert", "f", "", "Node.js notebook file to preview")
	previewCmd.Flags().String("style", types.DefaultPreviewStyle, "glamour style: dark, light, notty, dracula, ...")
	previewCmd.Flags().Int("width", types.DefaultPreviewWidth, "word-wrap width")

	bindFlag("preview.style", previewCmd.Flags().Lookup("style"))
	bindFlag("preview.width", previewCmd.Flags().Lookup("width"))

	rootCmd.AddCommand(previewCmd)
}
