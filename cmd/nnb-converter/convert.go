// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/josemreis/nnb-converter/internal/convert"
	"github.com/josemreis/nnb-converter/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert -f NOTEBOOK.nnb -o md|js [NOTEBOOK.nnb...]",
	Short: "Convert notebooks to Markdown or JavaScript",
	Long: `Convert reads a Node.js notebook and writes the converted file next to it,
replacing the .nnb extension with .md or .js. The output path is printed on
success.

Additional notebooks may be given as arguments; they are converted in order
and a summary is printed. The target format and every file extension are
checked before any notebook is read.`,
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	target, _ := cmd.Flags().GetString("convert-to")
	format, err := convert.ParseFormat(target)
	if err != nil {
		return fmt.Errorf("-o/--convert-to: %w", err)
	}

	inputs := args
	if file, _ := cmd.Flags().GetString("file-to-convert"); file != "" {
		inputs = append([]string{file}, args...)
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no notebook given: use -f/--file-to-convert")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	conv := convert.New(cfg, logger)
	out := cmd.OutOrStdout()

	if len(inputs) == 1 {
		outPath, err := conv.ConvertFile(inputs[0], format)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, outPath)
		return nil
	}

	result, err := conv.ConvertBatch(inputs, format, out)
	if err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d notebook(s) failed conversion", result.Failed)
	}
	return nil
}

func init() {
	convertCmd.Flags().StringP("file-to-convert", "f", "", "Node.js notebook file to convert")
	convertCmd.Flags().StringP("convert-to", "o", "", "target format: md or js")
	convertCmd.Flags().Int("wrap-width", types.DefaultWrapWidth, "break script comments after this many characters (0 disables)")
	convertCmd.Flags().Bool("frontmatter", false, "prefix Markdown output with YAML frontmatter")

	bindFlag("wrap_width", convertCmd.Flags().Lookup("wrap-width"))
	bindFlag("frontmatter", convertCmd.Flags().Lookup("frontmatter"))

	rootCmd.AddCommand(convertCmd)
}
