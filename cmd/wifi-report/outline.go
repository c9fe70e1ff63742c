package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/wifi-report/internal/content"
)

var outlineCmd = &cobra.Command{
	Use:   "outline",
	Short: "Write the built-in report outline as YAML",
	Long: `Outline writes the built-in report content as a YAML outline. The file can
be edited and passed back with "wifi-report --content <file>".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			return content.Save(content.WifiOptimizer(), cmd.OutOrStdout())
		}

		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating %s: %w", out, err)
		}
		if err := content.Save(content.WifiOptimizer(), f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing %s: %w", out, err)
		}
		fmt.Fprintln(os.Stderr, "Wrote", out)
		return nil
	},
}

var outlineValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a YAML outline for problems",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := content.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d sections)\n", args[0], len(report.Sections))
		return nil
	},
}

func init() {
	outlineCmd.Flags().String("out", "", "write the outline to this file instead of stdout")

	outlineCmd.AddCommand(outlineValidateCmd)
	rootCmd.AddCommand(outlineCmd)
}
