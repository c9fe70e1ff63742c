// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the wifi-report CLI. Run without
// arguments it writes Wifi_Optimizer_Report.pdf to the working directory.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/wifi-report/internal/content"
	"github.com/pdiddy/wifi-report/internal/render"
	"github.com/pdiddy/wifi-report/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// configName is the base name of the optional YAML config file.
const configName = "wifi-report"

// rootCmd generates the report.
var rootCmd = &cobra.Command{
	Use:   "wifi-report",
	Short: "Generate the Wi-Fi router placement optimizer project report",
	Long: `wifi-report writes a multi-page PDF describing the Intelligent Wi-Fi Router
Placement Optimizer: an overview, the client-side architecture, the path loss
model with its symbols, and a four-step demonstration walkthrough.

With no flags the report is written to Wifi_Optimizer_Report.pdf in the
current directory. Use "wifi-report outline" to dump the built-in content as
YAML, edit it, and render it back with --content.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runGenerate,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", fmt.Sprintf("config file (default: ./%[1]s.yaml or ~/.config/wifi-report/%[1]s.yaml)", configName))

	defaults := types.DefaultReportConfig()
	rootCmd.Flags().String("output", defaults.OutputPath, "path of the generated PDF")
	rootCmd.Flags().String("content", "", "YAML outline to render instead of the built-in report")
	rootCmd.Flags().String("page-size", defaults.Page.Size, "page size: A3, A4, A5, Letter, Legal")
	rootCmd.Flags().String("orientation", defaults.Page.Orientation, "page orientation: P or L")
	rootCmd.Flags().Bool("no-compress", false, "leave page content streams uncompressed")

	for key, flag := range map[string]string{
		"output":      "output",
		"content":     "content",
		"page_size":   "page-size",
		"orientation": "orientation",
		"no_compress": "no-compress",
	} {
		if err := viper.BindPFlag(key, rootCmd.Flags().Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(configName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "wifi-report"))
		}
	}

	viper.SetEnvPrefix("WIFI_REPORT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// reportConfig assembles the build settings from defaults, config file,
// environment, and flags.
func reportConfig() types.ReportConfig {
	cfg := types.DefaultReportConfig()
	cfg.OutputPath = viper.GetString("output")
	cfg.Page.Size = viper.GetString("page_size")
	cfg.Page.Orientation = viper.GetString("orientation")
	cfg.Compress = !viper.GetBool("no_compress")
	cfg.Info.Creator = "wifi-report " + version
	return cfg
}

func runGenerate(cmd *cobra.Command, args []string) error {
	report := content.WifiOptimizer()
	if path := viper.GetString("content"); path != "" {
		r, err := content.Load(path)
		if err != nil {
			return err
		}
		report = r
	}

	cfg := reportConfig()
	pages, err := render.WriteFile(report, cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote %s (%d pages)\n", cfg.OutputPath, pages)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
