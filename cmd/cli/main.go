package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:          "sun-to-sort",
		Short:        "Size a solar installation for a waste-sorting facility",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := zerolog.WarnLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen}).
				Level(level).
				With().Timestamp().Logger()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(estimateCmd())
	rootCmd.AddCommand(compareCmd())
	rootCmd.AddCommand(sweepCmd())
	rootCmd.AddCommand(categoriesCmd())
	return rootCmd
}

func estimateCmd() *cobra.Command {
	var cfgPath, format, outPath string

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate energy demand, panel count, savings and payback for one scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEstimate(cmd.OutOrStdout(), cfgPath, format, outPath)
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to YAML scenario")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json or csv")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write output to this file instead of stdout")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func compareCmd() *cobra.Command {
	var cfgPath, catalogPath string
	var variants []string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare scenario variants against a base and rank them by payback",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompare(cmd.OutOrStdout(), cfgPath, catalogPath, variants)
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to base YAML scenario")
	cmd.Flags().StringArrayVar(&variants, "variant", nil, "Variant as name=path.yaml (repeatable)")
	cmd.Flags().StringVar(&catalogPath, "catalog", os.Getenv("WASTE_CATALOG_FILE"), "Waste catalog override")
	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("variant")
	return cmd
}

func sweepCmd() *cobra.Command {
	var cfgPath string
	var from, to, step int

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate the energy balance over a range of installed panel counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSweep(cmd.OutOrStdout(), cfgPath, from, to, step)
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to YAML scenario")
	cmd.Flags().IntVar(&from, "from", 10, "First installed panel count")
	cmd.Flags().IntVar(&to, "to", 200, "Last installed panel count")
	cmd.Flags().IntVar(&step, "step", 10, "Panel count increment")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func categoriesCmd() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List waste categories and their processing energy intensity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCategories(cmd.OutOrStdout(), catalogPath)
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", os.Getenv("WASTE_CATALOG_FILE"), "Waste catalog override")
	return cmd
}
