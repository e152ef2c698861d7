package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/nutrivida/nutrivida_backend/cmd/http"
	systemcmd "github.com/nutrivida/nutrivida_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "nutrivida",
	Short: "NutriVida nutrition coaching backend.",
	Long: `NutriVida is the backend for a patient-facing nutrition coaching app.
It handles appointment booking against the nutritionist's declared availability,
daily tracking (hydration, meal diary, habit checklist) with a gamified
progression of pins, plus messaging and a small patient community.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
