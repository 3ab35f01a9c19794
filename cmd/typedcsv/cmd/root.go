package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "typedcsv",
	Short: "typedcsv - streaming typed CSV decoder",
	Long: `typedcsv decodes delimited text into typed rows using a column
schema and reports bad rows with their line and column.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("delimiter", "d", ",", "Field delimiter (single character)")
	rootCmd.PersistentFlags().StringP("quote", "q", `"`, "Quote character (single character)")
}

// charFlag fetches a flag that must hold exactly one character.
func charFlag(cmd *cobra.Command, name string) (byte, error) {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return 0, err
	}
	if len(value) != 1 {
		return 0, fmt.Errorf("flag --%s must be a single character, got %q", name, value)
	}
	return value[0], nil
}
