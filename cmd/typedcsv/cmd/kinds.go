package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"typedcsv"
)

// kindsCmd represents the kinds command
var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the column kinds a schema may use",
	Run: func(cmd *cobra.Command, args []string) {
		kinds := []typedcsv.Kind{
			typedcsv.KindString,
			typedcsv.KindInt,
			typedcsv.KindInt64,
			typedcsv.KindUint,
			typedcsv.KindFloat,
			typedcsv.KindBool,
		}
		for _, k := range kinds {
			fmt.Println(k)
		}
	},
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}
