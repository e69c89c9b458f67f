package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tormodhaugland/nv/internal/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List key bindings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "KEYS\tACTION")
		for _, row := range tui.NewKeyMap(cfg.Bindings()).Rows() {
			fmt.Fprintf(w, "%s\t%s\n", strings.Join(row.Keys, ", "), row.Action)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
