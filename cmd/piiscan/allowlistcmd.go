package piiscan

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/PeterH1998/webapp-privacy-scanner/internal/allowlist"
)

func init() {
	cmd := &cobra.Command{
		Use:   "allowlist",
		Short: "Inspect and validate the allowlist",
	}

	var file string
	lint := &cobra.Command{
		Use:   "lint",
		Short: "Validate the allowlist file and report rule counts",
		RunE: func(_ *cobra.Command, _ []string) error {
			path := file
			if path == "" {
				path = defaultAllowlistName
			}
			al, err := allowlist.Load(path)
			if err != nil {
				return err
			}
			// Compiling surfaces bad patterns before any scan depends on them.
			ev, err := allowlist.NewEvaluator(al.Texts)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "%s: %d path rules, %d text rules\n", path, len(al.Paths), ev.Len())
			return nil
		},
	}
	lint.Flags().StringVar(&file, "file", "", "allowlist YAML file (default "+defaultAllowlistName+")")

	rootCmd.AddCommand(cmd)
	cmd.AddCommand(lint)
}
