package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roomkit/roomkit/pkg/api"
)

// Version is the CLI version, set at build time via -ldflags.
var Version = "dev"

func newVersionCmd() *cobra.Command {
	var serverVersion string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information and check server compatibility",
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput {
				out := map[string]string{
					"version":    Version,
					"apiVersion": api.APIVersion,
				}
				if serverVersion != "" {
					if err := api.CheckServerVersion(serverVersion); err != nil {
						out["compatible"] = "false"
					} else {
						out["compatible"] = "true"
					}
				}
				printJSON(out)
				return nil
			}

			fmt.Printf("roomkit %s (API %s)\n", Version, api.APIVersion)
			if serverVersion != "" {
				if err := api.CheckServerVersion(serverVersion); err != nil {
					return err
				}
				okLabel.Printf("Server %s is compatible\n", serverVersion)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&serverVersion, "server", "", "Server version to check compatibility against")
	return cmd
}
