package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roomkit/roomkit/pkg/api"
)

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint and inspect session access tokens",
	}
	cmd.AddCommand(newTokenCreateCmd())
	cmd.AddCommand(newTokenInspectCmd())
	return cmd
}

func newTokenCreateCmd() *cobra.Command {
	sflags := &sessionFlags{}
	var role string
	var data string

	cmd := &cobra.Command{
		Use:   "create [flags]",
		Short: "Mint an access token scoped to a session",
		Long: `Mint an access token scoped to a session. The session is created on the
server first if it does not exist yet; pass --custom-id to target a named
session.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSessionClient(sflags.properties())
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			sessionID, err := client.EnsureSessionID(ctx)
			if err != nil {
				return err
			}

			token, err := client.CreateToken(ctx, api.TokenOptions{
				Role: api.Role(role),
				Data: data,
			})
			if err != nil {
				return err
			}

			if jsonOutput {
				printJSON(map[string]string{
					"sessionId": sessionID,
					"token":     token,
				})
				return nil
			}
			okLabel.Printf("Session: %s\n", sessionID)
			okLabel.Printf("Token:   %s\n", token)
			return nil
		},
	}
	addSessionFlags(cmd, sflags)
	cmd.Flags().StringVar(&role, "role", "", "Token role: SUBSCRIBER, PUBLISHER or MODERATOR")
	cmd.Flags().StringVar(&data, "data", "", "Opaque data to attach to the token")
	return cmd
}

func newTokenInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <token>",
		Short: "Decode the claims a minted token asserts (signature not verified)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := api.ParseTokenClaims(args[0])
			if err != nil {
				return err
			}

			if jsonOutput {
				printJSON(info.Raw)
				return nil
			}
			fmt.Printf("Session: %s\n", info.Session)
			fmt.Printf("Role:    %s\n", info.Role)
			if info.Data != "" {
				fmt.Printf("Data:    %s\n", info.Data)
			}
			if !info.ExpiresAt.IsZero() {
				fmt.Printf("Expires: %s\n", info.ExpiresAt.Format(time.RFC3339))
			}
			return nil
		},
	}
}
