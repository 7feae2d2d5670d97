package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/roomkit/roomkit/pkg/api"
)

type sessionFlags struct {
	customID      string
	mediaMode     string
	recordingMode string
	layout        string
	customLayout  string
}

// propertiesFromFlags maps the command flags onto session properties.
// Unset flags stay empty so the client applies its documented defaults.
func (f *sessionFlags) properties() api.SessionProperties {
	return api.SessionProperties{
		MediaMode:              api.MediaMode(f.mediaMode),
		RecordingMode:          api.RecordingMode(f.recordingMode),
		DefaultRecordingLayout: api.RecordingLayout(f.layout),
		DefaultCustomLayout:    f.customLayout,
		CustomSessionID:        f.customID,
	}
}

func addSessionFlags(cmd *cobra.Command, flags *sessionFlags) {
	cmd.Flags().StringVar(&flags.customID, "custom-id", "", "Custom session identifier to create or reuse")
	cmd.Flags().StringVar(&flags.mediaMode, "media-mode", "", "Media mode: ROUTED or RELAYED")
	cmd.Flags().StringVar(&flags.recordingMode, "recording-mode", "", "Recording mode: MANUAL or ALWAYS")
	cmd.Flags().StringVar(&flags.layout, "layout", "", "Default recording layout")
	cmd.Flags().StringVar(&flags.customLayout, "custom-layout", "", "Custom recording layout identifier")
}

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage sessions on the media server",
	}
	cmd.AddCommand(newSessionCreateCmd())
	return cmd
}

func newSessionCreateCmd() *cobra.Command {
	flags := &sessionFlags{}
	cmd := &cobra.Command{
		Use:   "create [flags]",
		Short: "Create a session on the media server, or reuse an existing one",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newSessionClient(flags.properties())
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			id, err := client.EnsureSessionID(ctx)
			if err != nil {
				return err
			}

			if jsonOutput {
				printJSON(map[string]string{"sessionId": id})
				return nil
			}
			okLabel.Printf("Session: %s\n", id)
			return nil
		},
	}
	addSessionFlags(cmd, flags)
	return cmd
}
