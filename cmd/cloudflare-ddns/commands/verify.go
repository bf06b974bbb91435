package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/esaiascronelius/cloudflare-ddns/internal/logger"
	"github.com/esaiascronelius/cloudflare-ddns/pkg/cfapi"
	"github.com/esaiascronelius/cloudflare-ddns/pkg/cfclient"
)

// NewVerifyCommand creates the verify command.
func NewVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Verify the configured API token",
		Long:  "Dispatches a verification call and reports whether the API accepts the token.",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := resolveToken()
			if err != nil {
				return err
			}

			// Build the client without the startup gate so the verdict can
			// be reported instead of failing construction.
			client, err := cfclient.New(cmd.Context(), &cfapi.Config{
				APIEndpoint:      viper.GetString("api"),
				APIToken:         token,
				Logger:           logger.New(os.Stderr, viper.GetBool("verbose")),
				Debug:            viper.GetBool("verbose"),
				SkipVerification: true,
			})
			if err != nil {
				return fmt.Errorf("creating API client: %w", err)
			}

			if !client.Verify(cmd.Context(), token) {
				return cfapi.ErrCredentialInvalid
			}

			fmt.Println("Token is valid")

			return nil
		},
	}
}
