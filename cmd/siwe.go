package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/Portalfi/Portalfi-Backend/providers/gnosispay"
	"github.com/Portalfi/Portalfi-Backend/services/gnosis"
	"github.com/spf13/cobra"
)

func siweLoginCmd() *cobra.Command {
	var address, domain string

	cmd := &cobra.Command{
		Use:   "siwe-login",
		Short: "Sign in to GnosisPay with a local key and print the bearer token",
		Long: `Runs the nonce, Sign-In with Ethereum and challenge exchange against the
configured GnosisPay API. The private key is read from GNOSISPAY_PRIVATE_KEY.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			key := os.Getenv("GNOSISPAY_PRIVATE_KEY")
			if key == "" {
				return errors.New("GNOSISPAY_PRIVATE_KEY is not set")
			}

			config, logger, err := loadConfig()
			if err != nil {
				return err
			}

			client := gnosispay.NewClient(config.GnosisPayAPIURL, logger)
			token, err := gnosis.NewAuthService(client, logger).AuthenticateWithSIWE(cmd.Context(), key, address, domain)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "expected signer address")
	cmd.Flags().StringVar(&domain, "domain", "app.gnosispay.com", "domain named in the SIWE message")
	return cmd
}
