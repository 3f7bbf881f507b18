package commands

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/jaekwang-park/userpool-auth/internal/service"
)

const qrSize = 256

func (a *app) totpCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "totp",
		Short: "Set up an authenticator app",
	}

	cmd.AddCommand(a.totpSetupCommand())
	cmd.AddCommand(a.totpVerifyCommand())

	return cmd
}

func (a *app) totpSetupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Start TOTP setup for the signed-in user",
		Long: `Start TOTP setup. Add the printed secret or URI to an authenticator app,
or scan the QR code written by --qr, then run authctl totp verify.

Example:
  authctl totp setup --qr totp.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			qrPath, _ := cmd.Flags().GetString("qr")
			issuer, _ := cmd.Flags().GetString("issuer")

			c, err := a.client(cmd)
			if err != nil {
				return err
			}
			if issuer == "" {
				issuer = c.AppName
			}

			s, err := a.activeSession(cmd, c)
			if err != nil {
				return err
			}

			details, err := c.Auth.SetUpTOTP(cmd.Context(), service.SetUpTOTPInput{
				AccessToken: s.AccessToken,
				Username:    s.Username,
			})
			if err != nil {
				return describe("totp setup failed", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Secret: %s\n", details.SharedSecret)
			fmt.Fprintf(cmd.OutOrStdout(), "URI:    %s\n", details.GetSetupURI(issuer, ""))

			if qrPath != "" {
				if err := writeQRCode(details, issuer, qrPath); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "QR code written to %s\n", qrPath)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Run: authctl totp verify --code <code>")
			return nil
		},
	}

	cmd.Flags().String("qr", "", "Write the setup QR code to this PNG file")
	cmd.Flags().String("issuer", "", "Issuer shown by the authenticator app (default APP_NAME)")

	return cmd
}

func writeQRCode(details service.TOTPSetupDetails, issuer, path string) error {
	key, err := details.Key(issuer, "")
	if err != nil {
		return fmt.Errorf("failed to build totp key: %w", err)
	}
	img, err := key.Image(qrSize, qrSize)
	if err != nil {
		return fmt.Errorf("failed to render qr code: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to write qr code: %w", err)
	}
	return f.Close()
}

func (a *app) totpVerifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Finish TOTP setup with a code from the authenticator app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, _ := cmd.Flags().GetString("code")
			device, _ := cmd.Flags().GetString("device-name")

			c, err := a.client(cmd)
			if err != nil {
				return err
			}

			s, err := a.activeSession(cmd, c)
			if err != nil {
				return err
			}

			if err := c.Auth.VerifyTOTPSetup(cmd.Context(), service.VerifyTOTPSetupInput{
				AccessToken: s.AccessToken,
				Code:        code,
				Options:     service.VerifyTOTPSetupOptions{FriendlyDeviceName: device},
			}); err != nil {
				return describe("totp verification failed", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "TOTP verified.")
			return nil
		},
	}

	cmd.Flags().String("code", "", "Code shown by the authenticator app")
	cmd.Flags().String("device-name", "", "Friendly name of the device")

	return cmd
}
