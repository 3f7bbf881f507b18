package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jaekwang-park/userpool-auth/internal/service"
)

func (a *app) signUpCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signup <username>",
		Short: "Register a new user",
		Long: `Register a new user in the user pool. The password is prompted for
unless --password is given.

Example:
  authctl signup alice --attr email=alice@example.com`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := a.secretFlag(cmd, "password", "Password: ")
			if err != nil {
				return err
			}
			attrs, _ := cmd.Flags().GetStringToString("attr")

			c, err := a.client(cmd)
			if err != nil {
				return err
			}

			out, err := c.Auth.SignUp(cmd.Context(), service.SignUpInput{
				Username: args[0],
				Password: password,
				Options:  service.SignUpOptions{UserAttributes: attrs},
			})
			if err != nil {
				return describe("sign up failed", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Signed up %s (user id %s)\n", args[0], out.UserID)
			if out.IsSignUpComplete {
				fmt.Fprintln(cmd.OutOrStdout(), "The account is confirmed, you can sign in.")
				return nil
			}
			printDelivery(cmd, out.NextStep.CodeDeliveryDetails)
			fmt.Fprintf(cmd.OutOrStdout(), "Run: authctl confirm-signup %s --code <code>\n", args[0])
			return nil
		},
	}

	cmd.Flags().String("password", "", "Password (optional, overrides prompt)")
	cmd.Flags().StringToString("attr", nil, "User attribute as name=value (repeatable)")

	return cmd
}

func (a *app) confirmSignUpCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "confirm-signup <username>",
		Short: "Confirm a new user with the code sent at sign-up",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, _ := cmd.Flags().GetString("code")

			c, err := a.client(cmd)
			if err != nil {
				return err
			}

			if _, err := c.Auth.ConfirmSignUp(cmd.Context(), service.ConfirmSignUpInput{
				Username:         args[0],
				ConfirmationCode: code,
			}); err != nil {
				return describe("confirmation failed", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Confirmed %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().String("code", "", "Confirmation code")

	return cmd
}

func (a *app) resendCodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resend-code <username>",
		Short: "Send the sign-up confirmation code again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client(cmd)
			if err != nil {
				return err
			}

			details, err := c.Auth.ResendSignUpCode(cmd.Context(), service.ResendSignUpCodeInput{Username: args[0]})
			if err != nil {
				return describe("resend failed", err)
			}

			printDelivery(cmd, &details)
			return nil
		},
	}
}
