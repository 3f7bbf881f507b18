package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jaekwang-park/userpool-auth/internal/service"
)

func (a *app) passwordCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Reset or change a password",
	}

	cmd.AddCommand(a.passwordResetCommand())
	cmd.AddCommand(a.passwordConfirmCommand())
	cmd.AddCommand(a.passwordUpdateCommand())

	return cmd
}

func (a *app) passwordResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <username>",
		Short: "Send a password reset code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client(cmd)
			if err != nil {
				return err
			}

			out, err := c.Auth.ResetPassword(cmd.Context(), service.ResetPasswordInput{Username: args[0]})
			if err != nil {
				return describe("password reset failed", err)
			}

			printDelivery(cmd, out.NextStep.CodeDeliveryDetails)
			fmt.Fprintf(cmd.OutOrStdout(), "Run: authctl password confirm %s --code <code>\n", args[0])
			return nil
		},
	}
}

func (a *app) passwordConfirmCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "confirm <username>",
		Short: "Set a new password with a reset code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, _ := cmd.Flags().GetString("code")
			newPassword, err := a.secretFlag(cmd, "new-password", "New password: ")
			if err != nil {
				return err
			}

			c, err := a.client(cmd)
			if err != nil {
				return err
			}

			if err := c.Auth.ConfirmResetPassword(cmd.Context(), service.ConfirmResetPasswordInput{
				Username:         args[0],
				NewPassword:      newPassword,
				ConfirmationCode: code,
			}); err != nil {
				return describe("password reset failed", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Password reset, you can sign in with the new password.")
			return nil
		},
	}

	cmd.Flags().String("code", "", "Reset code")
	cmd.Flags().String("new-password", "", "New password (optional, overrides prompt)")

	return cmd
}

func (a *app) passwordUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change the password of the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client(cmd)
			if err != nil {
				return err
			}

			s, err := a.activeSession(cmd, c)
			if err != nil {
				return err
			}

			oldPassword, err := a.secretFlag(cmd, "old-password", "Current password: ")
			if err != nil {
				return err
			}
			newPassword, err := a.secretFlag(cmd, "new-password", "New password: ")
			if err != nil {
				return err
			}

			if err := c.Auth.UpdatePassword(cmd.Context(), service.UpdatePasswordInput{
				AccessToken: s.AccessToken,
				OldPassword: oldPassword,
				NewPassword: newPassword,
			}); err != nil {
				return describe("password change failed", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Password changed.")
			return nil
		},
	}

	cmd.Flags().String("old-password", "", "Current password (optional, overrides prompt)")
	cmd.Flags().String("new-password", "", "New password (optional, overrides prompt)")

	return cmd
}
