package commands

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jaekwang-park/userpool-auth/internal/autherr"
	"github.com/jaekwang-park/userpool-auth/internal/service"
	"github.com/jaekwang-park/userpool-auth/internal/session"
)

func (a *app) signInCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signin <username>",
		Short: "Sign in and store the session",
		Long: `Sign in with a username and password. On success the tokens are stored
in the OS keyring under the selected profile.

Example:
  authctl signin alice
  authctl signin alice --profile work`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := a.secretFlag(cmd, "password", "Password: ")
			if err != nil {
				return err
			}

			c, err := a.client(cmd)
			if err != nil {
				return err
			}

			out, err := c.Auth.SignIn(cmd.Context(), service.SignInInput{
				Username: args[0],
				Password: password,
			})
			if err != nil {
				return describe("sign in failed", err)
			}

			if !out.IsSignedIn {
				return fmt.Errorf("sign in requires another step: %s", out.NextStep.SignInStep)
			}

			s := session.FromTokens(args[0], *out.Tokens, a.deps.Now())
			if err := a.deps.Store.Save(a.profileName(), s); err != nil {
				return fmt.Errorf("failed to save session: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (profile %s)\n", args[0], a.profileName())
			return nil
		},
	}

	cmd.Flags().String("password", "", "Password (optional, overrides prompt)")

	return cmd
}

func (a *app) refreshCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Exchange the stored refresh token for new tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.deps.Store.Load(a.profileName())
			if errors.Is(err, session.ErrNotFound) {
				return fmt.Errorf("not signed in for profile %q", a.profileName())
			}
			if err != nil {
				return err
			}

			c, err := a.client(cmd)
			if err != nil {
				return err
			}

			refreshed, err := a.refresh(cmd, c, s)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Tokens refreshed, valid until %s\n", refreshed.ExpiresAt.Format(time.RFC3339))
			return nil
		},
	}
}

func (a *app) whoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user of the profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.deps.Store.Load(a.profileName())
			if errors.Is(err, session.ErrNotFound) {
				fmt.Fprintf(cmd.OutOrStdout(), "Not signed in (profile %s)\n", a.profileName())
				return nil
			}
			if err != nil {
				return err
			}

			claims, err := service.ParseIDToken(s.IDToken)
			if err != nil {
				return err
			}

			status := "valid"
			if s.Expired(a.deps.Now()) {
				status = "expired"
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			defer w.Flush()
			fmt.Fprintf(w, "Profile:\t%s\n", a.profileName())
			fmt.Fprintf(w, "Username:\t%s\n", claims.Username)
			fmt.Fprintf(w, "Sub:\t%s\n", claims.Subject)
			if claims.Email != "" {
				fmt.Fprintf(w, "Email:\t%s\n", claims.Email)
			}
			fmt.Fprintf(w, "Session:\t%s until %s\n", status, s.ExpiresAt.Format(time.RFC3339))
			return nil
		},
	}
}

func (a *app) signOutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "signout",
		Short: "Revoke all tokens of the user and forget the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client(cmd)
			if err != nil {
				return err
			}

			s, err := a.activeSession(cmd, c)
			switch {
			case err == nil:
				err = c.Auth.SignOut(cmd.Context(), service.SignOutInput{AccessToken: s.AccessToken})
				// A revoked token means the user pool already signed the user out.
				if err != nil && !autherr.HasName(err, autherr.NotAuthorizedException) {
					return describe("sign out failed", err)
				}
			case errors.Is(err, errSessionExpired), autherr.HasName(err, autherr.NotAuthorizedException):
				// Nothing left to revoke remotely.
				fmt.Fprintln(cmd.ErrOrStderr(), "Session can no longer be refreshed, clearing it locally.")
			default:
				return err
			}

			if err := a.deps.Store.Delete(a.profileName()); err != nil && !errors.Is(err, session.ErrNotFound) {
				return fmt.Errorf("failed to delete session: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Signed out (profile %s)\n", a.profileName())
			return nil
		},
	}
}
