// Package commands implements the authctl command tree.
package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jaekwang-park/userpool-auth/internal/autherr"
	"github.com/jaekwang-park/userpool-auth/internal/service"
	"github.com/jaekwang-park/userpool-auth/internal/session"
)

// app carries the dependencies and global flags into each command.
type app struct {
	deps    Deps
	profile string
	verbose bool
}

// NewRootCommand builds the authctl command tree on deps.
func NewRootCommand(deps Deps) *cobra.Command {
	a := &app{deps: deps}

	cmd := &cobra.Command{
		Use:   "authctl",
		Short: "Sign up, sign in and manage a user pool account",
		Long: `authctl drives the user pool flows from a terminal. Sessions are kept
in the OS keyring, one per profile.

Quick start:
  authctl signup alice --attr email=alice@example.com
  authctl confirm-signup alice --code 123456
  authctl signin alice
  authctl whoami`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&a.profile, "profile", "default", "Session profile")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log provider requests to stderr")

	cmd.AddCommand(a.signUpCommand())
	cmd.AddCommand(a.confirmSignUpCommand())
	cmd.AddCommand(a.resendCodeCommand())
	cmd.AddCommand(a.signInCommand())
	cmd.AddCommand(a.refreshCommand())
	cmd.AddCommand(a.whoamiCommand())
	cmd.AddCommand(a.signOutCommand())
	cmd.AddCommand(a.passwordCommand())
	cmd.AddCommand(a.totpCommand())

	return cmd
}

// Execute runs authctl with the default dependencies.
func Execute() {
	if err := NewRootCommand(DefaultDeps()).Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) client(cmd *cobra.Command) (*Client, error) {
	return a.deps.NewClient(cmd.Context(), a.verbose)
}

// secretFlag returns the flag value, or prompts for it when unset.
func (a *app) secretFlag(cmd *cobra.Command, flag, prompt string) (string, error) {
	v, err := cmd.Flags().GetString(flag)
	if err != nil {
		return "", err
	}
	if v = strings.TrimSpace(v); v != "" {
		return v, nil
	}
	return a.deps.ReadSecret(prompt)
}

func (a *app) profileName() string {
	return session.NormalizeProfile(a.profile)
}

var errSessionExpired = errors.New("session expired, run authctl signin")

// activeSession loads the profile's session and refreshes it once the access
// token has expired.
func (a *app) activeSession(cmd *cobra.Command, c *Client) (session.Session, error) {
	s, err := a.deps.Store.Load(a.profileName())
	if errors.Is(err, session.ErrNotFound) {
		return session.Session{}, fmt.Errorf("not signed in for profile %q, run authctl signin", a.profileName())
	}
	if err != nil {
		return session.Session{}, err
	}
	if !s.Expired(a.deps.Now()) {
		return s, nil
	}

	if s.RefreshToken == "" {
		return session.Session{}, errSessionExpired
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Session expired, refreshing tokens...")
	return a.refresh(cmd, c, s)
}

func (a *app) refresh(cmd *cobra.Command, c *Client, s session.Session) (session.Session, error) {
	tokens, err := c.Auth.RefreshTokens(cmd.Context(), service.RefreshTokensInput{
		Username:     s.Username,
		RefreshToken: s.RefreshToken,
	})
	if err != nil {
		return session.Session{}, describe("refresh failed", err)
	}

	refreshed := session.FromTokens(s.Username, tokens, a.deps.Now())
	if err := a.deps.Store.Save(a.profileName(), refreshed); err != nil {
		return session.Session{}, fmt.Errorf("failed to save session: %w", err)
	}
	return refreshed, nil
}

// describe wraps a facade error for the terminal. UNKNOWN errors show their
// cause, since the CLI user is also the operator.
func describe(action string, err error) error {
	if autherr.IsUnknown(err) {
		if cause := errors.Unwrap(err); cause != nil {
			return fmt.Errorf("%s: %w (%v)", action, err, cause)
		}
	}
	return fmt.Errorf("%s: %w", action, err)
}

func printDelivery(cmd *cobra.Command, d *service.CodeDeliveryDetails) {
	if d == nil || d.Destination == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "A confirmation code was sent.")
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "A confirmation code was sent by %s to %s.\n", strings.ToLower(d.DeliveryMedium), d.Destination)
}
