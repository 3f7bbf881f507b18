package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/jaekwang-park/userpool-auth/internal/autherr"
	"github.com/jaekwang-park/userpool-auth/internal/cognito"
	"github.com/jaekwang-park/userpool-auth/internal/repository"
)

// AuthService exposes the user pool operations as typed facades.
type AuthService struct {
	dispatcher   cognito.Dispatcher
	clientID     string
	clientSecret string
	userRepo     repository.UserRepository
	observer     Observer
	logger       *slog.Logger
}

// Option configures an AuthService.
type Option func(*AuthService)

// WithUserRepository mirrors signed-in users into repo.
func WithUserRepository(repo repository.UserRepository) Option {
	return func(s *AuthService) { s.userRepo = repo }
}

// WithObserver reports every facade outcome to o.
func WithObserver(o Observer) Option {
	return func(s *AuthService) { s.observer = o }
}

// WithLogger sets the logger used for user mirror warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(s *AuthService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewAuthService creates a new AuthService for the given app client.
// clientSecret may be empty for public app clients.
func NewAuthService(dispatcher cognito.Dispatcher, clientID, clientSecret string, opts ...Option) *AuthService {
	s := &AuthService{
		dispatcher:   dispatcher,
		clientID:     clientID,
		clientSecret: clientSecret,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *AuthService) secretHash(username string) string {
	return cognito.SecretHash(username, s.clientID, s.clientSecret)
}

// --- Input/Output types ---

// Sign-up steps.
const (
	SignUpStepConfirmSignUp = "CONFIRM_SIGN_UP"
	SignUpStepDone          = "DONE"
)

// Sign-in steps.
const (
	SignInStepDone                       = "DONE"
	SignInStepConfirmWithSMSCode         = "CONFIRM_SIGN_IN_WITH_SMS_CODE"
	SignInStepConfirmWithTOTPCode        = "CONFIRM_SIGN_IN_WITH_TOTP_CODE"
	SignInStepContinueWithTOTPSetup      = "CONTINUE_SIGN_IN_WITH_TOTP_SETUP"
	SignInStepContinueWithMFASelection   = "CONTINUE_SIGN_IN_WITH_MFA_SELECTION"
	SignInStepConfirmWithNewPassword     = "CONFIRM_SIGN_IN_WITH_NEW_PASSWORD_REQUIRED"
	SignInStepConfirmWithCustomChallenge = "CONFIRM_SIGN_IN_WITH_CUSTOM_CHALLENGE"
)

// ResetPasswordStepConfirmWithCode is the only step after ResetPassword.
const ResetPasswordStepConfirmWithCode = "CONFIRM_RESET_PASSWORD_WITH_CODE"

// challengeSteps maps provider challenge names to sign-in steps.
var challengeSteps = map[string]string{
	"SMS_MFA":               SignInStepConfirmWithSMSCode,
	"SOFTWARE_TOKEN_MFA":    SignInStepConfirmWithTOTPCode,
	"MFA_SETUP":             SignInStepContinueWithTOTPSetup,
	"SELECT_MFA_TYPE":       SignInStepContinueWithMFASelection,
	"NEW_PASSWORD_REQUIRED": SignInStepConfirmWithNewPassword,
	"CUSTOM_CHALLENGE":      SignInStepConfirmWithCustomChallenge,
}

// CodeDeliveryDetails describes where the user pool sent a code.
type CodeDeliveryDetails struct {
	Destination    string `json:"destination,omitempty"`
	DeliveryMedium string `json:"delivery_medium,omitempty"`
	AttributeName  string `json:"attribute_name,omitempty"`
}

// SignUpOptions are optional sign-up parameters. UserAttributes keys are
// attribute names such as "email".
type SignUpOptions struct {
	UserAttributes map[string]string
	ValidationData map[string]string
	ClientMetadata map[string]string
}

// SignUpInput registers a new user.
type SignUpInput struct {
	Username string
	Password string
	Options  SignUpOptions
}

// SignUpNextStep tells the caller what to do after a sign-up call.
type SignUpNextStep struct {
	SignUpStep          string               `json:"sign_up_step"`
	CodeDeliveryDetails *CodeDeliveryDetails `json:"code_delivery_details,omitempty"`
}

// SignUpResult is returned by SignUp. UserID is the user pool sub.
type SignUpResult struct {
	IsSignUpComplete bool           `json:"is_sign_up_complete"`
	UserID           string         `json:"user_id"`
	NextStep         SignUpNextStep `json:"next_step"`
}

// ConfirmSignUpOptions are optional ConfirmSignUp parameters.
type ConfirmSignUpOptions struct {
	ForceAliasCreation bool
	ClientMetadata     map[string]string
}

// ConfirmSignUpInput confirms a registration with the emailed or texted code.
type ConfirmSignUpInput struct {
	Username         string
	ConfirmationCode string
	Options          ConfirmSignUpOptions
}

// ConfirmSignUpResult is returned by ConfirmSignUp.
type ConfirmSignUpResult struct {
	IsSignUpComplete bool           `json:"is_sign_up_complete"`
	NextStep         SignUpNextStep `json:"next_step"`
}

// ResendSignUpCodeOptions are optional ResendSignUpCode parameters.
type ResendSignUpCodeOptions struct {
	ClientMetadata map[string]string
}

// ResendSignUpCodeInput names the unconfirmed user.
type ResendSignUpCodeInput struct {
	Username string
	Options  ResendSignUpCodeOptions
}

// SignInOptions are optional SignIn parameters.
type SignInOptions struct {
	ClientMetadata map[string]string
}

// SignInInput signs a user in with a password.
type SignInInput struct {
	Username string
	Password string
	Options  SignInOptions
}

// Tokens are the tokens issued after a completed sign-in or refresh.
type Tokens struct {
	IDToken      string `json:"id_token"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int32  `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

// SignInNextStep describes the pending challenge, or DONE.
type SignInNextStep struct {
	SignInStep     string            `json:"sign_in_step"`
	AdditionalInfo map[string]string `json:"additional_info,omitempty"`
	Session        string            `json:"session,omitempty"`
}

// SignInResult is returned by SignIn. Tokens is set only when IsSignedIn.
type SignInResult struct {
	IsSignedIn bool           `json:"is_signed_in"`
	NextStep   SignInNextStep `json:"next_step"`
	Tokens     *Tokens        `json:"tokens,omitempty"`
}

// RefreshTokensInput exchanges a refresh token. Username is required for the
// secret hash of confidential clients.
type RefreshTokensInput struct {
	Username     string
	RefreshToken string
}

// ResetPasswordOptions are optional ResetPassword parameters.
type ResetPasswordOptions struct {
	ClientMetadata map[string]string
}

// ResetPasswordInput starts a forgotten-password flow.
type ResetPasswordInput struct {
	Username string
	Options  ResetPasswordOptions
}

// ResetPasswordNextStep says where the reset code went.
type ResetPasswordNextStep struct {
	ResetPasswordStep   string               `json:"reset_password_step"`
	CodeDeliveryDetails *CodeDeliveryDetails `json:"code_delivery_details,omitempty"`
}

// ResetPasswordResult is returned by ResetPassword.
type ResetPasswordResult struct {
	IsPasswordReset bool                  `json:"is_password_reset"`
	NextStep        ResetPasswordNextStep `json:"next_step"`
}

// ConfirmResetPasswordOptions are optional ConfirmResetPassword parameters.
type ConfirmResetPasswordOptions struct {
	ClientMetadata map[string]string
}

// ConfirmResetPasswordInput sets a new password using the reset code.
type ConfirmResetPasswordInput struct {
	Username         string
	NewPassword      string
	ConfirmationCode string
	Options          ConfirmResetPasswordOptions
}

// UpdatePasswordInput changes the password of a signed-in user.
type UpdatePasswordInput struct {
	AccessToken string
	OldPassword string
	NewPassword string
}

// SetUpTOTPInput requests a new authenticator secret.
type SetUpTOTPInput struct {
	AccessToken string
	// Username is the default account name in the setup URI.
	Username string
}

// VerifyTOTPSetupOptions are optional VerifyTOTPSetup parameters.
type VerifyTOTPSetupOptions struct {
	FriendlyDeviceName string
}

// VerifyTOTPSetupInput confirms an authenticator with its first code.
type VerifyTOTPSetupInput struct {
	AccessToken string
	Code        string
	Options     VerifyTOTPSetupOptions
}

// SignOutInput revokes every token of the access token's user.
type SignOutInput struct {
	AccessToken string
}

// --- Operations ---

var signUpOp = operation[SignUpInput, cognito.SignUpRequest, cognito.SignUpResponse, SignUpResult]{
	name:       cognito.OpSignUp,
	exceptions: autherr.SignUpExceptions,
	validate: func(in SignUpInput) error {
		if err := autherr.Require(present(in.Username), autherr.EmptySignUpUsername); err != nil {
			return err
		}
		return autherr.Require(present(in.Password), autherr.EmptySignUpPassword)
	},
	request: func(s *AuthService, in SignUpInput) *cognito.SignUpRequest {
		return &cognito.SignUpRequest{
			ClientId:       s.clientID,
			SecretHash:     s.secretHash(in.Username),
			Username:       in.Username,
			Password:       in.Password,
			UserAttributes: toAttributes(in.Options.UserAttributes),
			ValidationData: toAttributes(in.Options.ValidationData),
			ClientMetadata: in.Options.ClientMetadata,
		}
	},
	result: func(_ SignUpInput, resp *cognito.SignUpResponse) (SignUpResult, error) {
		if resp.UserConfirmed {
			return SignUpResult{
				IsSignUpComplete: true,
				UserID:           resp.UserSub,
				NextStep:         SignUpNextStep{SignUpStep: SignUpStepDone},
			}, nil
		}
		return SignUpResult{
			UserID: resp.UserSub,
			NextStep: SignUpNextStep{
				SignUpStep:          SignUpStepConfirmSignUp,
				CodeDeliveryDetails: fromDelivery(resp.CodeDeliveryDetails),
			},
		}, nil
	},
}

var confirmSignUpOp = operation[ConfirmSignUpInput, cognito.ConfirmSignUpRequest, cognito.ConfirmSignUpResponse, ConfirmSignUpResult]{
	name:       cognito.OpConfirmSignUp,
	exceptions: autherr.ConfirmSignUpExceptions,
	validate: func(in ConfirmSignUpInput) error {
		if err := autherr.Require(present(in.Username), autherr.EmptyConfirmSignUpUsername); err != nil {
			return err
		}
		return autherr.Require(present(in.ConfirmationCode), autherr.EmptyConfirmSignUpCode)
	},
	request: func(s *AuthService, in ConfirmSignUpInput) *cognito.ConfirmSignUpRequest {
		return &cognito.ConfirmSignUpRequest{
			ClientId:           s.clientID,
			SecretHash:         s.secretHash(in.Username),
			Username:           in.Username,
			ConfirmationCode:   in.ConfirmationCode,
			ForceAliasCreation: in.Options.ForceAliasCreation,
			ClientMetadata:     in.Options.ClientMetadata,
		}
	},
	result: func(ConfirmSignUpInput, *cognito.ConfirmSignUpResponse) (ConfirmSignUpResult, error) {
		return ConfirmSignUpResult{
			IsSignUpComplete: true,
			NextStep:         SignUpNextStep{SignUpStep: SignUpStepDone},
		}, nil
	},
}

// Resending a sign-up code shares the sign-up username check.
var resendSignUpCodeOp = operation[ResendSignUpCodeInput, cognito.ResendConfirmationCodeRequest, cognito.ResendConfirmationCodeResponse, CodeDeliveryDetails]{
	name:       cognito.OpResendConfirmationCode,
	exceptions: autherr.ResendConfirmationExceptions,
	validate: func(in ResendSignUpCodeInput) error {
		return autherr.Require(present(in.Username), autherr.EmptySignUpUsername)
	},
	request: func(s *AuthService, in ResendSignUpCodeInput) *cognito.ResendConfirmationCodeRequest {
		return &cognito.ResendConfirmationCodeRequest{
			ClientId:       s.clientID,
			SecretHash:     s.secretHash(in.Username),
			Username:       in.Username,
			ClientMetadata: in.Options.ClientMetadata,
		}
	},
	result: func(_ ResendSignUpCodeInput, resp *cognito.ResendConfirmationCodeResponse) (CodeDeliveryDetails, error) {
		if d := fromDelivery(resp.CodeDeliveryDetails); d != nil {
			return *d, nil
		}
		return CodeDeliveryDetails{}, nil
	},
}

var signInOp = operation[SignInInput, cognito.InitiateAuthRequest, cognito.InitiateAuthResponse, SignInResult]{
	name:       cognito.OpInitiateAuth,
	exceptions: autherr.InitiateAuthExceptions,
	validate: func(in SignInInput) error {
		if err := autherr.Require(present(in.Username), autherr.EmptySignInUsername); err != nil {
			return err
		}
		return autherr.Require(present(in.Password), autherr.EmptySignInPassword)
	},
	request: func(s *AuthService, in SignInInput) *cognito.InitiateAuthRequest {
		params := map[string]string{
			cognito.AuthParamUsername: in.Username,
			cognito.AuthParamPassword: in.Password,
		}
		if h := s.secretHash(in.Username); h != "" {
			params[cognito.AuthParamSecretHash] = h
		}
		return &cognito.InitiateAuthRequest{
			AuthFlow:       cognito.AuthFlowUserPassword,
			ClientId:       s.clientID,
			AuthParameters: params,
			ClientMetadata: in.Options.ClientMetadata,
		}
	},
	result: func(_ SignInInput, resp *cognito.InitiateAuthResponse) (SignInResult, error) {
		if resp.AuthenticationResult != nil {
			return SignInResult{
				IsSignedIn: true,
				NextStep:   SignInNextStep{SignInStep: SignInStepDone},
				Tokens:     fromAuthResult(resp.AuthenticationResult),
			}, nil
		}
		step, ok := challengeSteps[resp.ChallengeName]
		if !ok {
			return SignInResult{}, fmt.Errorf("unsupported sign-in challenge %q", resp.ChallengeName)
		}
		return SignInResult{
			NextStep: SignInNextStep{
				SignInStep:     step,
				AdditionalInfo: resp.ChallengeParameters,
				Session:        resp.Session,
			},
		}, nil
	},
}

var refreshTokensOp = operation[RefreshTokensInput, cognito.InitiateAuthRequest, cognito.InitiateAuthResponse, Tokens]{
	name:       cognito.OpInitiateAuth,
	exceptions: autherr.InitiateAuthExceptions,
	validate: func(in RefreshTokensInput) error {
		return autherr.Require(present(in.RefreshToken), autherr.EmptyRefreshToken)
	},
	request: func(s *AuthService, in RefreshTokensInput) *cognito.InitiateAuthRequest {
		params := map[string]string{
			cognito.AuthParamRefreshToken: in.RefreshToken,
		}
		if h := s.secretHash(in.Username); h != "" && in.Username != "" {
			params[cognito.AuthParamSecretHash] = h
		}
		return &cognito.InitiateAuthRequest{
			AuthFlow:       cognito.AuthFlowRefreshToken,
			ClientId:       s.clientID,
			AuthParameters: params,
		}
	},
	result: func(in RefreshTokensInput, resp *cognito.InitiateAuthResponse) (Tokens, error) {
		if resp.AuthenticationResult == nil {
			return Tokens{}, errors.New("refresh returned no authentication result")
		}
		tokens := fromAuthResult(resp.AuthenticationResult)
		// The refresh flow does not rotate the refresh token.
		if tokens.RefreshToken == "" {
			tokens.RefreshToken = in.RefreshToken
		}
		return *tokens, nil
	},
}

var resetPasswordOp = operation[ResetPasswordInput, cognito.ForgotPasswordRequest, cognito.ForgotPasswordResponse, ResetPasswordResult]{
	name:       cognito.OpForgotPassword,
	exceptions: autherr.ForgotPasswordExceptions,
	validate: func(in ResetPasswordInput) error {
		return autherr.Require(present(in.Username), autherr.EmptyResetPasswordUsername)
	},
	request: func(s *AuthService, in ResetPasswordInput) *cognito.ForgotPasswordRequest {
		return &cognito.ForgotPasswordRequest{
			ClientId:       s.clientID,
			SecretHash:     s.secretHash(in.Username),
			Username:       in.Username,
			ClientMetadata: in.Options.ClientMetadata,
		}
	},
	result: func(_ ResetPasswordInput, resp *cognito.ForgotPasswordResponse) (ResetPasswordResult, error) {
		return ResetPasswordResult{
			NextStep: ResetPasswordNextStep{
				ResetPasswordStep:   ResetPasswordStepConfirmWithCode,
				CodeDeliveryDetails: fromDelivery(resp.CodeDeliveryDetails),
			},
		}, nil
	},
}

var confirmResetPasswordOp = operation[ConfirmResetPasswordInput, cognito.ConfirmForgotPasswordRequest, cognito.ConfirmForgotPasswordResponse, struct{}]{
	name:       cognito.OpConfirmForgotPassword,
	exceptions: autherr.ConfirmForgotPasswordExceptions,
	validate: func(in ConfirmResetPasswordInput) error {
		if err := autherr.Require(present(in.Username), autherr.EmptyConfirmResetPasswordUsername); err != nil {
			return err
		}
		if err := autherr.Require(present(in.NewPassword), autherr.EmptyConfirmResetPasswordNewPassword); err != nil {
			return err
		}
		return autherr.Require(present(in.ConfirmationCode), autherr.EmptyConfirmResetPasswordConfirmationCode)
	},
	request: func(s *AuthService, in ConfirmResetPasswordInput) *cognito.ConfirmForgotPasswordRequest {
		return &cognito.ConfirmForgotPasswordRequest{
			ClientId:         s.clientID,
			SecretHash:       s.secretHash(in.Username),
			Username:         in.Username,
			ConfirmationCode: in.ConfirmationCode,
			Password:         in.NewPassword,
			ClientMetadata:   in.Options.ClientMetadata,
		}
	},
}

var updatePasswordOp = operation[UpdatePasswordInput, cognito.ChangePasswordRequest, cognito.ChangePasswordResponse, struct{}]{
	name:       cognito.OpChangePassword,
	exceptions: autherr.ChangePasswordExceptions,
	validate: func(in UpdatePasswordInput) error {
		if err := autherr.Require(present(in.OldPassword) && present(in.NewPassword), autherr.EmptyUpdatePassword); err != nil {
			return err
		}
		return autherr.Require(present(in.AccessToken), autherr.UserUnAuthenticated)
	},
	request: func(_ *AuthService, in UpdatePasswordInput) *cognito.ChangePasswordRequest {
		return &cognito.ChangePasswordRequest{
			AccessToken:      in.AccessToken,
			PreviousPassword: in.OldPassword,
			ProposedPassword: in.NewPassword,
		}
	},
}

var setUpTOTPOp = operation[SetUpTOTPInput, cognito.AssociateSoftwareTokenRequest, cognito.AssociateSoftwareTokenResponse, TOTPSetupDetails]{
	name:       cognito.OpAssociateSoftwareToken,
	exceptions: autherr.AssociateSoftwareTokenExceptions,
	validate: func(in SetUpTOTPInput) error {
		return autherr.Require(present(in.AccessToken), autherr.UserUnAuthenticated)
	},
	request: func(_ *AuthService, in SetUpTOTPInput) *cognito.AssociateSoftwareTokenRequest {
		return &cognito.AssociateSoftwareTokenRequest{AccessToken: in.AccessToken}
	},
	result: func(in SetUpTOTPInput, resp *cognito.AssociateSoftwareTokenResponse) (TOTPSetupDetails, error) {
		return TOTPSetupDetails{SharedSecret: resp.SecretCode, Username: in.Username}, nil
	},
}

var verifyTOTPSetupOp = operation[VerifyTOTPSetupInput, cognito.VerifySoftwareTokenRequest, cognito.VerifySoftwareTokenResponse, struct{}]{
	name:       cognito.OpVerifySoftwareToken,
	exceptions: autherr.VerifySoftwareTokenExceptions,
	validate: func(in VerifyTOTPSetupInput) error {
		if err := autherr.Require(present(in.Code), autherr.EmptyVerifyTOTPSetupCode); err != nil {
			return err
		}
		return autherr.Require(present(in.AccessToken), autherr.UserUnAuthenticated)
	},
	request: func(_ *AuthService, in VerifyTOTPSetupInput) *cognito.VerifySoftwareTokenRequest {
		return &cognito.VerifySoftwareTokenRequest{
			AccessToken:        in.AccessToken,
			UserCode:           in.Code,
			FriendlyDeviceName: in.Options.FriendlyDeviceName,
		}
	},
}

var signOutOp = operation[SignOutInput, cognito.GlobalSignOutRequest, cognito.GlobalSignOutResponse, struct{}]{
	name:       cognito.OpGlobalSignOut,
	exceptions: autherr.GlobalSignOutExceptions,
	validate: func(in SignOutInput) error {
		return autherr.Require(present(in.AccessToken), autherr.UserUnAuthenticated)
	},
	request: func(_ *AuthService, in SignOutInput) *cognito.GlobalSignOutRequest {
		return &cognito.GlobalSignOutRequest{AccessToken: in.AccessToken}
	},
}

// --- Service methods ---

// SignUp registers a new user.
func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) (SignUpResult, error) {
	return signUpOp.run(ctx, s, in)
}

// ConfirmSignUp confirms a registration with the code the provider delivered.
func (s *AuthService) ConfirmSignUp(ctx context.Context, in ConfirmSignUpInput) (ConfirmSignUpResult, error) {
	return confirmSignUpOp.run(ctx, s, in)
}

// ResendSignUpCode asks the provider to deliver a new sign-up confirmation code.
func (s *AuthService) ResendSignUpCode(ctx context.Context, in ResendSignUpCodeInput) (CodeDeliveryDetails, error) {
	return resendSignUpCodeOp.run(ctx, s, in)
}

// SignIn authenticates with username and password. When the user pool answers
// with a challenge the result carries the next step instead of tokens.
func (s *AuthService) SignIn(ctx context.Context, in SignInInput) (SignInResult, error) {
	res, err := signInOp.run(ctx, s, in)
	if err != nil {
		return SignInResult{}, err
	}
	if res.Tokens != nil {
		s.syncUser(ctx, res.Tokens.IDToken)
	}
	return res, nil
}

// RefreshTokens exchanges a refresh token for new ID and access tokens.
// Username is only needed when the app client has a secret.
func (s *AuthService) RefreshTokens(ctx context.Context, in RefreshTokensInput) (Tokens, error) {
	return refreshTokensOp.run(ctx, s, in)
}

// ResetPassword starts the forgot-password flow.
func (s *AuthService) ResetPassword(ctx context.Context, in ResetPasswordInput) (ResetPasswordResult, error) {
	return resetPasswordOp.run(ctx, s, in)
}

// ConfirmResetPassword sets a new password using the delivered code.
func (s *AuthService) ConfirmResetPassword(ctx context.Context, in ConfirmResetPasswordInput) error {
	_, err := confirmResetPasswordOp.run(ctx, s, in)
	return err
}

// UpdatePassword changes the password of the signed-in user.
func (s *AuthService) UpdatePassword(ctx context.Context, in UpdatePasswordInput) error {
	_, err := updatePasswordOp.run(ctx, s, in)
	return err
}

// SetUpTOTP associates a new software token with the signed-in user.
func (s *AuthService) SetUpTOTP(ctx context.Context, in SetUpTOTPInput) (TOTPSetupDetails, error) {
	return setUpTOTPOp.run(ctx, s, in)
}

// VerifyTOTPSetup completes TOTP setup with a code from the authenticator app.
func (s *AuthService) VerifyTOTPSetup(ctx context.Context, in VerifyTOTPSetupInput) error {
	_, err := verifyTOTPSetupOp.run(ctx, s, in)
	return err
}

// SignOut invalidates every token issued to the signed-in user.
func (s *AuthService) SignOut(ctx context.Context, in SignOutInput) error {
	_, err := signOutOp.run(ctx, s, in)
	return err
}

// syncUser records the signed-in user in the mirror. Failures are logged only;
// the sign-in itself already succeeded.
func (s *AuthService) syncUser(ctx context.Context, idToken string) {
	if s.userRepo == nil {
		return
	}

	claims, err := ParseIDToken(idToken)
	if err != nil {
		s.logger.WarnContext(ctx, "skipping user sync", slog.String("error", err.Error()))
		return
	}
	if _, err := s.userRepo.RecordSignIn(ctx, claims.Subject, claims.Username, claims.Email); err != nil {
		s.logger.WarnContext(ctx, "failed to sync user",
			slog.String("sub", claims.Subject),
			slog.String("error", err.Error()),
		)
	}
}

func toAttributes(m map[string]string) []cognito.AttributeType {
	if len(m) == 0 {
		return nil
	}
	attrs := make([]cognito.AttributeType, 0, len(m))
	for _, name := range slices.Sorted(maps.Keys(m)) {
		attrs = append(attrs, cognito.AttributeType{Name: name, Value: m[name]})
	}
	return attrs
}

func fromDelivery(d *cognito.CodeDeliveryDetailsType) *CodeDeliveryDetails {
	if d == nil {
		return nil
	}
	return &CodeDeliveryDetails{
		Destination:    d.Destination,
		DeliveryMedium: d.DeliveryMedium,
		AttributeName:  d.AttributeName,
	}
}

func fromAuthResult(r *cognito.AuthenticationResultType) *Tokens {
	return &Tokens{
		IDToken:      r.IdToken,
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		ExpiresIn:    r.ExpiresIn,
		TokenType:    r.TokenType,
	}
}
