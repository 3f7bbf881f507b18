package cognito

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

// AWSClient implements Dispatcher using the AWS SDK v2. It exchanges the same
// wire types as UserPoolHTTPClient so either can back the auth service.
type AWSClient struct {
	cip    *cip.Client
	logger *slog.Logger
}

// NewAWSClient creates an AWSClient for the given region. Requests are unsigned;
// the public user pool operations authenticate with the app client id or an
// access token instead. endpoint may be empty.
func NewAWSClient(ctx context.Context, region, endpoint string) (*AWSClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(aws.AnonymousCredentials{}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return NewAWSClientFromConfig(cfg, endpoint), nil
}

// NewAWSClientFromConfig creates an AWSClient from an existing SDK config.
// Retries are disabled so each Send makes exactly one attempt.
func NewAWSClientFromConfig(cfg aws.Config, endpoint string) *AWSClient {
	client := cip.NewFromConfig(cfg, func(o *cip.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.RetryMaxAttempts = 1
	})
	return &AWSClient{cip: client, logger: slog.Default()}
}

// Send maps the wire request to the SDK input for op and the SDK output back.
func (c *AWSClient) Send(ctx context.Context, op Operation, input, output any) error {
	var err error
	switch op {
	case OpSignUp:
		err = invoke(ctx, input, output, signUpInput, c.cip.SignUp, signUpOutput)
	case OpConfirmSignUp:
		err = invoke(ctx, input, output, confirmSignUpInput, c.cip.ConfirmSignUp, confirmSignUpOutput)
	case OpResendConfirmationCode:
		err = invoke(ctx, input, output, resendConfirmationCodeInput, c.cip.ResendConfirmationCode, resendConfirmationCodeOutput)
	case OpInitiateAuth:
		err = invoke(ctx, input, output, initiateAuthInput, c.cip.InitiateAuth, initiateAuthOutput)
	case OpForgotPassword:
		err = invoke(ctx, input, output, forgotPasswordInput, c.cip.ForgotPassword, forgotPasswordOutput)
	case OpConfirmForgotPassword:
		err = invoke(ctx, input, output, confirmForgotPasswordInput, c.cip.ConfirmForgotPassword, confirmForgotPasswordOutput)
	case OpChangePassword:
		err = invoke(ctx, input, output, changePasswordInput, c.cip.ChangePassword, changePasswordOutput)
	case OpGlobalSignOut:
		err = invoke(ctx, input, output, globalSignOutInput, c.cip.GlobalSignOut, globalSignOutOutput)
	case OpAssociateSoftwareToken:
		err = invoke(ctx, input, output, associateSoftwareTokenInput, c.cip.AssociateSoftwareToken, associateSoftwareTokenOutput)
	case OpVerifySoftwareToken:
		err = invoke(ctx, input, output, verifySoftwareTokenInput, c.cip.VerifySoftwareToken, verifySoftwareTokenOutput)
	default:
		err = fmt.Errorf("cognito: unsupported operation %q", op)
	}
	if err == nil {
		return nil
	}

	c.logger.DebugContext(ctx, "user pool request failed",
		slog.String("operation", string(op)),
		slog.Any("error", err),
	)
	return dispatchError(err)
}

// invoke runs one SDK call with the request converted by toSDK and stores the
// converted result in output when output has the matching type.
func invoke[Req, Resp, SDKIn, SDKOut any](
	ctx context.Context,
	input, output any,
	toSDK func(*Req) *SDKIn,
	call func(context.Context, *SDKIn, ...func(*cip.Options)) (*SDKOut, error),
	fromSDK func(*SDKOut) Resp,
) error {
	req, ok := input.(*Req)
	if !ok || req == nil {
		return fmt.Errorf("cognito: unexpected input type %T", input)
	}
	res, err := call(ctx, toSDK(req))
	if err != nil {
		return err
	}
	if out, ok := output.(*Resp); ok && out != nil && res != nil {
		*out = fromSDK(res)
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return aws.String(s)
}

func toSDKAttributes(attrs []AttributeType) []types.AttributeType {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]types.AttributeType, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, types.AttributeType{Name: aws.String(a.Name), Value: aws.String(a.Value)})
	}
	return out
}

func fromSDKDelivery(d *types.CodeDeliveryDetailsType) *CodeDeliveryDetailsType {
	if d == nil {
		return nil
	}
	return &CodeDeliveryDetailsType{
		AttributeName:  aws.ToString(d.AttributeName),
		DeliveryMedium: string(d.DeliveryMedium),
		Destination:    aws.ToString(d.Destination),
	}
}

func signUpInput(r *SignUpRequest) *cip.SignUpInput {
	return &cip.SignUpInput{
		ClientId:       aws.String(r.ClientId),
		SecretHash:     optional(r.SecretHash),
		Username:       aws.String(r.Username),
		Password:       aws.String(r.Password),
		UserAttributes: toSDKAttributes(r.UserAttributes),
		ValidationData: toSDKAttributes(r.ValidationData),
		ClientMetadata: r.ClientMetadata,
	}
}

func signUpOutput(o *cip.SignUpOutput) SignUpResponse {
	return SignUpResponse{
		UserConfirmed:       o.UserConfirmed,
		UserSub:             aws.ToString(o.UserSub),
		CodeDeliveryDetails: fromSDKDelivery(o.CodeDeliveryDetails),
	}
}

func confirmSignUpInput(r *ConfirmSignUpRequest) *cip.ConfirmSignUpInput {
	return &cip.ConfirmSignUpInput{
		ClientId:           aws.String(r.ClientId),
		SecretHash:         optional(r.SecretHash),
		Username:           aws.String(r.Username),
		ConfirmationCode:   aws.String(r.ConfirmationCode),
		ForceAliasCreation: r.ForceAliasCreation,
		ClientMetadata:     r.ClientMetadata,
	}
}

func confirmSignUpOutput(*cip.ConfirmSignUpOutput) ConfirmSignUpResponse {
	return ConfirmSignUpResponse{}
}

func resendConfirmationCodeInput(r *ResendConfirmationCodeRequest) *cip.ResendConfirmationCodeInput {
	return &cip.ResendConfirmationCodeInput{
		ClientId:       aws.String(r.ClientId),
		SecretHash:     optional(r.SecretHash),
		Username:       aws.String(r.Username),
		ClientMetadata: r.ClientMetadata,
	}
}

func resendConfirmationCodeOutput(o *cip.ResendConfirmationCodeOutput) ResendConfirmationCodeResponse {
	return ResendConfirmationCodeResponse{CodeDeliveryDetails: fromSDKDelivery(o.CodeDeliveryDetails)}
}

func initiateAuthInput(r *InitiateAuthRequest) *cip.InitiateAuthInput {
	return &cip.InitiateAuthInput{
		AuthFlow:       types.AuthFlowType(r.AuthFlow),
		ClientId:       aws.String(r.ClientId),
		AuthParameters: r.AuthParameters,
		ClientMetadata: r.ClientMetadata,
	}
}

func initiateAuthOutput(o *cip.InitiateAuthOutput) InitiateAuthResponse {
	resp := InitiateAuthResponse{
		ChallengeName:       string(o.ChallengeName),
		ChallengeParameters: o.ChallengeParameters,
		Session:             aws.ToString(o.Session),
	}
	if r := o.AuthenticationResult; r != nil {
		resp.AuthenticationResult = &AuthenticationResultType{
			AccessToken:  aws.ToString(r.AccessToken),
			ExpiresIn:    r.ExpiresIn,
			IdToken:      aws.ToString(r.IdToken),
			RefreshToken: aws.ToString(r.RefreshToken),
			TokenType:    aws.ToString(r.TokenType),
		}
	}
	return resp
}

func forgotPasswordInput(r *ForgotPasswordRequest) *cip.ForgotPasswordInput {
	return &cip.ForgotPasswordInput{
		ClientId:       aws.String(r.ClientId),
		SecretHash:     optional(r.SecretHash),
		Username:       aws.String(r.Username),
		ClientMetadata: r.ClientMetadata,
	}
}

func forgotPasswordOutput(o *cip.ForgotPasswordOutput) ForgotPasswordResponse {
	return ForgotPasswordResponse{CodeDeliveryDetails: fromSDKDelivery(o.CodeDeliveryDetails)}
}

func confirmForgotPasswordInput(r *ConfirmForgotPasswordRequest) *cip.ConfirmForgotPasswordInput {
	return &cip.ConfirmForgotPasswordInput{
		ClientId:         aws.String(r.ClientId),
		SecretHash:       optional(r.SecretHash),
		Username:         aws.String(r.Username),
		ConfirmationCode: aws.String(r.ConfirmationCode),
		Password:         aws.String(r.Password),
		ClientMetadata:   r.ClientMetadata,
	}
}

func confirmForgotPasswordOutput(*cip.ConfirmForgotPasswordOutput) ConfirmForgotPasswordResponse {
	return ConfirmForgotPasswordResponse{}
}

func changePasswordInput(r *ChangePasswordRequest) *cip.ChangePasswordInput {
	return &cip.ChangePasswordInput{
		AccessToken:      aws.String(r.AccessToken),
		PreviousPassword: aws.String(r.PreviousPassword),
		ProposedPassword: aws.String(r.ProposedPassword),
	}
}

func changePasswordOutput(*cip.ChangePasswordOutput) ChangePasswordResponse {
	return ChangePasswordResponse{}
}

func globalSignOutInput(r *GlobalSignOutRequest) *cip.GlobalSignOutInput {
	return &cip.GlobalSignOutInput{AccessToken: aws.String(r.AccessToken)}
}

func globalSignOutOutput(*cip.GlobalSignOutOutput) GlobalSignOutResponse {
	return GlobalSignOutResponse{}
}

func associateSoftwareTokenInput(r *AssociateSoftwareTokenRequest) *cip.AssociateSoftwareTokenInput {
	return &cip.AssociateSoftwareTokenInput{
		AccessToken: optional(r.AccessToken),
		Session:     optional(r.Session),
	}
}

func associateSoftwareTokenOutput(o *cip.AssociateSoftwareTokenOutput) AssociateSoftwareTokenResponse {
	return AssociateSoftwareTokenResponse{
		SecretCode: aws.ToString(o.SecretCode),
		Session:    aws.ToString(o.Session),
	}
}

func verifySoftwareTokenInput(r *VerifySoftwareTokenRequest) *cip.VerifySoftwareTokenInput {
	return &cip.VerifySoftwareTokenInput{
		AccessToken:        optional(r.AccessToken),
		Session:            optional(r.Session),
		UserCode:           aws.String(r.UserCode),
		FriendlyDeviceName: optional(r.FriendlyDeviceName),
	}
}

func verifySoftwareTokenOutput(o *cip.VerifySoftwareTokenOutput) VerifySoftwareTokenResponse {
	return VerifySoftwareTokenResponse{
		Status:  string(o.Status),
		Session: aws.ToString(o.Session),
	}
}

var _ Dispatcher = (*AWSClient)(nil)
