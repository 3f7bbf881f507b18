package cognito

// Request and response bodies of the user pool JSON API. Field names follow the
// provider's PascalCase convention; optional fields are omitted when empty.

type AttributeType struct {
	Name  string `json:"Name"`
	Value string `json:"Value"`
}

type CodeDeliveryDetailsType struct {
	AttributeName  string `json:"AttributeName,omitempty"`
	DeliveryMedium string `json:"DeliveryMedium,omitempty"`
	Destination    string `json:"Destination,omitempty"`
}

type AuthenticationResultType struct {
	AccessToken  string `json:"AccessToken,omitempty"`
	ExpiresIn    int32  `json:"ExpiresIn,omitempty"`
	IdToken      string `json:"IdToken,omitempty"`
	RefreshToken string `json:"RefreshToken,omitempty"`
	TokenType    string `json:"TokenType,omitempty"`
}

type SignUpRequest struct {
	ClientId       string            `json:"ClientId"`
	SecretHash     string            `json:"SecretHash,omitempty"`
	Username       string            `json:"Username"`
	Password       string            `json:"Password"`
	UserAttributes []AttributeType   `json:"UserAttributes,omitempty"`
	ValidationData []AttributeType   `json:"ValidationData,omitempty"`
	ClientMetadata map[string]string `json:"ClientMetadata,omitempty"`
}

type SignUpResponse struct {
	UserConfirmed       bool                     `json:"UserConfirmed"`
	UserSub             string                   `json:"UserSub"`
	CodeDeliveryDetails *CodeDeliveryDetailsType `json:"CodeDeliveryDetails,omitempty"`
	Session             string                   `json:"Session,omitempty"`
}

type ConfirmSignUpRequest struct {
	ClientId           string            `json:"ClientId"`
	SecretHash         string            `json:"SecretHash,omitempty"`
	Username           string            `json:"Username"`
	ConfirmationCode   string            `json:"ConfirmationCode"`
	ForceAliasCreation bool              `json:"ForceAliasCreation,omitempty"`
	ClientMetadata     map[string]string `json:"ClientMetadata,omitempty"`
}

type ConfirmSignUpResponse struct {
	Session string `json:"Session,omitempty"`
}

type ResendConfirmationCodeRequest struct {
	ClientId       string            `json:"ClientId"`
	SecretHash     string            `json:"SecretHash,omitempty"`
	Username       string            `json:"Username"`
	ClientMetadata map[string]string `json:"ClientMetadata,omitempty"`
}

type ResendConfirmationCodeResponse struct {
	CodeDeliveryDetails *CodeDeliveryDetailsType `json:"CodeDeliveryDetails,omitempty"`
}

type InitiateAuthRequest struct {
	AuthFlow       string            `json:"AuthFlow"`
	ClientId       string            `json:"ClientId"`
	AuthParameters map[string]string `json:"AuthParameters,omitempty"`
	ClientMetadata map[string]string `json:"ClientMetadata,omitempty"`
}

type InitiateAuthResponse struct {
	AuthenticationResult *AuthenticationResultType `json:"AuthenticationResult,omitempty"`
	ChallengeName        string                    `json:"ChallengeName,omitempty"`
	ChallengeParameters  map[string]string         `json:"ChallengeParameters,omitempty"`
	Session              string                    `json:"Session,omitempty"`
}

type ForgotPasswordRequest struct {
	ClientId       string            `json:"ClientId"`
	SecretHash     string            `json:"SecretHash,omitempty"`
	Username       string            `json:"Username"`
	ClientMetadata map[string]string `json:"ClientMetadata,omitempty"`
}

type ForgotPasswordResponse struct {
	CodeDeliveryDetails *CodeDeliveryDetailsType `json:"CodeDeliveryDetails,omitempty"`
}

type ConfirmForgotPasswordRequest struct {
	ClientId         string            `json:"ClientId"`
	SecretHash       string            `json:"SecretHash,omitempty"`
	Username         string            `json:"Username"`
	ConfirmationCode string            `json:"ConfirmationCode"`
	Password         string            `json:"Password"`
	ClientMetadata   map[string]string `json:"ClientMetadata,omitempty"`
}

type ConfirmForgotPasswordResponse struct{}

type ChangePasswordRequest struct {
	AccessToken      string `json:"AccessToken"`
	PreviousPassword string `json:"PreviousPassword"`
	ProposedPassword string `json:"ProposedPassword"`
}

type ChangePasswordResponse struct{}

type GlobalSignOutRequest struct {
	AccessToken string `json:"AccessToken"`
}

type GlobalSignOutResponse struct{}

type AssociateSoftwareTokenRequest struct {
	AccessToken string `json:"AccessToken,omitempty"`
	Session     string `json:"Session,omitempty"`
}

type AssociateSoftwareTokenResponse struct {
	SecretCode string `json:"SecretCode"`
	Session    string `json:"Session,omitempty"`
}

type VerifySoftwareTokenRequest struct {
	AccessToken        string `json:"AccessToken,omitempty"`
	Session            string `json:"Session,omitempty"`
	UserCode           string `json:"UserCode"`
	FriendlyDeviceName string `json:"FriendlyDeviceName,omitempty"`
}

type VerifySoftwareTokenResponse struct {
	Status  string `json:"Status,omitempty"`
	Session string `json:"Session,omitempty"`
}

// Auth flows and parameter keys used with InitiateAuth.
const (
	AuthFlowUserPassword = "USER_PASSWORD_AUTH"
	AuthFlowRefreshToken = "REFRESH_TOKEN_AUTH"

	AuthParamUsername     = "USERNAME"
	AuthParamPassword     = "PASSWORD"
	AuthParamRefreshToken = "REFRESH_TOKEN"
	AuthParamSecretHash   = "SECRET_HASH"
)
