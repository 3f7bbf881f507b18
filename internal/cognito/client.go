package cognito

import "context"

const serviceName = "AWSCognitoIdentityProviderService"

// Operation names a user pool API action.
type Operation string

const (
	OpSignUp                 Operation = "SignUp"
	OpConfirmSignUp          Operation = "ConfirmSignUp"
	OpResendConfirmationCode Operation = "ResendConfirmationCode"
	OpInitiateAuth           Operation = "InitiateAuth"
	OpForgotPassword         Operation = "ForgotPassword"
	OpConfirmForgotPassword  Operation = "ConfirmForgotPassword"
	OpChangePassword         Operation = "ChangePassword"
	OpGlobalSignOut          Operation = "GlobalSignOut"
	OpAssociateSoftwareToken Operation = "AssociateSoftwareToken"
	OpVerifySoftwareToken    Operation = "VerifySoftwareToken"
)

// Target returns the X-Amz-Target header value for the operation.
func (o Operation) Target() string {
	return serviceName + "." + string(o)
}

// Dispatcher sends one operation request to the user pool.
//
// input is one of the *...Request types in this package and output the matching
// *...Response. On failure Send returns an *autherr.AuthError: a service-shaped
// failure keeps its exception name, anything else is UNKNOWN with the caught value
// attached. Send makes exactly one attempt.
type Dispatcher interface {
	Send(ctx context.Context, op Operation, input, output any) error
}
