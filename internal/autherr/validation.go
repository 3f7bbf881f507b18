package autherr

// ValidationCode names an input check that failed before any network call.
type ValidationCode string

const (
	EmptySignUpUsername                       ValidationCode = "EmptySignUpUsername"
	EmptySignUpPassword                       ValidationCode = "EmptySignUpPassword"
	EmptyConfirmSignUpUsername                ValidationCode = "EmptyConfirmSignUpUsername"
	EmptyConfirmSignUpCode                    ValidationCode = "EmptyConfirmSignUpCode"
	EmptySignInUsername                       ValidationCode = "EmptySignInUsername"
	EmptySignInPassword                       ValidationCode = "EmptySignInPassword"
	EmptyRefreshToken                         ValidationCode = "EmptyRefreshToken"
	EmptyResetPasswordUsername                ValidationCode = "EmptyResetPasswordUsername"
	EmptyConfirmResetPasswordUsername         ValidationCode = "EmptyConfirmResetPasswordUsername"
	EmptyConfirmResetPasswordNewPassword      ValidationCode = "EmptyConfirmResetPasswordNewPassword"
	EmptyConfirmResetPasswordConfirmationCode ValidationCode = "EmptyConfirmResetPasswordConfirmationCode"
	EmptyUpdatePassword                       ValidationCode = "EmptyUpdatePassword"
	EmptyVerifyTOTPSetupCode                  ValidationCode = "EmptyVerifyTOTPSetupCode"
	UserUnAuthenticated                       ValidationCode = "UserUnAuthenticatedException"
)

var validationMessages = map[ValidationCode]string{
	EmptySignUpUsername:                       "Username cannot be empty",
	EmptySignUpPassword:                       "Password cannot be empty",
	EmptyConfirmSignUpUsername:                "Username cannot be empty",
	EmptyConfirmSignUpCode:                    "code cannot be empty",
	EmptySignInUsername:                       "username is required to signIn",
	EmptySignInPassword:                       "password is required to signIn",
	EmptyRefreshToken:                         "refresh token is required to refresh tokens",
	EmptyResetPasswordUsername:                "username is required to reset password",
	EmptyConfirmResetPasswordUsername:         "username is required to confirmResetPassword",
	EmptyConfirmResetPasswordNewPassword:      "newPassword is required to confirmResetPassword",
	EmptyConfirmResetPasswordConfirmationCode: "confirmationCode is required to confirmResetPassword",
	EmptyUpdatePassword:                       "oldPassword and newPassword are required to changePassword",
	EmptyVerifyTOTPSetupCode:                  "code is required to verifyTotpSetup",
	UserUnAuthenticated:                       "User needs to be authenticated to call this API.",
}

// Message returns the human-readable description of the code.
func (c ValidationCode) Message() string {
	if msg, ok := validationMessages[c]; ok {
		return msg
	}
	return string(c)
}

// IsValid reports whether c belongs to the validation taxonomy.
func (c ValidationCode) IsValid() bool {
	_, ok := validationMessages[c]
	return ok
}

// NewValidation builds the error for a failed input check.
func NewValidation(code ValidationCode) *AuthError {
	return &AuthError{
		Name:    string(code),
		Message: code.Message(),
		Kind:    KindValidation,
	}
}

// Require returns the validation error for code when ok is false.
func Require(ok bool, code ValidationCode) error {
	if ok {
		return nil
	}
	return NewValidation(code)
}
