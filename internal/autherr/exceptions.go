package autherr

// Exception names published by the user pool service.
const (
	AliasExistsException                     = "AliasExistsException"
	CodeDeliveryFailureException             = "CodeDeliveryFailureException"
	CodeMismatchException                    = "CodeMismatchException"
	ConcurrentModificationException          = "ConcurrentModificationException"
	EnableSoftwareTokenMFAException          = "EnableSoftwareTokenMFAException"
	ExpiredCodeException                     = "ExpiredCodeException"
	ForbiddenException                       = "ForbiddenException"
	InternalErrorException                   = "InternalErrorException"
	InvalidEmailRoleAccessPolicyException    = "InvalidEmailRoleAccessPolicyException"
	InvalidLambdaResponseException           = "InvalidLambdaResponseException"
	InvalidParameterException                = "InvalidParameterException"
	InvalidPasswordException                 = "InvalidPasswordException"
	InvalidSmsRoleAccessPolicyException      = "InvalidSmsRoleAccessPolicyException"
	InvalidSmsRoleTrustRelationshipException = "InvalidSmsRoleTrustRelationshipException"
	InvalidUserPoolConfigurationException    = "InvalidUserPoolConfigurationException"
	LimitExceededException                   = "LimitExceededException"
	NotAuthorizedException                   = "NotAuthorizedException"
	PasswordResetRequiredException           = "PasswordResetRequiredException"
	ResourceNotFoundException                = "ResourceNotFoundException"
	SoftwareTokenMFANotFoundException        = "SoftwareTokenMFANotFoundException"
	TooManyFailedAttemptsException           = "TooManyFailedAttemptsException"
	TooManyRequestsException                 = "TooManyRequestsException"
	UnexpectedLambdaException                = "UnexpectedLambdaException"
	UserLambdaValidationException            = "UserLambdaValidationException"
	UserNotConfirmedException                = "UserNotConfirmedException"
	UserNotFoundException                    = "UserNotFoundException"
	UsernameExistsException                  = "UsernameExistsException"
)

// ExceptionSet is the closed list of exception names one operation can return.
type ExceptionSet struct {
	names map[string]struct{}
}

// NewExceptionSet builds a set from the given names.
func NewExceptionSet(names ...string) ExceptionSet {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return ExceptionSet{names: m}
}

// Has reports whether name is declared by the operation.
func (s ExceptionSet) Has(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Len returns the number of declared exceptions.
func (s ExceptionSet) Len() int { return len(s.names) }

var (
	SignUpExceptions = NewExceptionSet(
		CodeDeliveryFailureException,
		InternalErrorException,
		InvalidEmailRoleAccessPolicyException,
		InvalidLambdaResponseException,
		InvalidParameterException,
		InvalidPasswordException,
		InvalidSmsRoleAccessPolicyException,
		InvalidSmsRoleTrustRelationshipException,
		NotAuthorizedException,
		ResourceNotFoundException,
		TooManyRequestsException,
		UnexpectedLambdaException,
		UserLambdaValidationException,
		UsernameExistsException,
	)

	ConfirmSignUpExceptions = NewExceptionSet(
		AliasExistsException,
		CodeMismatchException,
		ExpiredCodeException,
		ForbiddenException,
		InternalErrorException,
		InvalidLambdaResponseException,
		InvalidParameterException,
		LimitExceededException,
		NotAuthorizedException,
		ResourceNotFoundException,
		TooManyFailedAttemptsException,
		TooManyRequestsException,
		UnexpectedLambdaException,
		UserLambdaValidationException,
		UserNotFoundException,
	)

	ResendConfirmationExceptions = NewExceptionSet(
		CodeDeliveryFailureException,
		ForbiddenException,
		InternalErrorException,
		InvalidEmailRoleAccessPolicyException,
		InvalidLambdaResponseException,
		InvalidParameterException,
		InvalidSmsRoleAccessPolicyException,
		InvalidSmsRoleTrustRelationshipException,
		LimitExceededException,
		NotAuthorizedException,
		ResourceNotFoundException,
		TooManyRequestsException,
		UnexpectedLambdaException,
		UserLambdaValidationException,
		UserNotFoundException,
	)

	InitiateAuthExceptions = NewExceptionSet(
		ForbiddenException,
		InternalErrorException,
		InvalidLambdaResponseException,
		InvalidParameterException,
		InvalidSmsRoleAccessPolicyException,
		InvalidSmsRoleTrustRelationshipException,
		InvalidUserPoolConfigurationException,
		NotAuthorizedException,
		PasswordResetRequiredException,
		ResourceNotFoundException,
		TooManyRequestsException,
		UnexpectedLambdaException,
		UserLambdaValidationException,
		UserNotConfirmedException,
		UserNotFoundException,
	)

	ForgotPasswordExceptions = NewExceptionSet(
		CodeDeliveryFailureException,
		ForbiddenException,
		InternalErrorException,
		InvalidEmailRoleAccessPolicyException,
		InvalidLambdaResponseException,
		InvalidParameterException,
		InvalidSmsRoleAccessPolicyException,
		InvalidSmsRoleTrustRelationshipException,
		LimitExceededException,
		NotAuthorizedException,
		ResourceNotFoundException,
		TooManyRequestsException,
		UnexpectedLambdaException,
		UserLambdaValidationException,
		UserNotFoundException,
	)

	ConfirmForgotPasswordExceptions = NewExceptionSet(
		CodeMismatchException,
		ExpiredCodeException,
		ForbiddenException,
		InternalErrorException,
		InvalidLambdaResponseException,
		InvalidParameterException,
		InvalidPasswordException,
		LimitExceededException,
		NotAuthorizedException,
		ResourceNotFoundException,
		TooManyFailedAttemptsException,
		TooManyRequestsException,
		UnexpectedLambdaException,
		UserLambdaValidationException,
		UserNotConfirmedException,
		UserNotFoundException,
	)

	ChangePasswordExceptions = NewExceptionSet(
		ForbiddenException,
		InternalErrorException,
		InvalidParameterException,
		InvalidPasswordException,
		LimitExceededException,
		NotAuthorizedException,
		PasswordResetRequiredException,
		ResourceNotFoundException,
		TooManyRequestsException,
		UserNotConfirmedException,
		UserNotFoundException,
	)

	GlobalSignOutExceptions = NewExceptionSet(
		ForbiddenException,
		InternalErrorException,
		NotAuthorizedException,
		PasswordResetRequiredException,
		ResourceNotFoundException,
		TooManyRequestsException,
		UserNotConfirmedException,
	)

	AssociateSoftwareTokenExceptions = NewExceptionSet(
		ConcurrentModificationException,
		ForbiddenException,
		InternalErrorException,
		InvalidParameterException,
		NotAuthorizedException,
		ResourceNotFoundException,
		SoftwareTokenMFANotFoundException,
	)

	VerifySoftwareTokenExceptions = NewExceptionSet(
		CodeMismatchException,
		EnableSoftwareTokenMFAException,
		ForbiddenException,
		InternalErrorException,
		InvalidParameterException,
		InvalidUserPoolConfigurationException,
		NotAuthorizedException,
		PasswordResetRequiredException,
		ResourceNotFoundException,
		SoftwareTokenMFANotFoundException,
		TooManyRequestsException,
		UserNotConfirmedException,
		UserNotFoundException,
	)
)
