package autherr

// Classify turns whatever an operation caught into the *AuthError returned to the
// caller.
//
// An UNKNOWN *AuthError is terminal and comes back unchanged. A recognized service
// error whose name is declared in known keeps that name and the provider message;
// if it is already an *AuthError it is returned as-is. Everything else becomes
// UNKNOWN with Underlying set to caught.
func Classify(caught any, known ExceptionSet) *AuthError {
	if err, ok := caught.(error); ok {
		if authErr, ok := As(err); ok && authErr.Name == Unknown {
			return authErr
		}
	}

	se, ok := AsServiceError(caught)
	if !ok || !known.Has(se.Name) {
		return NewUnknown(caught)
	}

	if err, ok := caught.(error); ok {
		if authErr, ok := As(err); ok && authErr.Name == se.Name {
			return authErr
		}
	}
	return NewService(se.Name, se.Message, caught)
}
