package profile

// ValidationError reports a rejected registration or update field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// AuthError reports a failed sign-in or a revoked session.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// NotFoundError reports a missing profile.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return "profile not found: " + e.ID
}
