package model

import "time"

// User is the local mirror of a user pool account, keyed by the pool's sub.
type User struct {
	ID           string    `json:"id"`
	CognitoSub   string    `json:"cognito_sub"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	SignInCount  int64     `json:"sign_in_count"`
	LastSignInAt time.Time `json:"last_sign_in_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
