package cognito

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// ComputeSecretHash calculates the SECRET_HASH the user pool expects from an
// app client that has a client secret.
// Formula: Base64(HMAC_SHA256(clientSecret, username + clientID))
func ComputeSecretHash(username, clientID, clientSecret string) string {
	mac := hmac.New(sha256.New, []byte(clientSecret))
	mac.Write([]byte(username + clientID))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// SecretHash returns the hash for username, or "" when the app client is public.
// An empty result leaves the SecretHash field out of the request body.
func SecretHash(username, clientID, clientSecret string) string {
	if clientSecret == "" {
		return ""
	}
	return ComputeSecretHash(username, clientID, clientSecret)
}
