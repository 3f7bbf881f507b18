package service

import (
	"net/url"

	"github.com/pquerna/otp"
)

// TOTPSetupDetails carries the shared secret for a new authenticator app.
type TOTPSetupDetails struct {
	SharedSecret string `json:"shared_secret"`
	Username     string `json:"-"`
}

// GetSetupURI returns the otpauth URI authenticator apps read from a QR code:
// otpauth://totp/<appName>:<accountName>?secret=<secret>&issuer=<appName>.
// accountName defaults to the username the setup was started for.
func (d TOTPSetupDetails) GetSetupURI(appName, accountName string) *url.URL {
	if accountName == "" {
		accountName = d.Username
	}
	q := url.Values{}
	q.Set("secret", d.SharedSecret)
	q.Set("issuer", appName)
	return &url.URL{
		Scheme:   "otpauth",
		Host:     "totp",
		Path:     "/" + appName + ":" + accountName,
		RawQuery: q.Encode(),
	}
}

// Key parses the setup URI into an otp.Key, e.g. to render a QR code image.
func (d TOTPSetupDetails) Key(appName, accountName string) (*otp.Key, error) {
	return otp.NewKeyFromURL(d.GetSetupURI(appName, accountName).String())
}
