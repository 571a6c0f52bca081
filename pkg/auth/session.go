package auth

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"expirywatch/pkg/utils"
)

// Session holds the bearer token for the signed-in user. Sign-in itself
// happens with the hosted auth provider outside this program; the token
// reaches us through the token file, the environment, or -login.
type Session struct {
	token  string
	claims jwt.MapClaims
}

// Load builds a session from the EXPIRYWATCH_TOKEN environment variable
// or, failing that, the token file. An empty session (no token) is not
// an error; the gate decides what to do with it.
func Load(tokenFile string) (*Session, error) {
	if token := strings.TrimSpace(os.Getenv("EXPIRYWATCH_TOKEN")); token != "" {
		return newSession(token), nil
	}

	data, err := os.ReadFile(tokenFile)
	if err != nil {
		if os.IsNotExist(err) {
			return &Session{}, nil
		}
		return nil, err
	}
	return newSession(strings.TrimSpace(string(data))), nil
}

// Save writes the token to the token file and returns the session for it.
func Save(tokenFile, token string) (*Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("empty token")
	}

	dir := filepath.Dir(tokenFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(tokenFile, []byte(token+"\n"), 0600); err != nil {
		return nil, err
	}
	return newSession(token), nil
}

func newSession(token string) *Session {
	s := &Session{token: token}

	// The token is issued and verified by the external provider; here we
	// only read the claims to learn who the user is and when the token
	// lapses. Signature verification is the API server's job.
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		utils.Log("Token does not parse as a JWT: %v", err)
		return s
	}
	if claims, ok := parsed.Claims.(jwt.MapClaims); ok {
		s.claims = claims
	}
	return s
}

// AccessToken returns the raw bearer token, empty when signed out.
func (s *Session) AccessToken() string {
	return s.token
}

// UserID returns the subject claim, or empty when unknown.
func (s *Session) UserID() string {
	if s.claims == nil {
		return ""
	}
	sub, _ := s.claims["sub"].(string)
	return sub
}

// Authenticated reports whether a usable token is present: non-empty and,
// when it carries an expiry claim, not yet lapsed.
func (s *Session) Authenticated() bool {
	if s.token == "" {
		return false
	}
	if s.claims != nil {
		if exp, err := s.claims.GetExpirationTime(); err == nil && exp != nil {
			if exp.Before(time.Now()) {
				utils.Log("Token expired at %s", exp.Format(time.RFC3339))
				return false
			}
		}
	}
	return true
}
