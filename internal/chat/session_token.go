package chat

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionSigner mints signed session identifiers so a session id handed to
// a client can be recognized as one we issued. Existing session ids from
// callers are accepted as-is; signing only covers newly minted ids.
type SessionSigner struct {
	secret []byte
}

// NewSessionSigner creates a signer. An empty secret disables signing and
// falls back to random hex identifiers.
func NewSessionSigner(secret string) *SessionSigner {
	if secret == "" {
		return &SessionSigner{}
	}
	return &SessionSigner{secret: []byte(secret)}
}

// Mint returns a fresh session identifier.
func (s *SessionSigner) Mint() string {
	if len(s.secret) == 0 {
		return randomSessionID()
	}

	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": uuid.NewString(),
		"iat": now.Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return randomSessionID()
	}
	return signed
}

// Issued reports whether sessionID is a token this signer minted.
func (s *SessionSigner) Issued(sessionID string) bool {
	if len(s.secret) == 0 {
		return false
	}
	token, err := jwt.Parse(sessionID, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	return err == nil && token.Valid
}

// randomSessionID creates a random session identifier.
func randomSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return uuid.New().String()
	}
	return hex.EncodeToString(b)
}
