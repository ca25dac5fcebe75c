package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Session cookie format: "email|expiresUnix|hex(HMAC-SHA256(secret, email|expiresUnix))".
// The raw-email cookie of earlier designs trusted the value as-is; signing
// binds the identity to the server secret.

// SignSession produces a signed session cookie value for email, valid until
// expiresAt.
func SignSession(secret, email string, expiresAt time.Time) string {
	payload := fmt.Sprintf("%s|%d", email, expiresAt.Unix())
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return payload + "|" + hex.EncodeToString(mac.Sum(nil))
}

// VerifySession validates a session cookie value and returns the email it
// asserts. ok is false on bad format, bad signature or expiry in the past.
func VerifySession(secret, value string) (string, bool) {
	parts := strings.Split(value, "|")
	if len(parts) != 3 {
		return "", false
	}
	email, expiresStr, sigHex := parts[0], parts[1], parts[2]

	expires, err := strconv.ParseInt(expiresStr, 10, 64)
	if err != nil || time.Now().Unix() > expires {
		return "", false
	}

	expectedSig, err := hex.DecodeString(sigHex)
	if err != nil {
		return "", false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(email + "|" + expiresStr))
	if !hmac.Equal(expectedSig, mac.Sum(nil)) {
		return "", false
	}

	return email, email != ""
}
