package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignPayload computes the GitHub webhook signature for a raw request body:
// "sha256=" followed by the hex HMAC-SHA256 digest keyed with the shared
// secret.
func SignPayload(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks the X-Hub-Signature-256 header value against the
// raw body. The comparison is constant-time.
func VerifySignature(secret, body []byte, signature string) bool {
	expected := SignPayload(secret, body)
	return hmac.Equal([]byte(expected), []byte(signature))
}
