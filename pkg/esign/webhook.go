package esign

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// sigPrefix is the scheme tag the provider prepends to the hex digest in its
// signature header.
const sigPrefix = "sha256="

// SignPayload mints the signature header for a webhook body. Tests and local
// provider fakes use it to produce headers VerifySignature accepts.
func SignPayload(secret string, body []byte) string {
	return sigPrefix + hex.EncodeToString(digest(secret, body))
}

// VerifySignature checks a webhook body against its signature header. The
// scheme tag is optional and matched case-insensitively; comparison is
// constant-time. An empty secret or header never verifies.
func VerifySignature(secret string, body []byte, header string) bool {
	if secret == "" {
		return false
	}

	claim := strings.TrimSpace(header)
	if len(claim) >= len(sigPrefix) && strings.EqualFold(claim[:len(sigPrefix)], sigPrefix) {
		claim = claim[len(sigPrefix):]
	}
	if claim == "" {
		return false
	}

	sum, err := hex.DecodeString(claim)
	if err != nil {
		return false
	}
	return hmac.Equal(sum, digest(secret, body))
}

func digest(secret string, body []byte) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return mac.Sum(nil)
}
