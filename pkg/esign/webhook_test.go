package esign_test

import (
	"strings"
	"testing"

	"github.com/chordsign/contractgen/pkg/esign"
)

func TestSignAndVerify(t *testing.T) {
	secret := "webhook-secret"
	body := []byte(`{"event":"request.signed","requestId":"r1"}`)

	header := esign.SignPayload(secret, body)
	if !strings.HasPrefix(header, "sha256=") {
		t.Fatalf("expected sha256= prefix, got %q", header)
	}
	if !esign.VerifySignature(secret, body, header) {
		t.Fatal("expected signature to verify")
	}
}

func TestVerifyRejectsTampering(t *testing.T) {
	secret := "webhook-secret"
	body := []byte(`{"event":"request.signed","requestId":"r1"}`)
	header := esign.SignPayload(secret, body)

	tampered := []byte(`{"event":"request.signed","requestId":"r2"}`)
	if esign.VerifySignature(secret, tampered, header) {
		t.Fatal("expected tampered body to fail verification")
	}
	if esign.VerifySignature("other-secret", body, header) {
		t.Fatal("expected wrong secret to fail verification")
	}
}

func TestVerifyHeaderForms(t *testing.T) {
	secret := "webhook-secret"
	body := []byte("payload")
	header := esign.SignPayload(secret, body)

	bare := strings.TrimPrefix(header, "sha256=")
	if !esign.VerifySignature(secret, body, bare) {
		t.Fatal("expected bare hex signature to verify")
	}
	if !esign.VerifySignature(secret, body, "  "+header+"  ") {
		t.Fatal("expected surrounding whitespace to be tolerated")
	}
	if !esign.VerifySignature(secret, body, "SHA256="+bare) {
		t.Fatal("expected case-insensitive prefix")
	}
}

func TestVerifyRejectsDegenerateInputs(t *testing.T) {
	body := []byte("payload")
	header := esign.SignPayload("secret", body)

	if esign.VerifySignature("", body, header) {
		t.Fatal("expected empty secret to never verify")
	}
	if esign.VerifySignature("secret", body, "") {
		t.Fatal("expected empty header to never verify")
	}
	if esign.VerifySignature("secret", body, "sha256=not-hex") {
		t.Fatal("expected malformed hex to fail")
	}
}
