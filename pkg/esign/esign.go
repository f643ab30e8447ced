// Package esign declares the e-signature collaborator the application layer
// calls with a finished PDF. The provider itself is external; this package
// only fixes the operations the rest of the system depends on, plus the
// HMAC helpers needed to authenticate the provider's status webhooks.
package esign

import (
	"context"
	"time"
)

// Status is the lifecycle state of one signing request.
type Status string

const (
	StatusPending   Status = "pending"
	StatusViewed    Status = "viewed"
	StatusSigned    Status = "signed"
	StatusDeclined  Status = "declined"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

// Signer identifies one party asked to sign a document.
type Signer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// SigningRequest is the provider's handle for one signer on one document,
// including the URL the signer completes the signature at.
type SigningRequest struct {
	ID         string    `json:"id"`
	DocumentID string    `json:"documentId"`
	Signer     Signer    `json:"signer"`
	SigningURL string    `json:"signingUrl"`
	Status     Status    `json:"status"`
	ExpiresAt  time.Time `json:"expiresAt,omitempty"`
}

// Provider is the remote e-signature service.
type Provider interface {
	// UploadDocument stores a finished PDF with the provider and returns the
	// provider's document id.
	UploadDocument(ctx context.Context, name string, pdf []byte) (string, error)
	// CreateSigningRequests opens one signing request per signer and returns
	// them with their per-signatory signing URLs.
	CreateSigningRequests(ctx context.Context, documentID string, signers []Signer) ([]SigningRequest, error)
	// RequestStatus fetches the current state of a signing request.
	RequestStatus(ctx context.Context, requestID string) (Status, error)
	// CancelRequest cancels a pending signing request.
	CancelRequest(ctx context.Context, requestID string) error
	// DownloadSigned fetches the fully executed PDF for a document.
	DownloadSigned(ctx context.Context, documentID string) ([]byte, error)
}
