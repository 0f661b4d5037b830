package models

import "time"

// DocumentStatus is the review state of a driver verification document
type DocumentStatus string

const (
	DocumentNotUploaded         DocumentStatus = "not_uploaded"
	DocumentPendingVerification DocumentStatus = "pending_verification"
	DocumentVerified            DocumentStatus = "verified"
	DocumentRejected            DocumentStatus = "rejected"
	DocumentMissing             DocumentStatus = "missing"
)

// DocumentAction is a named transition of the document workflow
type DocumentAction string

const (
	DocumentActionUpload      DocumentAction = "upload"
	DocumentActionReupload    DocumentAction = "reupload"
	DocumentActionVerify      DocumentAction = "verify"
	DocumentActionReject      DocumentAction = "reject"
	DocumentActionMarkMissing DocumentAction = "mark_missing"
)

// Document is one verification artifact slot of a driver
type Document struct {
	Kind        string         `json:"kind"`
	Status      DocumentStatus `json:"status"`
	ArtifactURL string         `json:"artifactUrl,omitempty"`
	Note        string         `json:"note,omitempty"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// DocumentTransitionRequest carries the current document and the action to apply
type DocumentTransitionRequest struct {
	Document    Document       `json:"document"`
	Action      DocumentAction `json:"action"`
	ArtifactURL string         `json:"artifactUrl,omitempty"`
	Note        string         `json:"note,omitempty"`
}
