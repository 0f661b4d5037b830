package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/piresc/dispatch/internal/pkg/apperrors"
	"github.com/piresc/dispatch/internal/pkg/models"
)

type documentRule struct {
	from []models.DocumentStatus
	to   models.DocumentStatus
	// requestArtifact requires the request to carry the new artifact,
	// storedArtifact requires the document to already hold one
	requestArtifact bool
	storedArtifact  bool
}

var documentRules = map[models.DocumentAction]documentRule{
	models.DocumentActionUpload: {
		from:            []models.DocumentStatus{models.DocumentNotUploaded, models.DocumentMissing},
		to:              models.DocumentPendingVerification,
		requestArtifact: true,
	},
	models.DocumentActionReupload: {
		from:            []models.DocumentStatus{models.DocumentRejected, models.DocumentNotUploaded},
		to:              models.DocumentPendingVerification,
		requestArtifact: true,
	},
	models.DocumentActionVerify: {
		from:           []models.DocumentStatus{models.DocumentPendingVerification, models.DocumentRejected},
		to:             models.DocumentVerified,
		storedArtifact: true,
	},
	models.DocumentActionReject: {
		from:           []models.DocumentStatus{models.DocumentPendingVerification},
		to:             models.DocumentRejected,
		storedArtifact: true,
	},
	models.DocumentActionMarkMissing: {
		from: []models.DocumentStatus{models.DocumentNotUploaded},
		to:   models.DocumentMissing,
	},
}

func (r documentRule) allows(status models.DocumentStatus) bool {
	for _, s := range r.from {
		if s == status {
			return true
		}
	}
	return false
}

// ApplyDocumentAction validates one step of the driver document review and returns the resulting document
func (uc *RideUC) ApplyDocumentAction(ctx context.Context, req models.DocumentTransitionRequest) (*models.Document, error) {
	rule, ok := documentRules[req.Action]
	if !ok {
		return nil, apperrors.Validation("unknown document action %q", req.Action)
	}
	doc := req.Document
	if doc.Status == "" {
		doc.Status = models.DocumentNotUploaded
	}
	if !rule.allows(doc.Status) {
		return nil, fmt.Errorf("cannot %s a %s document: %w", req.Action, doc.Status, apperrors.ErrInvalidTransition)
	}

	artifact := strings.TrimSpace(req.ArtifactURL)
	switch {
	case rule.requestArtifact && artifact == "":
		return nil, apperrors.Validation("%s requires an artifact", req.Action)
	case rule.storedArtifact && strings.TrimSpace(doc.ArtifactURL) == "":
		return nil, apperrors.Validation("%s requires an uploaded artifact", req.Action)
	}

	next := doc
	next.Status = rule.to
	next.UpdatedAt = uc.now()
	switch req.Action {
	case models.DocumentActionUpload, models.DocumentActionReupload:
		next.ArtifactURL = artifact
		next.Note = ""
	case models.DocumentActionReject:
		next.Note = strings.TrimSpace(req.Note)
	case models.DocumentActionVerify:
		next.Note = ""
	}
	return &next, nil
}
