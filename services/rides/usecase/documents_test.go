package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/piresc/dispatch/internal/pkg/apperrors"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDocumentAction(t *testing.T) {
	const url = "https://files.example.com/licence.png"

	tests := []struct {
		name       string
		doc        models.Document
		action     models.DocumentAction
		artifact   string
		note       string
		wantStatus models.DocumentStatus
		wantErr    error
	}{
		{"upload from not uploaded", models.Document{Status: models.DocumentNotUploaded}, models.DocumentActionUpload, url, "", models.DocumentPendingVerification, nil},
		{"upload after missing", models.Document{Status: models.DocumentMissing}, models.DocumentActionUpload, url, "", models.DocumentPendingVerification, nil},
		{"upload without artifact", models.Document{Status: models.DocumentNotUploaded}, models.DocumentActionUpload, "", "", "", apperrors.ErrValidation},
		{"reupload after reject", models.Document{Status: models.DocumentRejected, ArtifactURL: "old"}, models.DocumentActionReupload, url, "", models.DocumentPendingVerification, nil},
		{"reupload of verified", models.Document{Status: models.DocumentVerified, ArtifactURL: url}, models.DocumentActionReupload, url, "", "", apperrors.ErrInvalidTransition},
		{"reupload while pending", models.Document{Status: models.DocumentPendingVerification, ArtifactURL: url}, models.DocumentActionReupload, url, "", "", apperrors.ErrInvalidTransition},
		{"verify pending", models.Document{Status: models.DocumentPendingVerification, ArtifactURL: url}, models.DocumentActionVerify, "", "", models.DocumentVerified, nil},
		{"verify without artifact", models.Document{Status: models.DocumentPendingVerification}, models.DocumentActionVerify, "", "", "", apperrors.ErrValidation},
		{"re-verify verified", models.Document{Status: models.DocumentVerified, ArtifactURL: url}, models.DocumentActionVerify, "", "", "", apperrors.ErrInvalidTransition},
		{"reject pending", models.Document{Status: models.DocumentPendingVerification, ArtifactURL: url}, models.DocumentActionReject, "", "blurry", models.DocumentRejected, nil},
		{"reject without artifact", models.Document{Status: models.DocumentPendingVerification}, models.DocumentActionReject, "", "", "", apperrors.ErrValidation},
		{"reject verified", models.Document{Status: models.DocumentVerified, ArtifactURL: url}, models.DocumentActionReject, "", "", "", apperrors.ErrInvalidTransition},
		{"mark missing", models.Document{Status: models.DocumentNotUploaded}, models.DocumentActionMarkMissing, "", "", models.DocumentMissing, nil},
		{"mark missing uploaded", models.Document{Status: models.DocumentPendingVerification, ArtifactURL: url}, models.DocumentActionMarkMissing, "", "", "", apperrors.ErrInvalidTransition},
		{"unknown action", models.Document{Status: models.DocumentNotUploaded}, "shred", "", "", "", apperrors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &RideUC{now: func() time.Time { return fixedNow }}

			doc, err := uc.ApplyDocumentAction(context.Background(), models.DocumentTransitionRequest{
				Document:    tt.doc,
				Action:      tt.action,
				ArtifactURL: tt.artifact,
				Note:        tt.note,
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, doc.Status)
			assert.Equal(t, fixedNow, doc.UpdatedAt)
		})
	}
}

func TestApplyDocumentAction_CarriesArtifactAndNote(t *testing.T) {
	uc := &RideUC{now: func() time.Time { return fixedNow }}

	uploaded, err := uc.ApplyDocumentAction(context.Background(), models.DocumentTransitionRequest{
		Document:    models.Document{Kind: "licence"},
		Action:      models.DocumentActionUpload,
		ArtifactURL: " https://files.example.com/a.png ",
	})
	require.NoError(t, err)
	assert.Equal(t, "licence", uploaded.Kind)
	assert.Equal(t, "https://files.example.com/a.png", uploaded.ArtifactURL)

	rejected, err := uc.ApplyDocumentAction(context.Background(), models.DocumentTransitionRequest{
		Document: *uploaded,
		Action:   models.DocumentActionReject,
		Note:     "expired",
	})
	require.NoError(t, err)
	assert.Equal(t, "expired", rejected.Note)
	assert.Equal(t, uploaded.ArtifactURL, rejected.ArtifactURL)

	reuploaded, err := uc.ApplyDocumentAction(context.Background(), models.DocumentTransitionRequest{
		Document:    *rejected,
		Action:      models.DocumentActionReupload,
		ArtifactURL: "https://files.example.com/b.png",
	})
	require.NoError(t, err)
	assert.Equal(t, models.DocumentPendingVerification, reuploaded.Status)
	assert.Empty(t, reuploaded.Note)
}
