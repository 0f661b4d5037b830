package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/dispatch/internal/pkg/apperrors"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/services/drivers/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAccountID(t *testing.T) {
	profile := &models.DriverProfile{ProfileID: "prof-1", AccountID: "acc-1"}

	tests := []struct {
		name      string
		ref       models.DriverRef
		mockSetup func(*mocks.MockDriverRepo)
		want      string
		wantErr   error
	}{
		{
			name: "account reference",
			ref:  models.AccountRef("acc-1"),
			mockSetup: func(r *mocks.MockDriverRepo) {
				r.EXPECT().GetByAccountID(gomock.Any(), "acc-1").Return(profile, nil)
			},
			want: "acc-1",
		},
		{
			name: "profile reference",
			ref:  models.ProfileRef("prof-1"),
			mockSetup: func(r *mocks.MockDriverRepo) {
				r.EXPECT().GetByProfileID(gomock.Any(), "prof-1").Return(profile, nil)
			},
			want: "acc-1",
		},
		{
			name: "profile id passed as account does not fall back",
			ref:  models.AccountRef("prof-1"),
			mockSetup: func(r *mocks.MockDriverRepo) {
				r.EXPECT().GetByAccountID(gomock.Any(), "prof-1").Return(nil, apperrors.NotFound("driver", "prof-1"))
				r.EXPECT().GetByProfileID(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: apperrors.ErrUnknownDriver,
		},
		{
			name:      "empty id",
			ref:       models.ProfileRef(""),
			mockSetup: func(*mocks.MockDriverRepo) {},
			wantErr:   apperrors.ErrValidation,
		},
		{
			name:      "unknown kind",
			ref:       models.DriverRef{Kind: "email", ID: "x"},
			mockSetup: func(*mocks.MockDriverRepo) {},
			wantErr:   apperrors.ErrValidation,
		},
		{
			name: "storage failure",
			ref:  models.AccountRef("acc-1"),
			mockSetup: func(r *mocks.MockDriverRepo) {
				r.EXPECT().GetByAccountID(gomock.Any(), "acc-1").Return(nil, assert.AnError)
			},
			wantErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockDriverRepo(ctrl)
			tt.mockSetup(repo)

			got, err := NewDriverUC(repo).ResolveAccountID(context.Background(), tt.ref)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProfiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDriverRepo(ctrl)
	repo.EXPECT().ListByAccountIDs(gomock.Any(), []string{"acc-1", "acc-2"}).Return([]*models.DriverProfile{
		{ProfileID: "prof-1", AccountID: "acc-1", Online: true},
	}, nil)

	got, err := NewDriverUC(repo).Profiles(context.Background(), []string{"acc-1", "acc-2"})
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.True(t, got["acc-1"].Online)
	assert.Nil(t, got["acc-2"])
}

func TestEligibleDrivers(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDriverRepo(ctrl)
	repo.EXPECT().ListEligible(gomock.Any()).Return(nil, assert.AnError)

	_, err := NewDriverUC(repo).EligibleDrivers(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
