package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"auth-facade/app/domain"
	"auth-facade/app/utils/logger"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a test profile repository with mocked database
func createTestProfileRepository(t *testing.T) (*ProfileRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	repo := NewProfileRepository(mockDB, testLogger).(*ProfileRepository)

	return repo, mockDB
}

func TestProfileRepository_Upsert(t *testing.T) {
	imageRef := "https://cdn.example.com/profiles/ada.png"
	now := time.Now()

	tests := []struct {
		name     string
		profile  *domain.Profile
		setupDB  func(pgxmock.PgxPoolIface, *domain.Profile)
		wantErr  bool
		errorMsg string
	}{
		{
			name: "successful first write",
			profile: &domain.Profile{
				UserID:       "identity-123",
				Name:         "Ada",
				Email:        "ada@example.com",
				ProfileImage: &imageRef,
			},
			setupDB: func(mockDB pgxmock.PgxPoolIface, profile *domain.Profile) {
				mockDB.ExpectQuery("INSERT INTO profiles").
					WithArgs(profile.UserID, profile.Name, profile.Email, profile.ProfileImage).
					WillReturnRows(pgxmock.NewRows([]string{
						"user_id", "name", "email", "profile_image", "created_at", "updated_at",
					}).AddRow(profile.UserID, profile.Name, profile.Email, profile.ProfileImage, now, now))
			},
			wantErr: false,
		},
		{
			name: "successful write without image",
			profile: &domain.Profile{
				UserID: "identity-456",
				Name:   "Grace",
				Email:  "grace@example.com",
			},
			setupDB: func(mockDB pgxmock.PgxPoolIface, profile *domain.Profile) {
				mockDB.ExpectQuery("INSERT INTO profiles").
					WithArgs(profile.UserID, profile.Name, profile.Email, (*string)(nil)).
					WillReturnRows(pgxmock.NewRows([]string{
						"user_id", "name", "email", "profile_image", "created_at", "updated_at",
					}).AddRow(profile.UserID, profile.Name, profile.Email, nil, now, now))
			},
			wantErr: false,
		},
		{
			name: "database error propagates",
			profile: &domain.Profile{
				UserID: "identity-123",
				Name:   "Ada",
				Email:  "ada@example.com",
			},
			setupDB: func(mockDB pgxmock.PgxPoolIface, profile *domain.Profile) {
				mockDB.ExpectQuery("INSERT INTO profiles").
					WithArgs(profile.UserID, profile.Name, profile.Email, (*string)(nil)).
					WillReturnError(errors.New("connection reset"))
			},
			wantErr:  true,
			errorMsg: "failed to upsert profile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestProfileRepository(t)
			defer mockDB.Close()

			tt.setupDB(mockDB, tt.profile)

			stored, err := repo.Upsert(context.Background(), tt.profile)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, stored)
			} else {
				require.NoError(t, err)
				require.NotNil(t, stored)
				assert.Equal(t, tt.profile.UserID, stored.UserID)
				assert.False(t, stored.CreatedAt.IsZero())
				assert.False(t, stored.UpdatedAt.IsZero())
			}

			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestProfileRepository_GetByUserID(t *testing.T) {
	imageRef := "https://cdn.example.com/profiles/ada.png"
	now := time.Now()

	tests := []struct {
		name        string
		userID      string
		setupDB     func(pgxmock.PgxPoolIface)
		wantErr     bool
		wantProfile bool
	}{
		{
			name:   "existing profile",
			userID: "identity-123",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT (.+) FROM profiles").
					WithArgs("identity-123").
					WillReturnRows(pgxmock.NewRows([]string{
						"user_id", "name", "email", "profile_image", "created_at", "updated_at",
					}).AddRow("identity-123", "Ada", "ada@example.com", &imageRef, now, now))
			},
			wantProfile: true,
		},
		{
			name:   "missing profile is not an error",
			userID: "identity-999",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT (.+) FROM profiles").
					WithArgs("identity-999").
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr:     false,
			wantProfile: false,
		},
		{
			name:   "database error propagates",
			userID: "identity-123",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT (.+) FROM profiles").
					WithArgs("identity-123").
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestProfileRepository(t)
			defer mockDB.Close()

			tt.setupDB(mockDB)

			profile, err := repo.GetByUserID(context.Background(), tt.userID)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, profile)
			} else if tt.wantProfile {
				require.NoError(t, err)
				require.NotNil(t, profile)
				assert.Equal(t, tt.userID, profile.UserID)
				assert.Equal(t, "Ada", profile.Name)
			} else {
				require.NoError(t, err)
				assert.Nil(t, profile)
			}

			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}
