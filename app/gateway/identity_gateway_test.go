package gateway

import (
	"context"
	"testing"

	"auth-facade/app/domain"
	mock_port "auth-facade/app/mocks"
	"auth-facade/app/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestIdentityGateway(t *testing.T) (*IdentityGateway, *mock_port.MockKratosClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockClient := mock_port.NewMockKratosClient(ctrl)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	return NewIdentityGateway(mockClient, testLogger), mockClient
}

func TestIdentityGateway_CreateIdentity(t *testing.T) {
	gw, mockClient := newTestIdentityGateway(t)

	identity := &domain.Identity{ID: "identity-123", Email: "ada@example.com", Name: "Ada"}

	mockClient.EXPECT().
		CreateIdentity(gomock.Any(), "Ada", "ada@example.com", "pw123").
		Return(identity, nil)

	got, err := gw.CreateIdentity(context.Background(), "Ada", "ada@example.com", "pw123")

	require.NoError(t, err)
	assert.Equal(t, identity, got)
}

func TestIdentityGateway_CreateIdentity_ConflictPreserved(t *testing.T) {
	gw, mockClient := newTestIdentityGateway(t)

	mockClient.EXPECT().
		CreateIdentity(gomock.Any(), "Ada", "ada@example.com", "pw123").
		Return(nil, domain.ErrIdentityConflict)

	_, err := gw.CreateIdentity(context.Background(), "Ada", "ada@example.com", "pw123")

	// The gateway wraps with context but the typed cause must survive.
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIdentityConflict)
}

func TestIdentityGateway_GetByEmail_NotFoundPreserved(t *testing.T) {
	gw, mockClient := newTestIdentityGateway(t)

	mockClient.EXPECT().
		GetIdentityByEmail(gomock.Any(), "nobody@example.com").
		Return(nil, domain.ErrIdentityNotFound)

	_, err := gw.GetByEmail(context.Background(), "nobody@example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIdentityNotFound)
}

func TestIdentityGateway_VerifyProviderToken(t *testing.T) {
	gw, mockClient := newTestIdentityGateway(t)

	identity := &domain.Identity{ID: "identity-123", Email: "ada@example.com"}

	mockClient.EXPECT().
		VerifySessionToken(gomock.Any(), "session-token").
		Return(identity, nil)

	got, err := gw.VerifyProviderToken(context.Background(), "session-token")

	require.NoError(t, err)
	assert.Equal(t, "identity-123", got.ID)
}

func TestIdentityGateway_VerifyProviderToken_InvalidPreserved(t *testing.T) {
	gw, mockClient := newTestIdentityGateway(t)

	mockClient.EXPECT().
		VerifySessionToken(gomock.Any(), "garbage").
		Return(nil, domain.ErrInvalidProviderToken)

	_, err := gw.VerifyProviderToken(context.Background(), "garbage")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidProviderToken)
}

func TestIdentityGateway_CreateRecoveryLink(t *testing.T) {
	gw, mockClient := newTestIdentityGateway(t)

	mockClient.EXPECT().
		CreateRecoveryLink(gomock.Any(), "identity-123").
		Return("https://kratos.local/self-service/recovery?token=abc", nil)

	link, err := gw.CreateRecoveryLink(context.Background(), "identity-123")

	require.NoError(t, err)
	assert.NotEmpty(t, link)
}
