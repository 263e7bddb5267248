package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"authbridge/internal/auth/credentials"
	"authbridge/internal/auth/models"
	"authbridge/internal/auth/provider/mocks"
	"authbridge/pkg/autherrors"
)

type ServiceSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockProvider *mocks.MockSSOProvider
	service      *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockProvider = mocks.NewMockSSOProvider(s.ctrl)
	s.service = New(s.mockProvider,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithCookie("auth0_session_transfer_token", "login.ecosia.org"),
	)
}

func freshCredentials() *models.Credentials {
	return &models.Credentials{
		IDToken:     "id-token",
		AccessToken: "access-token",
		TokenType:   "Bearer",
		ExpiresAt:   time.Now().Add(time.Hour),
	}
}

func expiredCredentials() *models.Credentials {
	return &models.Credentials{
		IDToken:      "id-token",
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		TokenType:    "Bearer",
		ExpiresAt:    time.Now().Add(-time.Hour),
	}
}

func (s *ServiceSuite) TestLoginStoresCredentialsAndUser() {
	creds := freshCredentials()
	s.mockProvider.EXPECT().StartAuth(gomock.Any()).Return(creds, nil)
	s.mockProvider.EXPECT().StoreCredentials(creds).Return(nil)

	user, err := s.service.Login(context.Background())
	s.Require().NoError(err)
	s.Equal("access-token", user.AccessToken)
	s.True(s.service.IsLoggedIn())
	s.Equal("id-token", s.service.IDToken())
	s.Equal("access-token", s.service.AccessToken())
}

func (s *ServiceSuite) TestLoginFailureLeavesLoggedOut() {
	s.mockProvider.EXPECT().StartAuth(gomock.Any()).
		Return(nil, autherrors.New(autherrors.CodeUserCancelled, "dismissed"))

	_, err := s.service.Login(context.Background())
	s.Require().Error(err)
	s.True(autherrors.HasCode(err, autherrors.CodeUserCancelled))
	s.False(s.service.IsLoggedIn())
}

func (s *ServiceSuite) TestLoginStorageFailureSurfaces() {
	creds := freshCredentials()
	s.mockProvider.EXPECT().StartAuth(gomock.Any()).Return(creds, nil)
	s.mockProvider.EXPECT().StoreCredentials(creds).
		Return(autherrors.New(autherrors.CodeCredentialsStorage, "keychain full"))

	_, err := s.service.Login(context.Background())
	s.Require().Error(err)
	s.True(autherrors.HasCode(err, autherrors.CodeCredentialsStorage))
}

func (s *ServiceSuite) TestLogoutClearsSessionAndCredentials() {
	s.loginUser()
	s.mockProvider.EXPECT().ClearSession(gomock.Any()).Return(nil)
	s.mockProvider.EXPECT().ClearCredentials().Return(nil)

	s.Require().NoError(s.service.Logout(context.Background()))
	s.False(s.service.IsLoggedIn())
}

func (s *ServiceSuite) TestLogoutDropsUserEvenWhenProviderFails() {
	s.loginUser()
	s.mockProvider.EXPECT().ClearSession(gomock.Any()).
		Return(autherrors.New(autherrors.CodeSessionClearing, "issuer unreachable"))
	s.mockProvider.EXPECT().ClearCredentials().Return(nil)

	err := s.service.Logout(context.Background())
	s.Require().Error(err)
	s.False(s.service.IsLoggedIn())
}

func (s *ServiceSuite) TestRestoreSessionWithoutStoredCredentials() {
	s.mockProvider.EXPECT().RetrieveCredentials().Return(nil, credentials.ErrNotFound)

	restored, err := s.service.RestoreSession(context.Background())
	s.Require().NoError(err)
	s.False(restored)
	s.False(s.service.IsLoggedIn())
}

func (s *ServiceSuite) TestRestoreSessionWithValidCredentials() {
	s.mockProvider.EXPECT().RetrieveCredentials().Return(freshCredentials(), nil)

	restored, err := s.service.RestoreSession(context.Background())
	s.Require().NoError(err)
	s.True(restored)
	s.True(s.service.IsLoggedIn())
}

func (s *ServiceSuite) TestRestoreSessionRenewsExpiredCredentials() {
	s.mockProvider.EXPECT().RetrieveCredentials().Return(expiredCredentials(), nil)
	s.mockProvider.EXPECT().CanRenewCredentials().Return(true)
	s.mockProvider.EXPECT().RenewCredentials(gomock.Any()).Return(freshCredentials(), nil)

	restored, err := s.service.RestoreSession(context.Background())
	s.Require().NoError(err)
	s.True(restored)
	s.True(s.service.IsLoggedIn())
}

func (s *ServiceSuite) TestRestoreSessionExpiredNotRenewable() {
	s.mockProvider.EXPECT().RetrieveCredentials().Return(expiredCredentials(), nil)
	s.mockProvider.EXPECT().CanRenewCredentials().Return(false)

	restored, err := s.service.RestoreSession(context.Background())
	s.Require().NoError(err)
	s.False(restored)
}

func (s *ServiceSuite) TestRenewIfNeededLeavesValidCredentialsAlone() {
	s.mockProvider.EXPECT().RetrieveCredentials().Return(freshCredentials(), nil)

	s.NoError(s.service.RenewIfNeeded(context.Background()))
}

func (s *ServiceSuite) TestRenewIfNeededWithoutRefreshToken() {
	s.mockProvider.EXPECT().RetrieveCredentials().Return(expiredCredentials(), nil)
	s.mockProvider.EXPECT().CanRenewCredentials().Return(false)

	err := s.service.RenewIfNeeded(context.Background())
	s.Require().Error(err)
	s.True(autherrors.HasCode(err, autherrors.CodeCredentialsRenewal))
}

func (s *ServiceSuite) TestSessionTokenCookie() {
	expires := time.Now().Add(time.Minute)
	cookie := s.service.SessionTokenCookie(&models.SSOCredentials{
		SessionTransferToken: "transfer-token",
		ExpiresAt:            expires,
	})

	s.Require().NotNil(cookie)
	s.Equal("auth0_session_transfer_token", cookie.Name)
	s.Equal("transfer-token", cookie.Value)
	s.Equal("login.ecosia.org", cookie.Domain)
	s.Equal("/", cookie.Path)
	s.True(cookie.Secure)
	s.True(cookie.HTTPOnly)
	s.True(cookie.Expires.Equal(expires))
}

func (s *ServiceSuite) TestSessionTokenCookieNilInput() {
	s.Nil(s.service.SessionTokenCookie(nil))
	s.Nil(s.service.SessionTokenCookie(&models.SSOCredentials{}))
}

func (s *ServiceSuite) TestFetchSessionTransferToken() {
	sso := &models.SSOCredentials{SessionTransferToken: "transfer-token", ExpiresAt: time.Now().Add(time.Minute)}
	s.mockProvider.EXPECT().SSOCredentials(gomock.Any()).Return(sso, nil)

	got, err := s.service.FetchSessionTransferToken(context.Background())
	s.Require().NoError(err)
	s.Equal("transfer-token", got.SessionTransferToken)
}

func (s *ServiceSuite) loginUser() {
	creds := freshCredentials()
	s.mockProvider.EXPECT().StartAuth(gomock.Any()).Return(creds, nil)
	s.mockProvider.EXPECT().StoreCredentials(creds).Return(nil)
	_, err := s.service.Login(context.Background())
	s.Require().NoError(err)
}
