package flow

import (
	"context"
	"errors"
	"time"

	"go.uber.org/mock/gomock"

	"authbridge/internal/auth/models"
	"authbridge/pkg/autherrors"
)

func (s *FlowSuite) newLogin(cfg Config) *LoginCoordinator {
	return NewLogin(s.mockAccount, s.state, s.runtime, s.registry, s.queue, cfg, s.callbacks(), WithLogger(s.logger))
}

func (s *FlowSuite) TestLoginHappyPath() {
	s.mockAccount.EXPECT().Login(gomock.Any()).Return(testUser(), nil)
	sso := testSSO()
	s.mockAccount.EXPECT().FetchSessionTransferToken(gomock.Any()).Return(sso, nil)
	s.mockAccount.EXPECT().SessionTokenCookie(sso).Return(testCookie())

	coordinator := s.newLogin(Config{
		LoginURLs:      []string{"https://www.ecosia.org/accounts/sign-up"},
		SessionTimeout: time.Minute,
	})
	s.closeTabsWhenOpen(1)
	coordinator.Start(context.Background())

	s.True(s.waitCompleted())
	select {
	case <-s.nativeAuth:
	default:
		s.Fail("native auth callback was not delivered")
	}

	s.Equal([]models.Phase{
		models.PhaseAuthenticating,
		models.PhaseAuthenticated,
	}, s.observedPhases())

	tabs := s.runtime.Tabs()
	s.Require().Len(tabs, 1)
	s.Require().Len(tabs[0].Cookies(), 1)
	s.Equal("auth0_session_transfer_token", tabs[0].Cookies()[0].Name)
	s.Equal(0, s.registry.Len())
}

func (s *FlowSuite) TestLoginCancellationNeverTouchesWeb() {
	s.mockAccount.EXPECT().Login(gomock.Any()).
		Return(nil, autherrors.New(autherrors.CodeUserCancelled, "dismissed"))

	coordinator := s.newLogin(Config{LoginURLs: []string{"https://www.ecosia.org/accounts/sign-up"}})
	coordinator.Start(context.Background())

	s.False(s.waitCompleted())
	err := s.waitFlowErr()
	s.True(autherrors.HasCode(err, autherrors.CodeUserCancelled))

	s.Equal([]models.Phase{
		models.PhaseAuthenticating,
		models.PhaseAuthenticationFailed,
	}, s.observedPhases())
	s.Empty(s.runtime.Tabs())
}

func (s *FlowSuite) TestLoginTabCreationFailureRollsBack() {
	s.mockAccount.EXPECT().Login(gomock.Any()).Return(testUser(), nil)
	sso := testSSO()
	s.mockAccount.EXPECT().FetchSessionTransferToken(gomock.Any()).Return(sso, nil)
	s.mockAccount.EXPECT().SessionTokenCookie(sso).Return(testCookie())
	s.mockAccount.EXPECT().Logout(gomock.Any()).Return(nil)

	s.runtime.FailNextWith(errors.New("engine refused"))
	coordinator := s.newLogin(Config{LoginURLs: []string{"https://www.ecosia.org/accounts/sign-up"}})
	coordinator.Start(context.Background())

	s.False(s.waitCompleted())
	err := s.waitFlowErr()
	s.True(autherrors.HasCode(err, autherrors.CodeInvisibleTabCreation))

	// Native login is rolled back so native and web agree on logged out.
	s.Equal([]models.Phase{
		models.PhaseAuthenticating,
		models.PhaseAuthenticated,
		models.PhaseLoggedOut,
		models.PhaseAuthenticationFailed,
	}, s.observedPhases())
}

func (s *FlowSuite) TestLoginWithoutTransferTokenStillCompletes() {
	s.mockAccount.EXPECT().Login(gomock.Any()).Return(testUser(), nil)
	s.mockAccount.EXPECT().FetchSessionTransferToken(gomock.Any()).
		Return(nil, autherrors.New(autherrors.CodeNetwork, "issuer unreachable"))

	coordinator := s.newLogin(Config{
		LoginURLs:      []string{"https://www.ecosia.org/accounts/sign-up"},
		SessionTimeout: time.Minute,
	})
	s.closeTabsWhenOpen(1)
	coordinator.Start(context.Background())

	s.True(s.waitCompleted())
	tabs := s.runtime.Tabs()
	s.Require().Len(tabs, 1)
	s.Empty(tabs[0].Cookies())
}

func (s *FlowSuite) TestLoginWithoutURLsCompletesAfterNativeAuth() {
	s.mockAccount.EXPECT().Login(gomock.Any()).Return(testUser(), nil)
	sso := testSSO()
	s.mockAccount.EXPECT().FetchSessionTransferToken(gomock.Any()).Return(sso, nil)
	s.mockAccount.EXPECT().SessionTokenCookie(sso).Return(testCookie())

	coordinator := s.newLogin(Config{})
	coordinator.Start(context.Background())

	s.True(s.waitCompleted())
	s.Empty(s.runtime.Tabs())
	s.Equal([]models.Phase{
		models.PhaseAuthenticating,
		models.PhaseAuthenticated,
	}, s.observedPhases())
}

func (s *FlowSuite) TestLoginTabTimeoutStillCompletes() {
	s.mockAccount.EXPECT().Login(gomock.Any()).Return(testUser(), nil)
	sso := testSSO()
	s.mockAccount.EXPECT().FetchSessionTransferToken(gomock.Any()).Return(sso, nil)
	s.mockAccount.EXPECT().SessionTokenCookie(sso).Return(testCookie())

	coordinator := s.newLogin(Config{
		LoginURLs:      []string{"https://www.ecosia.org/accounts/sign-up"},
		SessionTimeout: 30 * time.Millisecond,
	})
	coordinator.Start(context.Background())

	// Nothing ever closes the tab; the per-tab deadline finishes the flow.
	s.True(s.waitCompleted())
	s.queue.Barrier()
	s.True(s.runtime.Tabs()[0].Closed())
}
