package flow

import (
	"context"
	"time"

	"go.uber.org/mock/gomock"

	"authbridge/internal/auth/models"
	"authbridge/pkg/autherrors"
)

func (s *FlowSuite) newLogout(cfg Config) *LogoutCoordinator {
	return NewLogout(s.mockAccount, s.state, s.runtime, s.registry, s.queue, cfg, s.callbacks(), WithLogger(s.logger))
}

func (s *FlowSuite) TestLogoutHappyPath() {
	s.mockAccount.EXPECT().Logout(gomock.Any()).Return(nil)

	coordinator := s.newLogout(Config{
		LogoutURLs:     []string{"https://www.ecosia.org/logout"},
		SessionTimeout: time.Minute,
		LogoutFallback: time.Minute,
	})
	s.closeTabsWhenOpen(1)
	coordinator.Start(context.Background())

	s.True(s.waitCompleted())
	s.Equal([]models.Phase{
		models.PhaseLoggingOut,
		models.PhaseLoggedOut,
	}, s.observedPhases())
	s.Equal(0, s.registry.Len())
}

func (s *FlowSuite) TestLogoutReachesLoggedOutDespiteNativeFailure() {
	s.mockAccount.EXPECT().Logout(gomock.Any()).
		Return(autherrors.New(autherrors.CodeSessionClearing, "issuer unreachable"))

	coordinator := s.newLogout(Config{
		LogoutURLs:     []string{"https://www.ecosia.org/logout"},
		SessionTimeout: time.Minute,
		LogoutFallback: time.Minute,
	})
	s.closeTabsWhenOpen(1)
	coordinator.Start(context.Background())

	s.False(s.waitCompleted())
	err := s.waitFlowErr()
	s.True(autherrors.HasCode(err, autherrors.CodeSessionClearing))

	// The user still ends up logged out locally.
	s.Equal([]models.Phase{
		models.PhaseLoggingOut,
		models.PhaseLoggedOut,
	}, s.observedPhases())
}

func (s *FlowSuite) TestLogoutWithoutURLsCompletesImmediately() {
	s.mockAccount.EXPECT().Logout(gomock.Any()).Return(nil)

	coordinator := s.newLogout(Config{})
	coordinator.Start(context.Background())

	s.True(s.waitCompleted())
	s.Empty(s.runtime.Tabs())
	s.Equal([]models.Phase{
		models.PhaseLoggingOut,
		models.PhaseLoggedOut,
	}, s.observedPhases())
}

func (s *FlowSuite) TestLogoutFallbackForcesCompletion() {
	s.mockAccount.EXPECT().Logout(gomock.Any()).Return(nil)

	coordinator := s.newLogout(Config{
		LogoutURLs:     []string{"https://www.ecosia.org/logout"},
		SessionTimeout: time.Minute,
		LogoutFallback: 30 * time.Millisecond,
	})
	// Nothing ever closes the tab; the fallback must finish the flow.
	coordinator.Start(context.Background())

	s.True(s.waitCompleted())
	s.queue.Barrier()
	s.True(s.runtime.Tabs()[0].Closed())
	s.Equal(models.PhaseLoggedOut, s.state.Current().Phase)
}

func (s *FlowSuite) TestLogoutSweepsLeftoverTabs() {
	leftover, err := s.runtime.NewTab(context.Background(), "https://www.ecosia.org/accounts/sign-up")
	s.Require().NoError(err)
	s.registry.Add(leftover)

	s.mockAccount.EXPECT().Logout(gomock.Any()).Return(nil)
	coordinator := s.newLogout(Config{})
	coordinator.Start(context.Background())

	s.True(s.waitCompleted())
	s.Equal(0, s.registry.Len())
	s.True(s.runtime.Tabs()[0].Closed())
}

func (s *FlowSuite) TestLogoutSkipsBrokenTabs() {
	s.mockAccount.EXPECT().Logout(gomock.Any()).Return(nil)
	s.runtime.FailNextWith(context.DeadlineExceeded)

	coordinator := s.newLogout(Config{
		LogoutURLs:     []string{"https://www.ecosia.org/logout"},
		LogoutFallback: time.Minute,
	})
	coordinator.Start(context.Background())

	// A tab that cannot open must not keep the user logged in.
	s.True(s.waitCompleted())
	s.Equal(models.PhaseLoggedOut, s.state.Current().Phase)
}
