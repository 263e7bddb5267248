package state

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"authbridge/internal/auth/models"
	"authbridge/internal/platform/dispatch"
	"authbridge/pkg/autherrors"
)

type ManagerSuite struct {
	suite.Suite
	queue   *dispatch.Queue
	manager *Manager
}

func (s *ManagerSuite) SetupTest() {
	s.queue = dispatch.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.manager = New(s.queue, WithLogger(logger))
}

func (s *ManagerSuite) TearDownTest() {
	s.queue.Close()
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerSuite))
}

func (s *ManagerSuite) TestStartsIdle() {
	s.Equal(models.PhaseIdle, s.manager.Current().Phase)
	s.False(s.manager.IsAuthenticated())
	s.False(s.manager.IsAuthenticating())
	s.False(s.manager.IsLoggingOut())
	s.Nil(s.manager.CurrentUser())
}

func (s *ManagerSuite) TestFullCycleObservedInOrder() {
	var observed []models.Phase
	var previous []models.Phase
	sub := s.manager.Subscribe(func(cur, prev models.State) {
		observed = append(observed, cur.Phase)
		previous = append(previous, prev.Phase)
	})
	defer sub.Cancel()

	user := &models.AuthUser{IDToken: "id", AccessToken: "at"}
	s.manager.BeginAuthentication()
	s.manager.CompleteAuthentication(user)
	s.manager.BeginLogout()
	s.manager.CompleteLogout()
	s.queue.Barrier()

	s.Equal([]models.Phase{
		models.PhaseAuthenticating,
		models.PhaseAuthenticated,
		models.PhaseLoggingOut,
		models.PhaseLoggedOut,
	}, observed)
	s.Equal([]models.Phase{
		models.PhaseIdle,
		models.PhaseAuthenticating,
		models.PhaseAuthenticated,
		models.PhaseLoggingOut,
	}, previous)
	s.Equal(models.PhaseLoggedOut, s.manager.Current().Phase)
}

func (s *ManagerSuite) TestCurrentReflectsLastTransition() {
	s.manager.BeginAuthentication()
	s.True(s.manager.IsAuthenticating())

	user := &models.AuthUser{AccessToken: "at"}
	s.manager.CompleteAuthentication(user)
	s.True(s.manager.IsAuthenticated())
	s.Equal(user, s.manager.CurrentUser())

	s.manager.BeginLogout()
	s.True(s.manager.IsLoggingOut())
	s.Nil(s.manager.CurrentUser())

	s.manager.Reset()
	s.Equal(models.PhaseIdle, s.manager.Current().Phase)
}

func (s *ManagerSuite) TestCancelledSubscriptionReceivesNothing() {
	var calls int
	sub := s.manager.Subscribe(func(models.State, models.State) { calls++ })

	s.manager.BeginAuthentication()
	s.queue.Barrier()
	s.Equal(1, calls)

	sub.Cancel()
	s.manager.CompleteAuthentication(&models.AuthUser{})
	s.manager.BeginLogout()
	s.queue.Barrier()
	s.Equal(1, calls)

	// Double cancel is safe.
	sub.Cancel()
}

func (s *ManagerSuite) TestEachObserverNotifiedExactlyOncePerTransition() {
	counts := make([]int, 3)
	for i := range counts {
		i := i
		defer s.manager.Subscribe(func(models.State, models.State) { counts[i]++ }).Cancel()
	}

	s.manager.BeginAuthentication()
	s.manager.FailAuthentication(autherrors.New(autherrors.CodeUserCancelled, "dismissed"))
	s.queue.Barrier()

	for _, c := range counts {
		s.Equal(2, c)
	}
}

func (s *ManagerSuite) TestLegacyProjection() {
	var actions []models.LegacyAction
	defer s.manager.SubscribeLegacy(func(a models.LegacyAction) {
		actions = append(actions, a)
	}).Cancel()

	s.manager.BeginAuthentication()
	s.manager.CompleteAuthentication(&models.AuthUser{})
	s.manager.BeginLogout() // no legacy equivalent
	s.manager.CompleteLogout()
	s.manager.Reset() // no legacy equivalent
	s.manager.BeginAuthentication()
	s.manager.FailAuthentication(autherrors.New(autherrors.CodeNetwork, "down"))
	s.queue.Barrier()

	s.Equal([]models.LegacyAction{
		models.ActionAuthStateLoaded,
		models.ActionUserLoggedIn,
		models.ActionUserLoggedOut,
		models.ActionAuthStateLoaded,
		models.ActionAuthenticationFailed,
	}, actions)
}

func (s *ManagerSuite) TestFailedStateCarriesError() {
	cause := autherrors.New(autherrors.CodeInvisibleTabCreation, "no tab")
	s.manager.FailAuthentication(cause)

	st := s.manager.Current()
	s.Equal(models.PhaseAuthenticationFailed, st.Phase)
	s.ErrorIs(st.Err, cause)
}
