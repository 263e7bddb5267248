package bridge

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"authbridge/internal/auth/models"
	"authbridge/internal/auth/state"
	"authbridge/internal/flow"
	"authbridge/internal/flow/mocks"
	"authbridge/internal/platform/dispatch"
	"authbridge/internal/webruntime"
	"authbridge/pkg/autherrors"
)

type BridgeSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockAccount *mocks.MockAuthAccount
	queue       *dispatch.Queue
	runtime     *webruntime.MemoryRuntime
	state       *state.Manager
	bridge      *Bridge
}

func TestBridgeSuite(t *testing.T) {
	suite.Run(t, new(BridgeSuite))
}

func (s *BridgeSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockAccount = mocks.NewMockAuthAccount(s.ctrl)
	s.queue = dispatch.New()
	s.runtime = webruntime.NewMemoryRuntime()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.state = state.New(s.queue, state.WithLogger(logger))
	s.bridge = New(s.mockAccount, s.state, s.runtime, s.queue, flow.Config{}, WithLogger(logger))
}

func (s *BridgeSuite) TearDownTest() {
	s.queue.Close()
}

func (s *BridgeSuite) expectSuccessfulLogin() {
	user := &models.AuthUser{IDToken: "id-token", AccessToken: "access-token"}
	sso := &models.SSOCredentials{SessionTransferToken: "transfer-token", ExpiresAt: time.Now().Add(time.Minute)}
	s.mockAccount.EXPECT().Login(gomock.Any()).Return(user, nil)
	s.mockAccount.EXPECT().FetchSessionTransferToken(gomock.Any()).Return(sso, nil)
	s.mockAccount.EXPECT().SessionTokenCookie(sso).Return(&webruntime.Cookie{Name: "auth0_session_transfer_token"})
}

func (s *BridgeSuite) waitBool(ch <-chan bool) bool {
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		s.FailNow("timed out waiting for callback")
		return false
	}
}

func (s *BridgeSuite) TestLoginDeliversChainedCallbacks() {
	s.expectSuccessfulLogin()

	native := make(chan bool, 1)
	completed := make(chan bool, 1)
	s.bridge.Login(context.Background()).
		OnNativeAuthCompleted(func() { native <- true }).
		OnAuthFlowCompleted(func(success bool) { completed <- success })

	s.True(s.waitBool(native))
	s.True(s.waitBool(completed))
}

func (s *BridgeSuite) TestLateSubscriberGetsBufferedTerminalEvent() {
	s.expectSuccessfulLogin()

	handle := s.bridge.Login(context.Background())

	// Let the flow finish before anything is attached.
	s.Require().Eventually(func() bool {
		return s.state.Current().Phase == models.PhaseAuthenticated
	}, 2*time.Second, 5*time.Millisecond)
	s.queue.Barrier()

	completed := make(chan bool, 1)
	handle.OnAuthFlowCompleted(func(success bool) { completed <- success })
	s.True(s.waitBool(completed))
}

func (s *BridgeSuite) TestLateErrorSubscriberGetsBufferedError() {
	s.mockAccount.EXPECT().Login(gomock.Any()).
		Return(nil, autherrors.New(autherrors.CodeUserCancelled, "dismissed"))

	handle := s.bridge.Login(context.Background())

	s.Require().Eventually(func() bool {
		return s.state.Current().Phase == models.PhaseAuthenticationFailed
	}, 2*time.Second, 5*time.Millisecond)
	s.queue.Barrier()

	errs := make(chan error, 1)
	completed := make(chan bool, 1)
	handle.
		OnError(func(err error) { errs <- err }).
		OnAuthFlowCompleted(func(success bool) { completed <- success })

	select {
	case err := <-errs:
		s.True(autherrors.HasCode(err, autherrors.CodeUserCancelled))
	case <-time.After(2 * time.Second):
		s.FailNow("timed out waiting for error callback")
	}
	s.False(s.waitBool(completed))
}

func (s *BridgeSuite) TestDelayedCompletionPostponesNativeCallback() {
	s.expectSuccessfulLogin()

	native := make(chan time.Time, 1)
	started := time.Now()
	s.bridge.Login(context.Background()).
		WithDelayedCompletion(50 * time.Millisecond).
		OnNativeAuthCompleted(func() { native <- time.Now() })

	select {
	case at := <-native:
		s.GreaterOrEqual(at.Sub(started), 50*time.Millisecond)
	case <-time.After(2 * time.Second):
		s.FailNow("timed out waiting for delayed native auth callback")
	}
}

func (s *BridgeSuite) TestLogoutDeliversTerminalEvent() {
	s.mockAccount.EXPECT().Logout(gomock.Any()).Return(nil)

	completed := make(chan bool, 1)
	s.bridge.Logout(context.Background()).
		OnAuthFlowCompleted(func(success bool) { completed <- success })

	s.True(s.waitBool(completed))
	s.Equal(models.PhaseLoggedOut, s.state.Current().Phase)
}

func (s *BridgeSuite) TestIsLoggedInDelegatesToAccount() {
	s.mockAccount.EXPECT().IsLoggedIn().Return(true)
	s.True(s.bridge.IsLoggedIn())
}
