package detector

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
	"authbridge/internal/bridge"
	"authbridge/internal/flow"
	"authbridge/internal/flow/mocks"
	"authbridge/internal/platform/dispatch"
	"authbridge/internal/webruntime"
	"authbridge/pkg/testutil"
)

type DetectorSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockAccount *mocks.MockAuthAccount
	queue       *dispatch.Queue
	state       *state.Manager
	detector    *Detector
}

func TestDetectorSuite(t *testing.T) {
	suite.Run(t, new(DetectorSuite))
}

func (s *DetectorSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockAccount = mocks.NewMockAuthAccount(s.ctrl)
	s.queue = dispatch.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.state = state.New(s.queue, state.WithLogger(logger))
	b := bridge.New(s.mockAccount, s.state, webruntime.NewMemoryRuntime(), s.queue, flow.Config{}, bridge.WithLogger(logger))
	s.detector = New(b, "https://www.ecosia.org", WithLogger(logger))
}

func (s *DetectorSuite) TearDownTest() {
	s.queue.Close()
}

func (s *DetectorSuite) TestClassify() {
	cases := map[string]URLKind{
		"/accounts/sign-up":  KindSignUp,
		"/login":             KindSignIn,
		"/signin":            KindSignIn,
		"/auth/login":        KindSignIn,
		"/accounts/sign-out": KindSignOut,
		"/logout":            KindSignOut,
		"/signout":           KindSignOut,
		"/auth/logout":       KindSignOut,
		"/accounts/profile":  KindProfile,
		"/login/":            KindSignIn,
		"/settings":          KindNone,
		"":                   KindNone,
	}
	for path, want := range cases {
		s.Equal(want, Classify(path), "path %q", path)
	}
}

func (s *DetectorSuite) TestForeignHostIgnored() {
	s.Equal(KindNone, s.detector.Observe(context.Background(), "https://evil.example.com/login"))
}

func (s *DetectorSuite) TestBareHostMatchesWWW() {
	s.mockAccount.EXPECT().IsLoggedIn().Return(true)
	s.Equal(KindSignIn, s.detector.Observe(context.Background(), "https://ecosia.org/login"))
}

func (s *DetectorSuite) TestSignInWhileLoggedInDoesNothing() {
	s.mockAccount.EXPECT().IsLoggedIn().Return(true)

	kind := s.detector.Observe(context.Background(), "https://www.ecosia.org/login")
	s.Equal(KindSignIn, kind)
	s.queue.Barrier()
	s.Equal(models.PhaseIdle, s.state.Current().Phase)
}

func (s *DetectorSuite) TestSignOutWhileLoggedOutDoesNothing() {
	s.mockAccount.EXPECT().IsLoggedIn().Return(false)

	kind := s.detector.Observe(context.Background(), "https://www.ecosia.org/logout")
	s.Equal(KindSignOut, kind)
	s.queue.Barrier()
	s.Equal(models.PhaseIdle, s.state.Current().Phase)
}

func (s *DetectorSuite) TestConcurrentSignInsStartOneFlow() {
	const observers = 8

	// Login blocks until every observer has run, so the in-flight guard
	// alone must hold back the duplicates.
	release := make(chan struct{})
	s.mockAccount.EXPECT().IsLoggedIn().Return(false).Times(observers)
	s.mockAccount.EXPECT().Login(gomock.Any()).DoAndReturn(func(context.Context) (*models.AuthUser, error) {
		<-release
		return &models.AuthUser{IDToken: "id-token"}, nil
	})
	s.mockAccount.EXPECT().FetchSessionTransferToken(gomock.Any()).Return(nil, context.DeadlineExceeded)

	result := testutil.RunConcurrent(observers, func(int) error {
		s.detector.Observe(context.Background(), "https://www.ecosia.org/signin")
		return nil
	})
	s.Equal(int32(observers), result.Successes)
	close(release)
	s.Require().Eventually(func() bool {
		return s.state.Current().Phase == models.PhaseAuthenticated
	}, 2*time.Second, 5*time.Millisecond)
}

func (s *DetectorSuite) TestInFlightGuardResetsAfterCompletion() {
	s.mockAccount.EXPECT().IsLoggedIn().Return(false).Times(2)
	s.mockAccount.EXPECT().Login(gomock.Any()).
		Return(&models.AuthUser{IDToken: "id-token"}, nil).Times(2)
	s.mockAccount.EXPECT().FetchSessionTransferToken(gomock.Any()).
		Return(nil, context.DeadlineExceeded).Times(2)

	s.detector.Observe(context.Background(), "https://www.ecosia.org/login")
	s.Require().Eventually(func() bool {
		return !s.detector.inFlight.Load()
	}, 2*time.Second, 5*time.Millisecond)

	s.detector.Observe(context.Background(), "https://www.ecosia.org/login")
	s.Require().Eventually(func() bool {
		return !s.detector.inFlight.Load()
	}, 2*time.Second, 5*time.Millisecond)
}
