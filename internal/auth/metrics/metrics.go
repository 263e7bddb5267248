package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for authentication flows.
type Metrics struct {
	LoginsStarted   prometheus.Counter
	LoginsCompleted prometheus.Counter
	LoginFailures   *prometheus.CounterVec

	LogoutsStarted   prometheus.Counter
	LogoutsCompleted prometheus.Counter
	LogoutFailures   *prometheus.CounterVec

	CredentialsRestored prometheus.Counter
	CredentialsRenewed  prometheus.Counter

	TabSessionsCreated    prometheus.Counter
	TabSessionCompletions *prometheus.CounterVec

	FlowDurationSeconds *prometheus.HistogramVec
}

// New registers and returns bridge metrics collectors.
func New() *Metrics {
	return &Metrics{
		LoginsStarted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "authbridge_logins_started_total",
			Help: "Total number of login flows started",
		}),
		LoginsCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "authbridge_logins_completed_total",
			Help: "Total number of login flows completed successfully",
		}),
		LoginFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "authbridge_login_failures_total",
			Help: "Total number of failed login flows by error code",
		}, []string{"code"}),
		LogoutsStarted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "authbridge_logouts_started_total",
			Help: "Total number of logout flows started",
		}),
		LogoutsCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "authbridge_logouts_completed_total",
			Help: "Total number of logout flows completed",
		}),
		LogoutFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "authbridge_logout_failures_total",
			Help: "Total number of logout flows that reported an error",
		}, []string{"code"}),
		CredentialsRestored: promauto.NewCounter(prometheus.CounterOpts{
			Name: "authbridge_credentials_restored_total",
			Help: "Total number of silent session restores at startup",
		}),
		CredentialsRenewed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "authbridge_credentials_renewed_total",
			Help: "Total number of credential renewals",
		}),
		TabSessionsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "authbridge_tab_sessions_created_total",
			Help: "Total number of invisible tab sessions created",
		}),
		TabSessionCompletions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "authbridge_tab_session_completions_total",
			Help: "Total number of invisible tab session completions by cause",
		}, []string{"cause"}),
		FlowDurationSeconds: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "authbridge_flow_duration_seconds",
			Help:    "End-to-end duration of authentication flows",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15, 30},
		}, []string{"flow"}),
	}
}
