package rest

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the HTTP and domain collectors exposed on /metrics.
type Metrics struct {
	RequestDuration *prometheus.HistogramVec
	TweetsCreated   *prometheus.CounterVec
	LikesToggled    *prometheus.CounterVec
	RetweetsToggled *prometheus.CounterVec
	FollowsToggled  *prometheus.CounterVec
	Signups         prometheus.Counter
	SigninFailures  prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		TweetsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tweeter_tweets_created_total",
			Help: "Tweets and replies created.",
		}, []string{"kind"}),
		LikesToggled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tweeter_likes_toggled_total",
			Help: "Like toggles by resulting action.",
		}, []string{"action"}),
		RetweetsToggled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tweeter_retweets_toggled_total",
			Help: "Retweet toggles by resulting action.",
		}, []string{"action"}),
		FollowsToggled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tweeter_follows_toggled_total",
			Help: "Follow toggles by resulting action.",
		}, []string{"action"}),
		Signups: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tweeter_signups_total",
			Help: "Successful signups.",
		}),
		SigninFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tweeter_signin_failures_total",
			Help: "Signin attempts rejected for bad credentials.",
		}),
	}
	reg.MustRegister(
		m.RequestDuration, m.TweetsCreated, m.LikesToggled,
		m.RetweetsToggled, m.FollowsToggled, m.Signups, m.SigninFailures,
	)
	return m
}

func toggleAction(on bool, yes, no string) string {
	if on {
		return yes
	}
	return no
}
