// Package metrics prometheus 指标，统一注册到默认注册表
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tweeter"

var (
	// HttpRequestsTotal 请求次数
	HttpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HttpRequestDuration 响应耗时
	HttpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "path"},
	)

	// ReactionToggles 点赞切换结果，kind: tweet/comment，action: created/changed/removed
	ReactionToggles = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reaction_toggles_total",
			Help:      "Reaction toggles by target kind and resulting action",
		},
		[]string{"kind", "action"},
	)
)

func init() {
	prometheus.MustRegister(HttpRequestsTotal, HttpRequestDuration, ReactionToggles)
}
