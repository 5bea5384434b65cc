// Package metrics registers the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts completed requests per route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linkfield_http_requests_total",
		Help: "Completed HTTP requests partitioned by method, path and status.",
	}, []string{"method", "path", "status"})

	// PostsCreated counts successfully created posts.
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "linkfield_posts_created_total",
		Help: "Posts created.",
	})

	// LikesToggled counts successful like toggles, liked and unliked alike.
	LikesToggled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "linkfield_likes_toggled_total",
		Help: "Like toggles applied.",
	})

	// CommentsCreated counts successfully created comments.
	CommentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "linkfield_comments_created_total",
		Help: "Comments created.",
	})

	// ConnectionRequests counts connection requests that passed all checks.
	ConnectionRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "linkfield_connection_requests_total",
		Help: "Connection requests created.",
	})
)
