package stats

import (
	"sync/atomic"
	"time"
)

// Stats holds all server statistics with atomic counters. Everything is
// in-memory only and resets on restart.
type Stats struct {
	StartTime time.Time

	// Request counters per endpoint
	TotalRequests  atomic.Int64
	LoginRequests  atomic.Int64
	SearchRequests atomic.Int64
	HealthRequests atomic.Int64
	StatsRequests  atomic.Int64
	OtherRequests  atomic.Int64

	// Auth outcomes on the protected route
	AuthMissing  atomic.Int64 // 401: no credential presented
	AuthRejected atomic.Int64 // 403: bad signature or expired
	TokensIssued atomic.Int64

	// Upstream proxy outcomes
	UpstreamFailures atomic.Int64

	// Response status classes
	Status2xx atomic.Int64
	Status4xx atomic.Int64
	Status5xx atomic.Int64

	// Response time tracking (microseconds)
	totalResponseTime atomic.Int64
	responseCount     atomic.Int64
	minResponseTime   atomic.Int64
	maxResponseTime   atomic.Int64
}

// Global stats instance
var global = newStats()

func newStats() *Stats {
	s := &Stats{StartTime: time.Now()}
	s.minResponseTime.Store(int64(^uint64(0) >> 1)) // max int64
	return s
}

// Get returns the global stats instance
func Get() *Stats {
	return global
}

// RecordRequest records a request to a specific endpoint
func (s *Stats) RecordRequest(path string) {
	s.TotalRequests.Add(1)
	switch path {
	case "/login":
		s.LoginRequests.Add(1)
	case "/search":
		s.SearchRequests.Add(1)
	case "/health":
		s.HealthRequests.Add(1)
	case "/stats":
		s.StatsRequests.Add(1)
	default:
		s.OtherRequests.Add(1)
	}
}

// RecordStatus records the response status class
func (s *Stats) RecordStatus(statusCode int) {
	switch {
	case statusCode >= 200 && statusCode < 300:
		s.Status2xx.Add(1)
	case statusCode >= 400 && statusCode < 500:
		s.Status4xx.Add(1)
	case statusCode >= 500:
		s.Status5xx.Add(1)
	}
}

// RecordAuthMissing counts a request rejected for lacking a credential
func (s *Stats) RecordAuthMissing() {
	s.AuthMissing.Add(1)
}

// RecordAuthRejected counts a request rejected for a bad or expired token
func (s *Stats) RecordAuthRejected() {
	s.AuthRejected.Add(1)
}

// RecordTokenIssued counts a successful login
func (s *Stats) RecordTokenIssued() {
	s.TokensIssued.Add(1)
}

// RecordUpstreamFailure counts a failed proxy call
func (s *Stats) RecordUpstreamFailure() {
	s.UpstreamFailures.Add(1)
}

// RecordResponseTime tracks min/max/total response time
func (s *Stats) RecordResponseTime(d time.Duration) {
	us := d.Microseconds()
	s.totalResponseTime.Add(us)
	s.responseCount.Add(1)

	for {
		cur := s.minResponseTime.Load()
		if us >= cur || s.minResponseTime.CompareAndSwap(cur, us) {
			break
		}
	}
	for {
		cur := s.maxResponseTime.Load()
		if us <= cur || s.maxResponseTime.CompareAndSwap(cur, us) {
			break
		}
	}
}

// Snapshot is the JSON shape served by the /stats endpoint
type Snapshot struct {
	UptimeSeconds int64 `json:"uptimeSeconds"`

	TotalRequests  int64 `json:"totalRequests"`
	LoginRequests  int64 `json:"loginRequests"`
	SearchRequests int64 `json:"searchRequests"`
	HealthRequests int64 `json:"healthRequests"`
	StatsRequests  int64 `json:"statsRequests"`
	OtherRequests  int64 `json:"otherRequests"`

	AuthMissing  int64 `json:"authMissing"`
	AuthRejected int64 `json:"authRejected"`
	TokensIssued int64 `json:"tokensIssued"`

	UpstreamFailures int64 `json:"upstreamFailures"`

	Status2xx int64 `json:"status2xx"`
	Status4xx int64 `json:"status4xx"`
	Status5xx int64 `json:"status5xx"`

	AvgResponseTimeMs float64 `json:"avgResponseTimeMs"`
	MinResponseTimeMs float64 `json:"minResponseTimeMs"`
	MaxResponseTimeMs float64 `json:"maxResponseTimeMs"`
}

// GetSnapshot returns a point-in-time copy of the counters
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		UptimeSeconds:    int64(time.Since(s.StartTime).Seconds()),
		TotalRequests:    s.TotalRequests.Load(),
		LoginRequests:    s.LoginRequests.Load(),
		SearchRequests:   s.SearchRequests.Load(),
		HealthRequests:   s.HealthRequests.Load(),
		StatsRequests:    s.StatsRequests.Load(),
		OtherRequests:    s.OtherRequests.Load(),
		AuthMissing:      s.AuthMissing.Load(),
		AuthRejected:     s.AuthRejected.Load(),
		TokensIssued:     s.TokensIssued.Load(),
		UpstreamFailures: s.UpstreamFailures.Load(),
		Status2xx:        s.Status2xx.Load(),
		Status4xx:        s.Status4xx.Load(),
		Status5xx:        s.Status5xx.Load(),
	}

	if count := s.responseCount.Load(); count > 0 {
		snap.AvgResponseTimeMs = float64(s.totalResponseTime.Load()) / float64(count) / 1000
		snap.MinResponseTimeMs = float64(s.minResponseTime.Load()) / 1000
		snap.MaxResponseTimeMs = float64(s.maxResponseTime.Load()) / 1000
	}

	return snap
}
