package observability

import (
	"sync"
	"sync/atomic"
)

type StatsSnapshot struct {
	RequestsReceived  uint64            `json:"requests_received"`
	RequestsRejected  uint64            `json:"requests_rejected"`
	UpstreamCalls     uint64            `json:"upstream_calls"`
	PathsGenerated    uint64            `json:"paths_generated"`
	ErrorsTotal       uint64            `json:"errors_total"`
	ErrorsByKind      map[string]uint64 `json:"errors_by_kind,omitempty"`
	MatchPercentAvg   float64           `json:"match_percent_avg"`
	MatchObservations uint64            `json:"match_observations"`
}

var (
	requestsReceived uint64
	requestsRejected uint64
	upstreamCalls    uint64
	pathsGenerated   uint64
	errorsTotal      uint64

	matchCount uint64
	matchSum   uint64

	statsMu      sync.Mutex
	errorsByKind = map[string]uint64{}
)

func IncRequest() {
	atomic.AddUint64(&requestsReceived, 1)
}

func IncRejected() {
	atomic.AddUint64(&requestsRejected, 1)
}

func IncUpstreamCall() {
	atomic.AddUint64(&upstreamCalls, 1)
}

func IncPathGenerated() {
	atomic.AddUint64(&pathsGenerated, 1)
}

func ObserveMatchPercent(percent int) {
	if percent < 0 {
		return
	}
	atomic.AddUint64(&matchCount, 1)
	atomic.AddUint64(&matchSum, uint64(percent))
}

func IncError(kind string) {
	if kind == "" {
		kind = "unknown"
	}
	atomic.AddUint64(&errorsTotal, 1)
	statsMu.Lock()
	errorsByKind[kind]++
	statsMu.Unlock()
}

func Snapshot() StatsSnapshot {
	statsMu.Lock()
	kindCopy := copyMap(errorsByKind)
	statsMu.Unlock()

	count := atomic.LoadUint64(&matchCount)
	avg := 0.0
	if count > 0 {
		avg = float64(atomic.LoadUint64(&matchSum)) / float64(count)
	}

	return StatsSnapshot{
		RequestsReceived:  atomic.LoadUint64(&requestsReceived),
		RequestsRejected:  atomic.LoadUint64(&requestsRejected),
		UpstreamCalls:     atomic.LoadUint64(&upstreamCalls),
		PathsGenerated:    atomic.LoadUint64(&pathsGenerated),
		ErrorsTotal:       atomic.LoadUint64(&errorsTotal),
		ErrorsByKind:      kindCopy,
		MatchPercentAvg:   avg,
		MatchObservations: count,
	}
}

func copyMap(src map[string]uint64) map[string]uint64 {
	if len(src) == 0 {
		return map[string]uint64{}
	}
	out := make(map[string]uint64, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
