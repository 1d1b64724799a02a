package server

import (
	"context"
	"sort"
)

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type OkHealthChecker struct {
}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}

// CompositeHealthChecker is healthy when every named checker is.
type CompositeHealthChecker struct {
	checkers map[string]HealthChecker
}

func NewCompositeHealthChecker() *CompositeHealthChecker {
	return &CompositeHealthChecker{checkers: make(map[string]HealthChecker)}
}

// Add registers a checker under name. Nil checkers are ignored.
func (hc *CompositeHealthChecker) Add(name string, checker HealthChecker) *CompositeHealthChecker {
	if checker != nil {
		hc.checkers[name] = checker
	}
	return hc
}

func (hc *CompositeHealthChecker) Healthy(ctx context.Context) bool {
	return hc.Report(ctx).Healthy
}

type Report struct {
	Healthy bool            `json:"healthy"`
	Status  string          `json:"status"`
	Checks  map[string]bool `json:"checks,omitempty"`
}

func (hc *CompositeHealthChecker) Report(ctx context.Context) Report {
	r := Report{Healthy: true, Checks: make(map[string]bool, len(hc.checkers))}

	names := make([]string, 0, len(hc.checkers))
	for n := range hc.checkers {
		names = append(names, n)
	}
	sort.Strings(names)

	for _, n := range names {
		ok := hc.checkers[n].Healthy(ctx)
		r.Checks[n] = ok
		r.Healthy = r.Healthy && ok
	}
	r.Status = status(r.Healthy)
	return r
}

// Check reports on any checker, with per-check detail for composites.
func Check(ctx context.Context, checker HealthChecker) Report {
	if c, ok := checker.(*CompositeHealthChecker); ok {
		return c.Report(ctx)
	}
	healthy := checker == nil || checker.Healthy(ctx)
	return Report{Healthy: healthy, Status: status(healthy)}
}

func status(healthy bool) string {
	if healthy {
		return "ok"
	}
	return "unavailable"
}
