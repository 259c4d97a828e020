package health

import (
	"context"
	"errors"
	"testing"
)

type mockCorpus struct{ size int }

func (m *mockCorpus) Size() int { return m.size }

type mockPinger struct{ err error }

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

func TestCheck_HealthyWithoutCache(t *testing.T) {
	svc := New(&mockCorpus{size: 10}, nil)

	report := svc.Check(context.Background())
	if report.Status != Healthy {
		t.Errorf("status = %s, want %s", report.Status, Healthy)
	}
	if report.Checks["corpus"] != CheckOK {
		t.Errorf("corpus check = %s", report.Checks["corpus"])
	}
	if _, ok := report.Checks["cache"]; ok {
		t.Error("cache check must be absent when cache is disabled")
	}
}

func TestCheck_EmptyCorpusDegraded(t *testing.T) {
	svc := New(&mockCorpus{size: 0}, nil)

	report := svc.Check(context.Background())
	if report.Status != Degraded {
		t.Errorf("status = %s, want %s", report.Status, Degraded)
	}
	if report.Checks["corpus"] != CheckError {
		t.Errorf("corpus check = %s", report.Checks["corpus"])
	}
}

func TestCheck_CacheFailureDegraded(t *testing.T) {
	svc := New(&mockCorpus{size: 5}, &mockPinger{err: errors.New("connection refused")})

	report := svc.Check(context.Background())
	if report.Status != Degraded {
		t.Errorf("status = %s, want %s", report.Status, Degraded)
	}
	if report.Checks["cache"] != CheckError {
		t.Errorf("cache check = %s", report.Checks["cache"])
	}
	if report.Checks["corpus"] != CheckOK {
		t.Errorf("corpus check = %s", report.Checks["corpus"])
	}
}

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(&mockCorpus{size: 5}, &mockPinger{})

	report := svc.Check(context.Background())
	if report.Status != Healthy {
		t.Errorf("status = %s, want %s", report.Status, Healthy)
	}
}
