package usecase

import (
	"context"
	"time"

	"github.com/allisson/gatekeeper/internal/access/domain"
	"github.com/allisson/gatekeeper/internal/metrics"
)

const metricsDomain = "access"

// accessUseCaseWithMetrics decorates AccessUseCase with metrics instrumentation.
type accessUseCaseWithMetrics struct {
	next    AccessUseCase
	metrics metrics.BusinessMetrics
}

// NewAccessUseCaseWithMetrics wraps an AccessUseCase with metrics recording.
func NewAccessUseCaseWithMetrics(useCase AccessUseCase, m metrics.BusinessMetrics) AccessUseCase {
	return &accessUseCaseWithMetrics{next: useCase, metrics: m}
}

func (a *accessUseCaseWithMetrics) Resolve(ctx context.Context, appID, appKey string) (*domain.AccessResult, error) {
	start := time.Now()
	result, err := a.next.Resolve(ctx, appID, appKey)

	status := "success"
	if err != nil {
		status = "error"
	}
	a.metrics.RecordOperation(ctx, metricsDomain, "access_resolve", status)
	a.metrics.RecordDuration(ctx, metricsDomain, "access_resolve", time.Since(start), status)

	return result, err
}
