// Package service provides the KPI engine: cache-or-compute orchestration,
// severity-weight aggregation and timeline assembly.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jschweizer/kpi-service/internal/kpi/cache"
	"github.com/jschweizer/kpi-service/internal/kpi/model"
	"github.com/jschweizer/kpi-service/internal/kpi/timeline"
	trackerModel "github.com/jschweizer/kpi-service/internal/tracker/model"
	"github.com/jschweizer/kpi-service/internal/tracker/repository"
)

// Source tags how a KPI value was obtained.
type Source int

const (
	// SourceComputed means the value was freshly aggregated from issues.
	SourceComputed Source = iota
	// SourceCache means the value was returned verbatim from the cache.
	SourceCache
	// SourceDegraded means the issue snapshot was unobtainable and the
	// value fell back to an empty issue set.
	SourceDegraded
)

// String returns a log-friendly name of the source.
func (s Source) String() string {
	switch s {
	case SourceCache:
		return "cache"
	case SourceDegraded:
		return "degraded"
	default:
		return "computed"
	}
}

// Result is one computed-or-fetched KPI value together with its provenance.
type Result struct {
	Value  float64
	Source Source
}

// Service defines the KPI engine operations.
type Service interface {
	// ComputeOrFetch returns the KPI value of one project at one
	// normalized timestamp, consulting the cache first.
	ComputeOrFetch(ctx context.Context, projectID int64, ts time.Time) Result

	// Timeline assembles the full KPI time-series for a request. A nil
	// result means the parameters resolved to no projects or no valid
	// timestamp sequence.
	Timeline(ctx context.Context, params model.Params) *model.KpiTimeline

	// Validate checks request parameters against domain constraints and
	// returns field-level errors, empty when the request is acceptable.
	Validate(ctx context.Context, params model.Params) []model.ValidationError
}

type service struct {
	repo   repository.Repository
	cache  cache.Cache
	logger *zap.SugaredLogger
	now    func() time.Time
}

// New creates a new KPI service instance.
func New(repo repository.Repository, c cache.Cache, logger *zap.SugaredLogger) Service {
	return NewWithClock(repo, c, logger, time.Now)
}

// NewWithClock creates a KPI service with an injected clock.
func NewWithClock(repo repository.Repository, c cache.Cache, logger *zap.SugaredLogger, now func() time.Time) Service {
	return &service{
		repo:   repo,
		cache:  c,
		logger: logger,
		now:    now,
	}
}

// ComputeOrFetch returns the KPI value of one project at one normalized
// timestamp. A cache hit is trusted unconditionally. On a miss the value is
// aggregated from the issue snapshot and stored best-effort; a snapshot
// failure yields 0 for this request rather than an error.
func (s *service) ComputeOrFetch(ctx context.Context, projectID int64, ts time.Time) Result {
	if value, ok := s.cache.Get(ctx, projectID, ts); ok {
		return Result{Value: value, Source: SourceCache}
	}

	s.logger.Debugw("no cached value, computing", "project_id", projectID, "time", ts)

	source := SourceComputed
	severities, err := s.repo.OpenIssueSeverities(ctx, projectID, ts)
	if err != nil {
		s.logger.Errorw("issue snapshot unobtainable, treating project as empty",
			"project_id", projectID, "time", ts, "error", err)
		severities = nil
		source = SourceDegraded
	}

	value := s.calculateKpi(severities)
	s.cache.Put(ctx, projectID, ts, value)
	return Result{Value: value, Source: source}
}

// calculateKpi sums the severity weights of a set of open issues. Issues
// with an absent or unparseable severity are excluded from the sum, which
// is observable as distinct from a 0-weight out-of-range severity.
func (s *service) calculateKpi(severities []trackerModel.SeverityClassification) float64 {
	var kpi float64
	for _, sev := range severities {
		switch sev.Kind {
		case trackerModel.SeverityAbsent:
			continue
		case trackerModel.SeverityUnparseable:
			s.logger.Debugw("unparseable severity excluded from KPI")
			continue
		default:
			kpi += model.Weight(sev.Level)
		}
	}
	return kpi
}

// Timeline assembles the KPI time-series for a request: one entry per
// (timestamp, project) pair, ordered by ascending time. Malformed or
// unresolvable parameters yield nil rather than an error; no failure of a
// single project aborts the request.
func (s *service) Timeline(ctx context.Context, params model.Params) *model.KpiTimeline {
	if !params.EndIsToday || !params.PeriodValid {
		return nil
	}

	projects, err := s.repo.ResolveProjects(ctx, params.Selector)
	if err != nil {
		s.logger.Errorw("project selector resolution failed", "selector", params.Selector, "error", err)
		return nil
	}
	if len(projects) == 0 {
		return nil
	}

	stamps := timeline.Expand(params.PeriodDays, params.Interval, s.now())
	if len(stamps) == 0 {
		return nil
	}

	kpis := make([]model.KpiAtTime, 0, len(stamps))
	for _, ts := range stamps {
		entries := make([]model.ProjectKpi, 0, len(projects))
		for _, p := range projects {
			res := s.ComputeOrFetch(ctx, p.ProjectID, ts)
			entries = append(entries, model.ProjectKpi{
				ProjectKey: p.ProjectKey,
				ProjectID:  p.ProjectID,
				KpiNumber:  res.Value,
			})
		}
		kpis = append(kpis, model.KpiAtTime{
			Time:       timeline.Label(ts, params.Interval),
			ProjectKPI: entries,
		})
	}

	s.logger.Infow("timeline assembled",
		"projects", len(projects), "timestamps", len(stamps), "interval", params.Interval.String())
	return &model.KpiTimeline{KpisAtTime: kpis}
}

// Validate checks request parameters against domain constraints. The
// dataset-count projection always uses an end of "today", mirroring the
// retrieval path's only supported end value.
func (s *service) Validate(ctx context.Context, params model.Params) []model.ValidationError {
	if params.Selector == "" {
		return []model.ValidationError{{
			Field: "projectId",
			Error: "Please select at least one project or category",
		}}
	}

	if !params.PeriodValid {
		return []model.ValidationError{{
			Field: "period",
			Error: "Please specify the period in days",
		}}
	}
	if params.PeriodDays > model.PeriodMaximum {
		return []model.ValidationError{{
			Field: "period",
			Error: "Please do not specify a date more than 20 years ago",
		}}
	}

	stamps := timeline.Expand(params.PeriodDays, params.Interval, s.now())
	projects, err := s.repo.ResolveProjects(ctx, params.Selector)
	if err != nil {
		s.logger.Errorw("project selector resolution failed during validation",
			"selector", params.Selector, "error", err)
		projects = nil
	}
	if len(stamps)*len(projects) > model.MaxDatasets {
		return []model.ValidationError{{
			Field: "interval",
			Error: "You requested too many datasets, please reduce the period, interval or the number of projects",
		}}
	}

	return nil
}
