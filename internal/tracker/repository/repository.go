// Package repository provides read-only data access to the issue tracker.
package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jschweizer/kpi-service/internal/tracker/model"
)

// Repository defines the read interface over issue-tracker data that the
// KPI engine depends on.
type Repository interface {
	// OpenIssueSeverities returns the resolved severity classification of
	// every issue of the project that was open as of the cutoff instant.
	OpenIssueSeverities(ctx context.Context, projectID int64, cutoff time.Time) ([]model.SeverityClassification, error)

	// ResolveProjects expands a project selector into concrete projects.
	ResolveProjects(ctx context.Context, selector string) ([]model.Project, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new tracker repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// OpenIssueSeverities returns the resolved severity classification of every
// issue of the project that was open as of the cutoff instant. An issue is
// open at T iff it was created before T and either is not closed or was
// resolved after T.
func (r *repository) OpenIssueSeverities(ctx context.Context, projectID int64, cutoff time.Time) ([]model.SeverityClassification, error) {
	var issues []model.Issue

	err := r.db.WithContext(ctx).
		Where("project_id = ? AND created < ?", projectID, cutoff).
		Where("status <> ? OR (resolution_date IS NOT NULL AND resolution_date > ?)", model.StatusClosed, cutoff).
		Order("issue_id ASC").
		Find(&issues).Error
	if err != nil {
		r.logger.Errorw("OpenIssueSeverities database error", "project_id", projectID, "error", err)
		return nil, err
	}

	severities := make([]model.SeverityClassification, 0, len(issues))
	for _, issue := range issues {
		severities = append(severities, model.ClassifySeverity(issue.Severity))
	}
	return severities, nil
}

// ResolveProjects expands a project selector into concrete projects.
// Individual tokens that do not parse, or that name no existing project,
// are skipped with a warning rather than failing the whole selector.
func (r *repository) ResolveProjects(ctx context.Context, selector string) ([]model.Project, error) {
	if selector == model.SelectorAllProjects || selector == model.SelectorAllCategories {
		var projects []model.Project
		if err := r.db.WithContext(ctx).Order("project_id ASC").Find(&projects).Error; err != nil {
			r.logger.Errorw("ResolveProjects database error", "error", err)
			return nil, err
		}
		return projects, nil
	}

	var projects []model.Project
	for _, token := range strings.Split(selector, model.SelectorDelimiter) {
		if strings.HasPrefix(token, model.CategoryPrefix) {
			categoryID, err := strconv.ParseInt(token[len(model.CategoryPrefix):], 10, 64)
			if err != nil {
				r.logger.Warnw("skipping unparseable category token", "token", token)
				continue
			}
			var members []model.Project
			if err := r.db.WithContext(ctx).
				Where("category_id = ?", categoryID).
				Order("project_id ASC").
				Find(&members).Error; err != nil {
				r.logger.Errorw("ResolveProjects category query error", "category_id", categoryID, "error", err)
				return nil, err
			}
			projects = append(projects, members...)
			continue
		}

		projectID, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			r.logger.Warnw("skipping unparseable project token", "token", token)
			continue
		}
		var project model.Project
		err = r.db.WithContext(ctx).Where("project_id = ?", projectID).Take(&project).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warnw("skipping unknown project id", "project_id", projectID)
			continue
		}
		if err != nil {
			r.logger.Errorw("ResolveProjects project query error", "project_id", projectID, "error", err)
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, nil
}
