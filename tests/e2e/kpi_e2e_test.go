//go:build e2e
// +build e2e

package e2e

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kpiModel "github.com/jschweizer/kpi-service/internal/kpi/model"
)

func (s *E2ETestSuite) getJSON(path string, out interface{}) *http.Response {
	resp, err := s.httpClient.Get(s.url(path))
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)
	if out != nil && len(body) > 0 {
		require.NoError(s.T(), json.Unmarshal(body, out))
	}
	return resp
}

func (s *E2ETestSuite) TestHealth() {
	resp, err := s.httpClient.Get(s.url("/health"))
	require.NoError(s.T(), err)
	defer resp.Body.Close()
	assert.Equal(s.T(), http.StatusOK, resp.StatusCode)
}

func (s *E2ETestSuite) TestGetKpisDailyTimeline() {
	s.seedProjects()

	var body kpiModel.KpiTimeline
	resp := s.getJSON("/key-performance/getKpis?projectId=allprojects&period=7&interval=daily&end=today", &body)

	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	require.Len(s.T(), body.KpisAtTime, 7)

	entries := 0
	for _, at := range body.KpisAtTime {
		require.Len(s.T(), at.ProjectKPI, 2)
		assert.InDelta(s.T(), 10.2, at.ProjectKPI[0].KpiNumber, 1e-9) // ALPHA: 9.0 + 1.2
		assert.InDelta(s.T(), 3.0, at.ProjectKPI[1].KpiNumber, 1e-9)  // BETA: 3.0
		entries += len(at.ProjectKPI)
	}
	assert.Equal(s.T(), 14, entries)
}

func (s *E2ETestSuite) TestGetKpisPopulatesCache() {
	s.seedProjects()

	var body kpiModel.KpiTimeline
	resp := s.getJSON("/key-performance/getKpis?projectId=1&period=5&interval=daily&end=today", &body)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	require.Len(s.T(), body.KpisAtTime, 5)

	var cached int64
	require.NoError(s.T(), s.db.Table("cached_kpi_numbers").Count(&cached).Error)
	assert.Equal(s.T(), int64(5), cached)

	// identical request must not grow the cache
	resp = s.getJSON("/key-performance/getKpis?projectId=1&period=5&interval=daily&end=today", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	require.NoError(s.T(), s.db.Table("cached_kpi_numbers").Count(&cached).Error)
	assert.Equal(s.T(), int64(5), cached)
}

func (s *E2ETestSuite) TestGetKpisCategorySelector() {
	s.seedProjects()

	var body kpiModel.KpiTimeline
	resp := s.getJSON("/key-performance/getKpis?projectId=cat1&period=3&interval=daily&end=today", &body)

	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	require.Len(s.T(), body.KpisAtTime, 3)
	for _, at := range body.KpisAtTime {
		require.Len(s.T(), at.ProjectKPI, 1)
		assert.Equal(s.T(), "ALPHA", at.ProjectKPI[0].ProjectKey)
	}
}

func (s *E2ETestSuite) TestGetKpisNullBodyForEmptySelection() {
	resp, err := s.httpClient.Get(s.url("/key-performance/getKpis?projectId=999&period=7&interval=daily&end=today"))
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), http.StatusOK, resp.StatusCode)
	assert.Equal(s.T(), "null", string(body))
}

func (s *E2ETestSuite) TestValidateOK() {
	s.seedProjects()

	resp, err := s.httpClient.Get(s.url("/key-performance/validate?projectId=allprojects&period=30&interval=weekly&end=today"))
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), http.StatusOK, resp.StatusCode)
	assert.Empty(s.T(), body)
}

func (s *E2ETestSuite) TestValidateRejectsOversizedPeriod() {
	s.seedProjects()

	var body kpiModel.ErrorCollection
	resp := s.getJSON("/key-performance/validate?projectId=allprojects&period=99999&interval=daily&end=today", &body)

	require.Equal(s.T(), http.StatusBadRequest, resp.StatusCode)
	require.Len(s.T(), body.Errors, 1)
	assert.Equal(s.T(), "period", body.Errors[0].Field)
}
