package model

// ValidationError is a single field-level validation failure.
// Params is kept nullable to match the established wire shape.
type ValidationError struct {
	Field  string   `json:"field"`
	Error  string   `json:"error"`
	Params []string `json:"params"`
}

// ErrorCollection is the 400 response body of the validate endpoint.
type ErrorCollection struct {
	ErrorMessages []string          `json:"errorMessages"`
	Errors        []ValidationError `json:"errors"`
}

// NewErrorCollection wraps field errors into the response envelope.
func NewErrorCollection(errs []ValidationError) ErrorCollection {
	return ErrorCollection{
		ErrorMessages: []string{},
		Errors:        errs,
	}
}

// ProjectKpi is one project's KPI value at one point of the timeline.
type ProjectKpi struct {
	ProjectKey string  `json:"projectKey" xml:"projectKey"`
	ProjectID  int64   `json:"projectId" xml:"projectId"`
	KpiNumber  float64 `json:"KpiNumber" xml:"KpiNumber"`
}

// KpiAtTime collects the per-project KPI values of one timeline bucket.
type KpiAtTime struct {
	Time       string       `json:"Time" xml:"Time"`
	ProjectKPI []ProjectKpi `json:"ProjectKPI" xml:"ProjectKPI"`
}

// KpiTimeline is the getKpis response body, ordered by ascending time.
type KpiTimeline struct {
	KpisAtTime []KpiAtTime `json:"KpisAtTime" xml:"KpisAtTime"`
}
