package model

// Project selector sentinels and markers, as supplied in the projectId
// query parameter.
const (
	// SelectorAllProjects requests every project.
	SelectorAllProjects = "allprojects"
	// SelectorAllCategories also requests every project.
	SelectorAllCategories = "catallCategories"
	// CategoryPrefix marks a token as a category id rather than a project id.
	CategoryPrefix = "cat"
	// SelectorDelimiter separates tokens in a multi-valued selector.
	SelectorDelimiter = "|"
)
