package model

import (
	"strconv"
	"strings"
)

// SeverityKind tags the outcome of resolving an issue's severity field.
type SeverityKind int

const (
	// SeverityParsed means the field held a parseable integer level.
	// The level itself may still be outside the weighted 1..5 range.
	SeverityParsed SeverityKind = iota
	// SeverityAbsent means the issue carries no severity field at all.
	SeverityAbsent
	// SeverityUnparseable means the field is present but not a number.
	SeverityUnparseable
)

// SeverityClassification is the resolved severity of a single issue.
// Level is only meaningful when Kind is SeverityParsed.
type SeverityClassification struct {
	Kind  SeverityKind
	Level int
}

// ClassifySeverity resolves a raw severity field value into a tagged
// classification. The upstream encoding is "<level> - <description>",
// so only the part before the first dash is parsed.
func ClassifySeverity(raw *string) SeverityClassification {
	if raw == nil {
		return SeverityClassification{Kind: SeverityAbsent}
	}

	head, _, _ := strings.Cut(*raw, "-")
	level, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return SeverityClassification{Kind: SeverityUnparseable}
	}

	return SeverityClassification{Kind: SeverityParsed, Level: level}
}
