package model

// Severity weights determined by product management. A parsed severity
// outside the 1..5 range contributes nothing to the aggregate.
var severityWeights = map[int]float64{
	1: 0.5, // 1 * 0.5
	2: 1.2, // 2 * 0.6
	3: 3.0, // 3 * 1
	4: 6.0, // 4 * 1.5
	5: 9.0, // 5 * 1.8
}

// Weight returns the KPI contribution of a parsed severity level.
// Out-of-range levels weigh 0.
func Weight(level int) float64 {
	return severityWeights[level]
}
