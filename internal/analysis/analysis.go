// Package analysis holds the document analysis result served to the review
// dashboard, together with the provider that produces it and derives summary
// metrics from it.
package analysis

import "github.com/drishti-labs/drishti/internal/ledger"

// Completeness statuses.
const (
	StatusFound    = "Found"
	StatusNotFound = "Not Found"
)

// Inconsistency check statuses.
const (
	StatusMatch    = "Match"
	StatusMismatch = "Mismatch"
)

// Risk and impact levels.
const (
	LevelLow    = "Low"
	LevelMedium = "Medium"
	LevelHigh   = "High"
)

// Benchmark statuses.
const (
	BenchmarkBelowAverage = "Below Average"
	BenchmarkAverage      = "Average"
	BenchmarkAboveAverage = "Above Average"
)

// HighlightBox locates an extracted value on a rendered page, expressed as
// CSS percentage offsets.
type HighlightBox struct {
	Top    string `json:"top"`
	Left   string `json:"left"`
	Width  string `json:"width"`
	Height string `json:"height"`
}

// EntitySource points at the page image an entity was extracted from.
type EntitySource struct {
	PageImage    string       `json:"pageImage"`
	HighlightBox HighlightBox `json:"highlightBox"`
}

// ExtractedEntity is a single data point pulled from the document.
type ExtractedEntity struct {
	DataPoint string       `json:"dataPoint"`
	Value     string       `json:"value"`
	Source    EntitySource `json:"source"`
}

// CompletenessItem records whether a required section was found.
type CompletenessItem struct {
	Item   string `json:"item"`
	Status string `json:"status"`
}

// RiskPrediction is a single predicted risk with probability in percent.
type RiskPrediction struct {
	Probability int    `json:"probability"`
	Level       string `json:"level"`
}

// RiskAssessment groups the predicted delivery risks.
type RiskAssessment struct {
	CostOverrun   RiskPrediction `json:"costOverrun"`
	ScheduleDelay RiskPrediction `json:"scheduleDelay"`
}

// InconsistencyCheck compares a stated figure against its recalculated value.
type InconsistencyCheck struct {
	Check           string `json:"check"`
	StatedValue     string `json:"statedValue"`
	CalculatedValue string `json:"calculatedValue"`
	Status          string `json:"status"`
}

// ProjectSummary carries the headline facts of the project.
type ProjectSummary struct {
	ProjectTitle       string `json:"projectTitle"`
	TotalCost          string `json:"totalCost"`
	Region             string `json:"region,omitempty"`
	Category           string `json:"category,omitempty"`
	Duration           string `json:"duration,omitempty"`
	ImplementingAgency string `json:"implementingAgency,omitempty"`
	ProjectLength      string `json:"projectLength,omitempty"`
	Carriageway        string `json:"carriageway,omitempty"`
}

// Benchmark compares a project metric against the regional average.
type Benchmark struct {
	Metric       string  `json:"metric"`
	ProjectValue float64 `json:"projectValue"`
	AverageValue float64 `json:"averageValue"`
	Unit         string  `json:"unit"`
	Status       string  `json:"status"`
}

// RiskFactor is a qualitative risk surfaced from the document text.
type RiskFactor struct {
	Factor      string `json:"factor"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
}

// Location is the project site used for the dashboard map.
type Location struct {
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	LocationName string  `json:"locationName"`
}

// Analysis is the complete analysis result for one document. AuditLog is
// populated from the ledger at read time and always reflects the full trail.
type Analysis struct {
	FileName          string               `json:"fileName"`
	HealthScore       int                  `json:"dprHealthScore"`
	Summary           ProjectSummary       `json:"summary"`
	Completeness      []CompletenessItem   `json:"completeness"`
	RiskPrediction    RiskAssessment       `json:"riskPrediction"`
	Inconsistencies   []InconsistencyCheck `json:"inconsistencies"`
	ExtractedEntities []ExtractedEntity    `json:"extractedEntities"`
	Benchmarks        []Benchmark          `json:"benchmarks,omitempty"`
	RiskFactors       []RiskFactor         `json:"riskFactors,omitempty"`
	Location          *Location            `json:"location,omitempty"`
	AuditLog          []ledger.Entry       `json:"auditLog"`
}
