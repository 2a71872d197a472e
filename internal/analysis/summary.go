package analysis

import "github.com/drishti-labs/drishti/internal/ledger"

// Summary is the condensed dashboard view of an analysis: the counts the
// overview cards display instead of the full result payload.
type Summary struct {
	FileName         string `json:"fileName"`
	HealthScore      int    `json:"dprHealthScore"`
	ItemsFound       int    `json:"itemsFound"`
	ItemsMissing     int    `json:"itemsMissing"`
	ChecksMatched    int    `json:"checksMatched"`
	ChecksMismatched int    `json:"checksMismatched"`
	HighImpactRisks  int    `json:"highImpactRisks"`
	Decisions        int    `json:"decisions"`
}

// Summarize derives the summary counts from a complete analysis. Decisions
// counts reviewer decisions only; system events in the audit trail are
// excluded.
func Summarize(a *Analysis) Summary {
	s := Summary{
		FileName:    a.FileName,
		HealthScore: a.HealthScore,
	}

	for _, item := range a.Completeness {
		if item.Status == StatusFound {
			s.ItemsFound++
		} else {
			s.ItemsMissing++
		}
	}

	for _, check := range a.Inconsistencies {
		if check.Status == StatusMatch {
			s.ChecksMatched++
		} else {
			s.ChecksMismatched++
		}
	}

	for _, risk := range a.RiskFactors {
		if risk.Impact == LevelHigh {
			s.HighImpactRisks++
		}
	}

	for _, entry := range a.AuditLog {
		if ledger.IsDecisionLabel(entry.Action) {
			s.Decisions++
		}
	}

	return s
}
