package domain

import "time"

// ClauseDetail describes how a single clause fared against a feature set
type ClauseDetail struct {
	Clause       ClauseName `json:"clause"`
	Matched      bool       `json:"matched"`
	Hits         []string   `json:"hits,omitempty"`
	Observed     string     `json:"observed,omitempty"`
	Contribution float64    `json:"contribution"`
}

// ExecutionResult is the outcome of evaluating one rule against one content item
type ExecutionResult struct {
	RuleID            string         `json:"rule_id"`
	RuleName          string         `json:"rule_name"`
	CategoryID        int64          `json:"category_id"`
	ContentID         int64          `json:"content_id"`
	Matched           bool           `json:"matched"`
	Confidence        float64        `json:"confidence"`
	MatchedConditions []ClauseName   `json:"matched_conditions"`
	Details           []ClauseDetail `json:"details"`
	ExecutionTime     time.Duration  `json:"execution_time"`
	EvaluatedAt       time.Time      `json:"evaluated_at"`
}

// RuleFailure records a rule that could not be evaluated during a run
type RuleFailure struct {
	RuleID   string `json:"rule_id"`
	RuleName string `json:"rule_name"`
	Error    string `json:"error"`
}

// RunReport is the outcome of running all active rules against one content item.
// Results holds matched results only, in rule priority order.
type RunReport struct {
	ContentID int64             `json:"content_id"`
	Results   []ExecutionResult `json:"results"`
	Failures  []RuleFailure     `json:"failures,omitempty"`
	Evaluated int               `json:"evaluated"`
	Duration  time.Duration     `json:"duration"`
}

// LedgerEntry is the persisted form of a matching execution result
type LedgerEntry struct {
	ID         int64           `json:"id"`
	RuleID     string          `json:"rule_id"`
	ContentID  int64           `json:"content_id"`
	Result     ExecutionResult `json:"result"`
	Confidence float64         `json:"confidence"`
	CreatedAt  time.Time       `json:"created_at"`
}

// LedgerFilter represents filtering and pagination criteria for ledger entries
type LedgerFilter struct {
	RuleID        string
	ContentID     int64
	MinConfidence float64
	Since         time.Time
	Until         time.Time
	Limit         int
	Offset        int
}

// RuleStats holds aggregate statistics over the most recent ledger entries of a rule
type RuleStats struct {
	RuleID               string        `json:"rule_id"`
	TotalExecutions      int           `json:"total_executions"`
	SuccessfulExecutions int           `json:"successful_executions"`
	SuccessRate          float64       `json:"success_rate"`
	AverageConfidence    float64       `json:"average_confidence"`
	RecentExecutions     []LedgerEntry `json:"recent_executions"`
}

// BatchSummary reports the outcome of one auto-categorization batch
type BatchSummary struct {
	Selected  int           `json:"selected"`  // uncategorized items picked up
	Processed int           `json:"processed"` // items that ran without error
	Assigned  int           `json:"assigned"`  // items that received a category
	Failed    int           `json:"failed"`    // items whose processing failed
	Skipped   int           `json:"skipped"`   // processed items left uncategorized
	Duration  time.Duration `json:"duration"`
}
