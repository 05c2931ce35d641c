package plan

import (
	"fmt"
	"strings"
)

// Severity classifies a validation issue
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityWarning  Severity = "WARNING"
	SeverityInfo     Severity = "INFO"
)

// IssueCode is a stable identifier for a validation issue. These codes are
// part of the API contract and must not change.
type IssueCode string

const (
	CodeAllergenDetected      IssueCode = "ALLERGEN_DETECTED"
	CodeAllergenAliasDetected IssueCode = "ALLERGEN_ALIAS_DETECTED"
	CodeDietTypeViolation     IssueCode = "DIET_TYPE_VIOLATION"
	CodeExtremeCalorieDrift   IssueCode = "EXTREME_CALORIE_DRIFT"
	CodeModerateCalorieDrift  IssueCode = "MODERATE_CALORIE_DRIFT"
	CodeMissingRequiredFields IssueCode = "MISSING_REQUIRED_FIELDS"
	CodeLowProtein            IssueCode = "LOW_PROTEIN"
	CodeLowVariety            IssueCode = "LOW_VARIETY"
	CodeInvalidExercise       IssueCode = "INVALID_EXERCISE"
	CodeExerciseSubstituted   IssueCode = "EXERCISE_SUBSTITUTED"
)

// ValidationIssue is a single immutable finding produced by a validator
type ValidationIssue struct {
	Severity Severity               `json:"severity"`
	Code     IssueCode              `json:"code"`
	Message  string                 `json:"message"`
	Context  map[string]interface{} `json:"context,omitempty"`
}

// NewIssue creates a validation issue with optional context key/value pairs,
// supplied as alternating key, value arguments.
func NewIssue(severity Severity, code IssueCode, message string, kv ...interface{}) ValidationIssue {
	issue := ValidationIssue{Severity: severity, Code: code, Message: message}
	if len(kv) > 0 {
		issue.Context = make(map[string]interface{}, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			key, ok := kv[i].(string)
			if !ok {
				key = fmt.Sprintf("%v", kv[i])
			}
			issue.Context[key] = kv[i+1]
		}
	}
	return issue
}

// ValidationResult aggregates every issue found during validation. Checks
// never short-circuit: the full list is always present so callers can
// diagnose without re-running the pipeline.
type ValidationResult struct {
	Errors   []ValidationIssue `json:"errors"`
	Warnings []ValidationIssue `json:"warnings"`
	Infos    []ValidationIssue `json:"infos,omitempty"`
}

// Add routes an issue into the matching severity bucket
func (r *ValidationResult) Add(issue ValidationIssue) {
	switch issue.Severity {
	case SeverityCritical:
		r.Errors = append(r.Errors, issue)
	case SeverityWarning:
		r.Warnings = append(r.Warnings, issue)
	default:
		r.Infos = append(r.Infos, issue)
	}
}

// Merge appends all issues from other into r
func (r *ValidationResult) Merge(other ValidationResult) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Infos = append(r.Infos, other.Infos...)
}

// IsValid reports whether the result contains no CRITICAL issue
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// HasWarning reports whether a warning with the given code is present
func (r *ValidationResult) HasWarning(code IssueCode) bool {
	for _, w := range r.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}

// ValidationError carries a failed ValidationResult across the pipeline
// boundary as an error value. Expected business failures travel this way;
// panics are reserved for genuinely unexpected conditions.
type ValidationError struct {
	Result ValidationResult
}

// Error implements the error interface with the full list of critical codes
func (e *ValidationError) Error() string {
	codes := make([]string, len(e.Result.Errors))
	for i, issue := range e.Result.Errors {
		codes[i] = string(issue.Code)
	}
	return fmt.Sprintf("plan validation failed: %s", strings.Join(codes, ", "))
}
