package domain

// ResultStatus tags the variant of an OperationResult
type ResultStatus string

const (
	ResultSuccess       ResultStatus = "operation_success"
	ResultClarification ResultStatus = "clarification_needed"
	ResultError         ResultStatus = "error"
)

// OperationResult is the single outcome of one Execute call. Exactly one
// variant is produced per call: Data is only set on success, Suggestions only
// on clarification/error.
type OperationResult struct {
	Status      ResultStatus
	Message     string
	Impact      string // one-line balance/planning effect, success only
	Data        any    // the created record, success only
	Suggestions []string
	OperationID string // ledger key for rollback, set on mutating success
}

// Success builds the operation_success variant
func Success(message, impact string, data any) OperationResult {
	return OperationResult{
		Status:  ResultSuccess,
		Message: message,
		Impact:  impact,
		Data:    data,
	}
}

// Clarification builds the clarification_needed variant. Suggestions carry
// example phrasings or concrete alternatives for the user.
func Clarification(message string, suggestions ...string) OperationResult {
	return OperationResult{
		Status:      ResultClarification,
		Message:     message,
		Suggestions: suggestions,
	}
}

// Failure builds the error variant
func Failure(message string, suggestions ...string) OperationResult {
	return OperationResult{
		Status:      ResultError,
		Message:     message,
		Suggestions: suggestions,
	}
}
