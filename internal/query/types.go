package query

import "time"

// Error codes surfaced in QueryResponse.Errors. The engine never returns a
// Go error to its caller; every failure mode is one of these.
const (
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeInvalidQuery = "INVALID_QUERY"
	ErrCodePartsCreate  = "PARTS_CREATE_NOT_SUPPORTED"
	ErrCodeProcessing   = "PROCESSING_ERROR"
)

type Request struct {
	Query     string
	SessionID string
}

// Header carries the identifying fields pulled from the query. Absent
// identifiers are null in JSON, never empty strings, so callers can tell
// "not found" from "found but empty".
type Header struct {
	ContractNumber *string `json:"contractNumber"`
	PartNumber     *string `json:"partNumber"`
	CustomerNumber *string `json:"customerNumber"`
	CustomerName   *string `json:"customerName"`
	CreatedBy      *string `json:"createdBy"`
}

func (h Header) Empty() bool {
	return h.ContractNumber == nil && h.PartNumber == nil && h.CustomerNumber == nil &&
		h.CustomerName == nil && h.CreatedBy == nil
}

type Metadata struct {
	QueryID               string    `json:"queryId"`
	OriginalQuery         string    `json:"originalQuery"`
	CorrectedQuery        string    `json:"correctedQuery"`
	HasSpellCorrections   bool      `json:"hasSpellCorrections"`
	QueryType             string    `json:"queryType"`
	ActionType            string    `json:"actionType"`
	Reason                string    `json:"reason,omitempty"`
	BusinessRuleViolation bool      `json:"businessRuleViolation,omitempty"`
	ProcessingTimeMs      int64     `json:"processingTimeMs"`
	Timestamp             time.Time `json:"timestamp"`
	CacheHit              bool      `json:"cacheHit,omitempty"`
}

// Filter is one extracted entity expressed as an attribute/operator/value
// triple the portal can turn into a search condition.
type Filter struct {
	Attribute string `json:"attribute"`
	Operator  string `json:"operator"`
	Value     string `json:"value"`
}

type ResponseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type QueryResponse struct {
	Header          Header          `json:"header"`
	Metadata        Metadata        `json:"queryMetadata"`
	Entities        []Filter        `json:"entities"`
	DisplayEntities []string        `json:"displayEntities"`
	Errors          []ResponseError `json:"errors"`
}

func (r *QueryResponse) HasError(code string) bool {
	for _, e := range r.Errors {
		if e.Code == code {
			return true
		}
	}
	return false
}
