package models

// Requests for the stock HTTP endpoints. Defined in domain for consistency and reuse.

type QuoteRequest struct {
	Symbol string `json:"symbol" validate:"required,max=12"`
}

// Period carries no oneof constraint: an unrecognized period is
// normalized to the default instead of rejected.
type HistoryRequest struct {
	Symbol string `json:"symbol" validate:"required,max=12"`
	Period string `json:"period" default:"1mo"`
}

type SearchRequest struct {
	Query string `json:"query" validate:"required,min=1,max=64"`
}
