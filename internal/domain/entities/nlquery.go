package entities

// SQLResult holds the outcome of a read-only SQL execution
type SQLResult struct {
	Data     []map[string]interface{} `json:"data"`
	Columns  []string                 `json:"columns"`
	RowCount int                      `json:"row_count"`
	Query    string                   `json:"query"`
}

// ConvertedQuery holds the LLM's SQL translation of a natural language query
type ConvertedQuery struct {
	SQL         string `json:"sql"`
	Explanation string `json:"explanation"`
	RawResponse string `json:"raw_response,omitempty"`
}

// NLQueryInput is the request body for natural language queries
type NLQueryInput struct {
	Query string `json:"query" binding:"required"`
	Limit int    `json:"limit"`
}

// SQLQueryInput is the request body for direct SQL execution
type SQLQueryInput struct {
	SQL   string `json:"sql" binding:"required"`
	Limit int    `json:"limit"`
}
