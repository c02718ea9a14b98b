// Package model contains data structures for the search configuration, search-node DTOs and error kinds
package model

// IgnoreCaseEnv - presence of this variable switches the search to case-insensitive mode, value is not checked
const IgnoreCaseEnv = "IGNORE_CASE"

// SearchConfig - resolved launch parameters of one CLI invocation
type SearchConfig struct {
	Query      string
	FilePath   string
	IgnoreCase bool
}

// NodeInit - launch parameters of a search-node
type NodeInit struct {
	Address string
}

type SearchRequest struct {
	Query      string `json:"query"`
	Content    string `json:"content"`
	IgnoreCase bool   `json:"ignore_case"`
}

type SearchResult struct {
	RequestID string   `json:"rid"`
	HashSumm  uint64   `json:"hash"`
	Matches   []string `json:"matches"`
}
