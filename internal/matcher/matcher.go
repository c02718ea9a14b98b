// Package matcher selects the lines of a text containing the query - as is or case-insensitive
package matcher

import "strings"

// Search returns every line of content containing query, in the original order.
// An empty query matches every line.
func Search(query, content string) []string {
	result := []string{}
	for _, line := range Lines(content) {
		if strings.Contains(line, query) {
			result = append(result, line)
		}
	}
	return result
}

// SearchCaseInsensitive works like Search but compares lower-cased forms of query and line,
// returned lines keep their original case. Folding is strings.ToLower, i.e. Unicode simple
// lowercase mapping without any normalization.
func SearchCaseInsensitive(query, content string) []string {
	query = strings.ToLower(query)

	result := []string{}
	for _, line := range Lines(content) {
		if strings.Contains(strings.ToLower(line), query) {
			result = append(result, line)
		}
	}
	return result
}

// Lines splits content by '\n', a '\r' right before it is dropped too.
// Final line break doesn't produce an extra empty line, empty content has no lines.
func Lines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")

	lines := strings.Split(content, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	return lines
}
