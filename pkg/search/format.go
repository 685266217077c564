package search

import (
	"fmt"
	"strings"
)

// Markdown renders results as a numbered markdown list suitable for a LLM
// context window.
func Markdown(results []Result) string {
	var sb strings.Builder

	sb.WriteString("# Search results\n\n")

	if len(results) == 0 {
		sb.WriteString("No result.\n")
		return sb.String()
	}

	for i, r := range results {
		sb.WriteString(fmt.Sprintf("## %d. %s\n\n", i+1, r.Title))
		sb.WriteString(fmt.Sprintf("**URL**: %s\n", r.URL))
		if r.Source != "" {
			sb.WriteString(fmt.Sprintf("**Source**: %s\n", r.Source))
		}
		sb.WriteString(fmt.Sprintf("**Description**:\n%s\n\n", r.Description))
	}

	return sb.String()
}
