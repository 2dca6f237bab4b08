package models

import "strings"

// ParseIDs splits a comma-separated identifier list. Entries are trimmed and
// empty entries dropped; duplicates are kept.
func ParseIDs(s string) []string {
	parts := strings.Split(s, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}
