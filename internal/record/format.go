package record

import "strings"

// DefaultSeparator is used by JoinList when no separator is given.
const DefaultSeparator = ", "

// JoinList formats a list of items into a single string.
func JoinList(items []string, sep string) string {
	if sep == "" {
		sep = DefaultSeparator
	}
	return strings.Join(items, sep)
}

// Duplicates returns the items that appear more than once, in the order
// their repeats are encountered. An item seen n times contributes n-1
// entries.
func Duplicates(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	var dups []string
	for _, item := range items {
		if _, ok := seen[item]; ok {
			dups = append(dups, item)
		} else {
			seen[item] = struct{}{}
		}
	}
	return dups
}
