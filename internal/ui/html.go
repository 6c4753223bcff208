package ui

import twmerge "github.com/Oudwins/tailwind-merge-go"

// Class joins tailwind classes and resolves conflicts, last one wins.
func Class(classes ...string) string {
	return twmerge.Merge(classes...)
}
