// Package assets embeds the default word lists shipped with the binary.
package assets

import "embed"

//go:embed allowed.txt answers.txt
var FS embed.FS

// Names of the embedded lists inside FS.
const (
	AnswersFile = "answers.txt"
	AllowedFile = "allowed.txt"
)
