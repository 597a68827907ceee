package caseset

import "embed"

// builtinCasesFS embeds the built-in case sets: the shared set with open
// expectations and the hidden set used for grading-style runs.
//
//go:embed cases/shared/*.yml cases/hidden/*.yml
var builtinCasesFS embed.FS
