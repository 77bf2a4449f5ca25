// Package rules embeds the versioned guard packs shipped with the binary.
package rules

import "embed"

//go:embed *.yaml
var FS embed.FS
