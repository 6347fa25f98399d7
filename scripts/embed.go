package scripts

import "embed"

// FS contains bundled screen scripts shipped with the binary.
//
//go:embed *.yaml
var FS embed.FS
