// embed.go - asset embedding declarations.
// Must live in the project root (next to assets/) because //go:embed can
// only reach files under the declaring package's directory.
package main

import "embed"

//go:embed assets/levels
var levelsFS embed.FS
