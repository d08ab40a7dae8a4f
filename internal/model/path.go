package model

import "strings"

// Path represents a file system path.
type Path string

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// CodeExt is the extension class of a bundled entry: ".cjs" keeps CommonJS
// semantics explicit, everything else is emitted as ".js".
func CodeExt(entry Path) string {
	if strings.HasSuffix(string(entry), ".cjs") {
		return ".cjs"
	}

	return ".js"
}
