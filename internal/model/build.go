// Package model defines the data structures shared by the zipup pipeline.
package model

import (
	"encoding/json"
	"os"
	"strings"
)

// DefaultFilename is the stem of the main code entry when none is given.
const DefaultFilename = "index"

// DefaultArchiveName is the archive written when no output path is given.
const DefaultArchiveName = "dist.zip"

// DefaultCompression is the deflate level used for archive entries.
const DefaultCompression = 5

const (
	executableMode os.FileMode = 0o777
	regularMode    os.FileMode = 0o666
)

// BuildConfig is the effective build configuration for one invocation.
type BuildConfig struct {
	External  []string `json:"external,omitempty" yaml:"external,omitempty" toml:"external,omitempty"`
	Minify    bool     `json:"minify,omitempty" yaml:"minify,omitempty" toml:"minify,omitempty"`
	SourceMap bool     `json:"sourceMap,omitempty" yaml:"sourceMap,omitempty" toml:"sourceMap,omitempty"`
	Quiet     bool     `json:"quiet,omitempty" yaml:"quiet,omitempty" toml:"quiet,omitempty"`
	License   string   `json:"license,omitempty" yaml:"license,omitempty" toml:"license,omitempty"`
	Target    string   `json:"target,omitempty" yaml:"target,omitempty" toml:"target,omitempty"`
}

// Asset is a named artifact of a build other than the main code and its map.
type Asset struct {
	Content []byte
	Mode    os.FileMode
}

// BuildResult is what the bundler hands over for a single (re)build.
type BuildResult struct {
	Code     string
	Map      string // empty when no source map was produced
	Assets   map[string]Asset
	Symlinks map[string]string
	Stats    json.RawMessage
	Err      error // set on failed watch-mode rebuilds
}

// HasMap reports whether the result carries a source map.
func (r BuildResult) HasMap() bool {
	return r.Map != ""
}

// CodeMode returns the permission bits of the main code entry. Code starting
// with an interpreter directive is executable.
func CodeMode(code string) os.FileMode {
	if strings.HasPrefix(code, "#!") {
		return executableMode
	}

	return regularMode
}
