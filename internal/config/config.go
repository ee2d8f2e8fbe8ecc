// Package config loads the optional .flocc.toml file that lets a run add
// ignore globs and override extension-to-kind classification without
// touching the command line. It is purely additive: a run with no config
// file behaves exactly as if none of this package existed.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/BurntSushi/toml"

	"flocc/internal/flocerr"
	"flocc/internal/model"
)

// Config is the decoded shape of .flocc.toml.
type Config struct {
	Ignore     IgnoreConfig         `toml:"ignore"`
	Extensions map[string]string    `toml:"extensions"`
}

// IgnoreConfig lists glob patterns (matched against the path relative to
// the walk root, using filepath.Match semantics per path segment) whose
// matches are classified model.Ignore before the extension classifier
// ever sees them.
type IgnoreConfig struct {
	Globs []string `toml:"globs"`
}

// FileName is the config file flocc looks for at the root of each
// filesystem argument.
const FileName = ".flocc.toml"

// Load reads and decodes dir/.flocc.toml. A missing file is not an error:
// it returns a zero-value Config and a nil error, so callers can always
// call Load unconditionally and get sane defaults.
func Load(dir string) (Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) || errors.Is(err, syscall.ENOTDIR) {
			return Config{}, nil
		}
		return Config{}, &flocerr.PathError{Path: path, Err: err}
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, &flocerr.PathError{Path: path, Err: flocerr.ErrConfigInvalid}
	}
	return cfg, nil
}

// kindByLabel inverts model's label table for the few labels an operator
// is likely to type into an [extensions] override.
var kindByLabel = buildKindByLabel()

func buildKindByLabel() map[string]model.FileKind {
	out := make(map[string]model.FileKind)
	for _, k := range model.Kinds() {
		out[k.String()] = k
	}
	return out
}

// ResolveExtension looks up an operator-supplied kind label (e.g. "Text",
// "JavaScript") from the [extensions] table, returning false if the label
// isn't recognized so callers can warn and ignore the override rather
// than silently misclassifying every matching file as Unknown.
func (c Config) ResolveExtension(ext string) (model.FileKind, bool) {
	label, ok := c.Extensions[ext]
	if !ok {
		return model.Unknown, false
	}
	kind, ok := kindByLabel[label]
	return kind, ok
}

// Matches reports whether rel (a path relative to the walk root, using
// forward slashes) matches any configured ignore glob. Each glob is
// matched against the full relative path as well as against rel's
// basename, so both "vendor/**"-style and "*.min.js"-style patterns behave
// the way an operator expects from filepath.Match's single-segment "*".
func (c IgnoreConfig) Matches(rel string) bool {
	base := filepath.Base(rel)
	for _, g := range c.Globs {
		if prefix, ok := strings.CutSuffix(g, "/**"); ok {
			if rel == prefix || strings.HasPrefix(rel, prefix+"/") {
				return true
			}
			continue
		}
		if ok, _ := filepath.Match(g, rel); ok {
			return true
		}
		if ok, _ := filepath.Match(g, base); ok {
			return true
		}
	}
	return false
}
