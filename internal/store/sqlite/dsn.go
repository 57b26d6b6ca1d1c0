package sqlite

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// parseDSN turns a sqlite:// DSN into the driver path. Relative paths are
// anchored with ./ so the driver does not treat them as URI authorities;
// query parameters pass through untouched.
func parseDSN(dsn string) (string, error) {
	if !strings.HasPrefix(dsn, "sqlite://") {
		return "", fmt.Errorf("invalid sqlite DSN scheme, expected sqlite://")
	}

	rest := strings.TrimPrefix(dsn, "sqlite://")
	if rest == ":memory:" {
		return ":memory:", nil
	}

	query := ""
	if i := strings.Index(rest, "?"); i >= 0 {
		query = rest[i:]
		rest = rest[:i]
	}

	path, err := url.PathUnescape(rest)
	if err != nil {
		return "", fmt.Errorf("unescaping path: %w", err)
	}
	if path == "" {
		return "", fmt.Errorf("empty sqlite path")
	}
	if !filepath.IsAbs(path) && !strings.HasPrefix(path, "./") {
		path = "./" + path
	}
	return path + query, nil
}
