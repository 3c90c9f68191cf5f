package domain

import (
	"fmt"
	"strings"
)

// SplitPath decomposes a slash-delimited container path into its segment
// names. A leading slash and a single trailing slash are ignored. An empty
// result, an empty interior segment, or a "." / ".." segment is rejected
// with ErrInvalidPath.
func SplitPath(path string) ([]string, error) {
	parts := strings.Split(path, "/")
	if len(parts) > 0 && parts[0] == "" {
		parts = parts[1:]
	}
	if len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty path %q: %w", path, ErrInvalidPath)
	}
	for _, p := range parts {
		switch p {
		case "":
			return nil, fmt.Errorf("empty segment in path %q: %w", path, ErrInvalidPath)
		case ".", "..":
			return nil, fmt.Errorf("relative segment %q in path %q: %w", p, path, ErrInvalidPath)
		}
	}
	return parts, nil
}

// SplitFilePath separates a remote file path into its folder path and file
// name. The folder is "" when the file sits directly under the root.
func SplitFilePath(path string) (dir, name string, err error) {
	idx := strings.LastIndex(path, "/")
	name = path[idx+1:]
	if name == "" || name == "." || name == ".." {
		return "", "", fmt.Errorf("no file name in path %q: %w", path, ErrInvalidPath)
	}
	if idx > 0 {
		dir = path[:idx]
	}
	return dir, name, nil
}
