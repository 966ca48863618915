package assets

import "path/filepath"

// Resolve maps a slash-separated logical asset path to a concrete filesystem
// path under root. Pure function, no filesystem access.
func Resolve(root, logical string) string {
	return filepath.Join(root, filepath.FromSlash(logical))
}
