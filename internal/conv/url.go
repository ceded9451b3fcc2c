package conv

import "strings"

// JoinURL appends path to baseURL with exactly one separating slash. A trailing
// slash on path is kept; the API routes require it.
func JoinURL(baseURL, path string) string {
	if path == "" {
		return baseURL
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
}
