package resolver

import "strings"

// Static extension table; the stdlib mime package consults /etc/mime.types
// and is therefore host-dependent.
var mimeTypes = map[string]string{
	".html":  "text/html",
	".htm":   "text/html",
	".css":   "text/css",
	".js":    "text/javascript",
	".mjs":   "text/javascript",
	".json":  "application/json",
	".map":   "application/json",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".gif":   "image/gif",
	".webp":  "image/webp",
	".svg":   "image/svg+xml",
	".ico":   "image/x-icon",
	".txt":   "text/plain",
	".wasm":  "application/wasm",
	".woff2": "font/woff2",
}

// TypeByExtension returns the content type for a file extension (with
// leading dot, case-insensitive), or application/octet-stream when unknown.
func TypeByExtension(ext string) string {
	if t, ok := mimeTypes[strings.ToLower(ext)]; ok {
		return t
	}
	return "application/octet-stream"
}
