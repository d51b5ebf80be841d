// Package access decides whether a request path may proceed for a given authentication state.
package access

import (
	"path"
	"strings"
)

// Kind is the outcome of a gate decision
type Kind int

const (
	Allow Kind = iota
	Redirect
)

// Decision is returned by Decide. Location is set only for Redirect.
type Decision struct {
	Kind     Kind
	Location string
}

const (
	HomePath   = "/home"
	SignInPath = "/sign-in"
)

var publicPages = map[string]struct{}{
	SignInPath: {},
	"/sign-up": {},
	"/":        {},
	HomePath:   {},
}

var publicAPIs = map[string]struct{}{
	"/api/video": {},
}

var assetExtensions = map[string]struct{}{
	".js": {}, ".mjs": {}, ".css": {}, ".map": {},
	".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".svg": {}, ".ico": {}, ".webp": {}, ".avif": {},
	".woff": {}, ".woff2": {}, ".ttf": {},
	".txt": {}, ".json": {}, ".webmanifest": {}, ".xml": {},
}

// Decide applies the routing rules:
//   - signed in on a public page other than home goes home
//   - signed out on anything that is neither a public page nor a public API goes to sign-in
func Decide(authenticated bool, path string) Decision {
	path = normalize(path)
	if IsStatic(path) {
		return Decision{Kind: Allow}
	}

	_, isPublicPage := publicPages[path]
	_, isPublicAPI := publicAPIs[path]

	if authenticated && isPublicPage && path != HomePath {
		return Decision{Kind: Redirect, Location: HomePath}
	}
	if !authenticated && !isPublicPage && !isPublicAPI {
		return Decision{Kind: Redirect, Location: SignInPath}
	}
	return Decision{Kind: Allow}
}

// IsAPI reports whether path is served as JSON rather than a page.
func IsAPI(path string) bool {
	path = normalize(path)
	return path == "/api" || strings.HasPrefix(path, "/api/")
}

// IsStatic reports whether p names a page asset such as a script, stylesheet or image.
// Pages and anything under /api are never static.
func IsStatic(p string) bool {
	p = normalize(p)
	if IsAPI(p) {
		return false
	}
	_, ok := assetExtensions[strings.ToLower(path.Ext(p))]
	return ok
}

// normalize cleans p and maps page file names onto their route,
// so "/video-upload.html" and "/video-upload/index.html" gate as "/video-upload".
func normalize(p string) string {
	p = path.Clean("/" + p)
	p = strings.TrimSuffix(p, ".html")
	p = strings.TrimSuffix(p, "/index")
	if p == "" {
		return "/"
	}
	return p
}
