package chi

import (
	"clipshare/internal/adapters/handlers/http/response"
	"clipshare/internal/core/access"
	"net/http"
	"os"
	"path"
	"path/filepath"
)

// pageHandler serves gated pages from dir. "/home" resolves to home.html, then home/index.html,
// and unknown pages fall back to index.html. Assets are served only under their own name.
// Without a dir every page is a 404.
func pageHandler(dir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if dir == "" {
			_ = response.Error(w, http.StatusNotFound, "Not found")
			return
		}

		clean := path.Clean("/" + r.URL.Path)
		candidates := []string{clean}
		if !access.IsStatic(clean) {
			candidates = append(candidates, clean+".html", path.Join(clean, "index.html"), "/index.html")
		}
		for _, candidate := range candidates {
			full := filepath.Join(dir, filepath.FromSlash(candidate))
			if info, err := os.Stat(full); err == nil && !info.IsDir() {
				http.ServeFile(w, r, full)
				return
			}
		}
		_ = response.Error(w, http.StatusNotFound, "Not found")
	}
}
