package spa

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var contentTypes = map[string]string{
	".html":  "text/html; charset=utf-8",
	".js":    "application/javascript",
	".css":   "text/css; charset=utf-8",
	".json":  "application/json",
	".svg":   "image/svg+xml",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".gif":   "image/gif",
	".ico":   "image/x-icon",
	".map":   "application/json",
	".woff":  "font/woff",
	".woff2": "font/woff2",
}

// Handler serve la build statica del frontend con fallback su index.html
// per le rotte client-side.
type Handler struct {
	distDir string
}

func NewHandler(distDir string) *Handler {
	return &Handler{distDir: distDir}
}

// Ready reports whether the built frontend is present on disk.
func (h *Handler) Ready() bool {
	info, err := os.Stat(filepath.Join(h.distDir, "index.html"))
	return err == nil && info.Mode().IsRegular()
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "metodo non consentito", http.StatusMethodNotAllowed)
		return
	}

	for _, segment := range strings.Split(r.URL.Path, "/") {
		if segment == ".." {
			http.Error(w, "percorso non valido", http.StatusBadRequest)
			return
		}
	}

	cleaned := path.Clean("/" + r.URL.Path)
	target := filepath.Join(h.distDir, filepath.FromSlash(cleaned))

	if cleaned != "/" {
		if info, err := os.Stat(target); err == nil && info.Mode().IsRegular() {
			h.serveFile(w, r, target)
			return
		}
	}

	// gli asset con hash nel nome non devono mai ricadere sull'index
	if strings.HasPrefix(cleaned, "/assets/") {
		http.NotFound(w, r)
		return
	}

	index := filepath.Join(h.distDir, "index.html")
	if info, err := os.Stat(index); err != nil || !info.Mode().IsRegular() {
		http.Error(w, "interfaccia non disponibile: eseguire la build del frontend",
			http.StatusServiceUnavailable)
		return
	}
	h.serveFile(w, r, index)
}

func (h *Handler) serveFile(w http.ResponseWriter, r *http.Request, target string) {
	ct, ok := contentTypes[strings.ToLower(filepath.Ext(target))]
	if !ok {
		ct = "application/octet-stream"
	}
	w.Header().Set("Content-Type", ct)
	http.ServeFile(w, r, target)
}
