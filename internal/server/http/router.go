package httpserver

import "net/http"

// NewMux 挂 /api/*；webDir 非空时再把它当静态目录挂在 /
func NewMux(h http.Handler, webDir string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/api/", h)
	if webDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(webDir)))
	}
	return mux
}
