package http

import (
	"net/http"
	"path"
)

const indexFile = "index.html"

// serveClient serves the prebuilt client bundle from clientDir. Paths that
// do not resolve to a file, and directories without their own index.html,
// fall back to the bundle's root index.html so client-side routing works.
func (h *Handler) serveClient() http.HandlerFunc {
	root := http.Dir(h.clientDir)
	files := http.FileServer(root)

	return func(w http.ResponseWriter, r *http.Request) {
		name := path.Clean("/" + r.URL.Path)
		if !exists(root, name) {
			h.serveIndex(w, r, root)
			return
		}
		files.ServeHTTP(w, r)
	}
}

func (h *Handler) serveIndex(w http.ResponseWriter, r *http.Request, root http.FileSystem) {
	f, err := root.Open("/" + indexFile)
	if err != nil {
		h.notFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		h.notFound(w, r)
		return
	}
	http.ServeContent(w, r, indexFile, info.ModTime(), f)
}

// exists reports whether name is a servable file, or a directory holding an
// index.html.
func exists(root http.FileSystem, name string) bool {
	f, err := root.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false
	}
	if !info.IsDir() {
		return true
	}
	return exists(root, path.Join(name, indexFile))
}
