package httpx

import (
	"errors"
	"io"
	"log"
	"net"
	"net/http"
	"strconv"
	"time"

	"ips-asset-server/resolver"
)

// Handler serves files from root. Resolution failures map to 403 (traversal)
// or 404 (everything else); only GET and HEAD are accepted. Error bodies
// never echo request paths or filesystem paths.
func Handler(root *resolver.Root, logger *log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			logRequest(logger, r, http.StatusMethodNotAllowed)
			return
		}
		tgt, err := root.Resolve(r.URL.Path)
		if err != nil {
			status := http.StatusNotFound
			if errors.Is(err, resolver.ErrForbidden) {
				status = http.StatusForbidden
			}
			http.Error(w, http.StatusText(status), status)
			logRequest(logger, r, status)
			return
		}
		f, err := root.Open(tgt)
		if err != nil {
			// Resolved but vanished before open; treat as missing.
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			logRequest(logger, r, http.StatusNotFound)
			return
		}
		defer f.Close()
		w.Header().Set("Content-Type", tgt.MIME)
		w.Header().Set("Content-Length", strconv.FormatInt(tgt.Size, 10))
		logRequest(logger, r, http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		if _, err := io.Copy(w, f); err != nil && logger != nil {
			logger.Printf("write %s: %v", r.URL.Path, err)
		}
	})
}

func logRequest(logger *log.Logger, r *http.Request, status int) {
	if logger != nil {
		logger.Printf("%s %s %d", r.Method, r.URL.Path, status)
	}
}

// StartHTTPServer starts the asset server on addr and returns the listener
// so the caller can manage lifecycle if needed.
func StartHTTPServer(addr string, root *resolver.Root, logger *log.Logger) (net.Listener, error) {
	if addr == "" {
		addr = ":8000"
	}
	srv := &http.Server{
		Handler:           Handler(root, logger),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	go func() {
		if logger != nil {
			logger.Printf("http server listening on %s root=%q", addr, root.Dir())
		}
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Printf("http serve error: %v", err)
			}
		}
	}()
	return ln, nil
}
