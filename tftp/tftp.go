package tftp

import (
	"io"
	"log"
	"strings"
	"time"

	tftp "github.com/pin/tftp/v3"

	"ips-asset-server/resolver"
)

// readHandler resolves TFTP filenames with the same rules as HTTP paths, so
// containment and the index rewrite hold across transports.
func readHandler(root *resolver.Root, logger *log.Logger) func(string, io.ReaderFrom) error {
	return func(filename string, rf io.ReaderFrom) error {
		reqPath := "/" + strings.TrimPrefix(strings.TrimSpace(filename), "/")
		tgt, err := root.Resolve(reqPath)
		if err != nil {
			if logger != nil {
				logger.Printf("RRQ %q refused: %v", filename, err)
			}
			return err
		}
		f, err := root.Open(tgt)
		if err != nil {
			return err
		}
		defer f.Close()
		n, err := rf.ReadFrom(f)
		if logger != nil {
			logger.Printf("RRQ %q -> %q (%d bytes)", filename, tgt.Path, n)
		}
		return err
	}
}

// StartTFTPServer serves the root read-only over TFTP. Writes are rejected.
func StartTFTPServer(addr string, root *resolver.Root, logger *log.Logger) (*tftp.Server, error) {
	srv := tftp.NewServer(readHandler(root, logger), nil)
	srv.SetTimeout(5 * time.Second)

	go func() {
		if logger != nil {
			logger.Printf("TFTP server listening on %s root=%q", addr, root.Dir())
		}
		if err := srv.ListenAndServe(addr); err != nil {
			if logger != nil {
				logger.Printf("TFTP server error: %v", err)
			}
		}
	}()
	return srv, nil
}
