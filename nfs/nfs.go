package nfs

import (
	"log"
	"net"

	nfs "github.com/willscott/go-nfs"
	nfshelper "github.com/willscott/go-nfs/helpers"

	"ips-asset-server/resolver"
)

// Filehandle cache size for the NFS handler; plenty for a static asset tree.
const handleCacheSize = 1024

// StartNFSServer exports the serving root read-only over NFSv3. The export
// has no authentication, same as the rest of the asset endpoints.
func StartNFSServer(addr string, root *resolver.Root, logger *log.Logger) (net.Listener, error) {
	if addr == "" {
		addr = ":2049"
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	handler := nfshelper.NewNullAuthHandler(root.FS())
	cached := nfshelper.NewCachingHandler(handler, handleCacheSize)
	go func() {
		if logger != nil {
			logger.Printf("nfs server listening on %s root=%q", addr, root.Dir())
		}
		if err := nfs.Serve(ln, cached); err != nil {
			if logger != nil {
				logger.Printf("nfs serve error: %v", err)
			}
		}
	}()
	return ln, nil
}
