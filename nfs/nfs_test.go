package nfs

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	butil "github.com/go-git/go-billy/v5/util"

	"ips-asset-server/resolver"
)

func TestStartNFSServer(t *testing.T) {
	fs := memfs.New()
	if err := butil.WriteFile(fs, "index.html", []byte("<html>home</html>"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	root := resolver.NewWithFS("/srv/assets", fs)

	ln, err := StartNFSServer("127.0.0.1:0", root, nil)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if ln.Addr() == nil {
		t.Fatalf("expected bound address")
	}
	ln.Close()
}
