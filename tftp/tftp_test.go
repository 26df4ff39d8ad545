package tftp

import (
	"bytes"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	butil "github.com/go-git/go-billy/v5/util"

	"ips-asset-server/resolver"
)

func testRoot(t *testing.T) *resolver.Root {
	t.Helper()
	fs := memfs.New()
	if err := butil.WriteFile(fs, "index.html", []byte("<html>home</html>"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := butil.WriteFile(fs, "boot/image.bin", []byte{0xde, 0xad}, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return resolver.NewWithFS("/srv/assets", fs)
}

func TestReadHandlerServesFile(t *testing.T) {
	h := readHandler(testRoot(t), nil)
	var buf bytes.Buffer
	if err := h("boot/image.bin", &buf); err != nil {
		t.Fatalf("read handler: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0xde, 0xad}) {
		t.Fatalf("payload got=%x", buf.Bytes())
	}
}

func TestReadHandlerHomeRewrite(t *testing.T) {
	h := readHandler(testRoot(t), nil)
	var buf bytes.Buffer
	if err := h("", &buf); err != nil {
		t.Fatalf("read handler: %v", err)
	}
	if buf.String() != "<html>home</html>" {
		t.Fatalf("payload got=%q", buf.String())
	}
}

func TestReadHandlerRefusesTraversal(t *testing.T) {
	h := readHandler(testRoot(t), nil)
	var buf bytes.Buffer
	if err := h("../secret", &buf); err == nil {
		t.Fatalf("expected traversal to be refused")
	}
	if buf.Len() != 0 {
		t.Fatalf("payload leaked: %x", buf.Bytes())
	}
}

func TestReadHandlerMissing(t *testing.T) {
	h := readHandler(testRoot(t), nil)
	var buf bytes.Buffer
	if err := h("missing.png", &buf); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
