package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"golang.org/x/sys/unix"

	httpx "ips-asset-server/http"
	"ips-asset-server/nfs"
	"ips-asset-server/resolver"
	"ips-asset-server/tftp"
	"ips-asset-server/utils"
)

func main() {
	addr := flag.String("addr", ":8000", "HTTP listen address")
	rootDir := flag.String("root", "_dist", "static build directory to serve")
	listDir := flag.String("list", "styles", "subdirectory shown in the startup listing")
	// Optional extra transports over the same root
	tftpEnable := flag.Bool("tftp", false, "Enable read-only TFTP endpoint")
	tftpAddr := flag.String("tftpaddr", ":69", "TFTP listen address")
	nfsEnable := flag.Bool("nfs", false, "Enable read-only NFS export")
	nfsAddr := flag.String("nfsaddr", ":2049", "NFS listen address")
	flag.Parse()

	// Fail fast before binding any socket: the build step must have run.
	root, err := resolver.Open(*rootDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: static build folder %q not usable: %v\n", *rootDir, err)
		fmt.Fprintln(os.Stderr, "Run the site build first to generate the served assets.")
		os.Exit(1)
	}

	loggerHTTP := log.New(os.Stdout, "http ", log.LstdFlags)
	if _, err := httpx.StartHTTPServer(*addr, root, loggerHTTP); err != nil {
		log.Fatalf("start http failure: %v", err)
	}

	if *tftpEnable {
		loggerTFTP := log.New(os.Stdout, "tftp ", log.LstdFlags)
		if _, err := tftp.StartTFTPServer(*tftpAddr, root, loggerTFTP); err != nil {
			log.Fatalf("start tftp failure: %v", err)
		}
	}

	if *nfsEnable {
		loggerNFS := log.New(os.Stdout, "nfs ", log.LstdFlags)
		if _, err := nfs.StartNFSServer(*nfsAddr, root, loggerNFS); err != nil {
			log.Fatalf("start nfs failure: %v", err)
		}
	}

	fmt.Printf("Serving static build at: http://localhost:%d\n", utils.MustPort(*addr))
	fmt.Printf("Root directory: %s\n", root.Dir())
	fmt.Println()
	fmt.Println("Ensure the build folder contains current HTML files and styles:")
	if lines, err := utils.ShallowListing(root.FS(), filepath.Base(root.Dir()), *listDir); err == nil {
		for _, line := range lines {
			fmt.Println(line)
		}
	}

	// Block until termination signal to keep goroutine servers alive
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, unix.SIGINT, unix.SIGTERM)
	sig := <-stop
	log.Printf("received signal %s, exiting", sig)
}
