package utils

import (
	"log"
	"net"
	"strconv"
	"strings"
)

// MustPort extracts the port from addr (":8000" or "0.0.0.0:8000").
func MustPort(addr string) int {
	_, p, err := net.SplitHostPort(addr)
	if err != nil {
		if strings.HasPrefix(addr, ":") {
			v, _ := strconv.Atoi(addr[1:])
			return v
		}
		log.Fatalf("invalid addr %q: %v", addr, err)
	}
	v, err := strconv.Atoi(p)
	if err != nil {
		log.Fatalf("invalid port in %q: %v", addr, err)
	}
	return v
}
