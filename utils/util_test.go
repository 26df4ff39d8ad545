package utils

import "testing"

func TestMustPort(t *testing.T) {
	if got := MustPort(":8000"); got != 8000 {
		t.Fatalf("MustPort got=%d want=8000", got)
	}
	if got := MustPort("0.0.0.0:8080"); got != 8080 {
		t.Fatalf("MustPort got=%d want=8080", got)
	}
}
