package utils

import "testing"

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	if a == b {
		t.Fatal("expected distinct ids")
	}
	if !IsID(a) || !IsID(b) {
		t.Fatalf("expected valid UUIDs, got %q and %q", a, b)
	}
	if IsID("not-an-id") {
		t.Error("expected IsID to reject garbage")
	}
}
