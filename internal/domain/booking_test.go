package domain

import (
	"regexp"
	"testing"
	"time"
)

func TestNewBookingID(t *testing.T) {
	now := time.Date(2025, 7, 1, 18, 30, 0, 0, time.UTC)

	id := NewBookingID(now)

	pattern := regexp.MustCompile(`^MM-20250701-[0-9A-F]{8}$`)
	if !pattern.MatchString(id) {
		t.Errorf("booking id %q does not match MM-20250701-XXXXXXXX", id)
	}
}

func TestNewBookingIDVariesAcrossCalls(t *testing.T) {
	now := time.Now()

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewBookingID(now)
		if seen[id] {
			t.Fatalf("booking id %q repeated within 100 draws", id)
		}
		seen[id] = true
	}
}

func TestNewPaymentID(t *testing.T) {
	pattern := regexp.MustCompile(`^PAY-[0-9A-F]{12}$`)

	id := NewPaymentID()
	if !pattern.MatchString(id) {
		t.Errorf("payment id %q does not match PAY-XXXXXXXXXXXX", id)
	}
}
