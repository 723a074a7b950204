package auth

import (
	"testing"
	"time"
)

func TestSession_IsGuest(t *testing.T) {
	if !(Session{Role: RoleGuest}).IsGuest() {
		t.Fatalf("expected guest")
	}
	if (Session{Role: RoleStaff}).IsGuest() {
		t.Fatalf("did not expect guest")
	}
	if (Session{Role: RoleAdmin}).IsGuest() {
		t.Fatalf("did not expect guest")
	}
}

func TestSession_Validated(t *testing.T) {
	if (Session{}).Validated() {
		t.Fatalf("fresh session must not count as validated")
	}
	s := Session{LastValidatedAt: time.Now()}
	if !s.Validated() {
		t.Fatalf("expected validated")
	}
}
