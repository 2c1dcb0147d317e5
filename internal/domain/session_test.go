package domain

import "testing"

func TestSessionIsActive(t *testing.T) {
	active := &Session{Status: SessionActive}
	if !active.IsActive() {
		t.Error("expected an active session to report IsActive() == true")
	}

	closed := &Session{Status: SessionClosed}
	if closed.IsActive() {
		t.Error("expected a closed session to report IsActive() == false")
	}
}
