package services

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

type authStubStore struct {
	users       map[string]*User
	invitations map[string]*Invitation
}

func newAuthStubStore() *authStubStore {
	return &authStubStore{users: map[string]*User{}, invitations: map[string]*Invitation{}}
}

func (s *authStubStore) FindUserByEmail(email string) (*User, error) {
	if u, ok := s.users[email]; ok {
		copy := *u
		return &copy, nil
	}
	return nil, nil
}

func (s *authStubStore) AddUser(u *User) error {
	if _, ok := s.users[u.Email]; ok {
		return errors.New("duplicate user")
	}
	copy := *u
	s.users[u.Email] = &copy
	return nil
}

func (s *authStubStore) FindInvitationByCode(code string) (*Invitation, error) {
	for _, inv := range s.invitations {
		if inv.Code == code {
			copy := *inv
			return &copy, nil
		}
	}
	return nil, nil
}

func (s *authStubStore) InsertInvitation(inv *Invitation) error {
	copy := *inv
	s.invitations[inv.ID] = &copy
	return nil
}

func (s *authStubStore) MarkInvitationRedeemed(id string, at time.Time) error {
	inv, ok := s.invitations[id]
	if !ok {
		return errors.New("invitation not found")
	}
	inv.RedeemedAt = &at
	return nil
}

func (s *authStubStore) ListInvitations() ([]*Invitation, error) {
	out := make([]*Invitation, 0, len(s.invitations))
	for _, inv := range s.invitations {
		copy := *inv
		out = append(out, &copy)
	}
	return out, nil
}

func newTestAuthService(store *authStubStore) *AuthService {
	svc := NewAuthService(store, func(uid, email string, ttl time.Duration) (string, error) {
		return "token:" + uid, nil
	})
	svc.now = func() time.Time { return time.Unix(0, 0) }
	n := 0
	svc.idGen = func(int) string { n++; return fmt.Sprintf("gen%d", n) }
	return svc
}

func TestAuthRegisterWithInvitation(t *testing.T) {
	store := newAuthStubStore()
	svc := newTestAuthService(store)

	inv, err := svc.CreateInvitation("new@editor.example", "onboarding")
	if err != nil {
		t.Fatalf("CreateInvitation returned error: %v", err)
	}
	if inv.Code == "" || inv.RedeemedAt != nil {
		t.Fatalf("unexpected invitation: %+v", inv)
	}

	res, err := svc.Register("new@editor.example", "Secret123", inv.Code)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if res.Token != "token:"+res.UserID {
		t.Fatalf("unexpected token %q", res.Token)
	}
	if got := store.invitations[inv.ID]; got.RedeemedAt == nil {
		t.Fatalf("invitation should be marked redeemed")
	}

	// A redeemed code cannot be used again.
	if _, err := svc.Register("other@editor.example", "Secret123", inv.Code); err == nil {
		t.Fatalf("expected forbidden error on redeemed code")
	}
}

func TestAuthRegisterRejectsBadCode(t *testing.T) {
	svc := newTestAuthService(newAuthStubStore())
	_, err := svc.Register("a@b.example", "pw", "nope")
	se, ok := AsServiceError(err)
	if !ok || se.Code != ErrorForbidden {
		t.Fatalf("expected forbidden error, got %v", err)
	}
}

func TestAuthRegisterDuplicateEmail(t *testing.T) {
	store := newAuthStubStore()
	svc := newTestAuthService(store)

	inv1, _ := svc.CreateInvitation("", "")
	inv2, _ := svc.CreateInvitation("", "")
	if _, err := svc.Register("a@b.example", "pw", inv1.Code); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register("a@b.example", "pw", inv2.Code)
	se, ok := AsServiceError(err)
	if !ok || se.Code != ErrorConflict {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestAuthLogin(t *testing.T) {
	store := newAuthStubStore()
	svc := newTestAuthService(store)
	inv, _ := svc.CreateInvitation("", "")
	if _, err := svc.Register("a@b.example", "Secret123", inv.Code); err != nil {
		t.Fatalf("register: %v", err)
	}

	res, err := svc.Login("a@b.example", "Secret123")
	if err != nil || res.Token == "" {
		t.Fatalf("Login = %+v, %v", res, err)
	}

	if _, err := svc.Login("a@b.example", "wrong"); err == nil {
		t.Fatalf("expected error on wrong password")
	}
	if _, err := svc.Login("missing@b.example", "Secret123"); err == nil {
		t.Fatalf("expected error on missing user")
	}
	if _, err := svc.Login("", ""); err == nil {
		t.Fatalf("expected validation error")
	}
}
