package services

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type AuthStore interface {
	FindUserByEmail(email string) (*User, error)
	AddUser(u *User) error

	FindInvitationByCode(code string) (*Invitation, error)
	InsertInvitation(inv *Invitation) error
	MarkInvitationRedeemed(id string, at time.Time) error
	ListInvitations() ([]*Invitation, error)
}

type TokenSigner func(uid, email string, ttl time.Duration) (string, error)

// AuthService gates the challenge editor. Accounts are created by
// redeeming an invitation code; the board pages stay open.
type AuthService struct {
	store     AuthStore
	now       func() time.Time
	idGen     func(n int) string
	signToken TokenSigner
	tokenTTL  time.Duration
}

type AuthResult struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

func NewAuthService(store AuthStore, signer TokenSigner) *AuthService {
	return &AuthService{
		store:     store,
		now:       func() time.Time { return time.Now().UTC() },
		idGen:     shortID,
		signToken: signer,
		tokenTTL:  30 * 24 * time.Hour,
	}
}

func (s *AuthService) Register(email, password, inviteCode string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return nil, NewInvalidError("email/password required")
	}
	inv, err := s.store.FindInvitationByCode(strings.TrimSpace(inviteCode))
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, NewForbiddenError("invitation code not recognized")
	}
	if inv.RedeemedAt != nil {
		return nil, NewForbiddenError("invitation code already redeemed")
	}
	existing, err := s.store.FindUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, NewConflictError("email exists")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := s.now()
	userID := "u" + s.idGen(7)
	if err := s.store.AddUser(&User{ID: userID, Email: email, PassHash: hash, CreatedAt: now}); err != nil {
		return nil, err
	}
	if err := s.store.MarkInvitationRedeemed(inv.ID, now); err != nil {
		return nil, err
	}
	if s.signToken == nil {
		return nil, NewInvalidError("token signer not configured")
	}
	token, err := s.signToken(userID, email, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, UserID: userID, Email: email}, nil
}

func (s *AuthService) Login(email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return nil, NewInvalidError("email/password required")
	}
	u, err := s.store.FindUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, NewUnauthorizedError("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword(u.PassHash, []byte(password)); err != nil {
		return nil, NewUnauthorizedError("invalid credentials")
	}
	if s.signToken == nil {
		return nil, NewInvalidError("token signer not configured")
	}
	token, err := s.signToken(u.ID, u.Email, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, UserID: u.ID, Email: u.Email}, nil
}

// CreateInvitation mints a single-use code for a new editor.
func (s *AuthService) CreateInvitation(email, note string) (*Invitation, error) {
	inv := &Invitation{
		ID:        "i" + s.idGen(7),
		Code:      s.idGen(10),
		Email:     strings.TrimSpace(email),
		Note:      strings.TrimSpace(note),
		CreatedAt: s.now(),
	}
	if err := s.store.InsertInvitation(inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *AuthService) ListInvitations() ([]*Invitation, error) {
	return s.store.ListInvitations()
}

func (s *AuthService) TokenTTL() time.Duration {
	return s.tokenTTL
}
