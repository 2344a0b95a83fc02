package auth

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/baechuer/leads-api/internal/domain"
)

/*
Fakes for ports
*/

type fakeUserRepo struct {
	mu sync.Mutex

	nextID  int64
	byID    map[int64]domain.User
	byEmail map[string]int64

	// injected errors (if set, method returns error)
	getByIDErr    error
	getByEmailErr error
	createErr     error

	created []domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    map[int64]domain.User{},
		byEmail: map[string]int64{},
	}
}

func (f *fakeUserRepo) seed(email, hash string) domain.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	u := domain.User{ID: f.nextID, Email: email, PasswordHash: hash}
	f.byID[u.ID] = u
	f.byEmail[email] = u.ID
	return u
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getByEmailErr != nil {
		return domain.User{}, f.getByEmailErr
	}
	id, ok := f.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return f.byID[id], nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getByIDErr != nil {
		return domain.User{}, f.getByIDErr
	}
	u, ok := f.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return domain.User{}, f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.User{}, domain.ErrEmailAlreadyExists()
	}
	f.nextID++
	u.ID = f.nextID
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u.ID
	f.created = append(f.created, u)
	return u, nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(pw string) (string, error) { return "hash:" + pw, nil }

func (fakeHasher) Compare(hash, pw string) error {
	if hash != "hash:"+pw {
		return errors.New("mismatch")
	}
	return nil
}

// fakeSigner encodes "tok:<id>" and understands a few magic tokens.
type fakeSigner struct {
	lastTTL time.Duration
	signErr error
}

func (s *fakeSigner) SignToken(u domain.User, ttl time.Duration) (string, error) {
	if s.signErr != nil {
		return "", s.signErr
	}
	s.lastTTL = ttl
	return "tok:" + strconv.FormatInt(u.ID, 10), nil
}

func (s *fakeSigner) VerifyToken(token string) (TokenClaims, error) {
	switch token {
	case "expired":
		return TokenClaims{}, domain.ErrTokenExpired()
	case "garbage":
		return TokenClaims{}, domain.ErrTokenInvalid()
	}
	id, ok := strings.CutPrefix(token, "tok:")
	if !ok {
		return TokenClaims{}, domain.ErrTokenInvalid()
	}
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return TokenClaims{}, domain.ErrTokenInvalid()
	}
	return TokenClaims{UserID: n}, nil
}

type auditEntry struct {
	action string
	fields map[string]string
}

func newTestService(users *fakeUserRepo, autoCreate bool) (*Service, *fakeSigner, *[]auditEntry) {
	signer := &fakeSigner{}
	var audits []auditEntry
	svc := NewService(users, fakeHasher{}, signer, Config{
		TokenTTL:        time.Hour,
		AutoCreateUsers: autoCreate,
		DefaultPassword: "default-password-123",
	}).WithAudit(func(action string, fields map[string]string) {
		audits = append(audits, auditEntry{action: action, fields: fields})
	})
	return svc, signer, &audits
}
