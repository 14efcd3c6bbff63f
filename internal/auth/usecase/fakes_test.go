package usecase

import (
	"fmt"
	"time"

	authdomain "auth-backend/internal/auth/domain"
)

// fakeUserRepo is an in-memory UserRepository for engine tests.
type fakeUserRepo struct {
	users  map[string]*authdomain.User // by ID
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*authdomain.User{}}
}

func (r *fakeUserRepo) Create(user *authdomain.User) error {
	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*authdomain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(id string) (*authdomain.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) FindByVerifyTokenHash(hash string, now time.Time) (*authdomain.User, error) {
	for _, u := range r.users {
		if u.EmailVerifyTokenHash != nil && *u.EmailVerifyTokenHash == hash &&
			u.EmailVerifyExpires != nil && u.EmailVerifyExpires.After(now) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByResetTokenHash(hash string, now time.Time) (*authdomain.User, error) {
	for _, u := range r.users {
		if u.Provider == authdomain.ProviderLocal &&
			u.ResetPasswordTokenHash != nil && *u.ResetPasswordTokenHash == hash &&
			u.ResetPasswordExpires != nil && u.ResetPasswordExpires.After(now) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(user *authdomain.User) error {
	user.UpdatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdateRefreshTokenHash(userID string, hash *string) error {
	if u, ok := r.users[userID]; ok {
		u.RefreshTokenHash = hash
	}
	return nil
}

type sentMail struct {
	To    string
	Kind  string // "verify" or "reset"
	Token string
}

// fakeMail records outgoing emails so tests can grab the raw tokens.
type fakeMail struct {
	sent     []sentMail
	failNext error
}

func (m *fakeMail) SendVerifyEmail(email, token string) error {
	if m.failNext != nil {
		err := m.failNext
		m.failNext = nil
		return err
	}
	m.sent = append(m.sent, sentMail{To: email, Kind: "verify", Token: token})
	return nil
}

func (m *fakeMail) SendResetPassword(email, token string) error {
	if m.failNext != nil {
		err := m.failNext
		m.failNext = nil
		return err
	}
	m.sent = append(m.sent, sentMail{To: email, Kind: "reset", Token: token})
	return nil
}

func (m *fakeMail) last() sentMail {
	return m.sent[len(m.sent)-1]
}
