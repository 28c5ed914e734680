package session

import (
	"context"
	"net/http"
	"time"

	"github.com/Shruti-ops/fitness-diet-tracker/utils"
)

// Session is the per-request view of a store entry.
type Session struct {
	Token string
	User  *Record
}

// Authenticated reports whether a user is bound to the session.
func (s *Session) Authenticated() bool {
	return s != nil && s.User != nil
}

type ManagerConfig struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// Manager moves sessions between the cookie and the Store.
type Manager struct {
	store Store
	cfg   ManagerConfig
}

func NewManager(store Store, cfg ManagerConfig) *Manager {
	if cfg.CookieName == "" {
		cfg.CookieName = "fitness.sid"
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	return &Manager{store: store, cfg: cfg}
}

func (m *Manager) CookieName() string { return m.cfg.CookieName }

// Load resolves the request's session. A missing cookie or an unknown token
// starts a fresh anonymous session and sets its cookie on w.
func (m *Manager) Load(w http.ResponseWriter, r *http.Request) (*Session, error) {
	ctx := r.Context()
	if ck, err := r.Cookie(m.cfg.CookieName); err == nil && ck.Value != "" {
		entry, ok, err := m.store.Get(ctx, ck.Value)
		if err != nil {
			return nil, err
		}
		if ok {
			return &Session{Token: ck.Value, User: entry.User}, nil
		}
	}
	return m.start(ctx, w, nil)
}

// Authenticate binds user to the session under a new token; the old token is
// destroyed so a pre-login cookie can't be reused.
func (m *Manager) Authenticate(ctx context.Context, w http.ResponseWriter, s *Session, user Record) error {
	if s.Token != "" {
		if err := m.store.Destroy(ctx, s.Token); err != nil {
			return err
		}
	}
	next, err := m.start(ctx, w, &user)
	if err != nil {
		return err
	}
	*s = *next
	return nil
}

// Destroy removes the session server-side and tells the client to drop the cookie.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, s *Session) error {
	if s.Token != "" {
		if err := m.store.Destroy(ctx, s.Token); err != nil {
			return err
		}
	}
	http.SetCookie(w, m.cookie("", -1))
	s.Token = ""
	s.User = nil
	return nil
}

func (m *Manager) start(ctx context.Context, w http.ResponseWriter, user *Record) (*Session, error) {
	token, err := utils.GenerateSessionToken()
	if err != nil {
		return nil, err
	}
	if err := m.store.Set(ctx, token, Entry{User: user}, m.cfg.TTL); err != nil {
		return nil, err
	}
	http.SetCookie(w, m.cookie(token, int(m.cfg.TTL.Seconds())))
	return &Session{Token: token, User: user}, nil
}

func (m *Manager) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
