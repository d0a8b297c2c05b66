// Package session implements server-side sessions behind a signed cookie,
// with read-once flash queues and bounded renewal writes.
package session

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/mkamath/wanderstay/internal/domain"
	"github.com/mkamath/wanderstay/internal/repository"
)

const (
	CookieName = "wanderstay_session"

	// TTL is the absolute session lifetime, renewed only on touch.
	TTL = 7 * 24 * time.Hour

	// TouchInterval bounds renewal writes: bookkeeping is persisted at most
	// once per interval per session.
	TouchInterval = 24 * time.Hour
)

const (
	FlashSuccess = "success"
	FlashError   = "error"
)

type Options struct {
	Secret string
	Secure bool
	// SaveUninitialized persists fresh anonymous sessions even when nothing
	// was written to them during the request.
	SaveUninitialized bool
}

type Manager struct {
	store repository.SessionRepository
	opts  Options
	now   func() time.Time
}

func NewManager(store repository.SessionRepository, opts Options) *Manager {
	return &Manager{store: store, opts: opts, now: time.Now}
}

// sessionData is the JSON shape stored in the session record's Data column.
type sessionData struct {
	Flash  map[string][]string `json:"flash,omitempty"`
	Values map[string]string   `json:"values,omitempty"`
}

// Session is the per-request view of one session record. It is not safe for
// concurrent use; each request owns its own instance. Two requests sharing a
// token race on flash drains with last-write-wins at the store.
type Session struct {
	m         *Manager
	record    *domain.Session
	data      sessionData
	persisted bool
	dirty     bool
}

// Load resolves the request's session, creating a fresh anonymous one when
// the cookie is missing, tampered with, or the record is gone or expired.
// Cookie issuance and renewal bookkeeping happen here, before the handler
// can write any response bytes.
func (m *Manager) Load(ctx context.Context, w http.ResponseWriter, r *http.Request) *Session {
	now := m.now()

	if cookie, err := r.Cookie(CookieName); err == nil {
		if id, err := DecodeToken(cookie.Value, m.opts.Secret); err == nil {
			record, err := m.store.GetByID(ctx, id)
			if err == nil && !record.Expired(now) {
				return m.resume(ctx, w, record, now)
			}
			if err != nil {
				log.Printf("INFO [session.Load] store miss for session %s: %v", id, err)
			}
		}
	}

	return m.fresh(ctx, w, now)
}

func (m *Manager) resume(ctx context.Context, w http.ResponseWriter, record *domain.Session, now time.Time) *Session {
	sess := &Session{m: m, record: record, persisted: true}
	if len(record.Data) > 0 {
		if err := json.Unmarshal(record.Data, &sess.data); err != nil {
			log.Printf("ERROR [session.resume] corrupt session data for %s: %v", record.ID, err)
			sess.data = sessionData{}
		}
	}

	if now.Sub(record.LastTouchedAt) >= TouchInterval {
		record.LastTouchedAt = now
		record.ExpiresAt = now.Add(TTL)
		if err := m.store.Touch(ctx, record.ID, record.LastTouchedAt, record.ExpiresAt); err != nil {
			log.Printf("ERROR [session.resume] touch failed for %s: %v", record.ID, err)
		}
		m.setCookie(w, record.ID)
	}

	return sess
}

func (m *Manager) fresh(ctx context.Context, w http.ResponseWriter, now time.Time) *Session {
	record := &domain.Session{
		ID:            uuid.New(),
		LastTouchedAt: now,
		ExpiresAt:     now.Add(TTL),
		CreatedAt:     now,
	}
	sess := &Session{m: m, record: record}

	if m.opts.SaveUninitialized {
		if err := m.persist(ctx, sess); err != nil {
			log.Printf("ERROR [session.fresh] failed to persist session %s: %v", record.ID, err)
		}
	}

	m.setCookie(w, record.ID)
	return sess
}

// Commit writes any pending session state back to the store. Called once per
// request after the handler returns; store failures are logged, never fatal
// to the response.
func (m *Manager) Commit(ctx context.Context, sess *Session) {
	if !sess.dirty && sess.persisted {
		return
	}
	if !sess.dirty && !sess.persisted {
		// Untouched anonymous session under SaveUninitialized=false: drop it.
		return
	}
	if err := m.persist(ctx, sess); err != nil {
		log.Printf("ERROR [session.Commit] failed to persist session %s: %v", sess.record.ID, err)
	}
}

func (m *Manager) persist(ctx context.Context, sess *Session) error {
	raw, err := json.Marshal(sess.data)
	if err != nil {
		return err
	}
	sess.record.Data = raw

	if sess.persisted {
		if err := m.store.Update(ctx, sess.record); err != nil {
			return err
		}
	} else {
		if err := m.store.Create(ctx, sess.record); err != nil {
			return err
		}
		sess.persisted = true
	}
	sess.dirty = false
	return nil
}

func (m *Manager) setCookie(w http.ResponseWriter, sessionID uuid.UUID) {
	token, err := EncodeToken(sessionID, m.opts.Secret, TTL)
	if err != nil {
		log.Printf("ERROR [session.setCookie] failed to sign token: %v", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TTL.Seconds()),
		Expires:  m.now().Add(TTL),
		HttpOnly: true,
		Secure:   m.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *Manager) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Session) ID() uuid.UUID { return s.record.ID }

func (s *Session) UserID() *uuid.UUID { return s.record.UserID }

func (s *Session) SetUserID(id uuid.UUID) {
	s.record.UserID = &id
	s.dirty = true
}

func (s *Session) ClearUserID() {
	s.record.UserID = nil
	s.dirty = true
}

// Rotate assigns the session a new identity while carrying over its data,
// including any flash queues set before login. The old record is removed so
// the pre-login cookie stops resolving.
func (s *Session) Rotate(ctx context.Context, w http.ResponseWriter) {
	if s.persisted {
		if err := s.m.store.Delete(ctx, s.record.ID); err != nil {
			log.Printf("ERROR [session.Rotate] failed to delete session %s: %v", s.record.ID, err)
		}
	}

	now := s.m.now()
	s.record.ID = uuid.New()
	s.record.LastTouchedAt = now
	s.record.ExpiresAt = now.Add(TTL)
	s.record.CreatedAt = now
	s.persisted = false
	s.dirty = true

	s.m.setCookie(w, s.record.ID)
}

// Destroy removes the session record and expires the cookie.
func (s *Session) Destroy(ctx context.Context, w http.ResponseWriter) {
	if s.persisted {
		if err := s.m.store.Delete(ctx, s.record.ID); err != nil {
			log.Printf("ERROR [session.Destroy] failed to delete session %s: %v", s.record.ID, err)
		}
	}
	s.persisted = false
	s.dirty = false
	s.m.clearCookie(w)
}

func (s *Session) AddFlash(kind, message string) {
	if s.data.Flash == nil {
		s.data.Flash = make(map[string][]string)
	}
	s.data.Flash[kind] = append(s.data.Flash[kind], message)
	s.dirty = true
}

// Flashes drains and returns the queue for kind. The drain is destructive:
// once read, the messages are gone from the session.
func (s *Session) Flashes(kind string) []string {
	if s.data.Flash == nil {
		return nil
	}
	messages := s.data.Flash[kind]
	if len(messages) == 0 {
		return nil
	}
	delete(s.data.Flash, kind)
	s.dirty = true
	return messages
}

func (s *Session) SetValue(key, value string) {
	if s.data.Values == nil {
		s.data.Values = make(map[string]string)
	}
	s.data.Values[key] = value
	s.dirty = true
}

func (s *Session) Value(key string) (string, bool) {
	value, ok := s.data.Values[key]
	return value, ok
}
