// Package session is the canonical client-side authentication state: one
// state machine per process, rehydrated from an injected durable storage
// port, replacing the divergent per-consumer stores this app once had.
package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/agroassist/engine/internal/models"
)

// State is the client's view of "who is logged in".
type State int

const (
	// Unauthenticated means no session exists.
	Unauthenticated State = iota
	// Loading means durable storage is still being read.
	Loading
	// Authenticated means a session is held for a user.
	Authenticated
)

func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case Loading:
		return "loading"
	case Authenticated:
		return "authenticated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ErrAuthInFlight is returned when a login or signup is attempted while
// another one is still running. Serializing attempts keeps "last response
// wins" races out of the session entirely.
var ErrAuthInFlight = errors.New("an authentication request is already in flight")

// defaultTimeout bounds every network call the manager makes.
const defaultTimeout = 10 * time.Second

// Manager holds the session state machine. All methods are safe for
// concurrent use; exactly one Manager should exist per process.
type Manager struct {
	baseURL string
	client  *http.Client
	storage Storage

	mu       sync.Mutex
	state    State
	session  *Session
	inFlight bool
}

// NewManager builds the manager and rehydrates from storage: the state is
// Loading during the read and settles to Authenticated or Unauthenticated.
func NewManager(baseURL string, storage Storage) *Manager {
	m := &Manager{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultTimeout},
		storage: storage,
		state:   Loading,
	}
	sess, err := storage.Load()
	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil || sess == nil || sess.User.Email == "" {
		m.state = Unauthenticated
		return m
	}
	m.session = sess
	m.state = Authenticated
	return m
}

// Current returns the state and, when authenticated, the user.
func (m *Manager) Current() (State, *models.PublicUser) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != Authenticated || m.session == nil {
		return m.state, nil
	}
	u := m.session.User
	return m.state, &u
}

// Token returns the held bearer token, or empty when unauthenticated.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return ""
	}
	return m.session.Token
}

// Login authenticates with the server. On failure the prior session, state,
// and storage are untouched.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.PublicUser, error) {
	return m.authenticate(ctx, "/api/v1/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
}

// Signup registers a new account and authenticates as it.
func (m *Manager) Signup(ctx context.Context, name, email, password string) (*models.PublicUser, error) {
	return m.authenticate(ctx, "/api/v1/auth/signup", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
}

// Logout clears the session and durable storage synchronously. There is no
// server-side session to invalidate, so no network call is made.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = nil
	m.state = Unauthenticated
	return m.storage.Clear()
}

func (m *Manager) authenticate(ctx context.Context, path string, body map[string]string) (*models.PublicUser, error) {
	m.mu.Lock()
	if m.inFlight {
		m.mu.Unlock()
		return nil, ErrAuthInFlight
	}
	m.inFlight = true
	m.mu.Unlock()
	defer func() {
		m.mu.Lock()
		m.inFlight = false
		m.mu.Unlock()
	}()

	sess, err := m.post(ctx, path, body)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.storage.Save(sess); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	m.session = sess
	m.state = Authenticated
	u := sess.User
	return &u, nil
}

// envelope mirrors the server's response shape.
type envelope struct {
	Success bool `json:"success"`
	Data    struct {
		User  models.PublicUser `json:"user"`
		Token string            `json:"token"`
	} `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (m *Manager) post(ctx context.Context, path string, body map[string]string) (*Session, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode auth response: %w", err)
	}
	if resp.StatusCode >= 400 || !env.Success {
		msg := "authentication failed"
		if env.Error != nil && env.Error.Message != "" {
			msg = env.Error.Message
		}
		return nil, errors.New(msg)
	}
	return &Session{User: env.Data.User, Token: env.Data.Token}, nil
}
