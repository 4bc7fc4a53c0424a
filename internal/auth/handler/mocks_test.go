package handler

import (
	"context"
	"net/http"
	"os"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tympollack/keep-rocket-league/internal/account"
	"github.com/tympollack/keep-rocket-league/internal/auth"
	"github.com/tympollack/keep-rocket-league/internal/session"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type fakeVerifier struct {
	name      string
	authURL   string
	authErr   error
	assertion *auth.Assertion
	verifyErr error
}

func (f *fakeVerifier) Name() string {
	if f.name != "" {
		return f.name
	}
	return "steam"
}

func (f *fakeVerifier) AuthURL() (string, error) {
	return f.authURL, f.authErr
}

func (f *fakeVerifier) Verify(context.Context, *http.Request) (*auth.Assertion, error) {
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	return f.assertion, nil
}

type fakeResolver struct {
	name string
	err  error
}

func (f *fakeResolver) DisplayName(context.Context, string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.name, nil
}

// memAccountStore mimics the document store's set-by-key semantics:
// full replacement, one record per key.
type memAccountStore struct {
	mu       sync.Mutex
	upserts  int
	err      error
	accounts map[string]account.Account
}

func newMemAccountStore() *memAccountStore {
	return &memAccountStore{accounts: make(map[string]account.Account)}
}

func (m *memAccountStore) Upsert(_ context.Context, acc account.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}
	m.upserts++
	m.accounts[acc.SteamID] = acc
	return nil
}

func (m *memAccountStore) get(steamID string) (account.Account, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	acc, ok := m.accounts[steamID]
	return acc, ok
}

func (m *memAccountStore) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.accounts)
}

type memSessionStore struct {
	mu       sync.Mutex
	err      error
	sessions map[string]session.Session
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]session.Session)}
}

func (m *memSessionStore) Create(_ context.Context, s session.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}
	m.sessions[s.SessionID] = s
	return nil
}

func (m *memSessionStore) Get(_ context.Context, sessionID string) (*session.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *memSessionStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sessionID)
	return nil
}
