// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/neurocare/cliparse"
	"github.com/danielhkuo/neurocare/db"
	"github.com/danielhkuo/neurocare/journal"
	"github.com/danielhkuo/neurocare/kvstore"
	"github.com/danielhkuo/neurocare/middleware"
	"github.com/danielhkuo/neurocare/mood"
)

// TestDBURL is an in-memory sqlite database, private to one connection
const TestDBURL = ":memory:"

// SetupTestDB creates a fresh in-memory database with the kv schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(cliparse.StorageSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

// SetupTestStore returns a SQL-backed store on a fresh test database
func SetupTestStore(t *testing.T) kvstore.Store {
	t.Helper()

	store, err := kvstore.NewSQL(SetupTestDB(t), kvstore.DialectSQLite)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return store
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3318,
		StorageType:    cliparse.StorageSQLite,
		DatabaseURL:    TestDBURL,
		ProfileSalt:    "test-profile-salt",
		BackendTimeout: 2 * time.Second,
		ChatMode:       cliparse.ChatCanned,
		Timezone:       "UTC",
		Location:       time.UTC,
	}
}

// Clock is a settable time source for tests
type Clock struct {
	mu sync.Mutex
	t  time.Time
}

func NewClock(t time.Time) *Clock {
	return &Clock{t: t}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

// Advance moves the clock forward by d
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// NewTestService builds a journal service over store with a deterministic
// classifier driven by clock
func NewTestService(t *testing.T, store kvstore.Store, clock *Clock) *journal.Service {
	t.Helper()

	cfg := GetTestConfig()
	classifier := mood.NewClassifier()
	classifier.Rand = mood.NewSeededRand(1)
	classifier.Now = clock.Now

	return journal.NewService(store, classifier, journal.Options{
		Salt:     cfg.ProfileSalt,
		Now:      clock.Now,
		Location: cfg.Location,
	})
}

// ProfileHeaders returns the request headers that select a profile
func ProfileHeaders(profileID string) map[string]string {
	return map[string]string{middleware.ProfileHeader: profileID}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
