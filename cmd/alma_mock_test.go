package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/require"
	"github.com/uvalib/virgo4-jwt/v4jwt"
)

const almaNotFound = `<web_service_result><errorsExist>true</errorsExist></web_service_result>`

func init() {
	gin.SetMode(gin.TestMode)
}

// almaMock plays the Alma API from canned XML keyed by request path
type almaMock struct {
	mu        sync.Mutex
	responses map[string]string
	statuses  map[string]int
	calls     map[string]int
	queries   map[string]url.Values
	headers   map[string]http.Header
	server    *httptest.Server
}

func newAlmaMock(t *testing.T) *almaMock {
	m := &almaMock{
		responses: make(map[string]string),
		statuses:  make(map[string]int),
		calls:     make(map[string]int),
		queries:   make(map[string]url.Values),
		headers:   make(map[string]http.Header),
	}
	m.server = httptest.NewServer(http.HandlerFunc(m.serve))
	t.Cleanup(m.server.Close)
	return m
}

func (m *almaMock) serve(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	m.calls[r.URL.Path]++
	m.queries[r.URL.Path] = r.URL.Query()
	m.headers[r.URL.Path] = r.Header.Clone()
	body, ok := m.responses[r.URL.Path]
	status := m.statuses[r.URL.Path]
	m.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(almaNotFound))
		return
	}
	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

func (m *almaMock) handle(path string, body string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[path] = body
}

func (m *almaMock) fail(path string, status int, body string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[path] = body
	m.statuses[path] = status
}

func (m *almaMock) count(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[path]
}

func (m *almaMock) query(path string) url.Values {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.queries[path]
}

func (m *almaMock) header(path string) http.Header {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.headers[path]
}

func newTestService(t *testing.T, m *almaMock, rules HoldingsRules) *ServiceContext {
	bundle, err := loadTranslations()
	require.NoError(t, err)

	svc := &ServiceContext{
		Version:      "test",
		Rules:        rules,
		Translations: bundle,
		LocationMaps: []LocationMap{},
	}
	if m != nil {
		svc.Alma = AlmaConfig{URL: m.server.URL, APIKey: "test-key"}
		svc.HTTPClient = m.server.Client()
		svc.FastHTTPClient = m.server.Client()
	}
	return svc
}

func newTestClient(svc *ServiceContext, lang string, patron bool) *clientContext {
	c := &clientContext{
		svc:        svc,
		reqID:      "test",
		start:      time.Now(),
		acceptLang: lang,
		localizer:  i18n.NewLocalizer(svc.Translations, lang),
	}
	if patron {
		c.claims = &v4jwt.V4Claims{UserID: "patron1"}
	}
	return c
}
