package testhelpers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

// Call is one request received by the fake backend.
type Call struct {
	Method        string
	Path          string
	RawQuery      string
	Authorization string
	Body          string
}

type reply struct {
	status      int
	contentType string
	body        string
}

// Backend is a fake SARA REST API. Replies are registered per "METHOD path";
// every request is recorded so tests can assert what was (or was not) sent.
type Backend struct {
	*httptest.Server

	mu      sync.Mutex
	calls   []Call
	replies map[string]reply
	delays  map[string]time.Duration
}

// NewBackend starts a fake backend that is closed when the test ends.
func NewBackend(t *testing.T) *Backend {
	t.Helper()

	b := &Backend{
		replies: make(map[string]reply),
		delays:  make(map[string]time.Duration),
	}
	b.Server = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.Close)
	return b
}

// OnJSON registers a JSON reply.
func (b *Backend) OnJSON(method, path string, status int, body string) {
	b.on(method, path, reply{status: status, contentType: "application/json", body: body})
}

// OnText registers a plain-text reply.
func (b *Backend) OnText(method, path string, status int, body string) {
	b.on(method, path, reply{status: status, contentType: "text/plain;charset=UTF-8", body: body})
}

func (b *Backend) on(method, path string, r reply) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.replies[method+" "+path] = r
}

// Delay makes the backend wait d before answering "METHOD path".
func (b *Backend) Delay(method, path string, d time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.delays[method+" "+path] = d
}

// Calls returns a copy of the recorded requests.
func (b *Backend) Calls() []Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Call(nil), b.calls...)
}

// CallCount returns how many requests were received.
func (b *Backend) CallCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.calls)
}

// LastCall returns the most recent request; ok is false when none was received.
func (b *Backend) LastCall() (Call, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.calls) == 0 {
		return Call{}, false
	}
	return b.calls[len(b.calls)-1], true
}

func (b *Backend) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	b.mu.Lock()
	b.calls = append(b.calls, Call{
		Method:        r.Method,
		Path:          r.URL.Path,
		RawQuery:      r.URL.RawQuery,
		Authorization: r.Header.Get("Authorization"),
		Body:          strings.TrimSpace(string(body)),
	})
	rep, ok := b.replies[r.Method+" "+r.URL.Path]
	delay := b.delays[r.Method+" "+r.URL.Path]
	b.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
	}

	if !ok {
		rep = reply{status: http.StatusNotFound, contentType: "application/json", body: `{"message":"not found"}`}
	}

	w.Header().Set("Content-Type", rep.contentType)
	w.WriteHeader(rep.status)
	io.WriteString(w, rep.body)
}
