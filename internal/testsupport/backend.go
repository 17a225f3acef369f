package testsupport

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/wasif-mahmood1/Todo-app/task"
)

// Backend is an in-memory stand-in for the real server: it serves both
// the upload/proxy surface under /media and the record store under
// /rest/v1/todos, so client tests and scripts run against one process.
type Backend struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]task.Task
	files  map[string][]byte

	// BareCreateResponse makes POST /media answer with only the
	// stored file reference instead of echoing the created row.
	BareCreateResponse bool
}

// NewBackend returns an empty backend.
func NewBackend() *Backend {
	return &Backend{
		nextID: 1,
		rows:   make(map[int64]task.Task),
		files:  make(map[string][]byte),
	}
}

// StartBackend runs a Backend on an httptest server that is shut down
// when the test finishes.
func StartBackend(t testing.TB) (*Backend, *httptest.Server) {
	t.Helper()
	backend := NewBackend()
	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)
	return backend, server
}

// Seed inserts a row directly, bypassing the HTTP surface.
func (b *Backend) Seed(row task.Task) task.Task {
	b.mu.Lock()
	defer b.mu.Unlock()
	if row.ID == 0 {
		row.ID = b.nextID
	}
	if row.ID >= b.nextID {
		b.nextID = row.ID + 1
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	b.rows[row.ID] = row
	return row
}

// SeedFile stores raw file bytes under a storage key.
func (b *Backend) SeedFile(key string, data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.files[key] = data
}

// Rows returns all stored rows in creation order.
func (b *Backend) Rows() []task.Task {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sortedLocked()
}

// HasFile reports whether a storage key exists.
func (b *Backend) HasFile(key string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.files[key]
	return ok
}

func (b *Backend) sortedLocked() []task.Task {
	out := make([]task.Task, 0, len(b.rows))
	for _, row := range b.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (b *Backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	switch {
	case path == "/media/reachability-check":
		w.WriteHeader(http.StatusOK)
	case path == "/media" && r.Method == http.MethodPost:
		b.handleCreate(w, r)
	case path == "/media/file":
		b.handleFile(w, r)
	case strings.HasPrefix(path, "/media/toggle/"):
		b.handleToggle(w, r, strings.TrimPrefix(path, "/media/toggle/"))
	case strings.HasPrefix(path, "/media/"):
		b.handleUpdate(w, r, strings.TrimPrefix(path, "/media/"))
	case path == "/rest/v1/todos":
		b.handleRecords(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (b *Backend) handleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("parse form: %v", err))
		return
	}
	text := r.FormValue("task")
	if strings.TrimSpace(text) == "" {
		writeError(w, http.StatusBadRequest, "task is required")
		return
	}

	var key string
	if file, header, err := r.FormFile("file"); err == nil {
		data, readErr := io.ReadAll(file)
		file.Close()
		if readErr != nil {
			writeError(w, http.StatusInternalServerError, "read upload")
			return
		}
		b.mu.Lock()
		key = fmt.Sprintf("img/%d_%s", b.nextID, header.Filename)
		b.files[key] = data
		b.mu.Unlock()
	}

	b.mu.Lock()
	row := task.Task{
		ID:        b.nextID,
		Text:      text,
		ImagePath: key,
		CreatedAt: time.Now().UTC(),
	}
	b.nextID++
	b.rows[row.ID] = row
	bare := b.BareCreateResponse
	b.mu.Unlock()

	if bare {
		writeJSON(w, map[string]string{"path": key})
		return
	}
	writeJSON(w, map[string]any{"todo": row, "path": key})
}

func (b *Backend) handleFile(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("path")
	b.mu.Lock()
	data, ok := b.files[key]
	if r.Method == http.MethodDelete {
		delete(b.files, key)
	}
	b.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "no such file")
		return
	}
	switch r.Method {
	case http.MethodDelete, http.MethodHead:
		w.WriteHeader(http.StatusOK)
	case http.MethodGet:
		w.Write(data)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (b *Backend) handleToggle(w http.ResponseWriter, r *http.Request, rawID string) {
	if r.Method != http.MethodPut {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad id")
		return
	}

	b.mu.Lock()
	row, ok := b.rows[id]
	if ok {
		row.Completed = !row.Completed
		b.rows[id] = row
	}
	b.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "no such todo")
		return
	}
	writeJSON(w, map[string]bool{"is_completed": row.Completed})
}

func (b *Backend) handleUpdate(w http.ResponseWriter, r *http.Request, rawID string) {
	if r.Method != http.MethodPut {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad id")
		return
	}

	var payload struct {
		Text string `json:"task"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "bad body")
		return
	}
	if strings.TrimSpace(payload.Text) == "" {
		writeError(w, http.StatusBadRequest, "task is required")
		return
	}

	b.mu.Lock()
	row, ok := b.rows[id]
	if ok {
		row.Text = payload.Text
		b.rows[id] = row
	}
	b.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "no such todo")
		return
	}
	writeJSON(w, row)
}

func (b *Backend) handleRecords(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		b.mu.Lock()
		rows := b.sortedLocked()
		b.mu.Unlock()
		writeJSON(w, rows)
	case http.MethodDelete:
		filter := r.URL.Query().Get("id")
		id, err := strconv.ParseInt(strings.TrimPrefix(filter, "eq."), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad id filter")
			return
		}
		b.mu.Lock()
		delete(b.rows, id)
		b.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func writeJSON(w http.ResponseWriter, value any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
