// Package testutils provides shared test infrastructure, chiefly an
// in-memory fake of the task API that client and orchestration tests
// run against.
package testutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/gcunha/taskdeck/internal/domain"
)

// FakeAPI is an in-memory task API server. It issues real signed JWTs
// on login, enforces bearer auth on the task endpoints, and records
// the queries it receives so tests can assert on filter encoding and
// re-fetch behavior.
type FakeAPI struct {
	Server *httptest.Server

	// TokenTTL controls the exp claim of issued tokens. Zero issues
	// tokens without an exp claim.
	TokenTTL time.Duration

	secret []byte

	mu            sync.Mutex
	users         map[string]string // email -> password
	tasks         map[string]domain.Task
	order         []string // task IDs in creation order
	rejectBearers bool
	listCalls     int
	lastListQuery url.Values
}

// NewFakeAPI starts a fake task API. Callers own the returned server
// and must Close it.
func NewFakeAPI() *FakeAPI {
	f := &FakeAPI{
		TokenTTL: time.Hour,
		secret:   []byte("fake-api-signing-secret-for-tests"),
		users:    map[string]string{},
		tasks:    map[string]domain.Task{},
	}

	r := chi.NewRouter()
	r.Post("/register", f.handleRegister)
	r.Post("/login", f.handleLogin)
	r.Route("/tasks", func(r chi.Router) {
		r.Use(f.requireBearer)
		r.Get("/", f.handleList)
		r.Post("/", f.handleCreate)
		r.Put("/{id}", f.handleUpdate)
		r.Delete("/{id}", f.handleDelete)
	})

	f.Server = httptest.NewServer(r)
	return f
}

// Close shuts the server down.
func (f *FakeAPI) Close() {
	f.Server.Close()
}

// URL returns the base URL of the fake API.
func (f *FakeAPI) URL() string {
	return f.Server.URL
}

// AddUser registers a user without going through /register.
func (f *FakeAPI) AddUser(email, password string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[email] = password
}

// SeedTask inserts a task directly into the store, assigning an ID
// when absent, and returns the stored value.
func (f *FakeAPI) SeedTask(task domain.Task) domain.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if _, exists := f.tasks[task.ID]; !exists {
		f.order = append(f.order, task.ID)
	}
	f.tasks[task.ID] = task
	return task
}

// TaskCount returns the number of stored tasks.
func (f *FakeAPI) TaskCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tasks)
}

// RejectBearers makes every task endpoint answer 401 regardless of the
// presented token, simulating server-side token revocation.
func (f *FakeAPI) RejectBearers(reject bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rejectBearers = reject
}

// ListCalls returns how many times GET /tasks was served.
func (f *FakeAPI) ListCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

// LastListQuery returns the query values of the most recent GET /tasks.
func (f *FakeAPI) LastListQuery() url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastListQuery
}

// MintToken issues a token the fake API will accept, with the given
// expiry. A zero exp omits the claim.
func (f *FakeAPI) MintToken(email string, exp time.Time) string {
	claims := jwt.MapClaims{"sub": email}
	if !exp.IsZero() {
		claims["exp"] = exp.Unix()
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(f.secret)
	if err != nil {
		panic(err) // deterministic in tests
	}
	return signed
}

func (f *FakeAPI) handleRegister(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	f.mu.Lock()
	_, exists := f.users[payload.Email]
	if !exists {
		f.users[payload.Email] = payload.Password
	}
	f.mu.Unlock()
	if exists {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "email already registered"})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "user registered successfully"})
}

func (f *FakeAPI) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	f.mu.Lock()
	stored, ok := f.users[payload.Email]
	ttl := f.TokenTTL
	f.mu.Unlock()
	if !ok || stored != payload.Password {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		return
	}

	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "login successful",
		"token":   f.MintToken(payload.Email, exp),
	})
}

// requireBearer enforces Authorization: Bearer <token> with a valid
// signature and unexpired exp claim.
func (f *FakeAPI) requireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		reject := f.rejectBearers
		f.mu.Unlock()

		header := r.Header.Get("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if reject || !found || tokenString == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			return
		}
		_, err := jwt.Parse(tokenString, func(*jwt.Token) (interface{}, error) {
			return f.secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (f *FakeAPI) handleList(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.listCalls++
	f.lastListQuery = r.URL.Query()
	query := f.lastListQuery
	matched := make([]domain.Task, 0, len(f.order))
	for _, id := range f.order {
		task := f.tasks[id]
		if matchesFilters(task, query) {
			matched = append(matched, task)
		}
	}
	f.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{"tasks": matched})
}

func matchesFilters(task domain.Task, query url.Values) bool {
	if v := query.Get("status"); v != "" && string(task.Status) != v {
		return false
	}
	if v := query.Get("priority"); v != "" && string(task.Priority) != v {
		return false
	}
	if v := query.Get("title"); v != "" && !strings.Contains(strings.ToLower(task.Title), strings.ToLower(v)) {
		return false
	}
	if v := query.Get("dueDate"); v != "" && task.DueDate != v {
		return false
	}
	return true
}

func (f *FakeAPI) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload domain.TaskPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := payload.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	now := time.Now().UTC().Format(time.RFC3339)
	task := domain.Task{
		ID:          uuid.NewString(),
		Title:       payload.Title,
		Description: payload.Description,
		Status:      payload.Status,
		Priority:    payload.Priority,
		DueDate:     payload.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if task.Status == "" {
		task.Status = domain.StatusPending
	}
	if task.Priority == "" {
		task.Priority = domain.PriorityMedium
	}

	f.mu.Lock()
	f.tasks[task.ID] = task
	f.order = append(f.order, task.ID)
	f.mu.Unlock()

	writeJSON(w, http.StatusCreated, map[string]interface{}{"task": task})
}

func (f *FakeAPI) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var payload domain.TaskPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := payload.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	f.mu.Lock()
	task, ok := f.tasks[id]
	if ok {
		task.Title = payload.Title
		task.Description = payload.Description
		if payload.Status != "" {
			task.Status = payload.Status
		}
		if payload.Priority != "" {
			task.Priority = payload.Priority
		}
		task.DueDate = payload.DueDate
		task.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
		f.tasks[id] = task
	}
	f.mu.Unlock()

	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "task not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"task": task})
}

func (f *FakeAPI) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	f.mu.Lock()
	_, ok := f.tasks[id]
	if ok {
		delete(f.tasks, id)
		for i, existing := range f.order {
			if existing == id {
				f.order = append(f.order[:i], f.order[i+1:]...)
				break
			}
		}
	}
	f.mu.Unlock()

	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "task not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
