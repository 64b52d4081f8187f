package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"coursecatalog/internal/middleware"
	"coursecatalog/internal/model"
	"coursecatalog/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// stubCourseService drives handler tests without a database. Ownership and
// pagination semantics are covered by the service tests; here the focus is
// request parsing, validation and status mapping.
type stubCourseService struct {
	courses map[string]*service.CourseWithAuthor
	owners  map[string]string

	lastPage     int
	lastPageSize int
}

func newStubCourseService() *stubCourseService {
	return &stubCourseService{
		courses: make(map[string]*service.CourseWithAuthor),
		owners:  make(map[string]string),
	}
}

func (s *stubCourseService) List(_ context.Context, page, pageSize int) (*service.CourseList, error) {
	s.lastPage = page
	s.lastPageSize = pageSize
	return &service.CourseList{
		Items:      []service.CourseWithAuthor{},
		TotalCount: 0,
		TotalPages: 1,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

func (s *stubCourseService) GetByID(_ context.Context, courseID string) (*service.CourseWithAuthor, error) {
	return s.courses[courseID], nil
}

func (s *stubCourseService) Create(_ context.Context, c *model.Course) (*model.Course, error) {
	c.ID = uuid.NewString()
	s.courses[c.ID] = &service.CourseWithAuthor{Course: *c, AuthorName: service.AnonymousAuthor}
	s.owners[c.ID] = c.UserID
	return c, nil
}

func (s *stubCourseService) Update(_ context.Context, c *model.Course, userID string) error {
	if owner, ok := s.owners[c.ID]; !ok || owner != userID {
		return service.ErrCourseNotFound
	}
	existing := s.courses[c.ID]
	existing.Title = c.Title
	return nil
}

func (s *stubCourseService) Delete(_ context.Context, courseID, userID string) error {
	if owner, ok := s.owners[courseID]; ok && owner == userID {
		delete(s.courses, courseID)
		delete(s.owners, courseID)
	}
	return nil
}

func newTestCourseHandler() (*CourseHandler, *stubCourseService, *http.ServeMux) {
	svc := newStubCourseService()
	h := NewCourseHandler(svc, validator.New(validator.WithRequiredStructEnabled()))
	mux := http.NewServeMux()
	// Identity-passthrough middleware: auth itself is tested elsewhere.
	h.RegisterRoutes(mux, func(next http.Handler) http.Handler { return next })
	return h, svc, mux
}

func asUser(r *http.Request, userID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), middleware.UserContextKey, userID))
}

func TestCreateCourseValidation(t *testing.T) {
	_, _, mux := newTestCourseHandler()

	cases := []struct {
		name   string
		body   string
		status int
	}{
		{"empty title", `{"title":""}`, http.StatusBadRequest},
		{"missing title", `{}`, http.StatusBadRequest},
		{"title at limit", `{"title":"` + strings.Repeat("a", 200) + `"}`, http.StatusCreated},
		{"title over limit", `{"title":"` + strings.Repeat("a", 201) + `"}`, http.StatusBadRequest},
		{"duration over limit", `{"title":"ok","duration_minutes":20000}`, http.StatusBadRequest},
		{"language over limit", `{"title":"ok","language":"` + strings.Repeat("x", 101) + `"}`, http.StatusBadRequest},
		{"full valid payload", `{"title":"Intro to Go","description":"d","duration_minutes":90,"language":"en","level":"beginner","category":"programming"}`, http.StatusCreated},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := asUser(httptest.NewRequest(http.MethodPost, "/courses", strings.NewReader(tc.body)), "user-1")
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)
			if rec.Code != tc.status {
				t.Fatalf("expected status %d, got %d (%s)", tc.status, rec.Code, rec.Body.String())
			}
			if tc.status == http.StatusCreated {
				var resp struct {
					ID string `json:"id"`
				}
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp.ID == "" {
					t.Fatal("expected generated id in response")
				}
			}
		})
	}
}

func TestCreateCourseUnauthenticated(t *testing.T) {
	_, _, mux := newTestCourseHandler()

	req := httptest.NewRequest(http.MethodPost, "/courses", strings.NewReader(`{"title":"ok"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without user in context, got %d", rec.Code)
	}
}

func TestListCoursesQueryValidation(t *testing.T) {
	_, svc, mux := newTestCourseHandler()

	cases := []struct {
		name   string
		target string
		status int
	}{
		{"defaults", "/courses", http.StatusOK},
		{"explicit bounds", "/courses?page=3&pageSize=50", http.StatusOK},
		{"page zero", "/courses?page=0", http.StatusBadRequest},
		{"oversized page size", "/courses?pageSize=51", http.StatusBadRequest},
		{"non-integer page", "/courses?page=abc", http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := asUser(httptest.NewRequest(http.MethodGet, tc.target, nil), "user-1")
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)
			if rec.Code != tc.status {
				t.Fatalf("expected status %d, got %d (%s)", tc.status, rec.Code, rec.Body.String())
			}
		})
	}

	// Defaults land on page 1 with 10 items per page.
	req := asUser(httptest.NewRequest(http.MethodGet, "/courses", nil), "user-1")
	mux.ServeHTTP(httptest.NewRecorder(), req)
	if svc.lastPage != 1 || svc.lastPageSize != 10 {
		t.Fatalf("expected defaults page=1 pageSize=10, got %d/%d", svc.lastPage, svc.lastPageSize)
	}
}

func TestGetCourseBadID(t *testing.T) {
	_, _, mux := newTestCourseHandler()

	req := asUser(httptest.NewRequest(http.MethodGet, "/courses/not-a-uuid", nil), "user-1")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", rec.Code)
	}
}

func TestGetCourseNotFound(t *testing.T) {
	_, _, mux := newTestCourseHandler()

	req := asUser(httptest.NewRequest(http.MethodGet, "/courses/"+uuid.NewString(), nil), "user-1")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing course, got %d", rec.Code)
	}
}

func TestUpdateCourseNonOwner(t *testing.T) {
	_, svc, mux := newTestCourseHandler()

	created, err := svc.Create(context.Background(), &model.Course{UserID: "user-a", Title: "Intro to Go"})
	if err != nil {
		t.Fatalf("seed create failed: %v", err)
	}

	req := asUser(httptest.NewRequest(http.MethodPut, "/courses/"+created.ID, strings.NewReader(`{"title":"Hacked"}`)), "user-b")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for non-owner update, got %d", rec.Code)
	}
	if svc.courses[created.ID].Title != "Intro to Go" {
		t.Fatalf("non-owner update changed the record: %q", svc.courses[created.ID].Title)
	}

	req = asUser(httptest.NewRequest(http.MethodPut, "/courses/"+created.ID, strings.NewReader(`{"title":"Intro to Rust"}`)), "user-a")
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for owner update, got %d (%s)", rec.Code, rec.Body.String())
	}
	if svc.courses[created.ID].Title != "Intro to Rust" {
		t.Fatalf("owner update did not apply: %q", svc.courses[created.ID].Title)
	}
}

func TestDeleteCourseIdempotent(t *testing.T) {
	_, svc, mux := newTestCourseHandler()

	created, err := svc.Create(context.Background(), &model.Course{UserID: "user-a", Title: "Intro to Go"})
	if err != nil {
		t.Fatalf("seed create failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		req := asUser(httptest.NewRequest(http.MethodDelete, "/courses/"+created.ID, nil), "user-a")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("delete attempt %d: expected 200, got %d", i+1, rec.Code)
		}
		var resp struct {
			OK bool `json:"ok"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if !resp.OK {
			t.Fatalf("delete attempt %d: expected ok=true", i+1)
		}
	}
}
