package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"coursecatalog/internal/api/v1/dto"
	"coursecatalog/internal/middleware"
	"coursecatalog/internal/model"
	"coursecatalog/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// CourseHandler handles course-related endpoints
type CourseHandler struct {
	courseService service.CourseService
	validate      *validator.Validate
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courseService service.CourseService, validate *validator.Validate) *CourseHandler {
	return &CourseHandler{courseService: courseService, validate: validate}
}

// RegisterRoutes mounts course routes
func (h *CourseHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("/courses", authMw(http.HandlerFunc(h.handleCourses)))
	mux.Handle("/courses/", authMw(http.HandlerFunc(h.handleCourse)))
}

func (h *CourseHandler) handleCourses(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/courses" {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet:
		h.listCourses(w, r)
	case http.MethodPost:
		h.createCourse(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *CourseHandler) handleCourse(w http.ResponseWriter, r *http.Request) {
	courseID := strings.TrimPrefix(r.URL.Path, "/courses/")
	if courseID == "" || strings.Contains(courseID, "/") {
		http.NotFound(w, r)
		return
	}
	if _, err := uuid.Parse(courseID); err != nil {
		http.Error(w, "Validation failed: id must be a valid UUID", http.StatusBadRequest)
		return
	}
	switch r.Method {
	case http.MethodGet:
		h.getCourse(w, r, courseID)
	case http.MethodPut:
		h.updateCourse(w, r, courseID)
	case http.MethodDelete:
		h.deleteCourse(w, r, courseID)
	default:
		http.NotFound(w, r)
	}
}

// listCourses godoc
// @Summary List courses
// @Description Returns one page of the course catalog, newest first, with each course's author name attached.
// @Tags courses
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param pageSize query int false "Page size, 1-50 (default 10)"
// @Success 200 {object} dto.CourseListResponseDTO
// @Failure 400 {string} string "Validation failed"
// @Failure 401 {string} string "Unauthorized"
// @Failure 500 {string} string "Failed to list courses"
// @Router /courses [get]
func (h *CourseHandler) listCourses(w http.ResponseWriter, r *http.Request) {
	query := dto.CourseListQueryDTO{Page: defaultPage, PageSize: defaultPageSize}

	if raw := r.URL.Query().Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Validation failed: page must be an integer", http.StatusBadRequest)
			return
		}
		query.Page = n
	}
	if raw := r.URL.Query().Get("pageSize"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Validation failed: pageSize must be an integer", http.StatusBadRequest)
			return
		}
		query.PageSize = n
	}
	if err := h.validate.Struct(&query); err != nil {
		http.Error(w, "Validation failed: "+validationMessage(err), http.StatusBadRequest)
		return
	}

	list, err := h.courseService.List(r.Context(), query.Page, query.PageSize)
	if err != nil {
		http.Error(w, "Failed to list courses: "+err.Error(), http.StatusInternalServerError)
		return
	}

	resp := dto.CourseListResponseDTO{
		Items:      make([]dto.CourseResponseDTO, 0, len(list.Items)),
		TotalCount: list.TotalCount,
		TotalPages: list.TotalPages,
		Page:       list.Page,
		PageSize:   list.PageSize,
	}
	for _, item := range list.Items {
		resp.Items = append(resp.Items, courseResponse(item))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// getCourse godoc
// @Summary Get a course
// @Description Retrieves a course by its ID, with the author name attached.
// @Tags courses
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.CourseResponseDTO
// @Failure 400 {string} string "Validation failed"
// @Failure 401 {string} string "Unauthorized"
// @Failure 404 {string} string "Course not found"
// @Failure 500 {string} string "Failed to retrieve course"
// @Router /courses/{courseId} [get]
func (h *CourseHandler) getCourse(w http.ResponseWriter, r *http.Request, courseID string) {
	course, err := h.courseService.GetByID(r.Context(), courseID)
	if err != nil {
		http.Error(w, "Failed to retrieve course: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if course == nil {
		http.Error(w, "Course not found", http.StatusNotFound)
		return
	}

	resp := courseResponse(*course)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// createCourse godoc
// @Summary Create a new course
// @Description Creates a new course owned by the authenticated user.
// @Tags courses
// @Accept json
// @Produce json
// @Param course body dto.CourseCreateDTO true "Course creation request"
// @Success 201 {object} dto.CourseCreatedDTO
// @Failure 400 {string} string "Invalid JSON payload or validation failed"
// @Failure 401 {string} string "Unauthorized"
// @Failure 500 {string} string "Failed to create course"
// @Router /courses [post]
func (h *CourseHandler) createCourse(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserContextKey).(string)
	if !ok || userID == "" {
		http.Error(w, "Unauthorized: User ID not found in context", http.StatusUnauthorized)
		return
	}

	var req dto.CourseCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+validationMessage(err), http.StatusBadRequest)
		return
	}

	course := &model.Course{
		UserID:          userID,
		Title:           req.Title,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Language:        req.Language,
		Level:           req.Level,
		Category:        req.Category,
	}
	created, err := h.courseService.Create(r.Context(), course)
	if err != nil {
		http.Error(w, "Failed to create course: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(dto.CourseCreatedDTO{ID: created.ID})
}

// updateCourse godoc
// @Summary Update a course
// @Description Replaces the mutable fields of a course owned by the authenticated user.
// @Tags courses
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param course body dto.CourseUpdateDTO true "Course update request"
// @Success 200 {object} dto.CourseUpdatedDTO
// @Failure 400 {string} string "Invalid JSON payload or validation failed"
// @Failure 401 {string} string "Unauthorized"
// @Failure 404 {string} string "Course not found"
// @Failure 500 {string} string "Failed to update course"
// @Router /courses/{courseId} [put]
func (h *CourseHandler) updateCourse(w http.ResponseWriter, r *http.Request, courseID string) {
	userID, ok := r.Context().Value(middleware.UserContextKey).(string)
	if !ok || userID == "" {
		http.Error(w, "Unauthorized: User ID not found in context", http.StatusUnauthorized)
		return
	}

	var req dto.CourseUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+validationMessage(err), http.StatusBadRequest)
		return
	}

	course := &model.Course{
		ID:              courseID,
		Title:           req.Title,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Language:        req.Language,
		Level:           req.Level,
		Category:        req.Category,
	}
	if err := h.courseService.Update(r.Context(), course, userID); err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			http.Error(w, "Course not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to update course: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dto.CourseUpdatedDTO{ID: courseID})
}

// deleteCourse godoc
// @Summary Delete a course
// @Description Deletes a course owned by the authenticated user. Deleting an absent course is a no-op.
// @Tags courses
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.CourseDeletedDTO
// @Failure 400 {string} string "Validation failed"
// @Failure 401 {string} string "Unauthorized"
// @Failure 500 {string} string "Failed to delete course"
// @Router /courses/{courseId} [delete]
func (h *CourseHandler) deleteCourse(w http.ResponseWriter, r *http.Request, courseID string) {
	userID, ok := r.Context().Value(middleware.UserContextKey).(string)
	if !ok || userID == "" {
		http.Error(w, "Unauthorized: User ID not found in context", http.StatusUnauthorized)
		return
	}

	if err := h.courseService.Delete(r.Context(), courseID, userID); err != nil {
		http.Error(w, "Failed to delete course: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dto.CourseDeletedDTO{OK: true})
}

func courseResponse(c service.CourseWithAuthor) dto.CourseResponseDTO {
	return dto.CourseResponseDTO{
		ID:              c.ID,
		UserID:          c.UserID,
		Title:           c.Title,
		Description:     c.Description,
		DurationMinutes: c.DurationMinutes,
		Language:        c.Language,
		Level:           c.Level,
		Category:        c.Category,
		AuthorName:      c.AuthorName,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
