package service

import (
	"context"
	"errors"

	"coursecatalog/internal/model"
	"coursecatalog/internal/repository"
)

var ErrCourseNotFound = errors.New("course not found")

// AnonymousAuthor is the display name attached to courses whose owner has
// no profile row.
const AnonymousAuthor = "Anonymous"

// CourseWithAuthor is a course decorated with its owner's display name.
type CourseWithAuthor struct {
	model.Course
	AuthorName string
}

// CourseList is one page of the catalog plus pagination totals. The row
// fetch and the count are separate queries, so totals can drift by a few
// rows against the page under concurrent writes.
type CourseList struct {
	Items      []CourseWithAuthor
	TotalCount int
	TotalPages int
	Page       int
	PageSize   int
}

// CourseService defines the interface for course operations
type CourseService interface {
	List(ctx context.Context, page, pageSize int) (*CourseList, error)
	// GetByID returns (nil, nil) when no such course exists.
	GetByID(ctx context.Context, courseID string) (*CourseWithAuthor, error)
	Create(ctx context.Context, c *model.Course) (*model.Course, error)
	// Update replaces the mutable fields of the course identified by c.ID,
	// provided it is owned by userID. ErrCourseNotFound covers both an
	// absent course and one owned by someone else.
	Update(ctx context.Context, c *model.Course, userID string) error
	// Delete is idempotent: removing an absent course is not an error.
	Delete(ctx context.Context, courseID, userID string) error
}

type courseService struct {
	courseRepo  repository.CourseRepository
	profileRepo repository.ProfileRepository
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo repository.CourseRepository, profileRepo repository.ProfileRepository) CourseService {
	return &courseService{courseRepo: courseRepo, profileRepo: profileRepo}
}

func (s *courseService) List(ctx context.Context, page, pageSize int) (*CourseList, error) {
	offset := (page - 1) * pageSize

	courses, err := s.courseRepo.ListCourses(ctx, pageSize, offset)
	if err != nil {
		return nil, err
	}

	items, err := s.attachAuthors(ctx, courses)
	if err != nil {
		return nil, err
	}

	totalCount, err := s.courseRepo.CountCourses(ctx)
	if err != nil {
		return nil, err
	}

	totalPages := (totalCount + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	return &CourseList{
		Items:      items,
		TotalCount: totalCount,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

func (s *courseService) GetByID(ctx context.Context, courseID string) (*CourseWithAuthor, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, nil
	}

	items, err := s.attachAuthors(ctx, []model.Course{*course})
	if err != nil {
		return nil, err
	}
	return &items[0], nil
}

func (s *courseService) Create(ctx context.Context, c *model.Course) (*model.Course, error) {
	if err := s.courseRepo.CreateCourse(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *courseService) Update(ctx context.Context, c *model.Course, userID string) error {
	affected, err := s.courseRepo.UpdateCourse(ctx, c, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCourseNotFound
	}
	return nil
}

func (s *courseService) Delete(ctx context.Context, courseID, userID string) error {
	// Zero rows affected is fine here: the course is gone either way, and
	// reporting "not found" would leak whether someone else owns the id.
	_, err := s.courseRepo.DeleteCourse(ctx, courseID, userID)
	return err
}

// attachAuthors resolves the display name for every distinct owner in one
// batched lookup, so the query count stays constant regardless of page size.
func (s *courseService) attachAuthors(ctx context.Context, courses []model.Course) ([]CourseWithAuthor, error) {
	if len(courses) == 0 {
		return []CourseWithAuthor{}, nil
	}

	seen := make(map[string]bool)
	var ownerIDs []string
	for _, c := range courses {
		if !seen[c.UserID] {
			seen[c.UserID] = true
			ownerIDs = append(ownerIDs, c.UserID)
		}
	}

	profiles, err := s.profileRepo.GetProfilesByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(profiles))
	for _, p := range profiles {
		names[p.UserID] = p.Username
	}

	items := make([]CourseWithAuthor, 0, len(courses))
	for _, c := range courses {
		name, ok := names[c.UserID]
		if !ok {
			name = AnonymousAuthor
		}
		items = append(items, CourseWithAuthor{Course: c, AuthorName: name})
	}
	return items, nil
}
