package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"coursecatalog/internal/model"
)

// CourseRepository defines the interface for interacting with course data.
// Mutations take the caller's user id so ownership is enforced inside the
// query itself: a non-owner's update or delete matches zero rows.
type CourseRepository interface {
	ListCourses(ctx context.Context, limit, offset int) ([]model.Course, error)
	CountCourses(ctx context.Context) (int, error)
	GetCourseByID(ctx context.Context, courseID string) (*model.Course, error)
	CreateCourse(ctx context.Context, c *model.Course) error
	// UpdateCourse replaces the mutable fields of the course owned by
	// userID and returns the number of rows affected.
	UpdateCourse(ctx context.Context, c *model.Course, userID string) (int64, error)
	// DeleteCourse removes the course owned by userID and returns the
	// number of rows affected.
	DeleteCourse(ctx context.Context, courseID, userID string) (int64, error)
}

type courseRepo struct {
	db *sql.DB
}

// NewCourseRepo creates a new CourseRepository
func NewCourseRepo(db *sql.DB) CourseRepository {
	return &courseRepo{db: db}
}

// ListCourses returns one page of courses, newest first. The id tie-break
// keeps the ordering stable when created_at collides.
func (r *courseRepo) ListCourses(ctx context.Context, limit, offset int) ([]model.Course, error) {
	query := `
		SELECT id, user_id, title, description, duration_minutes, language, level, category, created_at, updated_at
		FROM courses
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(
			&c.ID,
			&c.UserID,
			&c.Title,
			&c.Description,
			&c.DurationMinutes,
			&c.Language,
			&c.Level,
			&c.Category,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan course row: %w", err)
		}
		courses = append(courses, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	// If no courses found, return an empty slice, not nil
	if len(courses) == 0 {
		return []model.Course{}, nil
	}

	return courses, nil
}

// CountCourses returns the total number of courses in the catalog.
func (r *courseRepo) CountCourses(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM courses`
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count courses: %w", err)
	}
	return count, nil
}

// GetCourseByID retrieves a course by its ID. Returns (nil, nil) when no
// such course exists.
func (r *courseRepo) GetCourseByID(ctx context.Context, courseID string) (*model.Course, error) {
	query := `
		SELECT id, user_id, title, description, duration_minutes, language, level, category, created_at, updated_at
		FROM courses
		WHERE id = $1
	`
	var c model.Course
	err := r.db.QueryRowContext(ctx, query, courseID).Scan(
		&c.ID,
		&c.UserID,
		&c.Title,
		&c.Description,
		&c.DurationMinutes,
		&c.Language,
		&c.Level,
		&c.Category,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return &c, nil
}

// CreateCourse inserts a new course and fills in the generated id and
// timestamps on the passed model.
func (r *courseRepo) CreateCourse(ctx context.Context, c *model.Course) error {
	query := `
		INSERT INTO courses (user_id, title, description, duration_minutes, language, level, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		c.UserID, c.Title, c.Description, c.DurationMinutes, c.Language, c.Level, c.Category,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert course: %w", err)
	}
	return nil
}

// UpdateCourse fully replaces the mutable fields of a course. The user_id
// predicate is the ownership boundary; it lives in the statement itself so
// the check and the write cannot race.
func (r *courseRepo) UpdateCourse(ctx context.Context, c *model.Course, userID string) (int64, error) {
	query := `
		UPDATE courses
		SET title = $1, description = $2, duration_minutes = $3, language = $4, level = $5, category = $6, updated_at = NOW()
		WHERE id = $7 AND user_id = $8
	`
	res, err := r.db.ExecContext(ctx, query,
		c.Title, c.Description, c.DurationMinutes, c.Language, c.Level, c.Category, c.ID, userID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update course: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected, nil
}

// DeleteCourse removes a course owned by userID. Deleting an absent id is
// not an error; zero rows affected is reported to the caller.
func (r *courseRepo) DeleteCourse(ctx context.Context, courseID, userID string) (int64, error) {
	query := `DELETE FROM courses WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, query, courseID, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete course: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected, nil
}
