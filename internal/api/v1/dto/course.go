package dto

import "time"

// CourseCreateDTO is used for incoming course creation requests
type CourseCreateDTO struct {
	Title           string  `json:"title" validate:"required,min=1,max=200"`
	Description     *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	DurationMinutes *int    `json:"duration_minutes,omitempty" validate:"omitempty,min=1,max=10000"`
	Language        *string `json:"language,omitempty" validate:"omitempty,max=100"`
	Level           *string `json:"level,omitempty" validate:"omitempty,max=100"`
	Category        *string `json:"category,omitempty" validate:"omitempty,max=100"`
}

// CourseUpdateDTO is used for incoming course update requests. Updates are
// full replacements of the mutable fields, so title is required here too.
type CourseUpdateDTO struct {
	Title           string  `json:"title" validate:"required,min=1,max=200"`
	Description     *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	DurationMinutes *int    `json:"duration_minutes,omitempty" validate:"omitempty,min=1,max=10000"`
	Language        *string `json:"language,omitempty" validate:"omitempty,max=100"`
	Level           *string `json:"level,omitempty" validate:"omitempty,max=100"`
	Category        *string `json:"category,omitempty" validate:"omitempty,max=100"`
}

// CourseListQueryDTO carries the parsed pagination query parameters.
type CourseListQueryDTO struct {
	Page     int `validate:"min=1"`
	PageSize int `validate:"min=1,max=50"`
}

// CourseResponseDTO is returned in API responses for courses
type CourseResponseDTO struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Title           string    `json:"title"`
	Description     *string   `json:"description,omitempty"`
	DurationMinutes *int      `json:"duration_minutes,omitempty"`
	Language        *string   `json:"language,omitempty"`
	Level           *string   `json:"level,omitempty"`
	Category        *string   `json:"category,omitempty"`
	AuthorName      string    `json:"author_name"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CourseListResponseDTO is one page of the catalog plus pagination totals.
type CourseListResponseDTO struct {
	Items      []CourseResponseDTO `json:"items"`
	TotalCount int                 `json:"total_count"`
	TotalPages int                 `json:"total_pages"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
}

// CourseCreatedDTO acknowledges a create with the generated id.
type CourseCreatedDTO struct {
	ID string `json:"id"`
}

// CourseUpdatedDTO acknowledges an update.
type CourseUpdatedDTO struct {
	ID string `json:"id"`
}

// CourseDeletedDTO acknowledges a delete.
type CourseDeletedDTO struct {
	OK bool `json:"ok"`
}
