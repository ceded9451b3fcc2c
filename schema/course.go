package schema

import "time"

type (
	Category struct {
		ID          int    `json:"id"`
		Name        string `json:"name"`
		Slug        string `json:"slug"`
		Description string `json:"description,omitempty"`
		Parent      *int   `json:"parent,omitempty"`
		Icon        string `json:"icon,omitempty"`
	}

	// CourseSummary is a course list entry
	CourseSummary struct {
		ID               int    `json:"id"`
		Title            string `json:"title"`
		Slug             string `json:"slug"`
		ShortDescription string `json:"short_description,omitempty"`
		Thumbnail        string `json:"thumbnail,omitempty"`
		Level            string `json:"level,omitempty"`
		Duration         string `json:"duration,omitempty"`
		InstructorName   string `json:"instructor_name,omitempty"`
		CategoryName     string `json:"category_name,omitempty"`
		LessonCount      int    `json:"lesson_count"`
		IsFeatured       bool   `json:"is_featured"`
	}

	Course struct {
		ID                 int        `json:"id"`
		Title              string     `json:"title"`
		Slug               string     `json:"slug"`
		Description        string     `json:"description,omitempty"`
		ShortDescription   string     `json:"short_description,omitempty"`
		Category           *Category  `json:"category,omitempty"`
		Instructor         int        `json:"instructor,omitempty"`
		InstructorName     string     `json:"instructor_name,omitempty"`
		Level              string     `json:"level,omitempty"`
		Duration           string     `json:"duration,omitempty"`
		Prerequisites      string     `json:"prerequisites,omitempty"`
		LearningObjectives []string   `json:"learning_objectives,omitempty"`
		Thumbnail          string     `json:"thumbnail,omitempty"`
		PreviewVideo       string     `json:"preview_video,omitempty"`
		Lessons            []Lesson   `json:"lessons,omitempty"`
		CreatedAt          *time.Time `json:"created_at,omitempty"`
		UpdatedAt          *time.Time `json:"updated_at,omitempty"`
	}

	NewCourse struct {
		Title            string `json:"title"`
		Description      string `json:"description"`
		ShortDescription string `json:"short_description,omitempty"`
		Category         int    `json:"category"`
		Level            string `json:"level,omitempty"`
		Duration         string `json:"duration,omitempty"`
	}

	Lesson struct {
		ID            int    `json:"id"`
		Title         string `json:"title"`
		Slug          string `json:"slug"`
		Description   string `json:"description,omitempty"`
		Order         int    `json:"order"`
		Content       string `json:"content,omitempty"`
		VideoURL      string `json:"video_url,omitempty"`
		Duration      int    `json:"duration,omitempty"`
		IsPublished   bool   `json:"is_published"`
		IsFreePreview bool   `json:"is_free_preview"`
		Quizzes       []Quiz `json:"quizzes,omitempty"`
	}

	Enrollment struct {
		ID          int        `json:"id"`
		Course      int        `json:"course"`
		CourseTitle string     `json:"course_title"`
		Status      string     `json:"status"`
		Progress    float64    `json:"progress"`
		EnrolledAt  *time.Time `json:"enrolled_at,omitempty"`
		UpdatedAt   *time.Time `json:"updated_at,omitempty"`
		CompletedAt *time.Time `json:"completed_at,omitempty"`
	}

	LessonProgress struct {
		ID             int        `json:"id"`
		Lesson         int        `json:"lesson"`
		LessonTitle    string     `json:"lesson_title"`
		Status         string     `json:"status"`
		TimeSpent      int        `json:"time_spent"`
		StartedAt      *time.Time `json:"started_at,omitempty"`
		CompletedAt    *time.Time `json:"completed_at,omitempty"`
		LastAccessedAt *time.Time `json:"last_accessed_at,omitempty"`
	}

	// LessonCompletion is returned after marking a lesson complete; Progress is
	// the enrollment completion percentage.
	LessonCompletion struct {
		Detail   string  `json:"detail"`
		Progress float64 `json:"progress"`
	}

	// Detail is the generic acknowledgement body of action endpoints.
	Detail struct {
		Detail string `json:"detail"`
	}
)

const (
	EnrollmentActive    = "active"
	EnrollmentCompleted = "completed"
	EnrollmentDropped   = "dropped"

	LessonNotStarted = "not_started"
	LessonInProgress = "in_progress"
	LessonCompleted  = "completed"
)

// CourseQuery filters the course catalog; zero fields are not sent.
type CourseQuery struct {
	Category int
	Level    string
	Featured *bool
	Search   string
	Ordering string
}
