package client

import (
	"context"

	"github.com/viant/edulearn/schema"
)

// Interface defines the EduLearn API operations
type Interface interface {
	// Me returns the authenticated user's profile
	Me(ctx context.Context) (*schema.User, error)

	// UpdateMe partially updates the authenticated user's profile
	UpdateMe(ctx context.Context, update *schema.ProfileUpdate) (*schema.User, error)

	// ListCategories lists course categories
	ListCategories(ctx context.Context) ([]schema.Category, error)

	// ListCourses lists the course catalog; query may be nil
	ListCourses(ctx context.Context, query *schema.CourseQuery) ([]schema.CourseSummary, error)

	// GetCourse returns course details with lessons
	GetCourse(ctx context.Context, slug string) (*schema.Course, error)

	// CreateCourse creates a course taught by the authenticated user
	CreateCourse(ctx context.Context, course *schema.NewCourse) (*schema.Course, error)

	// Enroll enrolls the authenticated user in a course
	Enroll(ctx context.Context, slug string) error

	// MyCourses lists courses the user is enrolled in, optionally filtered by enrollment status
	MyCourses(ctx context.Context, status string) ([]schema.CourseSummary, error)

	// Teaching lists courses the user teaches
	Teaching(ctx context.Context) ([]schema.CourseSummary, error)

	// ListLessons lists lessons of a course
	ListLessons(ctx context.Context, courseSlug string) ([]schema.Lesson, error)

	// MarkLessonComplete marks a lesson completed and returns the course progress
	MarkLessonComplete(ctx context.Context, courseSlug, lessonSlug string) (*schema.LessonCompletion, error)

	// ListQuizzes lists quizzes of a lesson
	ListQuizzes(ctx context.Context, lessonID int) ([]schema.Quiz, error)

	// SubmitQuiz submits quiz answers for server side scoring
	SubmitQuiz(ctx context.Context, lessonID int, submission *schema.QuizSubmission) (*schema.QuizResult, error)

	// ListEnrollments lists the user's enrollments
	ListEnrollments(ctx context.Context) ([]schema.Enrollment, error)

	// EnrollmentProgress returns per lesson progress of an enrollment
	EnrollmentProgress(ctx context.Context, enrollmentID int) ([]schema.LessonProgress, error)

	// ListQuizAttempts lists the user's quiz attempts
	ListQuizAttempts(ctx context.Context) ([]schema.QuizAttempt, error)

	// ListChatSessions lists AI assistant chat sessions
	ListChatSessions(ctx context.Context) ([]schema.ChatSession, error)

	// CreateChatSession starts an AI assistant chat session
	CreateChatSession(ctx context.Context, title string) (*schema.ChatSession, error)

	// SendChatMessage sends a message and returns it with the assistant reply
	SendChatMessage(ctx context.Context, sessionID int, content string) (*schema.ChatExchange, error)

	// RecommendCourses returns personalized course recommendations
	RecommendCourses(ctx context.Context, request *schema.RecommendationRequest) ([]schema.Recommendation, error)
}

var _ Interface = (*Client)(nil)
