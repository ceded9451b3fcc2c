package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/viant/edulearn/schema"
)

func (c *Client) ListCategories(ctx context.Context) ([]schema.Category, error) {
	categories, err := list[schema.Category](ctx, c, "courses/categories/")
	if err != nil {
		return nil, fmt.Errorf("client.ListCategories: %w", err)
	}
	return categories, nil
}

// ListCourses fetches the catalog with optional filters.
func (c *Client) ListCourses(ctx context.Context, query *schema.CourseQuery) ([]schema.CourseSummary, error) {
	path := "courses/"
	if params := courseParams(query); len(params) > 0 {
		path += "?" + params.Encode()
	}
	courses, err := list[schema.CourseSummary](ctx, c, path)
	if err != nil {
		return nil, fmt.Errorf("client.ListCourses: %w", err)
	}
	return courses, nil
}

func courseParams(query *schema.CourseQuery) url.Values {
	params := url.Values{}
	if query == nil {
		return params
	}
	if query.Category != 0 {
		params.Set("category", strconv.Itoa(query.Category))
	}
	if query.Level != "" {
		params.Set("level", query.Level)
	}
	if query.Featured != nil {
		params.Set("is_featured", strconv.FormatBool(*query.Featured))
	}
	if query.Search != "" {
		params.Set("search", query.Search)
	}
	if query.Ordering != "" {
		params.Set("ordering", query.Ordering)
	}
	return params
}

func (c *Client) GetCourse(ctx context.Context, slug string) (*schema.Course, error) {
	var course schema.Course
	if err := c.get(ctx, "courses/"+url.PathEscape(slug)+"/", &course); err != nil {
		return nil, fmt.Errorf("client.GetCourse: %w", err)
	}
	return &course, nil
}

func (c *Client) CreateCourse(ctx context.Context, newCourse *schema.NewCourse) (*schema.Course, error) {
	var course schema.Course
	if err := c.post(ctx, "courses/", newCourse, &course); err != nil {
		return nil, fmt.Errorf("client.CreateCourse: %w", err)
	}
	return &course, nil
}

// Enroll enrolls the user; enrolling twice fails with a 400 HTTPError.
func (c *Client) Enroll(ctx context.Context, slug string) error {
	if err := c.post(ctx, "courses/"+url.PathEscape(slug)+"/enroll/", nil, nil); err != nil {
		return fmt.Errorf("client.Enroll: %w", err)
	}
	return nil
}

func (c *Client) MyCourses(ctx context.Context, status string) ([]schema.CourseSummary, error) {
	path := "courses/my_courses/"
	if status != "" {
		path += "?" + url.Values{"status": {status}}.Encode()
	}
	courses, err := list[schema.CourseSummary](ctx, c, path)
	if err != nil {
		return nil, fmt.Errorf("client.MyCourses: %w", err)
	}
	return courses, nil
}

func (c *Client) Teaching(ctx context.Context) ([]schema.CourseSummary, error) {
	courses, err := list[schema.CourseSummary](ctx, c, "courses/teaching/")
	if err != nil {
		return nil, fmt.Errorf("client.Teaching: %w", err)
	}
	return courses, nil
}

func (c *Client) ListLessons(ctx context.Context, courseSlug string) ([]schema.Lesson, error) {
	lessons, err := list[schema.Lesson](ctx, c, "courses/"+url.PathEscape(courseSlug)+"/lessons/")
	if err != nil {
		return nil, fmt.Errorf("client.ListLessons: %w", err)
	}
	return lessons, nil
}

func (c *Client) MarkLessonComplete(ctx context.Context, courseSlug, lessonSlug string) (*schema.LessonCompletion, error) {
	var completion schema.LessonCompletion
	path := "courses/" + url.PathEscape(courseSlug) + "/lessons/" + url.PathEscape(lessonSlug) + "/mark_complete/"
	if err := c.post(ctx, path, nil, &completion); err != nil {
		return nil, fmt.Errorf("client.MarkLessonComplete: %w", err)
	}
	return &completion, nil
}

func (c *Client) ListQuizzes(ctx context.Context, lessonID int) ([]schema.Quiz, error) {
	quizzes, err := list[schema.Quiz](ctx, c, "courses/lessons/"+strconv.Itoa(lessonID)+"/quizzes/")
	if err != nil {
		return nil, fmt.Errorf("client.ListQuizzes: %w", err)
	}
	return quizzes, nil
}

// SubmitQuiz submits answers to submission.QuizID; scoring happens server side.
func (c *Client) SubmitQuiz(ctx context.Context, lessonID int, submission *schema.QuizSubmission) (*schema.QuizResult, error) {
	var result schema.QuizResult
	path := "courses/lessons/" + strconv.Itoa(lessonID) + "/quizzes/" + strconv.Itoa(submission.QuizID) + "/submit/"
	if err := c.post(ctx, path, submission, &result); err != nil {
		return nil, fmt.Errorf("client.SubmitQuiz: %w", err)
	}
	return &result, nil
}

func (c *Client) ListEnrollments(ctx context.Context) ([]schema.Enrollment, error) {
	enrollments, err := list[schema.Enrollment](ctx, c, "courses/enrollments/")
	if err != nil {
		return nil, fmt.Errorf("client.ListEnrollments: %w", err)
	}
	return enrollments, nil
}

func (c *Client) EnrollmentProgress(ctx context.Context, enrollmentID int) ([]schema.LessonProgress, error) {
	progress, err := list[schema.LessonProgress](ctx, c, "courses/enrollments/"+strconv.Itoa(enrollmentID)+"/progress/")
	if err != nil {
		return nil, fmt.Errorf("client.EnrollmentProgress: %w", err)
	}
	return progress, nil
}

func (c *Client) ListQuizAttempts(ctx context.Context) ([]schema.QuizAttempt, error) {
	attempts, err := list[schema.QuizAttempt](ctx, c, "courses/quiz-attempts/")
	if err != nil {
		return nil, fmt.Errorf("client.ListQuizAttempts: %w", err)
	}
	return attempts, nil
}
