package mock

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/viant/edulearn/schema"
)

var errNotFound = echo.NewHTTPError(http.StatusNotFound, "Not found.")

func (s *Service) me(c echo.Context) error {
	s.mu.Lock()
	user := currentAccount(c).user
	s.mu.Unlock()
	return c.JSON(http.StatusOK, user)
}

func (s *Service) updateMe(c echo.Context) error {
	update := &schema.ProfileUpdate{}
	if err := c.Bind(update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	user := &currentAccount(c).user
	assign(&user.FirstName, update.FirstName)
	assign(&user.LastName, update.LastName)
	assign(&user.Bio, update.Bio)
	assign(&user.Interests, update.Interests)
	assign(&user.LearningStyle, update.LearningStyle)
	return c.JSON(http.StatusOK, *user)
}

func assign(dest *string, value *string) {
	if value != nil {
		*dest = *value
	}
}

func (s *Service) listCategories(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, s.categories)
}

func (s *Service) listCourses(c echo.Context) error {
	level := c.QueryParam("level")
	search := strings.ToLower(c.QueryParam("search"))
	category := c.QueryParam("category")
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []schema.CourseSummary
	for _, course := range s.courses {
		if level != "" && course.Level != level {
			continue
		}
		if category != "" && (course.Category == nil || itoa(course.Category.ID) != category) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(course.Title+" "+course.ShortDescription+" "+course.Description), search) {
			continue
		}
		result = append(result, summary(course))
	}
	return c.JSON(http.StatusOK, paginate(result))
}

func (s *Service) getCourse(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	course := s.course(c.Param("slug"))
	if course == nil {
		return errNotFound
	}
	return c.JSON(http.StatusOK, course)
}

func (s *Service) createCourse(c echo.Context) error {
	request := &schema.NewCourse{}
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
	}
	if strings.TrimSpace(request.Title) == "" {
		return c.JSON(http.StatusBadRequest, detail{"title": []string{"This field is required."}})
	}
	instructor := currentAccount(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	course := &schema.Course{
		ID:               s.nextID(),
		Title:            request.Title,
		Slug:             slugify(request.Title),
		Description:      request.Description,
		ShortDescription: request.ShortDescription,
		Instructor:       instructor.user.ID,
		InstructorName:   instructor.user.DisplayName(),
		Level:            request.Level,
		Duration:         request.Duration,
	}
	for i := range s.categories {
		if s.categories[i].ID == request.Category {
			category := s.categories[i]
			course.Category = &category
		}
	}
	if s.course(course.Slug) != nil {
		return c.JSON(http.StatusBadRequest, detail{"slug": []string{"course with this slug already exists."}})
	}
	now := time.Now().UTC()
	course.CreatedAt, course.UpdatedAt = &now, &now
	s.courses = append(s.courses, course)
	return c.JSON(http.StatusCreated, course)
}

func (s *Service) enroll(c echo.Context) error {
	userID := currentAccount(c).user.ID
	s.mu.Lock()
	defer s.mu.Unlock()
	course := s.course(c.Param("slug"))
	if course == nil {
		return errNotFound
	}
	if s.enrollment(userID, course.ID) != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "You are already enrolled in this course.")
	}
	now := time.Now().UTC()
	anEnrollment := &enrollment{Enrollment: schema.Enrollment{
		ID:          s.nextID(),
		Course:      course.ID,
		CourseTitle: course.Title,
		Status:      schema.EnrollmentActive,
		EnrolledAt:  &now,
		UpdatedAt:   &now,
	}}
	for _, lesson := range course.Lessons {
		if !lesson.IsPublished {
			continue
		}
		anEnrollment.lessons = append(anEnrollment.lessons, schema.LessonProgress{
			ID:          s.nextID(),
			Lesson:      lesson.ID,
			LessonTitle: lesson.Title,
			Status:      schema.LessonNotStarted,
		})
	}
	s.enrollments[userID] = append(s.enrollments[userID], anEnrollment)
	return c.JSON(http.StatusCreated, detail{"detail": "Successfully enrolled in the course."})
}

func (s *Service) myCourses(c echo.Context) error {
	userID := currentAccount(c).user.ID
	status := c.QueryParam("status")
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []schema.CourseSummary
	for _, anEnrollment := range s.enrollments[userID] {
		if status != "" && anEnrollment.Status != status {
			continue
		}
		if course := s.courseByID(anEnrollment.Course); course != nil {
			result = append(result, summary(course))
		}
	}
	return c.JSON(http.StatusOK, paginate(result))
}

func (s *Service) teaching(c echo.Context) error {
	userID := currentAccount(c).user.ID
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []schema.CourseSummary
	for _, course := range s.courses {
		if course.Instructor == userID {
			result = append(result, summary(course))
		}
	}
	return c.JSON(http.StatusOK, paginate(result))
}

func (s *Service) listLessons(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	course := s.course(c.Param("slug"))
	if course == nil {
		return errNotFound
	}
	return c.JSON(http.StatusOK, course.Lessons)
}

func (s *Service) markComplete(c echo.Context) error {
	userID := currentAccount(c).user.ID
	s.mu.Lock()
	defer s.mu.Unlock()
	course := s.course(c.Param("slug"))
	if course == nil {
		return errNotFound
	}
	lesson := findLesson(course, c.Param("lesson"))
	if lesson == nil {
		return errNotFound
	}
	anEnrollment := s.enrollment(userID, course.ID)
	if anEnrollment == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "You are not enrolled in this course.")
	}
	now := time.Now().UTC()
	completed := 0
	found := false
	for i := range anEnrollment.lessons {
		progress := &anEnrollment.lessons[i]
		if progress.Lesson == lesson.ID {
			found = true
			progress.Status = schema.LessonCompleted
			if progress.StartedAt == nil {
				progress.StartedAt = &now
			}
			progress.CompletedAt = &now
		}
		if progress.Status == schema.LessonCompleted {
			completed++
		}
	}
	if !found {
		anEnrollment.lessons = append(anEnrollment.lessons, schema.LessonProgress{
			ID: s.nextID(), Lesson: lesson.ID, LessonTitle: lesson.Title,
			Status: schema.LessonCompleted, StartedAt: &now, CompletedAt: &now,
		})
		completed++
	}
	if total := len(anEnrollment.lessons); total > 0 {
		anEnrollment.Progress = float64(completed) / float64(total) * 100
		if completed == total {
			anEnrollment.Status = schema.EnrollmentCompleted
			anEnrollment.CompletedAt = &now
		}
	}
	anEnrollment.UpdatedAt = &now
	return c.JSON(http.StatusOK, &schema.LessonCompletion{Detail: "Lesson marked as completed.", Progress: anEnrollment.Progress})
}

func (s *Service) listEnrollments(c echo.Context) error {
	userID := currentAccount(c).user.ID
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]schema.Enrollment, 0, len(s.enrollments[userID]))
	for _, anEnrollment := range s.enrollments[userID] {
		result = append(result, anEnrollment.Enrollment)
	}
	return c.JSON(http.StatusOK, paginate(result))
}

func (s *Service) enrollmentProgress(c echo.Context) error {
	userID := currentAccount(c).user.ID
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, anEnrollment := range s.enrollments[userID] {
		if itoa(anEnrollment.ID) == c.Param("id") {
			return c.JSON(http.StatusOK, anEnrollment.lessons)
		}
	}
	return errNotFound
}

func (s *Service) listQuizzes(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, lesson := s.lessonByID(c.Param("lesson"))
	if lesson == nil {
		return errNotFound
	}
	return c.JSON(http.StatusOK, lesson.Quizzes)
}

func (s *Service) submitQuiz(c echo.Context) error {
	submission := &schema.QuizSubmission{}
	if err := c.Bind(submission); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
	}
	userID := currentAccount(c).user.ID
	s.mu.Lock()
	defer s.mu.Unlock()
	course, lesson := s.lessonByID(c.Param("lesson"))
	if lesson == nil {
		return errNotFound
	}
	var quiz *schema.Quiz
	for i := range lesson.Quizzes {
		if itoa(lesson.Quizzes[i].ID) == c.Param("quiz") {
			quiz = &lesson.Quizzes[i]
		}
	}
	if quiz == nil {
		return errNotFound
	}
	if course.Instructor != userID && s.enrollment(userID, course.ID) == nil {
		return echo.NewHTTPError(http.StatusForbidden, "You do not have permission to perform this action.")
	}
	total, earned := 0, 0
	for _, response := range submission.Responses {
		question := findQuestion(quiz, response.QuestionID)
		if question == nil {
			return c.JSON(http.StatusBadRequest, detail{"responses": []string{"Unknown question."}})
		}
		total += question.Points
		if sameIDs(s.answers[question.ID], response.AnswerIDs) {
			earned += question.Points
		}
	}
	now := time.Now().UTC()
	attempt := schema.QuizAttempt{ID: s.nextID(), Quiz: quiz.ID, TimeTaken: submission.TimeTaken, IsCompleted: true, StartedAt: &now, CompletedAt: &now}
	if total > 0 {
		attempt.Score = float64(earned) / float64(total) * 100
	}
	s.attempts[userID] = append(s.attempts[userID], attempt)
	return c.JSON(http.StatusOK, &schema.QuizResult{Detail: "Quiz submitted successfully.", AttemptID: attempt.ID, Score: attempt.Score})
}

func (s *Service) listQuizAttempts(c echo.Context) error {
	userID := currentAccount(c).user.ID
	s.mu.Lock()
	defer s.mu.Unlock()
	result := append([]schema.QuizAttempt{}, s.attempts[userID]...)
	return c.JSON(http.StatusOK, paginate(result))
}

func (s *Service) course(slug string) *schema.Course {
	for _, course := range s.courses {
		if course.Slug == slug {
			return course
		}
	}
	return nil
}

func (s *Service) courseByID(id int) *schema.Course {
	for _, course := range s.courses {
		if course.ID == id {
			return course
		}
	}
	return nil
}

func (s *Service) lessonByID(id string) (*schema.Course, *schema.Lesson) {
	for _, course := range s.courses {
		for i := range course.Lessons {
			if itoa(course.Lessons[i].ID) == id {
				return course, &course.Lessons[i]
			}
		}
	}
	return nil, nil
}

func (s *Service) enrollment(userID, courseID int) *enrollment {
	for _, anEnrollment := range s.enrollments[userID] {
		if anEnrollment.Course == courseID {
			return anEnrollment
		}
	}
	return nil
}

func findLesson(course *schema.Course, slug string) *schema.Lesson {
	for i := range course.Lessons {
		if course.Lessons[i].Slug == slug {
			return &course.Lessons[i]
		}
	}
	return nil
}

func findQuestion(quiz *schema.Quiz, id int) *schema.Question {
	for i := range quiz.Questions {
		if quiz.Questions[i].ID == id {
			return &quiz.Questions[i]
		}
	}
	return nil
}

func sameIDs(expected, actual []int) bool {
	if len(expected) != len(actual) {
		return false
	}
	index := map[int]bool{}
	for _, id := range expected {
		index[id] = true
	}
	for _, id := range actual {
		if !index[id] {
			return false
		}
	}
	return true
}

func summary(course *schema.Course) schema.CourseSummary {
	ret := schema.CourseSummary{
		ID:               course.ID,
		Title:            course.Title,
		Slug:             course.Slug,
		ShortDescription: course.ShortDescription,
		Thumbnail:        course.Thumbnail,
		Level:            course.Level,
		Duration:         course.Duration,
		InstructorName:   course.InstructorName,
		LessonCount:      len(course.Lessons),
	}
	if course.Category != nil {
		ret.CategoryName = course.Category.Name
	}
	return ret
}

func slugify(title string) string {
	fields := strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	return strings.Join(fields, "-")
}
