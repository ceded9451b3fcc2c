package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/viant/edulearn"
	"github.com/viant/edulearn/client/auth/store"
	"github.com/viant/edulearn/schema"
	"go.uber.org/zap"
)

// Service executes commands against an EduLearn client
type Service struct {
	options *Options
	client  *edulearn.Client
	in      io.Reader
	out     io.Writer
	logger  *zap.SugaredLogger
}

// Execute runs the named command
func (s *Service) Execute(ctx context.Context, command string) error {
	api := s.client.API
	switch command {
	case "login":
		password, err := s.password(s.options.Login.Password)
		if err != nil {
			return err
		}
		if err = s.client.Auth.Login(ctx, s.options.Login.Email, password); err != nil {
			return err
		}
		user, err := s.client.Auth.CurrentUser(ctx)
		if err != nil {
			return err
		}
		s.printf("logged in as %v\n", user.DisplayName())
	case "register":
		cmd := s.options.Register
		password, err := s.password(cmd.Password)
		if err != nil {
			return err
		}
		user, err := s.client.Auth.Register(ctx, &schema.Registration{
			Email: cmd.Email, Username: cmd.Username, Password: password, PasswordConfirm: password,
			FirstName: cmd.FirstName, LastName: cmd.LastName,
		})
		if err != nil {
			return err
		}
		s.printf("registered %v (%v), run `edulearn login` to start a session\n", user.Username, user.Email)
	case "logout":
		if err := s.client.Auth.Logout(ctx); err != nil {
			return err
		}
		s.printf("logged out\n")
	case "status":
		return s.status(ctx)
	case "whoami":
		user, err := api.Me(ctx)
		if err != nil {
			return err
		}
		s.printf("%v <%v> (%v)\n", user.DisplayName(), user.Email, user.Username)
	case "courses":
		cmd := s.options.Courses
		courses, err := api.ListCourses(ctx, &schema.CourseQuery{Category: cmd.Category, Level: cmd.Level, Search: cmd.Search})
		if err != nil {
			return err
		}
		s.printCourses(courses)
	case "course":
		course, err := api.GetCourse(ctx, s.options.Course.Args.Slug)
		if err != nil {
			return err
		}
		s.printCourse(course)
	case "enroll":
		if err := api.Enroll(ctx, s.options.Enroll.Args.Slug); err != nil {
			return err
		}
		s.printf("enrolled in %v\n", s.options.Enroll.Args.Slug)
	case "my-courses":
		courses, err := api.MyCourses(ctx, s.options.MyCourses.Status)
		if err != nil {
			return err
		}
		s.printCourses(courses)
	case "lessons":
		lessons, err := api.ListLessons(ctx, s.options.Lessons.Args.Slug)
		if err != nil {
			return err
		}
		s.printLessons(lessons)
	case "complete":
		args := s.options.Complete.Args
		completion, err := api.MarkLessonComplete(ctx, args.Course, args.Lesson)
		if err != nil {
			return err
		}
		s.printf("%v course progress: %.0f%%\n", completion.Detail, completion.Progress)
	case "progress":
		return s.progress(ctx)
	case "chat":
		return s.chat(ctx)
	case "recommend":
		cmd := s.options.Recommend
		recommendations, err := api.RecommendCourses(ctx, &schema.RecommendationRequest{Count: cmd.Count, IncludeEnrolled: cmd.IncludeEnrolled})
		if err != nil {
			return err
		}
		w := s.table("SLUG", "TITLE", "LEVEL", "SCORE")
		for _, item := range recommendations {
			fmt.Fprintf(w, "%v\t%v\t%v\t%.2f\n", item.Slug, item.Title, item.Level, item.SimilarityScore)
		}
		return w.Flush()
	default:
		return fmt.Errorf("unsupported command: %v", command)
	}
	return nil
}

func (s *Service) status(ctx context.Context) error {
	token, err := s.client.TokenSource(ctx).Token()
	if errors.Is(err, store.ErrNoSession) {
		s.printf("not logged in\n")
		return nil
	}
	if err != nil {
		return err
	}
	switch {
	case token.Expiry.IsZero():
		s.printf("logged in\n")
	case token.Valid():
		s.printf("logged in, access token expires %v\n", token.Expiry.Local().Format(time.RFC3339))
	default:
		s.printf("logged in, access token expired %v, renewed on the next request\n", token.Expiry.Local().Format(time.RFC3339))
	}
	if s.options.Status.Verify {
		if err = s.client.Auth.Verify(ctx); err != nil {
			s.printf("access token rejected: %v\n", err)
			return nil
		}
		s.printf("access token verified\n")
	}
	return nil
}

func (s *Service) progress(ctx context.Context) error {
	api := s.client.API
	if id := s.options.Progress.Enrollment; id != 0 {
		lessons, err := api.EnrollmentProgress(ctx, id)
		if err != nil {
			return err
		}
		w := s.table("LESSON", "STATUS", "TIME SPENT")
		for _, item := range lessons {
			fmt.Fprintf(w, "%v\t%v\t%v\n", item.LessonTitle, item.Status, time.Duration(item.TimeSpent)*time.Second)
		}
		return w.Flush()
	}
	enrollments, err := api.ListEnrollments(ctx)
	if err != nil {
		return err
	}
	w := s.table("ID", "COURSE", "STATUS", "PROGRESS")
	for _, item := range enrollments {
		fmt.Fprintf(w, "%v\t%v\t%v\t%.0f%%\n", item.ID, item.CourseTitle, item.Status, item.Progress)
	}
	return w.Flush()
}

func (s *Service) chat(ctx context.Context) error {
	api := s.client.API
	cmd := s.options.Chat
	sessionID := cmd.Session
	if sessionID == 0 {
		session, err := api.CreateChatSession(ctx, cmd.Title)
		if err != nil {
			return err
		}
		sessionID = session.ID
		s.logger.Debugw("started chat session", "session", sessionID)
	}
	exchange, err := api.SendChatMessage(ctx, sessionID, strings.Join(cmd.Args.Message, " "))
	if err != nil {
		return err
	}
	s.printf("[session %v] %v\n", sessionID, exchange.AssistantMessage.Content)
	return nil
}

// password returns the flag value, EDULEARN_PASSWORD or the first line of input
func (s *Service) password(value string) (string, error) {
	if value != "" {
		return value, nil
	}
	if value = os.Getenv("EDULEARN_PASSWORD"); value != "" {
		return value, nil
	}
	line, err := bufio.NewReader(s.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if value = strings.TrimSpace(line); value == "" {
		return "", errors.New("password was empty")
	}
	return value, nil
}

func (s *Service) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func (s *Service) table(headers ...string) *tabwriter.Writer {
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	return w
}

func (s *Service) printCourses(courses []schema.CourseSummary) {
	w := s.table("SLUG", "TITLE", "LEVEL", "LESSONS", "INSTRUCTOR")
	for _, course := range courses {
		fmt.Fprintf(w, "%v\t%v\t%v\t%v\t%v\n", course.Slug, course.Title, course.Level, course.LessonCount, course.InstructorName)
	}
	_ = w.Flush()
}

func (s *Service) printCourse(course *schema.Course) {
	s.printf("%v (%v)\n", course.Title, course.Slug)
	if course.Category != nil {
		s.printf("category: %v\n", course.Category.Name)
	}
	s.printf("level: %v, duration: %v, instructor: %v\n", course.Level, course.Duration, course.InstructorName)
	if course.ShortDescription != "" {
		s.printf("%v\n", course.ShortDescription)
	}
	for _, objective := range course.LearningObjectives {
		s.printf("  - %v\n", objective)
	}
	s.printLessons(course.Lessons)
}

func (s *Service) printLessons(lessons []schema.Lesson) {
	w := s.table("#", "SLUG", "TITLE", "MINUTES", "QUIZZES")
	for _, lesson := range lessons {
		fmt.Fprintf(w, "%v\t%v\t%v\t%v\t%v\n", lesson.Order, lesson.Slug, lesson.Title, lesson.Duration, len(lesson.Quizzes))
	}
	_ = w.Flush()
}
