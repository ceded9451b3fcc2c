package mock

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

const accountContextKey = "account"

type detail map[string]interface{}

func (s *Service) router() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.errorHandler
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.RequestLoggerWithConfig(s.requestLoggerConfig()))

	auth := s.authenticate
	v1 := e.Group("/api/v1")
	v1.POST("/users/", s.register)
	v1.POST("/users/token/", s.login)
	v1.POST("/users/token/refresh/", s.refresh)
	v1.POST("/users/token/verify/", s.verify)
	v1.GET("/users/me/", s.me, auth)
	v1.PATCH("/users/me/", s.updateMe, auth)
	v1.PUT("/users/me/", s.updateMe, auth)

	v1.GET("/courses/", s.listCourses)
	v1.POST("/courses/", s.createCourse, auth)
	v1.GET("/courses/categories/", s.listCategories, auth)
	v1.GET("/courses/my_courses/", s.myCourses, auth)
	v1.GET("/courses/teaching/", s.teaching, auth)
	v1.GET("/courses/enrollments/", s.listEnrollments, auth)
	v1.GET("/courses/enrollments/:id/progress/", s.enrollmentProgress, auth)
	v1.GET("/courses/quiz-attempts/", s.listQuizAttempts, auth)
	v1.GET("/courses/lessons/:lesson/quizzes/", s.listQuizzes, auth)
	v1.POST("/courses/lessons/:lesson/quizzes/:quiz/submit/", s.submitQuiz, auth)
	v1.GET("/courses/:slug/", s.getCourse)
	v1.POST("/courses/:slug/enroll/", s.enroll, auth)
	v1.GET("/courses/:slug/lessons/", s.listLessons)
	v1.POST("/courses/:slug/lessons/:lesson/mark_complete/", s.markComplete, auth)

	v1.GET("/ai/chat/", s.listChatSessions, auth)
	v1.POST("/ai/chat/", s.createChatSession, auth)
	v1.POST("/ai/chat/:id/send_message/", s.sendMessage, auth)
	v1.POST("/ai/recommendations/courses/", s.recommendCourses, auth)
	return e
}

// authenticate resolves the bearer access token into the calling account
func (s *Service) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			s.unauthorized.Add(1)
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication credentials were not provided.")
		}
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			s.unauthorized.Add(1)
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header must contain two space-delimited values")
		}
		claims, err := s.parseAccessToken(token)
		if err != nil {
			s.unauthorized.Add(1)
			return err
		}
		anAccount, ok := s.accounts.Get(claims.Subject)
		if !ok {
			s.unauthorized.Add(1)
			return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
		}
		c.Set(accountContextKey, anAccount)
		return next(c)
	}
}

func currentAccount(c echo.Context) *account {
	return c.Get(accountContextKey).(*account)
}

// errorHandler renders errors the way the backend does: {"detail": "..."}
func (s *Service) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if errors.Is(err, errTokenNotValid) {
		_ = c.JSON(http.StatusUnauthorized, detail{"detail": "Given token not valid for any token type", "code": "token_not_valid"})
		return
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		message, ok := he.Message.(string)
		if !ok {
			message = http.StatusText(he.Code)
		}
		if he.Code == http.StatusInternalServerError {
			s.logger.Errorw("HTTP error", "error", err, "uri", c.Request().RequestURI)
		}
		_ = c.JSON(he.Code, detail{"detail": message})
		return
	}
	s.logger.Errorw("unhandled error", "error", err, "uri", c.Request().RequestURI)
	_ = c.JSON(http.StatusInternalServerError, detail{"detail": "internal server error"})
}

func (s *Service) requestLoggerConfig() echomiddleware.RequestLoggerConfig {
	return echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogError:     true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			fields := []interface{}{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				s.logger.Warnw("request", append(fields, "error", v.Error)...)
			} else {
				s.logger.Debugw("request", fields...)
			}
			return nil
		},
	}
}
