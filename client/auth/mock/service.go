package mock

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/viant/edulearn/internal/collection"
	"github.com/viant/edulearn/schema"
	"go.uber.org/zap"
)

const (
	// DemoEmail and DemoPassword identify the seeded student account.
	DemoEmail    = "student@edulearn.dev"
	DemoPassword = "student-password"
	// InstructorEmail and InstructorPassword identify the seeded instructor account.
	InstructorEmail    = "instructor@edulearn.dev"
	InstructorPassword = "instructor-password"

	defaultAccessTTL = 5 * time.Minute
)

type (
	account struct {
		user         schema.User
		passwordHash []byte
	}

	enrollment struct {
		schema.Enrollment
		lessons []schema.LessonProgress
	}

	// Stats counts token endpoint activity.
	Stats struct {
		Logins            int32
		Refreshes         int32
		RejectedRefreshes int32
		Unauthorized      int32
	}

	// Service is a mock EduLearn backend
	Service struct {
		secret    []byte
		accessTTL time.Duration
		logger    *zap.SugaredLogger
		echo      *echo.Echo

		accounts      *collection.SyncMap[string, *account]
		refreshTokens *collection.SyncMap[string, string]
		generation    atomic.Int64
		sequence      atomic.Int64

		mu          sync.Mutex
		categories  []schema.Category
		courses     []*schema.Course
		answers     map[int][]int
		enrollments map[int][]*enrollment
		attempts    map[int][]schema.QuizAttempt
		chats       map[int][]*schema.ChatSession

		logins            atomic.Int32
		refreshes         atomic.Int32
		rejectedRefreshes atomic.Int32
		unauthorized      atomic.Int32
	}

	// Option configures the mock service
	Option func(s *Service)
)

// WithAccessTTL sets access token lifetime
func WithAccessTTL(ttl time.Duration) Option {
	return func(s *Service) {
		s.accessTTL = ttl
	}
}

// WithSecret sets the HS256 signing secret
func WithSecret(secret []byte) Option {
	return func(s *Service) {
		s.secret = secret
	}
}

// WithLogger sets logger
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// Handler returns the HTTP handler serving the API under /api/v1/
func (s *Service) Handler() http.Handler {
	return s.echo
}

// Start listens on addr until Shutdown is called
func (s *Service) Start(addr string) error {
	return s.echo.Start(addr)
}

// Shutdown stops the server started with Start
func (s *Service) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// ExpireAccessTokens invalidates every access token issued so far.
func (s *Service) ExpireAccessTokens() {
	s.generation.Add(1)
}

// RevokeRefreshTokens invalidates every refresh token issued so far.
func (s *Service) RevokeRefreshTokens() {
	s.refreshTokens.Clear()
}

// Stats returns token endpoint counters
func (s *Service) Stats() Stats {
	return Stats{
		Logins:            s.logins.Load(),
		Refreshes:         s.refreshes.Load(),
		RejectedRefreshes: s.rejectedRefreshes.Load(),
		Unauthorized:      s.unauthorized.Load(),
	}
}

func (s *Service) nextID() int {
	return int(s.sequence.Add(1))
}

// New creates a mock backend with seeded accounts and catalog
func New(options ...Option) *Service {
	ret := &Service{
		secret:        []byte("edulearn-mock-secret"),
		accessTTL:     defaultAccessTTL,
		logger:        zap.NewNop().Sugar(),
		accounts:      collection.NewSyncMap[string, *account](),
		refreshTokens: collection.NewSyncMap[string, string](),
		answers:       map[int][]int{},
		enrollments:   map[int][]*enrollment{},
		attempts:      map[int][]schema.QuizAttempt{},
		chats:         map[int][]*schema.ChatSession{},
	}
	for _, opt := range options {
		opt(ret)
	}
	ret.seed()
	ret.echo = ret.router()
	return ret
}
