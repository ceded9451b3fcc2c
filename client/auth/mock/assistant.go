package mock

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/viant/edulearn/schema"
)

func (s *Service) listChatSessions(c echo.Context) error {
	userID := currentAccount(c).user.ID
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]schema.ChatSession, 0, len(s.chats[userID]))
	for _, session := range s.chats[userID] {
		result = append(result, *session)
	}
	return c.JSON(http.StatusOK, paginate(result))
}

func (s *Service) createChatSession(c echo.Context) error {
	var request struct {
		Title string `json:"title"`
	}
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
	}
	if request.Title == "" {
		request.Title = "New Chat"
	}
	userID := currentAccount(c).user.ID
	now := time.Now().UTC()
	s.mu.Lock()
	defer s.mu.Unlock()
	session := &schema.ChatSession{ID: s.nextID(), Title: request.Title, CreatedAt: &now, UpdatedAt: &now}
	s.chats[userID] = append(s.chats[userID], session)
	return c.JSON(http.StatusCreated, session)
}

func (s *Service) sendMessage(c echo.Context) error {
	var request struct {
		Content string `json:"content"`
	}
	if err := c.Bind(&request); err != nil || strings.TrimSpace(request.Content) == "" {
		return c.JSON(http.StatusBadRequest, detail{"content": []string{"This field may not be blank."}})
	}
	userID := currentAccount(c).user.ID
	s.mu.Lock()
	defer s.mu.Unlock()
	var session *schema.ChatSession
	for _, candidate := range s.chats[userID] {
		if itoa(candidate.ID) == c.Param("id") {
			session = candidate
		}
	}
	if session == nil {
		return errNotFound
	}
	now := time.Now().UTC()
	exchange := &schema.ChatExchange{
		UserMessage:      schema.ChatMessage{ID: s.nextID(), Role: "user", Content: request.Content, CreatedAt: &now},
		AssistantMessage: schema.ChatMessage{ID: s.nextID(), Role: "assistant", Content: fmt.Sprintf("You asked about %q. Start with the first lesson of a related course.", request.Content), CreatedAt: &now},
	}
	session.Messages = append(session.Messages, exchange.UserMessage, exchange.AssistantMessage)
	session.UpdatedAt = &now
	return c.JSON(http.StatusOK, exchange)
}

func (s *Service) recommendCourses(c echo.Context) error {
	request := &schema.RecommendationRequest{}
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
	}
	if request.Count == 0 {
		request.Count = 5
	}
	if request.Count < 1 || request.Count > 20 {
		return c.JSON(http.StatusBadRequest, detail{"count": []string{"Ensure this value is between 1 and 20."}})
	}
	userID := currentAccount(c).user.ID
	s.mu.Lock()
	defer s.mu.Unlock()
	result := []schema.Recommendation{}
	for _, course := range s.courses {
		if len(result) == request.Count {
			break
		}
		if !request.IncludeEnrolled && s.enrollment(userID, course.ID) != nil {
			continue
		}
		result = append(result, schema.Recommendation{
			ID:               course.ID,
			Title:            course.Title,
			Slug:             course.Slug,
			ShortDescription: course.ShortDescription,
			Level:            course.Level,
			Thumbnail:        course.Thumbnail,
			SimilarityScore:  1 / float64(len(result)+1),
		})
	}
	return c.JSON(http.StatusOK, result)
}
