package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/viant/edulearn/schema"
)

func (c *Client) ListChatSessions(ctx context.Context) ([]schema.ChatSession, error) {
	sessions, err := list[schema.ChatSession](ctx, c, "ai/chat/")
	if err != nil {
		return nil, fmt.Errorf("client.ListChatSessions: %w", err)
	}
	return sessions, nil
}

func (c *Client) CreateChatSession(ctx context.Context, title string) (*schema.ChatSession, error) {
	var session schema.ChatSession
	if err := c.post(ctx, "ai/chat/", map[string]string{"title": title}, &session); err != nil {
		return nil, fmt.Errorf("client.CreateChatSession: %w", err)
	}
	return &session, nil
}

// SendChatMessage posts content to a chat session and waits for the assistant reply.
func (c *Client) SendChatMessage(ctx context.Context, sessionID int, content string) (*schema.ChatExchange, error) {
	var exchange schema.ChatExchange
	path := "ai/chat/" + strconv.Itoa(sessionID) + "/send_message/"
	if err := c.post(ctx, path, map[string]string{"content": content}, &exchange); err != nil {
		return nil, fmt.Errorf("client.SendChatMessage: %w", err)
	}
	return &exchange, nil
}

func (c *Client) RecommendCourses(ctx context.Context, request *schema.RecommendationRequest) ([]schema.Recommendation, error) {
	if request == nil {
		request = &schema.RecommendationRequest{}
	}
	var recommendations []schema.Recommendation
	if err := c.post(ctx, "ai/recommendations/courses/", request, &recommendations); err != nil {
		return nil, fmt.Errorf("client.RecommendCourses: %w", err)
	}
	return recommendations, nil
}
