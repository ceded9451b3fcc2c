package schema

import "time"

type (
	ChatMessage struct {
		ID        int        `json:"id"`
		Role      string     `json:"role"`
		Content   string     `json:"content"`
		CreatedAt *time.Time `json:"created_at,omitempty"`
	}

	ChatSession struct {
		ID        int           `json:"id"`
		Title     string        `json:"title"`
		CreatedAt *time.Time    `json:"created_at,omitempty"`
		UpdatedAt *time.Time    `json:"updated_at,omitempty"`
		Messages  []ChatMessage `json:"messages,omitempty"`
	}

	// ChatExchange is the user message with the assistant reply.
	ChatExchange struct {
		UserMessage      ChatMessage `json:"user_message"`
		AssistantMessage ChatMessage `json:"assistant_message"`
	}

	RecommendationRequest struct {
		Count           int  `json:"count,omitempty"`
		IncludeEnrolled bool `json:"include_enrolled"`
	}

	Recommendation struct {
		ID               int     `json:"id"`
		Title            string  `json:"title"`
		Slug             string  `json:"slug"`
		ShortDescription string  `json:"short_description,omitempty"`
		Level            string  `json:"level,omitempty"`
		SimilarityScore  float64 `json:"similarity_score"`
		Thumbnail        string  `json:"thumbnail,omitempty"`
	}
)
