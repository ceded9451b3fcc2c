package schema

import "time"

type (
	Answer struct {
		ID         int    `json:"id"`
		AnswerText string `json:"answer_text"`
	}

	Question struct {
		ID           int      `json:"id"`
		QuestionText string   `json:"question_text"`
		QuestionType string   `json:"question_type"`
		Points       int      `json:"points"`
		Order        int      `json:"order"`
		Answers      []Answer `json:"answers,omitempty"`
	}

	Quiz struct {
		ID           int        `json:"id"`
		Title        string     `json:"title"`
		Description  string     `json:"description,omitempty"`
		TimeLimit    int        `json:"time_limit,omitempty"`
		PassingScore float64    `json:"passing_score"`
		Questions    []Question `json:"questions,omitempty"`
	}

	QuestionResponse struct {
		QuestionID   int    `json:"question_id"`
		AnswerIDs    []int  `json:"answer_ids,omitempty"`
		TextResponse string `json:"text_response,omitempty"`
	}

	QuizSubmission struct {
		QuizID    int                `json:"quiz_id"`
		TimeTaken int                `json:"time_taken"`
		Responses []QuestionResponse `json:"responses"`
	}

	QuizResult struct {
		Detail    string  `json:"detail"`
		AttemptID int     `json:"attempt_id"`
		Score     float64 `json:"score"`
	}

	QuizAttempt struct {
		ID          int        `json:"id"`
		Quiz        int        `json:"quiz"`
		Score       float64    `json:"score"`
		TimeTaken   int        `json:"time_taken"`
		IsCompleted bool       `json:"is_completed"`
		StartedAt   *time.Time `json:"started_at,omitempty"`
		CompletedAt *time.Time `json:"completed_at,omitempty"`
	}
)
