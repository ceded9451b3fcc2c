package mock

import "github.com/viant/edulearn/schema"

func (s *Service) seed() {
	s.sequence.Store(100)
	s.accounts.Put(DemoEmail, &account{
		user:         schema.User{ID: 1, Email: DemoEmail, Username: "student", FirstName: "Ada", LastName: "Lovelace", LearningStyle: "visual"},
		passwordHash: mustHashPassword(DemoPassword),
	})
	s.accounts.Put(InstructorEmail, &account{
		user:         schema.User{ID: 2, Email: InstructorEmail, Username: "instructor", FirstName: "Alan", LastName: "Turing"},
		passwordHash: mustHashPassword(InstructorPassword),
	})

	programming := schema.Category{ID: 1, Name: "Programming", Slug: "programming"}
	data := schema.Category{ID: 2, Name: "Data Science", Slug: "data-science"}
	s.categories = []schema.Category{programming, data}

	quiz := schema.Quiz{
		ID:           1,
		Title:        "Go basics",
		PassingScore: 70,
		Questions: []schema.Question{
			{ID: 1, QuestionText: "Which keyword starts a goroutine?", QuestionType: "multiple_choice", Points: 1, Order: 1,
				Answers: []schema.Answer{{ID: 1, AnswerText: "go"}, {ID: 2, AnswerText: "async"}}},
			{ID: 2, QuestionText: "Go has generics.", QuestionType: "true_false", Points: 1, Order: 2,
				Answers: []schema.Answer{{ID: 3, AnswerText: "True"}, {ID: 4, AnswerText: "False"}}},
		},
	}
	s.answers[1] = []int{1}
	s.answers[2] = []int{3}

	s.courses = []*schema.Course{
		{
			ID: 1, Title: "Go Fundamentals", Slug: "go-fundamentals",
			ShortDescription: "Types, functions and concurrency",
			Category:         &programming, Instructor: 2, InstructorName: "Alan Turing",
			Level: "beginner", Duration: "4 weeks",
			LearningObjectives: []string{"Write idiomatic Go", "Use goroutines and channels"},
			Lessons: []schema.Lesson{
				{ID: 1, Title: "Hello, Go", Slug: "hello-go", Order: 1, Duration: 15, IsPublished: true, IsFreePreview: true, Quizzes: []schema.Quiz{quiz}},
				{ID: 2, Title: "Types", Slug: "types", Order: 2, Duration: 25, IsPublished: true},
				{ID: 3, Title: "Concurrency", Slug: "concurrency", Order: 3, Duration: 40, IsPublished: true},
			},
		},
		{
			ID: 2, Title: "Machine Learning Basics", Slug: "machine-learning-basics",
			ShortDescription: "Regression, classification and evaluation",
			Category:         &data, Instructor: 2, InstructorName: "Alan Turing",
			Level: "intermediate", Duration: "6 weeks",
			Lessons: []schema.Lesson{
				{ID: 4, Title: "Linear regression", Slug: "linear-regression", Order: 1, Duration: 30, IsPublished: true},
				{ID: 5, Title: "Classification", Slug: "classification", Order: 2, Duration: 30, IsPublished: true},
			},
		},
	}
}
