package cli

import "time"

// Options are the global flags and the subcommands
type Options struct {
	EnvFile       string        `long:"env" description:"dotenv file" default:".env"`
	URL           string        `short:"u" long:"url" description:"API base URL"`
	Store         string        `short:"s" long:"store" description:"session store URL: memory://, redis://host/key, secret://path or a file path"`
	SecretKey     string        `short:"k" long:"key" description:"secret store encryption key"`
	LogLevel      string        `long:"log-level" description:"log level" choice:"debug" choice:"info" choice:"warn" choice:"error"`
	Timeout       time.Duration `short:"t" long:"timeout" description:"request timeout"`
	SharedRefresh bool          `long:"shared-refresh" description:"collapse concurrent token refreshes"`

	Login     LoginCommand     `command:"login" description:"log in with email and password"`
	Register  RegisterCommand  `command:"register" description:"create an account"`
	Logout    struct{}         `command:"logout" description:"discard the stored session"`
	Status    StatusCommand    `command:"status" description:"show session status"`
	WhoAmI    struct{}         `command:"whoami" description:"show the logged in user"`
	Courses   CoursesCommand   `command:"courses" description:"list the course catalog"`
	Course    SlugCommand      `command:"course" description:"show course details"`
	Enroll    SlugCommand      `command:"enroll" description:"enroll in a course"`
	MyCourses MyCoursesCommand `command:"my-courses" description:"list courses you are enrolled in"`
	Lessons   SlugCommand      `command:"lessons" description:"list lessons of a course"`
	Complete  CompleteCommand  `command:"complete" description:"mark a lesson completed"`
	Progress  ProgressCommand  `command:"progress" description:"show enrollment progress"`
	Chat      ChatCommand      `command:"chat" description:"ask the AI assistant"`
	Recommend RecommendCommand `command:"recommend" description:"recommend courses"`
}

type LoginCommand struct {
	Email    string `short:"e" long:"email" description:"account email" required:"true"`
	Password string `short:"p" long:"password" description:"password, read from EDULEARN_PASSWORD or stdin when empty"`
}

type RegisterCommand struct {
	Email     string `short:"e" long:"email" description:"account email" required:"true"`
	Username  string `short:"n" long:"username" description:"user name" required:"true"`
	Password  string `short:"p" long:"password" description:"password, read from EDULEARN_PASSWORD or stdin when empty"`
	FirstName string `long:"first-name" description:"first name"`
	LastName  string `long:"last-name" description:"last name"`
}

type StatusCommand struct {
	Verify bool `long:"verify" description:"verify the access token with the backend"`
}

type CoursesCommand struct {
	Category int    `short:"c" long:"category" description:"category id"`
	Level    string `short:"l" long:"level" description:"course level" choice:"beginner" choice:"intermediate" choice:"advanced"`
	Search   string `short:"q" long:"search" description:"search text"`
}

type SlugCommand struct {
	Args struct {
		Slug string `positional-arg-name:"course-slug" required:"yes"`
	} `positional-args:"yes"`
}

type MyCoursesCommand struct {
	Status string `long:"status" description:"enrollment status" choice:"active" choice:"completed" choice:"dropped"`
}

type CompleteCommand struct {
	Args struct {
		Course string `positional-arg-name:"course-slug" required:"yes"`
		Lesson string `positional-arg-name:"lesson-slug" required:"yes"`
	} `positional-args:"yes"`
}

type ProgressCommand struct {
	Enrollment int `short:"e" long:"enrollment" description:"show lesson progress of the enrollment id"`
}

type ChatCommand struct {
	Session int    `long:"session" description:"chat session id, a new session is started when empty"`
	Title   string `long:"title" description:"title of a new session" default:"EduLearn assistant"`
	Args    struct {
		Message []string `positional-arg-name:"message" required:"yes"`
	} `positional-args:"yes"`
}

type RecommendCommand struct {
	Count           int  `short:"n" long:"count" description:"number of recommendations" default:"5"`
	IncludeEnrolled bool `long:"include-enrolled" description:"include courses you are enrolled in"`
}
