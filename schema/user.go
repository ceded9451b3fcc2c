package schema

type (
	// Credentials are exchanged for a session at the token endpoint.
	Credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	// TokenPair is returned by the token endpoint.
	TokenPair struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}

	Registration struct {
		Email           string `json:"email"`
		Username        string `json:"username"`
		Password        string `json:"password"`
		PasswordConfirm string `json:"password_confirm"`
		FirstName       string `json:"first_name,omitempty"`
		LastName        string `json:"last_name,omitempty"`
	}

	User struct {
		ID             int    `json:"id"`
		Email          string `json:"email"`
		Username       string `json:"username"`
		FirstName      string `json:"first_name,omitempty"`
		LastName       string `json:"last_name,omitempty"`
		Bio            string `json:"bio,omitempty"`
		ProfilePicture string `json:"profile_picture,omitempty"`
		DateOfBirth    string `json:"date_of_birth,omitempty"`
		Interests      string `json:"interests,omitempty"`
		LearningStyle  string `json:"learning_style,omitempty"`
	}

	// ProfileUpdate holds the user fields that can be changed; email and username are read-only.
	ProfileUpdate struct {
		FirstName     *string `json:"first_name,omitempty"`
		LastName      *string `json:"last_name,omitempty"`
		Bio           *string `json:"bio,omitempty"`
		Interests     *string `json:"interests,omitempty"`
		LearningStyle *string `json:"learning_style,omitempty"`
	}
)

// DisplayName returns full name or username
func (u *User) DisplayName() string {
	name := u.FirstName
	if u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += u.LastName
	}
	if name == "" {
		return u.Username
	}
	return name
}
