package mock

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/viant/edulearn/schema"
)

// login handles POST users/token/
func (s *Service) login(c echo.Context) error {
	credentials := &schema.Credentials{}
	if err := c.Bind(credentials); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
	}
	if credentials.Email == "" || credentials.Password == "" {
		return c.JSON(http.StatusBadRequest, detail{"email": []string{"This field is required."}, "password": []string{"This field is required."}})
	}
	anAccount, ok := s.accounts.Get(credentials.Email)
	if !ok || !anAccount.checkPassword(credentials.Password) {
		return echo.NewHTTPError(http.StatusUnauthorized, "No active account found with the given credentials")
	}
	access, err := s.createAccessToken(anAccount)
	if err != nil {
		return err
	}
	s.logins.Add(1)
	return c.JSON(http.StatusOK, &schema.TokenPair{Access: access, Refresh: s.createRefreshToken(anAccount.user.Email)})
}

// refresh handles POST users/token/refresh/; the refresh token is not rotated.
func (s *Service) refresh(c echo.Context) error {
	var request struct {
		Refresh string `json:"refresh"`
	}
	if err := c.Bind(&request); err != nil || request.Refresh == "" {
		return c.JSON(http.StatusBadRequest, detail{"refresh": []string{"This field is required."}})
	}
	s.refreshes.Add(1)
	email, ok := s.refreshTokens.Get(request.Refresh)
	if !ok {
		s.rejectedRefreshes.Add(1)
		return c.JSON(http.StatusUnauthorized, detail{"detail": "Token is invalid or expired", "code": "token_not_valid"})
	}
	anAccount, ok := s.accounts.Get(email)
	if !ok {
		s.rejectedRefreshes.Add(1)
		return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
	}
	access, err := s.createAccessToken(anAccount)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"access": access})
}

// verify handles POST users/token/verify/
func (s *Service) verify(c echo.Context) error {
	var request struct {
		Token string `json:"token"`
	}
	if err := c.Bind(&request); err != nil || request.Token == "" {
		return c.JSON(http.StatusBadRequest, detail{"token": []string{"This field is required."}})
	}
	if _, ok := s.refreshTokens.Get(request.Token); ok {
		return c.JSON(http.StatusOK, detail{})
	}
	if _, err := s.parseAccessToken(request.Token); err != nil {
		return c.JSON(http.StatusUnauthorized, detail{"detail": "Token is invalid or expired", "code": "token_not_valid"})
	}
	return c.JSON(http.StatusOK, detail{})
}

// register handles POST users/
func (s *Service) register(c echo.Context) error {
	registration := &schema.Registration{}
	if err := c.Bind(registration); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
	}
	fieldErrors := detail{}
	if !strings.Contains(registration.Email, "@") {
		fieldErrors["email"] = []string{"Enter a valid email address."}
	} else if _, ok := s.accounts.Get(registration.Email); ok {
		fieldErrors["email"] = []string{"user with this email already exists."}
	}
	if registration.Username == "" {
		fieldErrors["username"] = []string{"This field is required."}
	}
	if registration.Password == "" {
		fieldErrors["password"] = []string{"This field is required."}
	} else if registration.Password != registration.PasswordConfirm {
		fieldErrors["password"] = []string{"Password fields didn't match."}
	}
	if len(fieldErrors) > 0 {
		return c.JSON(http.StatusBadRequest, fieldErrors)
	}
	passwordHash, err := hashPassword(registration.Password)
	if err != nil {
		return c.JSON(http.StatusBadRequest, detail{"password": []string{err.Error()}})
	}
	anAccount := &account{
		user: schema.User{
			ID:        s.nextID(),
			Email:     registration.Email,
			Username:  registration.Username,
			FirstName: registration.FirstName,
			LastName:  registration.LastName,
		},
		passwordHash: passwordHash,
	}
	s.accounts.Put(anAccount.user.Email, anAccount)
	return c.JSON(http.StatusCreated, anAccount.user)
}
