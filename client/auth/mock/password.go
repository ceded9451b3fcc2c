package mock

import "golang.org/x/crypto/bcrypt"

// passwordCost keeps hashing fast enough for test suites
const passwordCost = bcrypt.MinCost

func hashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), passwordCost)
}

func mustHashPassword(password string) []byte {
	hash, err := hashPassword(password)
	if err != nil {
		panic(err)
	}
	return hash
}

func (a *account) checkPassword(password string) bool {
	return bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)) == nil
}
