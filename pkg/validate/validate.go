// Package validate holds the pre-submission checks for every form in the
// catalog client. A failed check never reaches the network.
package validate

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"bookcatalog/pkg/domain"
)

const passwordMessage = "Password must be at least 8 characters, contain one uppercase letter, one number, and one special character"

var emailPattern = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[\w-]{2,4}$`)

// Credentials validates a login form.
func Credentials(username, password string) error {
	fields := map[string]string{}
	if username == "" {
		fields["username"] = "Username is required"
	}
	checkPassword(fields, password)
	return fieldError(fields)
}

// Registration validates a sign-up form.
func Registration(email, username, password string) error {
	fields := map[string]string{}
	switch {
	case email == "":
		fields["email"] = "Email is required"
	case !emailPattern.MatchString(email):
		fields["email"] = "Please enter a valid email address"
	}
	switch {
	case username == "":
		fields["username"] = "Username is required"
	case len(username) < 3 || len(username) > 20:
		fields["username"] = "Username should be between 3 to 20 characters"
	}
	checkPassword(fields, password)
	return fieldError(fields)
}

// Draft validates a book form before it is handed to the cache.
func Draft(b domain.Book) error {
	fields := map[string]string{}
	if strings.TrimSpace(b.Title) == "" {
		fields["title"] = "Title is required."
	}
	if strings.TrimSpace(b.Author) == "" {
		fields["author"] = "Author is required."
	}
	if strings.TrimSpace(b.Genre) == "" {
		fields["genre"] = "Genre is required."
	}
	if strings.TrimSpace(b.Description) == "" {
		fields["description"] = "Description is required."
	}
	if !b.Price.GreaterThan(decimal.Zero) {
		fields["price"] = "Price must be greater than 0."
	}
	if b.Stock < 0 {
		fields["stock"] = "Stock cannot be negative."
	}
	return fieldError(fields)
}

func checkPassword(fields map[string]string, password string) {
	if password == "" {
		fields["password"] = "Password is required"
		return
	}
	if !passwordOK(password) {
		fields["password"] = passwordMessage
	}
}

// passwordOK enforces the password policy: at least 8 characters drawn
// from letters, digits, and @$!%*?&, with at least one uppercase letter,
// one digit, and one special character.
func passwordOK(password string) bool {
	if len(password) < 8 {
		return false
	}
	var upper, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune("@$!%*?&", r):
			special = true
		default:
			return false
		}
	}
	return upper && digit && special
}

func fieldError(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return domain.NewValidationError(fields)
}
