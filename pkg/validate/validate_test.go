package validate

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"bookcatalog/pkg/domain"
)

func fields(t *testing.T, err error) map[string]string {
	t.Helper()
	if err == nil {
		t.Fatalf("expected a validation error")
	}
	var derr *domain.Error
	if !errors.As(err, &derr) || derr.Kind != domain.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	return derr.Fields
}

func TestCredentials(t *testing.T) {
	if err := Credentials("testuser", "Password1!"); err != nil {
		t.Fatalf("expected valid credentials, got %v", err)
	}

	f := fields(t, Credentials("", ""))
	if f["username"] == "" || f["password"] == "" {
		t.Fatalf("expected username and password messages, got %v", f)
	}

	weak := []string{
		"short1!",          // too short
		"password1!",       // no uppercase
		"PASSWORDX!",       // no digit
		"Password11",       // no special
		"Password1! space", // disallowed character
	}
	for _, p := range weak {
		f := fields(t, Credentials("testuser", p))
		if f["password"] == "" {
			t.Fatalf("expected password rejection for %q", p)
		}
	}
}

func TestRegistration(t *testing.T) {
	if err := Registration("new@example.com", "newuser", "Password1!"); err != nil {
		t.Fatalf("expected valid registration, got %v", err)
	}

	f := fields(t, Registration("not-an-email", "newuser", "Password1!"))
	if f["email"] != "Please enter a valid email address" {
		t.Fatalf("unexpected email message: %q", f["email"])
	}

	f = fields(t, Registration("new@example.com", "ab", "Password1!"))
	if f["username"] != "Username should be between 3 to 20 characters" {
		t.Fatalf("unexpected username message: %q", f["username"])
	}
	f = fields(t, Registration("new@example.com", "thisusernameiswaytoolong", "Password1!"))
	if f["username"] == "" {
		t.Fatalf("expected long username rejected")
	}

	f = fields(t, Registration("", "", ""))
	for _, name := range []string{"email", "username", "password"} {
		if f[name] == "" {
			t.Fatalf("expected %s message, got %v", name, f)
		}
	}
}

func TestDraft(t *testing.T) {
	ok := domain.Book{
		Title:       "Dune",
		Author:      "Herbert",
		Genre:       "SciFi",
		Description: "Desert planet",
		Price:       decimal.NewFromFloat(12.5),
		Stock:       3,
	}
	if err := Draft(ok); err != nil {
		t.Fatalf("expected valid draft, got %v", err)
	}

	var empty domain.Book
	f := fields(t, Draft(empty))
	for _, name := range []string{"title", "author", "genre", "description", "price"} {
		if f[name] == "" {
			t.Fatalf("expected %s message, got %v", name, f)
		}
	}

	bad := ok
	bad.Price = decimal.Zero
	f = fields(t, Draft(bad))
	if f["price"] != "Price must be greater than 0." {
		t.Fatalf("unexpected price message: %q", f["price"])
	}

	bad = ok
	bad.Stock = -1
	f = fields(t, Draft(bad))
	if f["stock"] != "Stock cannot be negative." {
		t.Fatalf("unexpected stock message: %q", f["stock"])
	}
}
