package domain

import "github.com/shopspring/decimal"

func init() {
	// The inventory service exchanges prices as bare JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// ParseRole maps a stored role string onto the closed role set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleUser:
		return RoleUser, true
	}
	return "", false
}

// Session is the authenticated identity of the current actor. The zero
// value means unauthenticated; Role carries no meaning without Token.
type Session struct {
	Token string `json:"token"`
	Role  Role   `json:"role"`
}

// Authenticated reports whether the session carries a token.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Book is a catalog entry. ID 0 marks a draft that the inventory service
// has not assigned an identity yet.
type Book struct {
	ID          int64           `json:"id,omitempty"`
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	Genre       string          `json:"genre"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock"`
}

// Draft reports whether the book still lacks a server-assigned id.
func (b Book) Draft() bool {
	return b.ID == 0
}
