// Package entity contains the client-side view of the shop's business objects.
// They are read projections of server state; the gateway layer converts wire payloads into them.
package entity

// User is the identity behind the current session. Only the fields the server has
// reported are populated; IsAdmin is false whenever it is unknown.
type User struct {
	ID        int64
	Username  string
	Email     string
	FirstName string
	LastName  string
	IsAdmin   bool
}

// Registration is the payload of an account sign-up.
type Registration struct {
	Username  string
	Email     string
	Password  string
	Password2 string
	FirstName string
	LastName  string
}
