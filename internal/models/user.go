// Package models defines the user record exchanged with the record service.
package models

import "strings"

// UsernamePrefix is prepended to usernames derived from the display name.
const UsernamePrefix = "USER-"

// Address is the nested address group of a user record.
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
}

// Company is the nested company group of a user record.
type Company struct {
	Name string `json:"name"`
}

// User is one record of the remote collection. ID is assigned by the server;
// zero means the record has not been created yet.
type User struct {
	ID       int64   `json:"id,omitempty"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Website  string  `json:"website"`
	Address  Address `json:"address"`
	Company  Company `json:"company"`
}

// DeriveUsername computes the username presented for a record whose username
// has not been set explicitly: the display name lower-cased with all
// whitespace removed, behind UsernamePrefix. An empty name derives to "".
func DeriveUsername(name string) string {
	stripped := strings.Join(strings.Fields(name), "")
	if stripped == "" {
		return ""
	}
	return UsernamePrefix + strings.ToLower(stripped)
}
