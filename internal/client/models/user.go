// Package models holds the client-side view of the authenticated user.
package models

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ProviderLocal marks accounts created with a password on the API itself.
const ProviderLocal = "auth"

// User is the authenticated principal as the API reports it.
type User struct {
	ID         string   `json:"id"`
	Username   string   `json:"username"`
	Email      string   `json:"email"`
	ProfileURL string   `json:"profileUrl,omitempty"`
	Provider   string   `json:"provider,omitempty"`
	Accounts   []string `json:"accounts,omitempty"`
}

// UserPatch is the body of a profile update. Nil fields are not sent.
type UserPatch struct {
	Username   *string `json:"username,omitempty"`
	ProfileURL *string `json:"profileUrl,omitempty"`
}

// IsEmpty reports whether the patch would change nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Username == nil && p.ProfileURL == nil
}

// UserFields is a user object decoded from an update response. A nil field
// was absent from the response.
type UserFields struct {
	ID         *string   `json:"id"`
	Username   *string   `json:"username"`
	Email      *string   `json:"email"`
	ProfileURL *string   `json:"profileUrl"`
	Provider   *string   `json:"provider"`
	Accounts   *[]string `json:"accounts"`
}

// Merge returns a copy of u with every field present in f overwritten.
func (u User) Merge(f UserFields) User {
	out := u.Clone()
	if f.ID != nil {
		out.ID = *f.ID
	}
	if f.Username != nil {
		out.Username = *f.Username
	}
	if f.Email != nil {
		out.Email = *f.Email
	}
	if f.ProfileURL != nil {
		out.ProfileURL = *f.ProfileURL
	}
	if f.Provider != nil {
		out.Provider = *f.Provider
	}
	if f.Accounts != nil {
		out.Accounts = slices.Clone(*f.Accounts)
	}
	return out
}

// Clone returns a deep copy; the accounts slice is not shared.
func (u User) Clone() User {
	u.Accounts = slices.Clone(u.Accounts)
	return u
}

// ShowLinkedAccounts reports whether the profile lists linked OAuth accounts:
// only for users whose session came from an OAuth provider.
func (u User) ShowLinkedAccounts() bool {
	return u.Provider != "" && u.Provider != ProviderLocal
}

// Initials returns up to two upper-case letters taken from the first rune of
// each space-separated word of the username.
func (u User) Initials() string {
	var b strings.Builder
	n := 0
	for _, word := range strings.Fields(u.Username) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
		n++
		if n == 2 {
			break
		}
	}
	return b.String()
}
