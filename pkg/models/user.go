package models

// User is the authenticated identity. It is persisted under its own storage
// key, separate from the comic collection, and removed on logout. The store
// treats UserID references as weak: nothing enforces that the owner of a
// comic still exists.
type User struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	Name     *string `json:"name,omitempty"`
	PhotoURL *string `json:"photoURL,omitempty"`
}
