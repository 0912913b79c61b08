package domain

type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is one role-tagged entry of a generation request.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Profile identifies the account behind the publishing credentials.
type Profile struct {
	ID        string
	FirstName string
	LastName  string
}
