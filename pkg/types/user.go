package types

type User struct {
	ID        string `json:"id" db:"id"`
	Appid     string `json:"appid" db:"appid"`
	Name      string `json:"name" db:"name"`
	Avatar    string `json:"avatar" db:"avatar"`
	Email     string `json:"email" db:"email"`
	Password  string `json:"-" db:"password"`
	Salt      string `json:"-" db:"salt"`
	UpdatedAt int64  `json:"updated_at" db:"updated_at"`
	CreatedAt int64  `json:"created_at" db:"created_at"`
}

// DEFAULT_USER_NAME is used when an account exists without a profile
// name, matching the placeholder shown on first login.
const DEFAULT_USER_NAME = "Journaler"
