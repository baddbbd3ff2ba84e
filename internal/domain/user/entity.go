package user

// User is one registered account in the account directory. Ids are assigned
// as one greater than the current maximum and never reused; usernames are
// unique with case-sensitive exact match as the key.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
}
