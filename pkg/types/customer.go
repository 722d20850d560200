package types

// Customer is the buyer on the shared order. Singleton per session,
// replaced wholesale on edit.
type Customer struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Address   []string `json:"address"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	AvatarURL string   `json:"avatarUrl"`
}
