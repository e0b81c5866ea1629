package domain

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminUser is the principal behind every authenticated request. There is a
// single configured admin identity, so the id is a stable constant.
type AdminUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
