package dto

type CreateUserRequest struct {
	FirstName   string `json:"first_name" validate:"required,max=50"`
	LastName    string `json:"last_name" validate:"required,max=50"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=15"`
	Address     string `json:"address"`
}

type UpdateUserRequest struct {
	FirstName   string `json:"first_name" validate:"required,max=50"`
	LastName    string `json:"last_name" validate:"required,max=50"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=15"`
	Address     string `json:"address"`
}

// SignupResponse carries the representation of the new user together with
// the credential token issued for it.
type SignupResponse struct {
	Token string                 `json:"token"`
	User  map[string]interface{} `json:"user"`
}
