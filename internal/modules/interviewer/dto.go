package interviewer

type CreateRequest struct {
	FullName string   `json:"full_name" validate:"required"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=8"`
	Domains  []string `json:"domains"`
}

type UpdateRequest struct {
	FullName *string  `json:"full_name"`
	Domains  []string `json:"domains"`
	Status   *string  `json:"status"`
}
