package types

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoftCreateRequest struct {
	Name string `json:"name" validate:"required"`
}

type LoftRenameRequest struct {
	Name string `json:"name" validate:"required"`
}

type BirdCreateRequest struct {
	Ring   string  `json:"ring" validate:"required"`
	Name   string  `json:"name"`
	LoftID *string `json:"loft_id" validate:"omitempty,uuid4"`
}

type BirdUpdateRequest struct {
	Ring   string  `json:"ring" validate:"required"`
	Name   string  `json:"name"`
	LoftID *string `json:"loft_id" validate:"omitempty,uuid4"`
}

type BirdAssignRequest struct {
	BirdID string  `json:"bird_id" validate:"required,uuid4"`
	LoftID *string `json:"loft_id" validate:"omitempty,uuid4"`
}
