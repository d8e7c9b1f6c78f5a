package types

// UpdateUserRequest PUT 全量更新
type UpdateUserRequest struct {
	FirstName   string `json:"first_name" binding:"required,max=50"`
	LastName    string `json:"last_name" binding:"required,max=50"`
	Email       string `json:"email" binding:"required,email,max=100"`
	Password    string `json:"password" binding:"omitempty,min=8"`
	PhoneNumber string `json:"phone_number" binding:"omitempty,max=15"`
}

// PatchUserRequest PATCH 局部更新，零值字段不更新
type PatchUserRequest struct {
	FirstName   string `json:"first_name" binding:"omitempty,max=50"`
	LastName    string `json:"last_name" binding:"omitempty,max=50"`
	Email       string `json:"email" binding:"omitempty,email,max=100"`
	Password    string `json:"password" binding:"omitempty,min=8"`
	PhoneNumber string `json:"phone_number" binding:"omitempty,max=15"`
}

type GetUserResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	User    *User  `json:"user,omitempty"`
}
