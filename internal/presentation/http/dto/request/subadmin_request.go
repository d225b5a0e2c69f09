package request

// SubAdminRequest represents the sub-admin create/update request body
type SubAdminRequest struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password"`
	Department  string   `json:"department" binding:"required"`
	Permissions []string `json:"permissions"`
	Active      bool     `json:"active"`
}
