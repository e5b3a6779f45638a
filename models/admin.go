package models

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

type Admin struct {
	AdminID     int    `json:"admin_id"`
	Username    string `json:"username"`
	Password    string `json:"password,omitempty"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	Role        string `json:"role"`
	CreatedDate string `json:"created_date"`
	LastLogin   string `json:"last_login,omitempty"`
	IsActive    bool   `json:"is_active"`
}

func (a Admin) Sanitized() Admin {
	a.Password = ""
	return a
}

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
