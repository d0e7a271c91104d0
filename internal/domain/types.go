package domain

// Roles known to the route guard.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// Pagination carries paging params as sent by the dashboard.
type Pagination struct {
	Page     int `json:"page" form:"page"`
	PageSize int `json:"pageSize" form:"pageSize"`
}

// RequestContext carries authenticated user info when available.
type RequestContext struct {
	UserID    string `json:"userId"`
	Role      string `json:"role"`
	RequestID string `json:"requestId"`
}

// IsAdmin reports whether the caller may see fund monitoring.
func (rc RequestContext) IsAdmin() bool {
	return rc.Role == RoleAdmin
}
