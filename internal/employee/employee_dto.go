package employee

import "bizdash/internal/upload"

// CreateEmployeeRequest carries the multipart form fields of employee intake.
// Numbers and dates arrive as strings and are coerced by the service; the
// uploaded files are saved by the handler before the service runs.
type CreateEmployeeRequest struct {
	UserID        string `form:"userId" binding:"required"`
	FirstName     string `form:"firstName" binding:"required"`
	LastName      string `form:"lastName" binding:"required"`
	DateOfBirth   string `form:"dateOfBirth" binding:"required"`
	Gender        string `form:"gender" binding:"required,oneof=Male Female Other"`
	ContactNumber string `form:"contactNumber" binding:"required"`
	Address       string `form:"address" binding:"required"`
	Position      string `form:"position" binding:"required"`
	Department    string `form:"department" binding:"required"`
	HireDate      string `form:"hireDate"`
	Status        string `form:"status" binding:"omitempty,oneof=present absent"`

	Documents []upload.Document `form:"-"`
}

type CreateEmployeeResponse struct {
	Message    string   `json:"message"`
	EmployeeID uint     `json:"employeeId"`
	Employee   Employee `json:"employee"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

type LatestUserIDResponse struct {
	LatestUserID int `json:"latestUserId"`
}
