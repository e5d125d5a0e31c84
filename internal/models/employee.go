package models

// Employee roles recognised by the admin back-office.
const (
	RoleAdmin        = "Admin"
	RoleCashier      = "Cashier"
	RoleKitchenStaff = "Kitchen Staff"
	RoleDelivery     = "Delivery"
)

// Employee statuses.
const (
	EmployeeActive   = "Active"
	EmployeeInactive = "Inactive"
)

// Employee is a staff record managed from the admin back-office.
type Employee struct {
	ID     string `json:"id"` // "EMP-..." when generated server-side
	Name   string `json:"name"`
	Role   string `json:"role"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

// EmployeePatch is a partial update to an employee record.
type EmployeePatch struct {
	Name   *string `json:"name"`
	Role   *string `json:"role"`
	Email  *string `json:"email"`
	Phone  *string `json:"phone"`
	Status *string `json:"status"`
}

// Apply merges the patch into the employee.
func (p *EmployeePatch) Apply(emp *Employee) {
	if p.Name != nil {
		emp.Name = *p.Name
	}
	if p.Role != nil {
		emp.Role = *p.Role
	}
	if p.Email != nil {
		emp.Email = *p.Email
	}
	if p.Phone != nil {
		emp.Phone = *p.Phone
	}
	if p.Status != nil {
		emp.Status = *p.Status
	}
}
