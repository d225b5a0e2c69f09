package enum

// Department is the coarse grouping used to scope sub-admin accounts.
// DepartmentAll marks sections every authenticated admin identity may see
// (subject to its capability set).
type Department string

const (
	DepartmentCatalog           Department = "Catalog"
	DepartmentOrders            Department = "Orders"
	DepartmentUserCommunication Department = "User Communication"
	DepartmentContent           Department = "Content"
	DepartmentFinance           Department = "Finance"
	DepartmentAll               Department = "all"
)

// AllDepartments lists every assignable department. DepartmentAll is not
// assignable to a sub-admin; it only appears as a section requirement.
var AllDepartments = []Department{
	DepartmentCatalog,
	DepartmentOrders,
	DepartmentUserCommunication,
	DepartmentContent,
	DepartmentFinance,
}

// IsAssignable reports whether the department may be granted to a sub-admin.
func (d Department) IsAssignable() bool {
	for _, dep := range AllDepartments {
		if d == dep {
			return true
		}
	}
	return false
}

func (d Department) String() string {
	return string(d)
}
