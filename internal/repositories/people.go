package repositories

import (
	"database/sql"

	"github.com/desertthunder/catalog/internal/models"
)

var customerTable = &Table[models.Customer]{
	name:   "customer",
	entity: "Customer",
	key:    "customer_id",
	columns: []string{
		"customer_id", "first_name", "last_name", "company", "address", "city", "state",
		"country", "postal_code", "phone", "fax", "email", "support_rep_id",
	},
	updatable: []string{
		"first_name", "last_name", "company", "address", "city", "state",
		"country", "postal_code", "phone", "fax", "email", "support_rep_id",
	},
	orderBy: "first_name COLLATE NOCASE, customer_id",
	scan:    scanCustomer,
}

var employeeTable = &Table[models.Employee]{
	name:   "employee",
	entity: "Employee",
	key:    "employee_id",
	columns: []string{
		"employee_id", "last_name", "first_name", "title", "reports_to", "birth_date", "hire_date",
		"address", "city", "state", "country", "postal_code", "phone", "fax", "email",
	},
	updatable: []string{
		"last_name", "first_name", "title", "reports_to", "birth_date", "hire_date",
		"address", "city", "state", "country", "postal_code", "phone", "fax", "email",
	},
	orderBy: "first_name COLLATE NOCASE, employee_id",
	scan:    scanEmployee,
}

// CustomerRepository implements [models.Repository] for customers.
type CustomerRepository struct {
	*crud[models.Customer]
}

var _ models.Repository[models.Customer] = (*CustomerRepository)(nil)

// NewCustomerRepository creates a new CustomerRepository with the given database connection
func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{crud: newCrud(db, customerTable, customerValues)}
}

// EmployeeRepository implements [models.Repository] for employees.
type EmployeeRepository struct {
	*crud[models.Employee]
}

var _ models.Repository[models.Employee] = (*EmployeeRepository)(nil)

// NewEmployeeRepository creates a new EmployeeRepository with the given database connection
func NewEmployeeRepository(db *sql.DB) *EmployeeRepository {
	return &EmployeeRepository{crud: newCrud(db, employeeTable, employeeValues)}
}

func customerValues(c models.Customer) models.Changes {
	var v models.Changes
	v.Set("first_name", c.FirstName)
	v.Set("last_name", c.LastName)
	v.Set("company", c.Company)
	v.Set("address", c.Address)
	v.Set("city", c.City)
	v.Set("state", c.State)
	v.Set("country", c.Country)
	v.Set("postal_code", c.PostalCode)
	v.Set("phone", c.Phone)
	v.Set("fax", c.Fax)
	v.Set("email", c.Email)
	v.Set("support_rep_id", c.SupportRepID)
	return v
}

func employeeValues(e models.Employee) models.Changes {
	var v models.Changes
	v.Set("last_name", e.LastName)
	v.Set("first_name", e.FirstName)
	v.Set("title", e.Title)
	v.Set("reports_to", e.ReportsTo)
	v.Set("birth_date", e.BirthDate)
	v.Set("hire_date", e.HireDate)
	v.Set("address", e.Address)
	v.Set("city", e.City)
	v.Set("state", e.State)
	v.Set("country", e.Country)
	v.Set("postal_code", e.PostalCode)
	v.Set("phone", e.Phone)
	v.Set("fax", e.Fax)
	v.Set("email", e.Email)
	return v
}

func scanCustomer(s scanner) (models.Customer, error) {
	var c models.Customer
	err := s.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Company, &c.Address, &c.City, &c.State,
		&c.Country, &c.PostalCode, &c.Phone, &c.Fax, &c.Email, &c.SupportRepID)
	return c, err
}

func scanEmployee(s scanner) (models.Employee, error) {
	var e models.Employee
	err := s.Scan(&e.ID, &e.LastName, &e.FirstName, &e.Title, &e.ReportsTo, &e.BirthDate, &e.HireDate,
		&e.Address, &e.City, &e.State, &e.Country, &e.PostalCode, &e.Phone, &e.Fax, &e.Email)
	return e, err
}
