// Package mockdata holds the fixed demo datasets served when no database is
// configured. The collections are read-only fixtures; list endpoints paginate
// over them without copying.
package mockdata

// Employee is a demo HR employee record.
type Employee struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employeeId"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Email      string  `json:"email"`
	Department string  `json:"department"`
	Position   string  `json:"position"`
	HireDate   string  `json:"hireDate"`
	Salary     float64 `json:"salary"`
	Status     string  `json:"status"`
}

// Department is a demo HR department record.
type Department struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	ManagerID     string `json:"managerId"`
	EmployeeCount int    `json:"employeeCount"`
}

// PayrollRecord is a demo payroll run for one employee.
type PayrollRecord struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employeeId"`
	PayPeriodStart string  `json:"payPeriodStart"`
	PayPeriodEnd   string  `json:"payPeriodEnd"`
	GrossPay       float64 `json:"grossPay"`
	Deductions     float64 `json:"deductions"`
	TaxWithheld    float64 `json:"taxWithheld"`
	NetPay         float64 `json:"netPay"`
	Status         string  `json:"status"`
}

// Transaction is a demo accounting transaction.
type Transaction struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
}

// Budget is a demo finance budget.
type Budget struct {
	ID              string  `json:"id"`
	DepartmentID    string  `json:"departmentId"`
	FiscalYear      int     `json:"fiscalYear"`
	Quarter         string  `json:"quarter"`
	AllocatedAmount float64 `json:"allocatedAmount"`
	SpentAmount     float64 `json:"spentAmount"`
	RemainingAmount float64 `json:"remainingAmount"`
	Status          string  `json:"status"`
}

// Customer is a demo billing customer.
type Customer struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Address        string  `json:"address"`
	CreditLimit    float64 `json:"creditLimit"`
	CurrentBalance float64 `json:"currentBalance"`
	Status         string  `json:"status"`
}

// Invoice is a demo billing invoice.
type Invoice struct {
	ID            string  `json:"id"`
	InvoiceNumber string  `json:"invoiceNumber"`
	CustomerID    string  `json:"customerId"`
	IssueDate     string  `json:"issueDate"`
	DueDate       string  `json:"dueDate"`
	Subtotal      float64 `json:"subtotal"`
	TaxAmount     float64 `json:"taxAmount"`
	TotalAmount   float64 `json:"totalAmount"`
	BalanceDue    float64 `json:"balanceDue"`
	Status        string  `json:"status"`
}

// Vendor is a demo procurement vendor.
type Vendor struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	PaymentTerms string `json:"paymentTerms"`
	Status       string `json:"status"`
}

// PurchaseOrder is a demo procurement purchase order.
type PurchaseOrder struct {
	ID                   string  `json:"id"`
	PONumber             string  `json:"poNumber"`
	VendorID             string  `json:"vendorId"`
	OrderDate            string  `json:"orderDate"`
	ExpectedDeliveryDate string  `json:"expectedDeliveryDate"`
	TotalAmount          float64 `json:"totalAmount"`
	Status               string  `json:"status"`
}

// InventoryItem is a demo inventory stock item.
type InventoryItem struct {
	ID              string  `json:"id"`
	SKU             string  `json:"sku"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	UnitPrice       float64 `json:"unitPrice"`
	QuantityOnHand  int     `json:"quantityOnHand"`
	ReorderPoint    int     `json:"reorderPoint"`
	ReorderQuantity int     `json:"reorderQuantity"`
}

// Shipment is a demo supply-chain shipment fixture. The live shipment
// collection lives in the store package; these are display-only samples.
type Shipment struct {
	ID                string `json:"id"`
	TrackingNumber    string `json:"trackingNumber"`
	OrderID           string `json:"orderId"`
	Carrier           string `json:"carrier"`
	Origin            string `json:"origin"`
	Destination       string `json:"destination"`
	ShipDate          string `json:"shipDate"`
	EstimatedDelivery string `json:"estimatedDelivery"`
	Status            string `json:"status"`
}

// Stats summarizes the demo datasets for /api/mock-stats.
type Stats struct {
	Employees    int `json:"employees"`
	Departments  int `json:"departments"`
	Transactions int `json:"transactions"`
	Customers    int `json:"customers"`
	Invoices     int `json:"invoices"`
	Vendors      int `json:"vendors"`
	Items        int `json:"items"`
	Shipments    int `json:"shipments"`
}

// GetStats returns counts over all demo collections.
func GetStats() Stats {
	return Stats{
		Employees:    len(Employees),
		Departments:  len(Departments),
		Transactions: len(Transactions),
		Customers:    len(Customers),
		Invoices:     len(Invoices),
		Vendors:      len(Vendors),
		Items:        len(InventoryItems),
		Shipments:    len(Shipments),
	}
}
