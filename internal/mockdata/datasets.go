package mockdata

// Employees is the demo employee collection.
var Employees = []Employee{
	{
		ID: "emp-001", EmployeeID: "EMP001",
		FirstName: "John", LastName: "Doe", Email: "john.doe@company.com",
		Department: "Engineering", Position: "Senior Software Engineer",
		HireDate: "2022-01-15", Salary: 95000, Status: "active",
	},
	{
		ID: "emp-002", EmployeeID: "EMP002",
		FirstName: "Jane", LastName: "Smith", Email: "jane.smith@company.com",
		Department: "Marketing", Position: "Marketing Manager",
		HireDate: "2021-03-10", Salary: 75000, Status: "active",
	},
	{
		ID: "emp-003", EmployeeID: "EMP003",
		FirstName: "Mike", LastName: "Johnson", Email: "mike.johnson@company.com",
		Department: "Finance", Position: "Financial Analyst",
		HireDate: "2023-06-01", Salary: 65000, Status: "active",
	},
}

// Departments is the demo department collection.
var Departments = []Department{
	{ID: "dept-001", Name: "Engineering", Description: "Software development and technical operations", ManagerID: "emp-001", EmployeeCount: 15},
	{ID: "dept-002", Name: "Marketing", Description: "Brand management and customer acquisition", ManagerID: "emp-002", EmployeeCount: 8},
	{ID: "dept-003", Name: "Finance", Description: "Financial planning and accounting", ManagerID: "emp-003", EmployeeCount: 5},
}

// PayrollRecords is the demo payroll collection.
var PayrollRecords = []PayrollRecord{
	{ID: "pay-001", EmployeeID: "emp-001", PayPeriodStart: "2024-01-01", PayPeriodEnd: "2024-01-31", GrossPay: 7916.67, Deductions: 1000, TaxWithheld: 1583.33, NetPay: 5333.34, Status: "approved"},
	{ID: "pay-002", EmployeeID: "emp-002", PayPeriodStart: "2024-01-01", PayPeriodEnd: "2024-01-31", GrossPay: 6250, Deductions: 1000, TaxWithheld: 1250, NetPay: 4000, Status: "approved"},
	{ID: "pay-003", EmployeeID: "emp-003", PayPeriodStart: "2024-01-01", PayPeriodEnd: "2024-01-31", GrossPay: 5416.67, Deductions: 800, TaxWithheld: 1083.33, NetPay: 3533.34, Status: "pending"},
}

// Transactions is the demo accounting transaction collection.
var Transactions = []Transaction{
	{ID: "txn-001", Date: "2024-01-05", Description: "Office rent payment", Amount: 12000, Type: "debit"},
	{ID: "txn-002", Date: "2024-01-10", Description: "Customer invoice payment", Amount: 25000, Type: "credit"},
	{ID: "txn-003", Date: "2024-01-15", Description: "Vendor payment - office supplies", Amount: 3500, Type: "debit"},
	{ID: "txn-004", Date: "2024-01-31", Description: "Payroll disbursement", Amount: 45000, Type: "debit"},
}

// Budgets is the demo budget collection.
var Budgets = []Budget{
	{ID: "budget-001", DepartmentID: "dept-001", FiscalYear: 2024, Quarter: "Q1", AllocatedAmount: 250000, SpentAmount: 175000, RemainingAmount: 75000, Status: "active"},
	{ID: "budget-002", DepartmentID: "dept-002", FiscalYear: 2024, Quarter: "Q1", AllocatedAmount: 100000, SpentAmount: 60000, RemainingAmount: 40000, Status: "active"},
	{ID: "budget-003", DepartmentID: "dept-003", FiscalYear: 2023, Quarter: "Q4", AllocatedAmount: 80000, SpentAmount: 80000, RemainingAmount: 0, Status: "closed"},
}

// Customers is the demo customer collection.
var Customers = []Customer{
	{ID: "cust-001", Name: "Acme Corporation", Email: "billing@acme.example.com", Phone: "+15550100", Address: "100 Industrial Way, Springfield", CreditLimit: 50000, CurrentBalance: 5000, Status: "active"},
	{ID: "cust-002", Name: "Globex Inc", Email: "accounts@globex.example.com", Phone: "+15550101", Address: "200 Commerce St, Shelbyville", CreditLimit: 75000, CurrentBalance: 12500, Status: "active"},
	{ID: "cust-003", Name: "Initech LLC", Email: "ap@initech.example.com", Phone: "+15550102", Address: "300 Office Park Dr, Capital City", CreditLimit: 25000, CurrentBalance: 0, Status: "inactive"},
}

// Invoices is the demo invoice collection.
var Invoices = []Invoice{
	{ID: "inv-001", InvoiceNumber: "INV-001", CustomerID: "cust-001", IssueDate: "2024-01-10", DueDate: "2024-02-09", Subtotal: 10000, TaxAmount: 800, TotalAmount: 10800, BalanceDue: 10800, Status: "sent"},
	{ID: "inv-002", InvoiceNumber: "INV-002", CustomerID: "cust-002", IssueDate: "2024-01-15", DueDate: "2024-02-14", Subtotal: 4500, TaxAmount: 360, TotalAmount: 4860, BalanceDue: 0, Status: "paid"},
	{ID: "inv-003", InvoiceNumber: "INV-003", CustomerID: "cust-001", IssueDate: "2023-12-01", DueDate: "2023-12-31", Subtotal: 2000, TaxAmount: 160, TotalAmount: 2160, BalanceDue: 2160, Status: "overdue"},
}

// Vendors is the demo vendor collection.
var Vendors = []Vendor{
	{ID: "vendor-001", Name: "Office Supply Co", Email: "sales@officesupply.example.com", Phone: "+15550200", Address: "1 Warehouse Rd", PaymentTerms: "Net 30", Status: "active"},
	{ID: "vendor-002", Name: "Tech Hardware Ltd", Email: "orders@techhw.example.com", Phone: "+15550201", Address: "2 Silicon Ave", PaymentTerms: "Net 45", Status: "active"},
	{ID: "vendor-003", Name: "Packaging Partners", Email: "info@packaging.example.com", Phone: "+15550202", Address: "3 Carton Blvd", PaymentTerms: "Net 30", Status: "active"},
}

// PurchaseOrders is the demo purchase order collection.
var PurchaseOrders = []PurchaseOrder{
	{ID: "po-001", PONumber: "PO-001", VendorID: "vendor-001", OrderDate: "2024-01-08", ExpectedDeliveryDate: "2024-01-22", TotalAmount: 3500, Status: "received"},
	{ID: "po-002", PONumber: "PO-002", VendorID: "vendor-002", OrderDate: "2024-01-12", ExpectedDeliveryDate: "2024-02-01", TotalAmount: 18000, Status: "placed"},
	{ID: "po-003", PONumber: "PO-003", VendorID: "vendor-003", OrderDate: "2024-01-20", ExpectedDeliveryDate: "2024-02-05", TotalAmount: 1200, Status: "draft"},
}

// InventoryItems is the demo inventory collection.
var InventoryItems = []InventoryItem{
	{ID: "item-001", SKU: "SKU-001", Name: "Laptop 14\"", Description: "Standard issue developer laptop", Category: "Electronics", UnitPrice: 1200, QuantityOnHand: 35, ReorderPoint: 10, ReorderQuantity: 20},
	{ID: "item-002", SKU: "SKU-002", Name: "Desk Chair", Description: "Ergonomic office chair", Category: "Furniture", UnitPrice: 250, QuantityOnHand: 80, ReorderPoint: 15, ReorderQuantity: 30},
	{ID: "item-003", SKU: "SKU-003", Name: "A4 Paper Box", Description: "500-sheet reams, 5 per box", Category: "Office Supplies", UnitPrice: 25, QuantityOnHand: 5, ReorderPoint: 10, ReorderQuantity: 50},
	{ID: "item-004", SKU: "SKU-004", Name: "USB-C Dock", Description: "Dual-display docking station", Category: "Electronics", UnitPrice: 180, QuantityOnHand: 22, ReorderPoint: 8, ReorderQuantity: 16},
}

// Shipments is the demo shipment collection.
var Shipments = []Shipment{
	{ID: "ship-001", TrackingNumber: "TRK-001", OrderID: "ord-001", Carrier: "FedEx", Origin: "New York", Destination: "Los Angeles", ShipDate: "2024-01-25", EstimatedDelivery: "2024-02-01", Status: "delivered"},
	{ID: "ship-002", TrackingNumber: "TRK-002", OrderID: "ord-002", Carrier: "UPS", Origin: "Chicago", Destination: "Houston", ShipDate: "2024-01-28", EstimatedDelivery: "2024-02-03", Status: "in_transit"},
	{ID: "ship-003", TrackingNumber: "TRK-003", OrderID: "ord-003", Carrier: "DHL", Origin: "Seattle", Destination: "Miami", ShipDate: "2024-01-30", EstimatedDelivery: "2024-02-06", Status: "pending"},
}
