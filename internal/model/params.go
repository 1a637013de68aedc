package model

type CreateCustomerParams struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

type CreateTicketParams struct {
	Subject     string
	Description string
	CustomerID  string
	Status      string
	Date        string
	Time        string
}

type CreatePartParams struct {
	Name     string
	Location string
	Qty      int
	Price    float64
	MinQty   int
}
