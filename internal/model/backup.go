package model

type Backup struct {
	ExportedAt string     `json:"exportedAt"`
	Customers  []Customer `json:"customers"`
	Tickets    []Ticket   `json:"tickets"`
	Inventory  []Part     `json:"inventory"`
}
