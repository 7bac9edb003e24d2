package model

// Customer is the stored shape of a customer record.
type Customer struct {
	CustomerRef  string `db:"customer_ref"`
	CustomerName string `db:"customer_name"`
	AddressLine1 string `db:"address_line1"`
	AddressLine2 string `db:"address_line2"`
	Town         string `db:"town"`
	County       string `db:"county"`
	Country      string `db:"country"`
	Postcode     string `db:"postcode"`
}

// CustomerDTO is the wire shape accepted and returned by the API.
type CustomerDTO struct {
	CustomerRef  string `json:"customerRef" validate:"required"`
	CustomerName string `json:"customerName"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	Town         string `json:"town"`
	County       string `json:"county"`
	Country      string `json:"country"`
	Postcode     string `json:"postcode"`
}
