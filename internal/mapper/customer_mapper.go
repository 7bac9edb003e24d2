// Package mapper converts between the wire and stored shapes of a customer.
package mapper

import "github.com/unclebandit/customer-records/internal/model"

// ToStored copies a wire record into its stored shape field for field.
func ToStored(dto model.CustomerDTO) model.Customer {
	return model.Customer{
		CustomerRef:  dto.CustomerRef,
		CustomerName: dto.CustomerName,
		AddressLine1: dto.AddressLine1,
		AddressLine2: dto.AddressLine2,
		Town:         dto.Town,
		County:       dto.County,
		Country:      dto.Country,
		Postcode:     dto.Postcode,
	}
}

// ToWire copies a stored record into its wire shape field for field.
func ToWire(c model.Customer) model.CustomerDTO {
	return model.CustomerDTO{
		CustomerRef:  c.CustomerRef,
		CustomerName: c.CustomerName,
		AddressLine1: c.AddressLine1,
		AddressLine2: c.AddressLine2,
		Town:         c.Town,
		County:       c.County,
		Country:      c.Country,
		Postcode:     c.Postcode,
	}
}
