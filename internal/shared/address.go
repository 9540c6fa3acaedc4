package shared

import (
	"fmt"
	"strings"
)

// Address is an immutable postal address. All four components are
// required.
type Address struct {
	street     string
	city       string
	country    string
	postalCode string
}

func NewAddress(street, city, country, postalCode string) (Address, error) {
	street = strings.TrimSpace(street)
	city = strings.TrimSpace(city)
	country = strings.TrimSpace(country)
	postalCode = strings.TrimSpace(postalCode)

	switch {
	case street == "":
		return Address{}, fmt.Errorf("%w: street is required", ErrValidation)
	case city == "":
		return Address{}, fmt.Errorf("%w: city is required", ErrValidation)
	case country == "":
		return Address{}, fmt.Errorf("%w: country is required", ErrValidation)
	case postalCode == "":
		return Address{}, fmt.Errorf("%w: postal code is required", ErrValidation)
	}

	return Address{street: street, city: city, country: country, postalCode: postalCode}, nil
}

func (a Address) Street() string     { return a.street }
func (a Address) City() string       { return a.city }
func (a Address) Country() string    { return a.country }
func (a Address) PostalCode() string { return a.postalCode }

func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s, %s", a.street, a.city, a.country, a.postalCode)
}
