package entity

// Address is the postal address embedded in a member profile.
type Address struct {
	Street  string // Street and number.
	City    string // City or town.
	State   string // State, province or region.
	ZipCode string // Postal code.
	Country string // Country name.
}

// AddressPatch carries the address lines of a profile save. Nil lines are
// left untouched in the stored document.
type AddressPatch struct {
	Street  *string
	City    *string
	State   *string
	ZipCode *string
	Country *string
}

// IsEmpty reports whether no address line was submitted.
func (p *AddressPatch) IsEmpty() bool {
	return p == nil ||
		p.Street == nil && p.City == nil && p.State == nil && p.ZipCode == nil && p.Country == nil
}

// ApplyTo overwrites the submitted lines of a.
func (p *AddressPatch) ApplyTo(a *Address) {
	if p == nil {
		return
	}

	applyString(&a.Street, p.Street)
	applyString(&a.City, p.City)
	applyString(&a.State, p.State)
	applyString(&a.ZipCode, p.ZipCode)
	applyString(&a.Country, p.Country)
}

func applyString(dst *string, value *string) {
	if value != nil {
		*dst = *value
	}
}
