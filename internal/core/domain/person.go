package domain

// Person is a business entity that can act as buyer or seller on invoices.
// Rows are never physically deleted. Hidden marks both soft-deleted persons and
// versions superseded by an update.
type Person struct {
	PersonID             int64
	Name                 string
	IdentificationNumber string
	TaxNumber            string
	AccountNumber        string
	BankCode             string
	IBAN                 string
	Telephone            string
	Mail                 string
	Street               string
	Zip                  string
	City                 string
	Country              Country
	Note                 string
	Hidden               bool
}

// NewVersion returns the replacement row for an update of p: the fields come from
// next, while the identification number is carried over and the row is visible.
func (p Person) NewVersion(next Person) Person {
	next.PersonID = 0
	next.IdentificationNumber = p.IdentificationNumber
	next.Hidden = false
	return next
}
