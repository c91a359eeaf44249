package models

// Person is the persisted row of the persons table.
type Person struct {
	PersonID             int64  `db:"person_id"`
	Name                 string `db:"name"`
	IdentificationNumber string `db:"identification_number"`
	TaxNumber            string `db:"tax_number"`
	AccountNumber        string `db:"account_number"`
	BankCode             string `db:"bank_code"`
	IBAN                 string `db:"iban"`
	Telephone            string `db:"telephone"`
	Mail                 string `db:"mail"`
	Street               string `db:"street"`
	Zip                  string `db:"zip"`
	City                 string `db:"city"`
	Country              string `db:"country"`
	Note                 string `db:"note"`
	Hidden               bool   `db:"hidden"`
}
