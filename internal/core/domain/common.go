package domain

// Country is the closed set of countries a person's address may be in.
type Country string

const (
	CountryCzechia  Country = "CZECHIA"
	CountrySlovakia Country = "SLOVAKIA"
)

// IsValid reports whether c is one of the supported countries.
func (c Country) IsValid() bool {
	switch c {
	case CountryCzechia, CountrySlovakia:
		return true
	}
	return false
}

// Subject is the role a person plays relative to an invoice.
type Subject string

const (
	SubjectSeller Subject = "SELLER" // sales
	SubjectBuyer  Subject = "BUYER"  // purchases
)

// IsValid reports whether s is a known subject.
func (s Subject) IsValid() bool {
	return s == SubjectSeller || s == SubjectBuyer
}
