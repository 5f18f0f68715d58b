package domain

const passportLength = 9

// Passport is a validated 9-digit passport number. The zero value means
// "no valid passport on file", which keeps rejected input distinguishable
// from a passport that was never provided.
type Passport struct {
	value string
}

// ParsePassport accepts strings of exactly nine decimal digits. Anything
// else returns ErrInvalidPassport and the zero Passport, so callers store
// an explicit unset value instead of the rejected input.
func ParsePassport(s string) (Passport, error) {
	if len(s) != passportLength {
		return Passport{}, ErrInvalidPassport
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return Passport{}, ErrInvalidPassport
		}
	}
	return Passport{value: s}, nil
}

func (p Passport) Valid() bool {
	return p.value != ""
}

func (p Passport) String() string {
	return p.value
}
