package httperr

import "errors"

// BusinessError is a domain rule violation carried by its stable code:
// an invalid booking transition, a lost status race, an inactive
// service. Handlers map codes to HTTP statuses; anything else is a 500.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
