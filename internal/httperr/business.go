package httperr

import "errors"

// Códigos de negocio que los engines devuelven hacia los handlers.
const (
	CodeValidation            = "validation_error"
	CodeInvalidService        = "invalid_service"
	CodeNotFound              = "not_found"
	CodeDuplicatePhone        = "duplicate_phone"
	CodeDuplicateName         = "duplicate_name"
	CodeRedemptionPending     = "redemption_pending"
	CodeNoRedemptionAvailable = "no_redemption_available"
	CodeNoChanges             = "no_changes"
	CodeStorageUnavailable    = "storage_unavailable"
)

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

// BusinessCode devuelve el código de negocio del error, o "" si el error
// no es un BusinessError.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
