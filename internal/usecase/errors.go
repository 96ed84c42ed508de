package usecase

import "errors"

// Códigos de erro de negócio (4xx)
const (
	CodeValidation            = "VALIDATION_ERROR"
	CodeTemplateNotFound      = "TEMPLATE_NOT_FOUND"
	CodeNotOptedIn            = "NOT_OPTED_IN"
	CodeContactAddressMissing = "CONTACT_ADDRESS_MISSING"
	CodeOptInNotFound         = "OPTIN_NOT_FOUND"
)

// Códigos de erro técnico (5xx)
const (
	CodeTrackingWriteFailed = "TRACKING_WRITE_FAILED"
	CodeDatabase            = "DATABASE_ERROR"
	CodeInternal            = "INTERNAL_ERROR"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// TechnicalError carrega a causa original para log; o Message é o que pode sair na resposta.
type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

// ErrorCode devolve o Code de um DomainError/TechnicalError, ou CodeInternal.
func ErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	var te *TechnicalError
	if errors.As(err, &te) {
		return te.Code
	}
	return CodeInternal
}

func internalError(err error) error {
	return &TechnicalError{Code: CodeInternal, Message: "internal error", Err: err}
}
