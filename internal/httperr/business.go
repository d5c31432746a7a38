package httperr

import "errors"

// BusinessError é um erro de regra de negócio identificado por Code.
// Field aponta o campo da requisição que causou o erro, quando houver.
type BusinessError struct {
	Code    string
	Field   string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

// Is compara apenas o código, para que errors.Is funcione
// mesmo quando a mensagem foi personalizada.
func (e BusinessError) Is(target error) bool {
	var be BusinessError
	if errors.As(target, &be) {
		return be.Code == e.Code
	}
	return false
}

// WithMessage devolve uma cópia do erro com outra mensagem.
func (e BusinessError) WithMessage(msg string) BusinessError {
	e.Message = msg
	return e
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrBusinessField(code, field, message string) BusinessError {
	return BusinessError{Code: code, Field: field, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// AsBusiness extrai o BusinessError da cadeia, se existir.
func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return BusinessError{}, false
}
