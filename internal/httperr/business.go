package httperr

import "errors"

// Códigos de regra de negócio devolvidos pelo service.
const (
	CodePaymentAlreadyPaid = "payment_already_paid"
)

var businessMessages = map[string]string{
	CodePaymentAlreadyPaid: "Pagamento já registrado como pago.",
}

// BusinessError é uma regra violada; vira 400 com o próprio código.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return "business rule: " + e.Code
}

// Message devolve o texto para o usuário, ou um genérico para códigos sem texto.
func (e BusinessError) Message() string {
	if msg, ok := businessMessages[e.Code]; ok {
		return msg
	}
	return "Operação não permitida."
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	return errors.As(err, &be) && be.Code == code
}
