package restclient

import (
	"fmt"
	"net/http"
)

// APIError respuesta no 2xx de la API. Code y Msg vienen del cuerpo {code, message} si existe.
type APIError struct {
	Status int
	Code   string
	Msg    string
	Body   string // cuerpo crudo cuando no es JSON de error
}

// Error devuelve la forma de texto completa (status, code y mensaje o cuerpo).
func (e *APIError) Error() string {
	switch {
	case e.Msg != "" && e.Code != "":
		return fmt.Sprintf("HTTP %d %s: %s", e.Status, e.Code, e.Msg)
	case e.Msg != "":
		return fmt.Sprintf("HTTP %d: %s", e.Status, e.Msg)
	case e.Body != "":
		return fmt.Sprintf("HTTP %d %s: %s", e.Status, http.StatusText(e.Status), e.Body)
	default:
		return fmt.Sprintf("HTTP %d %s", e.Status, http.StatusText(e.Status))
	}
}

// Message devuelve solo el mensaje pensado para el usuario; vacío si el servidor no lo envió.
func (e *APIError) Message() string {
	return e.Msg
}
