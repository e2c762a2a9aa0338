package storemanage

import (
	"errors"

	"github.com/jhoicas/storemanage/internal/application/dto"
)

// AvailableStocks devuelve los elementos de all cuyo ID no está en current,
// conservando el orden de all.
func AvailableStocks(current, all []dto.StockResponse) []dto.StockResponse {
	assigned := make(map[string]struct{}, len(current))
	for _, s := range current {
		assigned[s.ID] = struct{}{}
	}
	out := make([]dto.StockResponse, 0, len(all))
	for _, s := range all {
		if _, ok := assigned[s.ID]; ok {
			continue
		}
		out = append(out, s)
	}
	return out
}

// messager lo implementan los errores que traen un mensaje pensado para el usuario
// (p. ej. *restclient.APIError con el campo message del cuerpo JSON).
type messager interface {
	Message() string
}

// ErrorMessage devuelve el texto a notificar: el mensaje del error si lo trae,
// y si no su forma de texto.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var m messager
	if errors.As(err, &m) {
		if msg := m.Message(); msg != "" {
			return msg
		}
	}
	return err.Error()
}
