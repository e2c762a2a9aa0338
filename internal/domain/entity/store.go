package entity

import "time"

// Store representa una tienda (ubicación física o de negocio) a la que se asocian stocks.
type Store struct {
	ID          string
	Name        string
	Address     string
	Phone       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
