package postgres

import "github.com/google/uuid"

// isUUID evita enviar a PostgreSQL ids mal formados (la columna es UUID y fallaría el cast).
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
