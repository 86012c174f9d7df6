package entity

import "time"

// Estados de formación de rake. El ciclo de vida lo administra el scheduler
// externo; el estimador de demora solo lee snapshots en estado loading.
const (
	RakeStatusPlanned   = "planned"
	RakeStatusLoading   = "loading"
	RakeStatusInTransit = "in_transit"
	RakeStatusDelivered = "delivered"
)

// RakeInProgress representa una formación de tren (rake) en curso.
type RakeInProgress struct {
	ID            string
	RakeNumber    string
	WagonIDs      []string
	Status        string
	FormationDate time.Time
}

// WagonCount devuelve la cantidad de vagones de la formación.
func (r *RakeInProgress) WagonCount() int {
	return len(r.WagonIDs)
}
