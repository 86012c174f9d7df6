package entity

import "time"

// Material representa un material transportable por ferrocarril (carbón, mineral, bobinas, etc.).
// WagonTypes lista los tipos de vagón compatibles (BOXN, BCN, BRN...).
type Material struct {
	ID         string
	Name       string
	Type       string // Bulk, Finished
	Unit       string // MT
	WagonTypes []string
	CreatedAt  time.Time
}
