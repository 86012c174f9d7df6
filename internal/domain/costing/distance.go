package costing

import (
	"crypto/sha256"
	"encoding/binary"
	"strings"

	"github.com/shopspring/decimal"
)

// DistanceFunc resuelve la distancia en km entre un origen y un destino.
// Debe ser determinista: el mismo par produce siempre la misma distancia.
// En producción puede sustituirse por un servicio de ruteo real sin cambiar
// el contrato del modelo de costos.
type DistanceFunc func(origin, destination string) decimal.Decimal

const (
	syntheticMinKm  = 200
	syntheticSpanKm = 2000
)

// SyntheticDistance genera una distancia sintética y reproducible a partir del
// hash SHA-256 del par (origen, destino), mapeada al rango [200, 2200) km.
// Es una política de relleno para entornos sin servicio de ruteo, no una
// distancia real; la normalización a minúsculas evita divergencias por formato.
func SyntheticDistance(origin, destination string) decimal.Decimal {
	key := strings.ToLower(strings.TrimSpace(origin)) + "|" + strings.ToLower(strings.TrimSpace(destination))
	sum := sha256.Sum256([]byte(key))
	n := binary.BigEndian.Uint64(sum[:8])
	return decimal.NewFromInt(syntheticMinKm + int64(n%syntheticSpanKm))
}

var kmPerDay = decimal.NewFromInt(500)

// TransitDays estima los días de tránsito a partir de la distancia: un tren de
// carga recorre del orden de 500 km/día, con piso de un día.
func TransitDays(distanceKm decimal.Decimal) decimal.Decimal {
	days := distanceKm.Div(kmPerDay).Ceil()
	if days.LessThan(one) {
		return one
	}
	return days
}
