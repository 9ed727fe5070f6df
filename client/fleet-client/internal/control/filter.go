package control

import (
	"strings"

	"motofleet/client/fleet-client/internal/models"
)

// FilterMotos keeps the vehicles whose modelo or placa contains search (any case)
// and, when modelo is set, whose modelo equals it.
func FilterMotos(motos []models.Moto, search, modelo string) []models.Moto {
	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]models.Moto, 0, len(motos))
	for _, m := range motos {
		if search != "" &&
			!strings.Contains(strings.ToLower(m.Modelo), search) &&
			!strings.Contains(strings.ToLower(m.Placa), search) {
			continue
		}
		if modelo != "" && m.Modelo != modelo {
			continue
		}
		out = append(out, m)
	}
	return out
}
