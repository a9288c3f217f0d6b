package transfer

import (
	"time"

	"tarantula-husbandry/internal/domain/breeding"
	"tarantula-husbandry/internal/domain/entries"
	"tarantula-husbandry/internal/domain/health"
	"tarantula-husbandry/internal/domain/research"
)

// envelopeVersion es el formato actual de export. El import acepta
// también archivos v1 (sin health ni breeding) y archivos sin campo
// version: las colecciones ausentes se tratan como vacías.
const envelopeVersion = 2

// Envelope es el archivo completo de un dueño, listo para descargar.
type Envelope struct {
	Version    int       `json:"version"`
	ExportedAt time.Time `json:"exportedAt"`

	Entries  []entries.Entry          `json:"entries"`
	Research []research.Stack         `json:"research"`
	Health   []health.HealthEntry     `json:"health"`
	Breeding []breeding.BreedingEntry `json:"breeding"`
}

// rawEnvelope es la cara de import: cada registro queda como mapa crudo
// para que uno corrupto no tumbe la decodificación de los demás.
type rawEnvelope struct {
	Version  int              `json:"version"`
	Entries  []map[string]any `json:"entries"`
	Research []map[string]any `json:"research"`
	Health   []map[string]any `json:"health"`
	Breeding []map[string]any `json:"breeding"`
}

// ImportError localiza un registro rechazado dentro del archivo.
type ImportError struct {
	Collection string `json:"collection"`
	Index      int    `json:"index"`
	ID         string `json:"id,omitempty"`
	Reason     string `json:"reason"`
}

// ImportReport resume un import: cuántos registros nuevos por colección
// y qué registros fueron rechazados. El import nunca es idempotente:
// repetirlo duplica datos porque cada registro recibe un id nuevo.
// Success siempre es true en un 200: los rechazos parciales van en Errors.
type ImportReport struct {
	Success         bool          `json:"success"`
	CreatedEntries  int           `json:"createdEntries"`
	CreatedStacks   int           `json:"createdStacks"`
	CreatedHealth   int           `json:"createdHealth"`
	CreatedBreeding int           `json:"createdBreeding"`
	Errors          []ImportError `json:"errors"`
}
