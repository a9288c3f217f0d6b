package entries

import (
	"time"

	"tarantula-husbandry/internal/domain/attachments"
)

// Entry es una observación fechada de un ejemplar: muda, alimentación,
// agua o un tipo custom. Invariantes (los garantiza el normalizador):
//   - Stage presente solo si Kind == molt
//   - Prey/Outcome/Amount presentes solo si Kind == feeding
//   - Species requerida si Kind == molt
type Entry struct {
	ID          string `json:"id"`
	OwnerUserID string `json:"-"`

	Kind     Kind   `json:"entryType"`
	Specimen string `json:"specimen,omitempty"`
	Species  string `json:"species,omitempty"`

	Date  time.Time `json:"date"`
	Stage Stage     `json:"stage,omitempty"`

	OldSize     *float64 `json:"oldSize,omitempty"`
	NewSize     *float64 `json:"newSize,omitempty"`
	Humidity    *float64 `json:"humidity,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	TempUnit    TempUnit `json:"tempUnit,omitempty"`

	Notes        string     `json:"notes,omitempty"`
	ReminderDate *time.Time `json:"reminderDate,omitempty"`

	// Sub-campos de alimentación (solo Kind == feeding).
	Prey    string `json:"prey,omitempty"`
	Outcome string `json:"outcome,omitempty"`
	Amount  *int   `json:"amount,omitempty"`

	Attachments []attachments.Attachment `json:"attachments,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
