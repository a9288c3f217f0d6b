package health

import (
	"time"

	"tarantula-husbandry/internal/domain/attachments"
)

// Condition es el estado general observado del ejemplar.
type Condition string

const (
	ConditionStable      Condition = "Stable"
	ConditionObservation Condition = "Observation"
	ConditionCritical    Condition = "Critical"
)

const DefaultCondition = ConditionStable

// HealthEntry es una observación de bienestar: condiciones del enclosure,
// estado, comportamiento y tratamiento.
type HealthEntry struct {
	ID          string `json:"id"`
	OwnerUserID string `json:"-"`

	Specimen string    `json:"specimen,omitempty"`
	Species  string    `json:"species,omitempty"`
	Date     time.Time `json:"date"`

	EnclosureSize string   `json:"enclosureSize,omitempty"`
	Temperature   *float64 `json:"temperature,omitempty"`
	Humidity      *float64 `json:"humidity,omitempty"`

	Condition    Condition  `json:"condition"`
	Behavior     string     `json:"behavior,omitempty"`
	HealthIssues string     `json:"healthIssues,omitempty"`
	Treatment    string     `json:"treatment,omitempty"`
	FollowUpDate *time.Time `json:"followUpDate,omitempty"`

	Attachments []attachments.Attachment `json:"attachments,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
