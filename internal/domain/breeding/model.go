package breeding

import (
	"time"

	"tarantula-husbandry/internal/domain/attachments"
)

// Status del proyecto de cría.
type Status string

const (
	StatusPlanned Status = "planned"
	StatusPaired  Status = "paired"
	StatusEggSac  Status = "egg_sac"
	StatusHatched Status = "hatched"
	StatusFailed  Status = "failed"
)

const DefaultStatus = StatusPlanned

// BreedingEntry registra un pairing y su eventual ooteca/eclosión.
type BreedingEntry struct {
	ID          string `json:"id"`
	OwnerUserID string `json:"-"`

	Female  string `json:"female,omitempty"`
	Male    string `json:"male,omitempty"`
	Species string `json:"species,omitempty"`

	PairingDate  time.Time `json:"pairingDate"`
	Status       Status    `json:"status"`
	PairingNotes string    `json:"pairingNotes,omitempty"`

	EggSacDate   *time.Time `json:"eggSacDate,omitempty"`
	EggSacStatus string     `json:"eggSacStatus,omitempty"`
	EggSacCount  *int       `json:"eggSacCount,omitempty"`

	HatchDate  *time.Time `json:"hatchDate,omitempty"`
	SlingCount *int       `json:"slingCount,omitempty"`

	FollowUpDate *time.Time `json:"followUpDate,omitempty"`

	Attachments []attachments.Attachment `json:"attachments,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
