package research

import "time"

// Stack es una colección nombrada de notas de investigación para una
// especie, un ejemplar o un proyecto. Las notas son lista embebida, no
// tabla hija: viven y mueren con su stack.
type Stack struct {
	ID          string `json:"id"`
	OwnerUserID string `json:"-"`

	Name    string `json:"name"`
	Species string `json:"species,omitempty"`

	Notes []Note `json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Note struct {
	ID         string   `json:"id"`
	Title      string   `json:"title,omitempty"`
	Individual string   `json:"individual,omitempty"`
	Content    string   `json:"content,omitempty"`
	Tags       []string `json:"tags,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
