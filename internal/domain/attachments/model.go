package attachments

import "time"

// Attachment referencia una foto subida (filesystem u object store).
// DataURL es transitorio: solo viaja dentro de un archivo de export/import
// para llevar el binario inline como base64; nunca se persiste.
type Attachment struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	URL      string    `json:"url"`
	MimeType string    `json:"mimeType"`
	DataURL  string    `json:"dataUrl,omitempty"`
	AddedAt  time.Time `json:"addedAt"`
}
