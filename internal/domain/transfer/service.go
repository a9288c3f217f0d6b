package transfer

import (
	"bytes"
	"context"
	"io"
	"sort"
	"strings"
	"time"

	"tarantula-husbandry/internal/domain/attachments"
	"tarantula-husbandry/internal/domain/breeding"
	"tarantula-husbandry/internal/domain/entries"
	"tarantula-husbandry/internal/domain/health"
	"tarantula-husbandry/internal/domain/research"
	"tarantula-husbandry/internal/platform/httpclient"
	"tarantula-husbandry/internal/platform/logger"
	"tarantula-husbandry/internal/ports/blob"
)

// Service arma y reconcilia archivos de export/import del dueño completo.
// Lee y escribe a través de los services de dominio, nunca directo a los
// repos, para que los imports pasen por la misma normalización que un POST.
type Service struct {
	entries  *entries.Service
	research *research.Service
	health   *health.Service
	breeding *breeding.Service

	blobs blob.Store
	fetch *httpclient.Client
	log   logger.Logger
	now   func() time.Time
}

func NewService(
	entriesSvc *entries.Service,
	researchSvc *research.Service,
	healthSvc *health.Service,
	breedingSvc *breeding.Service,
	blobs blob.Store,
	fetch *httpclient.Client,
	log logger.Logger,
) *Service {
	return &Service{
		entries:  entriesSvc,
		research: researchSvc,
		health:   healthSvc,
		breeding: breedingSvc,
		blobs:    blobs,
		fetch:    fetch,
		log:      log,
		now:      time.Now,
	}
}

// Export arma el archivo completo del dueño. Cada colección sale ordenada
// por recencia descendente con desempate por id, para que dos exports del
// mismo estado sean byte a byte comparables.
//
// Con embed, cada attachment intenta llevar su binario inline como
// dataUrl: los propios se leen del blob store, los remotos se bajan por
// HTTP. Un attachment que no se pudo resolver viaja igual, solo sin
// dataUrl.
func (s *Service) Export(ctx context.Context, ownerUserID string, embed bool) (Envelope, error) {
	env := Envelope{
		Version:    envelopeVersion,
		ExportedAt: s.now().UTC(),
	}

	var err error
	if env.Entries, err = s.entries.List(ctx, ownerUserID, entries.ListFilter{}); err != nil {
		return Envelope{}, err
	}
	if env.Research, err = s.research.List(ctx, ownerUserID); err != nil {
		return Envelope{}, err
	}
	if env.Health, err = s.health.List(ctx, ownerUserID); err != nil {
		return Envelope{}, err
	}
	if env.Breeding, err = s.breeding.List(ctx, ownerUserID); err != nil {
		return Envelope{}, err
	}

	if env.Entries == nil {
		env.Entries = []entries.Entry{}
	}
	if env.Research == nil {
		env.Research = []research.Stack{}
	}
	if env.Health == nil {
		env.Health = []health.HealthEntry{}
	}
	if env.Breeding == nil {
		env.Breeding = []breeding.BreedingEntry{}
	}

	sort.Slice(env.Entries, func(i, j int) bool {
		a, b := env.Entries[i], env.Entries[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.ID < b.ID
	})
	sort.Slice(env.Research, func(i, j int) bool {
		a, b := env.Research[i], env.Research[j]
		if !a.UpdatedAt.Equal(b.UpdatedAt) {
			return a.UpdatedAt.After(b.UpdatedAt)
		}
		return a.ID < b.ID
	})
	sort.Slice(env.Health, func(i, j int) bool {
		a, b := env.Health[i], env.Health[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.ID < b.ID
	})
	sort.Slice(env.Breeding, func(i, j int) bool {
		a, b := env.Breeding[i], env.Breeding[j]
		if !a.PairingDate.Equal(b.PairingDate) {
			return a.PairingDate.After(b.PairingDate)
		}
		return a.ID < b.ID
	})

	if embed {
		for i := range env.Entries {
			env.Entries[i].Attachments = s.embedAttachments(ctx, ownerUserID, env.Entries[i].Attachments)
		}
		for i := range env.Health {
			env.Health[i].Attachments = s.embedAttachments(ctx, ownerUserID, env.Health[i].Attachments)
		}
		for i := range env.Breeding {
			env.Breeding[i].Attachments = s.embedAttachments(ctx, ownerUserID, env.Breeding[i].Attachments)
		}
	}

	return env, nil
}

// embedAttachments devuelve una copia de la lista con dataUrl resuelto.
// Trabaja sobre copia porque el slice puede compartir backing array con el
// registro persistido: el export no muta nada almacenado.
func (s *Service) embedAttachments(ctx context.Context, ownerUserID string, list []attachments.Attachment) []attachments.Attachment {
	if len(list) == 0 {
		return list
	}
	out := make([]attachments.Attachment, len(list))
	copy(out, list)
	for i := range out {
		a := &out[i]
		if a.DataURL != "" {
			continue
		}
		data, mime, err := s.resolveBinary(ctx, ownerUserID, a.URL)
		if err != nil {
			s.log.Warn("attachment no embebible, se exporta sin dataUrl", map[string]any{
				"url": a.URL, "error": err.Error(),
			})
			continue
		}
		if mime == "" {
			mime = a.MimeType
		}
		a.DataURL = attachments.EncodeDataURL(mime, data)
	}
	return out
}

// resolveBinary trae los bytes de un attachment: del blob store cuando la
// URL apunta a una key del propio dueño, por HTTP cuando es remota.
func (s *Service) resolveBinary(ctx context.Context, ownerUserID, rawURL string) ([]byte, string, error) {
	if s.blobs != nil {
		if key := s.blobs.KeyFromURL(rawURL); key != "" && strings.HasPrefix(key, ownerUserID+"/") {
			rc, mime, err := s.blobs.Open(ctx, key)
			if err != nil {
				return nil, "", err
			}
			defer rc.Close()
			data, err := io.ReadAll(io.LimitReader(rc, httpclient.MaxBodyBytes))
			if err != nil {
				return nil, "", err
			}
			return data, mime, nil
		}
	}
	return s.fetch.GetBytes(ctx, rawURL)
}

// Import reconcilia un archivo dentro de la cuenta del importador.
// Semántica deliberada:
//   - todos los registros entran con id NUEVO; importar dos veces duplica
//   - cada registro se valida y persiste aislado: uno inválido va a
//     errors[] y el resto sigue
//   - los attachments con dataUrl se rehidratan al blob store del
//     importador; los que solo traen URL se intentan bajar, y si no se
//     puede, la URL se conserva tal cual
func (s *Service) Import(ctx context.Context, ownerUserID string, env rawEnvelope) ImportReport {
	report := ImportReport{Success: true, Errors: []ImportError{}}

	for i, raw := range env.Entries {
		s.restoreAttachments(ctx, ownerUserID, raw)
		if _, err := s.entries.Create(ctx, ownerUserID, scrubIdentity(raw)); err != nil {
			report.Errors = append(report.Errors, importErr("entries", i, raw, err))
			continue
		}
		report.CreatedEntries++
	}
	for i, raw := range env.Research {
		if _, err := s.research.Create(ctx, ownerUserID, scrubIdentity(raw)); err != nil {
			report.Errors = append(report.Errors, importErr("research", i, raw, err))
			continue
		}
		report.CreatedStacks++
	}
	for i, raw := range env.Health {
		s.restoreAttachments(ctx, ownerUserID, raw)
		if _, err := s.health.Create(ctx, ownerUserID, scrubIdentity(raw)); err != nil {
			report.Errors = append(report.Errors, importErr("health", i, raw, err))
			continue
		}
		report.CreatedHealth++
	}
	for i, raw := range env.Breeding {
		s.restoreAttachments(ctx, ownerUserID, raw)
		if _, err := s.breeding.Create(ctx, ownerUserID, scrubIdentity(raw)); err != nil {
			report.Errors = append(report.Errors, importErr("breeding", i, raw, err))
			continue
		}
		report.CreatedBreeding++
	}

	return report
}

// restoreAttachments reescribe la lista "attachments" de un registro crudo
// para que toda referencia apunte al storage del importador.
func (s *Service) restoreAttachments(ctx context.Context, ownerUserID string, raw map[string]any) {
	v, ok := raw["attachments"]
	if !ok || v == nil || s.blobs == nil {
		return
	}
	items, ok := v.([]any)
	if !ok {
		return
	}

	for _, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}
		name, _ := m["name"].(string)
		if name == "" {
			name = "attachment"
		}

		if dataURL, _ := m["dataUrl"].(string); dataURL != "" {
			mime, data, err := attachments.DecodeDataURL(dataURL)
			if err != nil {
				s.log.Warn("dataUrl inválido en import, se descarta el binario", map[string]any{
					"name": name, "error": err.Error(),
				})
				delete(m, "dataUrl")
				continue
			}
			info, err := s.blobs.Put(ctx, ownerUserID, name, bytes.NewReader(data), mime)
			if err != nil {
				s.log.Warn("no se pudo rehidratar attachment", map[string]any{
					"name": name, "error": err.Error(),
				})
				delete(m, "dataUrl")
				continue
			}
			m["url"] = info.URL
			m["mimeType"] = info.ContentType
			delete(m, "dataUrl")
			continue
		}

		// Solo URL: intentar copiar el binario; si no, dejar la URL tal cual.
		u, _ := m["url"].(string)
		if u == "" {
			continue
		}
		if key := s.blobs.KeyFromURL(u); key != "" && strings.HasPrefix(key, ownerUserID+"/") {
			continue // ya vive en el storage del importador
		}
		data, mime, err := s.fetch.GetBytes(ctx, u)
		if err != nil {
			continue
		}
		info, err := s.blobs.Put(ctx, ownerUserID, name, bytes.NewReader(data), mime)
		if err != nil {
			continue
		}
		m["url"] = info.URL
		if mime != "" {
			m["mimeType"] = mime
		}
	}
}

// scrubIdentity quita los campos de identidad y auditoría del registro
// original: el service asigna id y timestamps nuevos al crear.
func scrubIdentity(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		switch k {
		case "id", "createdAt", "updatedAt":
			continue
		}
		out[k] = v
	}
	return out
}

func importErr(collection string, index int, raw map[string]any, err error) ImportError {
	id, _ := raw["id"].(string)
	return ImportError{
		Collection: collection,
		Index:      index,
		ID:         id,
		Reason:     err.Error(),
	}
}
