package blob

import (
	"context"
	"io"
)

// Store abstrae dónde viven los binarios de las fotos: filesystem local
// bajo un directorio por usuario, o un object store S3-compatible.
// Un request elige un backend y lo usa de forma consistente (la selección
// es función pura de la config presente, ver el factory en adapters/blobstore).
type Store interface {
	// Put persiste bytes bajo el namespace del owner y devuelve una URL
	// directamente usable por clientes. Un fallo de escritura se propaga:
	// el caller decide si salta el registro (import) o corta el request (upload).
	Put(ctx context.Context, ownerID, filename string, r io.Reader, contentType string) (Info, error)

	// Open devuelve el contenido de un objeto por su key (para inlinear
	// attachments durante el export).
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)

	// KeyFromURL mapea una URL emitida por este backend a su key interna,
	// o "" si la URL no es de este backend.
	KeyFromURL(u string) string
}

// Info describe un objeto recién escrito.
type Info struct {
	Key         string
	URL         string
	ContentType string
	Size        int64
}
