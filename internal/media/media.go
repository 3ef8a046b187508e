// Package media routes uploaded files to the remote media host and
// models the closed set of file kinds a submission may carry.
package media

import "context"

// Kind is the closed variant set of accepted submission files. Routing
// and per-submission counting rules hang off the kind, not off raw MIME
// strings.
type Kind int

const (
	KindImage Kind = iota
	KindPDF
)

// Accepted media types.
const (
	TypePNG  = "image/png"
	TypeJPEG = "image/jpeg"
	TypePDF  = "application/pdf"
)

// KindOf maps a declared media type onto a Kind. ok is false for types
// outside the accepted set.
func KindOf(mediaType string) (Kind, bool) {
	switch mediaType {
	case TypePNG, TypeJPEG:
		return KindImage, true
	case TypePDF:
		return KindPDF, true
	default:
		return 0, false
	}
}

// Descriptor is an uploaded file before it reaches the store: raw
// content plus what the transport layer declared about it.
type Descriptor struct {
	Content   []byte
	MediaType string
	FileName  string
}

// Kind panics on a descriptor whose media type was never validated;
// callers validate via KindOf first.
func (d Descriptor) Kind() Kind {
	k, ok := KindOf(d.MediaType)
	if !ok {
		panic("media: descriptor with unvalidated media type " + d.MediaType)
	}
	return k
}

// StoredFile is the store's durable answer to one upload.
type StoredFile struct {
	URL      string
	PublicID string
	Format   string
}

// UploadParams carry per-upload routing options.
type UploadParams struct {
	Folder   string
	PublicID string
}

// Store is the external media host. Upload either fully succeeds and
// yields a reference, or fails; Delete undoes a prior upload.
type Store interface {
	Upload(ctx context.Context, content []byte, params UploadParams) (*StoredFile, error)
	Delete(ctx context.Context, publicID string) error
}
