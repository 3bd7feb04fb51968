package models

import "time"

const (
	ItemTypeLogin      = "login"
	ItemTypeSecureNote = "secure_note"
	ItemTypeCard       = "card"
	ItemTypeIdentity   = "identity"
)

// Item is the ciphertext form of a vault entry as stored on the server and
// mirrored in the local cache. All string payload fields hold opaque encrypted
// blobs produced by the crypto gateway.
//
// Key is the wrapped per-item symmetric key. A nil Key marks a legacy item
// that predates per-item keying and must be migrated before any attachment
// operation can run against it.
type Item struct {
	ID             string       `json:"id"`
	UserID         string       `json:"user_id"`
	OrganizationID string       `json:"organization_id,omitempty"`
	FolderID       string       `json:"folder_id,omitempty"`
	Type           string       `json:"type"`
	Name           string       `json:"name"`
	Notes          string       `json:"notes,omitempty"`
	Data           string       `json:"data,omitempty"`
	Key            *string      `json:"key,omitempty"`
	Attachments    []Attachment `json:"attachments,omitempty"`
	CollectionIDs  []string     `json:"collection_ids,omitempty"`
	DeletedAt      *time.Time   `json:"deleted_at,omitempty"`
	RevisionDate   time.Time    `json:"revision_date"`
}

// ItemView is the plaintext projection of an Item. It is derived on demand by
// the crypto gateway and never persisted; the only long-lived holders are the
// observable collection states consumed by the UI.
//
// Key carries the decrypted per-item key (base64) so the view can be
// re-encrypted without another cache round trip. Nil mirrors a legacy,
// not-yet-migrated ciphertext.
type ItemView struct {
	ID             string
	UserID         string
	OrganizationID string
	FolderID       string
	Type           string
	Name           string
	Notes          string
	Data           string
	Key            *string
	Attachments    []AttachmentView
	CollectionIDs  []string
	DeletedAt      *time.Time
}

// Attachment is the ciphertext-side descriptor of an item attachment.
// Key is the wrapped per-attachment key; nil marks a legacy unkeyed
// attachment that must be migrated before further use. URL is populated
// lazily by the server and may be empty until metadata is fetched.
type Attachment struct {
	ID       string  `json:"id"`
	Key      *string `json:"key,omitempty"`
	URL      string  `json:"url,omitempty"`
	FileName string  `json:"file_name"`
	Size     int64   `json:"size"`
}

// AttachmentView is the decrypted projection of an Attachment.
type AttachmentView struct {
	ID       string
	Key      *string
	URL      string
	FileName string
	Size     int64
}

// AttachmentRequest describes a new attachment to the server before the
// ciphertext bytes are uploaded.
type AttachmentRequest struct {
	FileName string  `json:"file_name"`
	Key      *string `json:"key,omitempty"`
	Size     int64   `json:"size"`
}

// AttachmentUpload is the server response to an attachment creation request:
// the registered descriptor, the item revision that now references it, and
// the URL the ciphertext bytes must be uploaded to.
type AttachmentUpload struct {
	Attachment Attachment `json:"attachment"`
	Item       Item       `json:"cipher"`
	UploadURL  string     `json:"upload_url"`
}
