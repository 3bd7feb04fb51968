package models

// SyncResponse is the full vault payload returned by the server for one
// account: the profile plus every entity collection in ciphertext form.
type SyncResponse struct {
	Profile     Profile      `json:"profile"`
	Folders     []Folder     `json:"folders"`
	Collections []Collection `json:"collections"`
	Items       []Item       `json:"items"`
	Sends       []Send       `json:"sends"`
}

// CachePayload is the slice of a SyncResponse that gets mirrored wholesale
// into the local cache store. Sends are not cached; they are republished on
// every sync.
type CachePayload struct {
	Items       []Item
	Folders     []Folder
	Collections []Collection
}
