package models

import "time"

// Folder groups items inside a single user's vault. Name is ciphertext.
type Folder struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	RevisionDate time.Time `json:"revision_date"`
}

// FolderView is the decrypted projection of a Folder.
type FolderView struct {
	ID   string
	Name string
}

// Collection is an organization-scoped grouping of shared items.
// Name is ciphertext under the organization key.
type Collection struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organization_id"`
	Name           string `json:"name"`
	ReadOnly       bool   `json:"read_only"`
}

// CollectionView is the decrypted projection of a Collection.
type CollectionView struct {
	ID             string
	OrganizationID string
	Name           string
	ReadOnly       bool
}

// Send is a separately encrypted shareable artifact, distinct from items.
type Send struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	Name         string     `json:"name"`
	Data         string     `json:"data,omitempty"`
	Key          string     `json:"key"`
	DeletionDate *time.Time `json:"deletion_date,omitempty"`
}

// SendView is the decrypted projection of a Send.
type SendView struct {
	ID           string
	Name         string
	Data         string
	DeletionDate *time.Time
}

// VaultData joins the three cache-backed decrypted collections into the
// combined view the UI binds to.
type VaultData struct {
	Items       []ItemView
	Folders     []FolderView
	Collections []CollectionView
}
