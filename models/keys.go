package models

const (
	KdfPBKDF2 = "pbkdf2"
)

// KdfParams are the key-derivation parameters assigned to an account at
// registration time and disclosed by the server profile. They are inputs to
// master-key derivation, never secrets themselves.
type KdfParams struct {
	Type       string `json:"type"`
	Iterations int    `json:"iterations"`
}

// UserCryptoState is the per-account wrapped key material consumed by vault
// unlock: the KDF parameters, the user key wrapped with the master key, the
// private key wrapped with the user key, and each organization key wrapped
// for this user. It is persisted outside the sync core, in the account key
// store.
type UserCryptoState struct {
	Email            string            `json:"email"`
	Kdf              KdfParams         `json:"kdf"`
	UserKey          string            `json:"user_key"`
	PrivateKey       string            `json:"private_key,omitempty"`
	OrganizationKeys map[string]string `json:"organization_keys,omitempty"`
}

// Profile is the account section of a full-sync response. Organization
// entries carry the wrapped organization keys newly disclosed by the server.
type Profile struct {
	UserID        string         `json:"user_id"`
	Email         string         `json:"email"`
	Kdf           KdfParams      `json:"kdf"`
	UserKey       string         `json:"user_key,omitempty"`
	PrivateKey    string         `json:"private_key,omitempty"`
	Organizations []Organization `json:"organizations,omitempty"`
}

// Organization is an organization membership disclosed by the profile.
// Key is the organization symmetric key wrapped for this user; it may be
// empty when the membership has not been confirmed yet.
type Organization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Key  string `json:"key,omitempty"`
}
