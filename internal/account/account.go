package account

import "context"

// Account is the persistent record for a logged-in Steam user.
// DisplayName may be empty when profile resolution failed; the next
// successful login corrects it.
type Account struct {
	SteamID     string `json:"steamId"`
	DisplayName string `json:"displayName"`
}

// Store persists accounts keyed by steam id with full-replacement
// semantics: a write replaces every field of any existing record,
// never merges.
type Store interface {
	Upsert(ctx context.Context, acc Account) error
}
