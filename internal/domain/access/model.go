package access

// Entry is a recorded access flag for a (piece, principal) pair. An absent
// entry is distinct from an entry recorded as false; both read as no access.
type Entry struct {
	ArtID     int64  `json:"art_id"`
	Principal string `json:"principal"`
	Granted   bool   `json:"granted"`
}
