package models

// PeakKeyPrefix prefixes every stored peak key.
const PeakKeyPrefix = "peak:"

// Peak is the highest concurrent-player value ever observed for an entity.
type Peak struct {
	Key   string `json:"key" db:"peak_key"`
	Value int64  `json:"value" db:"peak_value"`
}

// PeakKey returns the storage key for an entity identifier.
func PeakKey(id string) string {
	return PeakKeyPrefix + id
}
