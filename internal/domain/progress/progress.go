package progress

// UserProgress is the per-user accumulated state. The display name is the
// only identifier; it lives as the key of the Map, not inside the record.
type UserProgress struct {
	Points int `json:"points"`
}

// Map holds the progress record for every known user name.
type Map map[string]UserProgress

// Settings holds the static per-dataset defaults for new users.
type Settings struct {
	DefaultPoints int `json:"defaultPoints" yaml:"defaultPoints"`
}

// Merge combines the dataset seed map with the locally persisted map.
// Local entries win for names present in both; seed entries without a local
// counterpart are retained. The merge runs once at startup — afterwards all
// mutations go through the merged map and the seed is never consulted again.
func Merge(seed, local Map) Map {
	merged := make(Map, len(seed)+len(local))
	for name, record := range seed {
		merged[name] = record
	}
	for name, record := range local {
		merged[name] = record
	}
	return merged
}

// Clone returns an independent copy of the map.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for name, record := range m {
		out[name] = record
	}
	return out
}
