package registry

// Country is an ISO 3166-1 country record. Name is nil until a locale
// resolves it; a resolved empty name is kept.
type Country struct {
	Alpha2  string  `json:"alpha_2" yaml:"alpha_2"`
	Alpha3  string  `json:"alpha_3" yaml:"alpha_3"`
	Numeric string  `json:"numeric" yaml:"numeric"`
	Name    *string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Subdivision is an ISO 3166-2 subdivision record. A Name present in the meta
// file counts as resolved and is never replaced by a locale.
type Subdivision struct {
	Code string  `json:"code" yaml:"code"`
	Type string  `json:"type" yaml:"type"`
	Name *string `json:"name,omitempty" yaml:"name,omitempty"`
}
