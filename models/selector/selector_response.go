package selector

// SelectorResponse is the flattened shoe-selector quiz submission.
type SelectorResponse struct {
	ID              string `json:"id,omitempty"`
	CustomerID      string `json:"customer_id,omitempty"`
	RunningStyle    string `json:"running_style,omitempty"`
	ShoePreference  string `json:"shoe_preference,omitempty"`
	PricePoint      string `json:"price_point,omitempty"`
	Gait            string `json:"gait,omitempty"`
	Notes           string `json:"notes,omitempty"`
	ShoeSize        string `json:"shoe_size,omitempty"`
	Pronation       string `json:"pronation,omitempty"`
	FootWidth       string `json:"foot_width,omitempty"`
	ArchType        string `json:"arch_type,omitempty"`
	ExperienceLevel string `json:"experience_level,omitempty"`
	PreferredBrands string `json:"preferred_brands,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
}
