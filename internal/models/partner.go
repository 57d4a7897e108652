package models

// Partner is a counterpart company the agency works with. EntryDates is
// always an array in storage, never a scalar.
type Partner struct {
	ID          string   `json:"id"`
	CompanyName string   `json:"companyName"`
	Country     string   `json:"country"`
	Phone       string   `json:"phone"`
	EntryDates  []string `json:"entryDates"`
	ShortDesc   string   `json:"shortDesc"`
	FullDesc    string   `json:"fullDesc"`
	Notes       string   `json:"notes"`
	CreatedAt   string   `json:"createdAt"`
	CreatedBy   string   `json:"createdBy"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
	UpdatedBy   string   `json:"updatedBy,omitempty"`
}

// PartnerInput is the payload for registering a partner.
type PartnerInput struct {
	CompanyName string   `json:"companyName" validate:"required"`
	Country     string   `json:"country"`
	Phone       string   `json:"phone"`
	EntryDates  []string `json:"entryDates"`
	ShortDesc   string   `json:"shortDesc"`
	FullDesc    string   `json:"fullDesc"`
	Notes       string   `json:"notes"`
}

// PartnerUpdate carries partial partner fields; nil means "leave unchanged".
// The id is immutable and not part of the update set.
type PartnerUpdate struct {
	CompanyName *string   `json:"companyName"`
	Country     *string   `json:"country"`
	Phone       *string   `json:"phone"`
	EntryDates  *[]string `json:"entryDates"`
	ShortDesc   *string   `json:"shortDesc"`
	FullDesc    *string   `json:"fullDesc"`
	Notes       *string   `json:"notes"`
}
