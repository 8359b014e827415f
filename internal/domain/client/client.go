package client

// PersonalInfo mirrors the nested block of the backend's ClientReadOnlyDTO.
// Optional fields decode to empty values; display fallbacks belong to the
// rendering layer, not here.
type PersonalInfo struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Gender      string `json:"gender,omitempty"`
	Address     string `json:"address,omitempty"`
	CityName    string `json:"cityName,omitempty"`
}

type Client struct {
	ID           uint         `json:"id"`
	UUID         string       `json:"uuid"`
	PersonalInfo PersonalInfo `json:"personalInfo"`
	VAT          string       `json:"vat,omitempty"`
	Notes        string       `json:"notes,omitempty"`
	CreatedAt    string       `json:"createdAt,omitempty"`
	UpdatedAt    string       `json:"updatedAt,omitempty"`
}

// ReadOnlyDTO is the wire shape; it matches Client field for field today
// but is kept separate so the domain type can drift from the wire.
type ReadOnlyDTO struct {
	ID           uint         `json:"id"`
	UUID         string       `json:"uuid"`
	PersonalInfo PersonalInfo `json:"personalInfo"`
	VAT          string       `json:"vat"`
	Notes        string       `json:"notes"`
	CreatedAt    string       `json:"createdAt"`
	UpdatedAt    string       `json:"updatedAt"`
}

func FromBackend(dto ReadOnlyDTO) Client {
	return Client{
		ID:           dto.ID,
		UUID:         dto.UUID,
		PersonalInfo: dto.PersonalInfo,
		VAT:          dto.VAT,
		Notes:        dto.Notes,
		CreatedAt:    dto.CreatedAt,
		UpdatedAt:    dto.UpdatedAt,
	}
}

func FromBackendList(dtos []ReadOnlyDTO) []Client {
	out := make([]Client, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, FromBackend(dto))
	}
	return out
}

// FullName joins first and last name for list rows and search results.
func (c Client) FullName() string {
	if c.PersonalInfo.LastName == "" {
		return c.PersonalInfo.FirstName
	}
	return c.PersonalInfo.FirstName + " " + c.PersonalInfo.LastName
}

// SearchRow is the autocomplete projection the search endpoint returns.
type SearchRow struct {
	ID       uint   `json:"id"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

func SearchRows(clients []Client) []SearchRow {
	out := make([]SearchRow, 0, len(clients))
	for _, c := range clients {
		out = append(out, SearchRow{
			ID:       c.ID,
			FullName: c.FullName(),
			Phone:    c.PersonalInfo.Phone,
			Email:    c.PersonalInfo.Email,
		})
	}
	return out
}
