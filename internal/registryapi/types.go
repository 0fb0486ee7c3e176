package registryapi

import "encoding/json"

// Company is the wire representation returned by the registry API.
// The basic endpoint fills the first block of fields, the extended
// (rusprofile) endpoint fills the rest.
type Company struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	INN     string `json:"inn"`
	OGRN    string `json:"ogrn"`
	KPP     string `json:"kpp,omitempty"`
	Address string `json:"address,omitempty"`
	Status  string `json:"status,omitempty"`
	Reestr  bool   `json:"reestr"`

	RegistrationDate  string `json:"registration_date,omitempty"`
	AuthorizedCapital string `json:"authorized_capital,omitempty"`
	MainActivity      string `json:"main_activity,omitempty"`
	TaxesValue        string `json:"taxes_value,omitempty"`
	TaxesFull         string `json:"taxes_full,omitempty"`
	Source            string `json:"source,omitempty"`
	ParsedAt          string `json:"parsed_at,omitempty"`
}

// UnmarshalJSON accepts the extended endpoint's "in_reestr" spelling of
// the registry flag. Both names carry the same boolean.
func (c *Company) UnmarshalJSON(data []byte) error {
	type plain Company
	aux := struct {
		*plain
		InReestr *bool `json:"in_reestr"`
	}{plain: (*plain)(c)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.InReestr != nil {
		c.Reestr = *aux.InReestr
	}
	return nil
}

// CreateCompanyRequest is the body of POST /companies
type CreateCompanyRequest struct {
	Name   string `json:"name"`
	INN    string `json:"inn"`
	OGRN   string `json:"ogrn"`
	Reestr bool   `json:"reestr"`
}

type listEnvelope struct {
	Companies *[]Company `json:"companies"`
}

// errorBody covers FastAPI's {"detail": "..."} and {"message": "..."} bodies
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}
