package company

// Company is a registry entry. The enrichment block is only filled by the
// extended (tax-id) lookup.
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

// RegistryFlag renders the registry flag the way the table and export show it
func RegistryFlag(inReestr bool) string {
	if inReestr {
		return "Да"
	}
	return "Нет"
}
