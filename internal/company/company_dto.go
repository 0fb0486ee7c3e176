package company

const (
	DefaultListLimit = 100
	MaxListLimit     = 500
)

type ListQuery struct {
	Skip  int `form:"skip" binding:"min=0"`
	Limit int `form:"limit" binding:"min=0,max=500"`
}

type ListResult struct {
	Companies []Company `json:"companies"`
	Skip      int       `json:"skip"`
	Limit     int       `json:"limit"`
}

// CreateCompanyRequest is shared by the JSON API and the table's add form
type CreateCompanyRequest struct {
	Name   string `json:"name" form:"name" binding:"required"`
	INN    string `json:"inn" form:"inn" binding:"required"`
	OGRN   string `json:"ogrn" form:"ogrn" binding:"required"`
	Reestr bool   `json:"reestr" form:"reestr"`
}
