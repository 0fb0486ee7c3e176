package demostore

import "go-reestr/internal/company"

// SampleCompanies is loaded into an empty store on startup
func SampleCompanies() []company.Company {
	return []company.Company{
		{ID: 1, Name: "ООО Ромашка", INN: "7701234567", OGRN: "1027700000001", Reestr: true},
		{ID: 2, Name: "АО Лютик", INN: "7802345678", OGRN: "1027800000002", Reestr: false},
		{ID: 3, Name: "ООО Василёк", INN: "5403456789", OGRN: "1025400000003", Reestr: true},
		{ID: 4, Name: "ПАО Подсолнух", INN: "6604567890", OGRN: "1026600000004", Reestr: false},
		{ID: 5, Name: "ООО Колокольчик", INN: "1605678901", OGRN: "1021600000005", Reestr: true},
	}
}
