package events

import "time"

const CompanyAddedTopic = "registry.company.added.v1"

const CompanyAddedEventType = "company_added"

type CompanyAddedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	CompanyID  int64     `json:"company_id"`
	Name       string    `json:"name"`
	INN        string    `json:"inn"`
	OGRN       string    `json:"ogrn"`
	Reestr     bool      `json:"reestr"`
	OccurredAt time.Time `json:"occurred_at"`
}
