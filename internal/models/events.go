package models

import "time"

// Event types
const (
	EventTypeInquirySubmitted     = "INQUIRY_SUBMITTED"
	EventTypeInquiryStatusChanged = "INQUIRY_STATUS_CHANGED"
	EventTypeProductCreated       = "PRODUCT_CREATED"
	EventTypeProductUpdated       = "PRODUCT_UPDATED"
	EventTypeProductDeleted       = "PRODUCT_DELETED"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// InquirySubmittedEvent published when a customer inquiry is stored
type InquirySubmittedEvent struct {
	BaseEvent
	InquiryID   string `json:"inquiry_id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
}

// InquiryStatusChangedEvent published when an admin moves an inquiry
type InquiryStatusChangedEvent struct {
	BaseEvent
	InquiryID string `json:"inquiry_id"`
	Status    string `json:"status"`
}

// ProductChangedEvent published on product create, update and delete
type ProductChangedEvent struct {
	BaseEvent
	ProductID string `json:"product_id"`
	Name      string `json:"name,omitempty"`
}
