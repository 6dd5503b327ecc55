package models

import "time"

// Product represents a tanker truck in the catalog
type Product struct {
	ID          string       `db:"id" json:"id"`
	Name        string       `db:"name" json:"name"`
	Capacity    int          `db:"capacity" json:"capacity"`
	Price       int64        `db:"price" json:"price"`
	Description string       `db:"description" json:"description"`
	Specs       ProductSpecs `db:"specs" json:"specs"`
	Category    string       `db:"category" json:"category"`
	Image       string       `db:"image" json:"image"`
	InStock     bool         `db:"in_stock" json:"inStock"`
}

// ProductSpecs groups the technical specification of a product
type ProductSpecs struct {
	Material string `db:"material" json:"material"`
	PumpType string `db:"pump_type" json:"pumpType"`
	Chassis  string `db:"chassis" json:"chassis"`
	Weight   int    `db:"weight" json:"weight"`
}

// ProductFilter narrows a product listing. Empty Category or "all" matches every category.
type ProductFilter struct {
	Category    string
	InStockOnly bool
}

// Matches reports whether p passes the filter
func (f ProductFilter) Matches(p Product) bool {
	if f.Category != "" && f.Category != CategoryAll && p.Category != f.Category {
		return false
	}
	if f.InStockOnly && !p.InStock {
		return false
	}
	return true
}

// ProductPatch carries a partial product update; nil fields are left untouched
type ProductPatch struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Capacity    *int    `json:"capacity" binding:"omitempty,gt=0"`
	Price       *int64  `json:"price" binding:"omitempty,gte=0"`
	Description *string `json:"description"`
	Material    *string `json:"material"`
	PumpType    *string `json:"pumpType"`
	Chassis     *string `json:"chassis"`
	Weight      *int    `json:"weight" binding:"omitempty,gt=0"`
	Category    *string `json:"category" binding:"omitempty,oneof=light medium heavy"`
	Image       *string `json:"image"`
	InStock     *bool   `json:"inStock"`
}

// IsEmpty reports whether the patch carries no fields
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Capacity == nil && p.Price == nil && p.Description == nil &&
		p.Material == nil && p.PumpType == nil && p.Chassis == nil && p.Weight == nil &&
		p.Category == nil && p.Image == nil && p.InStock == nil
}

// Inquiry represents a customer inquiry about a product
type Inquiry struct {
	ID          string    `db:"id" json:"id"`
	ProductID   string    `db:"product_id" json:"productId"`
	ProductName string    `db:"product_name" json:"productName"`
	Name        string    `db:"name" json:"name"`
	Email       string    `db:"email" json:"email"`
	Phone       *string   `db:"phone" json:"phone,omitempty"`
	Message     *string   `db:"message" json:"message,omitempty"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// TodoItem is an entry of the in-memory todo demo
type TodoItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// Stats is the admin dashboard summary
type Stats struct {
	ProductCount    int `db:"products" json:"products"`
	InquiryCount    int `db:"inquiries" json:"inquiries"`
	NewInquiryCount int `db:"new_inquiries" json:"newInquiries"`
}

// Product categories
const (
	CategoryAll    = "all"
	CategoryLight  = "light"
	CategoryMedium = "medium"
	CategoryHeavy  = "heavy"
)

// Inquiry statuses
const (
	InquiryStatusNew        = "new"
	InquiryStatusInProgress = "in_progress"
	InquiryStatusCompleted  = "completed"
	InquiryStatusArchived   = "archived"
)

// DefaultProductImage is used when a product is created without an image
const DefaultProductImage = "/images/tanker-placeholder.jpg"

// IsValidCategory reports whether c is one of the concrete product categories
func IsValidCategory(c string) bool {
	switch c {
	case CategoryLight, CategoryMedium, CategoryHeavy:
		return true
	}
	return false
}

// IsValidInquiryStatus reports whether s is a known inquiry status
func IsValidInquiryStatus(s string) bool {
	switch s {
	case InquiryStatusNew, InquiryStatusInProgress, InquiryStatusCompleted, InquiryStatusArchived:
		return true
	}
	return false
}
