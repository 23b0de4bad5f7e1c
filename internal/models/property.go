package models

type Property struct {
	ID          string         `gorm:"type:varchar(32);primaryKey" db:"id" json:"id"`
	Title       string         `gorm:"type:text;not null" db:"title" json:"title"`
	Address     string         `gorm:"type:text" db:"address" json:"address"`
	Price       float64        `gorm:"type:decimal(14,2);not null" db:"price" json:"price"`
	Type        PropertyType   `gorm:"type:varchar(20);not null;index" db:"type" json:"type"`
	Status      PropertyStatus `gorm:"type:varchar(20);not null;index" db:"status" json:"status"`
	Beds        int            `gorm:"type:int" db:"beds" json:"beds"`
	Baths       float64        `gorm:"type:decimal(4,1)" db:"baths" json:"baths"`
	Sqft        int            `gorm:"type:int" db:"sqft" json:"sqft"`
	ImageURL    string         `gorm:"type:text" db:"image_url" json:"imageUrl"`
	Description string         `gorm:"type:text" db:"description" json:"description"`
	// Seq は登録順。一覧はこの順で返す
	Seq int `gorm:"not null;default:0;index" db:"seq" json:"-"`
}

// PropertyType は売買か賃貸か
type PropertyType string

const (
	PropertyTypeSale   PropertyType = "Sale"
	PropertyTypeRental PropertyType = "Rental"
)

// PropertyStatus は物件の掲載状況
type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "Available"
	PropertyStatusRented    PropertyStatus = "Rented"
	PropertyStatusSold      PropertyStatus = "Sold"
	PropertyStatusPending   PropertyStatus = "Pending"
)

// PropertyStatuses lists every status in display order.
var PropertyStatuses = []PropertyStatus{
	PropertyStatusAvailable,
	PropertyStatusRented,
	PropertyStatusSold,
	PropertyStatusPending,
}

// TableName はテーブル名を明示的に指定
func (Property) TableName() string {
	return "properties"
}

// IsSale reports whether the listing is for sale
func (p *Property) IsSale() bool {
	return p.Type == PropertyTypeSale
}

// IsAvailableRental reports whether the listing is a rental still on the market
func (p *Property) IsAvailableRental() bool {
	return p.Type == PropertyTypeRental && p.Status == PropertyStatusAvailable
}
