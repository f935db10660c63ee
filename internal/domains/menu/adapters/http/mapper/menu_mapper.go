package mapper

import "github.com/Apurer/bites-ordering-api/internal/domains/menu/domain"

// MenuItem is the transport shape of a menu entry. Price is a decimal string.
type MenuItem struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Image    string `json:"image,omitempty"`
	Category string `json:"category,omitempty"`
}

func FromDomainItem(item domain.MenuItem) MenuItem {
	return MenuItem{
		Name:     item.Name,
		Price:    item.Price.StringFixed(2),
		Image:    item.ImageRef,
		Category: item.Category,
	}
}

func FromDomainItems(items []domain.MenuItem) []MenuItem {
	out := make([]MenuItem, 0, len(items))
	for _, item := range items {
		out = append(out, FromDomainItem(item))
	}
	return out
}
