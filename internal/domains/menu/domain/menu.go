package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// AllCategories is the pseudo-category that disables filtering.
const AllCategories = "All"

var (
	ErrEmptyItemName     = errors.New("menu item name is required")
	ErrDuplicateItemName = errors.New("menu item name must be unique")
	ErrNegativePrice     = errors.New("menu item price must not be negative")
)

// MenuItem is a single dish offered by the active menu.
type MenuItem struct {
	Name     string
	Price    decimal.Decimal
	ImageRef string
	Category string
}

// Menu is the immutable catalog loaded at startup.
type Menu struct {
	items  []MenuItem
	byName map[string]int
}

// NewMenu validates the items and builds a Menu preserving their order.
func NewMenu(items []MenuItem) (*Menu, error) {
	m := &Menu{
		items:  make([]MenuItem, 0, len(items)),
		byName: make(map[string]int, len(items)),
	}
	for _, item := range items {
		item.Name = strings.TrimSpace(item.Name)
		item.Category = strings.TrimSpace(item.Category)
		if item.Name == "" {
			return nil, ErrEmptyItemName
		}
		if item.Price.IsNegative() {
			return nil, ErrNegativePrice
		}
		if _, exists := m.byName[item.Name]; exists {
			return nil, ErrDuplicateItemName
		}
		m.byName[item.Name] = len(m.items)
		m.items = append(m.items, item)
	}
	return m, nil
}

// Items returns a copy of every menu item.
func (m *Menu) Items() []MenuItem {
	out := make([]MenuItem, len(m.items))
	copy(out, m.items)
	return out
}

// Filter returns items of the given category; empty or "All" returns everything.
func (m *Menu) Filter(category string) []MenuItem {
	category = strings.TrimSpace(category)
	if category == "" || category == AllCategories {
		return m.Items()
	}
	out := []MenuItem{}
	for _, item := range m.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// Categories lists distinct categories in first-seen order.
func (m *Menu) Categories() []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, item := range m.items {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		out = append(out, item.Category)
	}
	return out
}

// Lookup finds an item by exact name.
func (m *Menu) Lookup(name string) (MenuItem, bool) {
	idx, ok := m.byName[strings.TrimSpace(name)]
	if !ok {
		return MenuItem{}, false
	}
	return m.items[idx], true
}

// Len reports the number of items.
func (m *Menu) Len() int {
	return len(m.items)
}
