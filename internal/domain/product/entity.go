package product

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCategory = errors.New("invalid product category")
	ErrEmptyName       = errors.New("product name required")
	ErrNegativeStock   = errors.New("stock cannot be negative")
	ErrNegativePrice   = errors.New("unit price cannot be negative")
)

type Category string

const (
	CategoryBeverage Category = "beverage"
	CategoryBiscuit  Category = "biscuit"
	CategoryToy      Category = "toy"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryBeverage, CategoryBiscuit, CategoryToy:
		return true
	default:
		return false
	}
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// Product is a retail item sold alongside tickets. Stock is guarded at the
// persistence boundary with a conditional decrement; the entity only
// validates construction.
type Product struct {
	id        uuid.UUID
	name      string
	category  Category
	unitPrice decimal.Decimal
	stock     int
}

func NewProduct(id uuid.UUID, name string, category Category, unitPrice decimal.Decimal, stock int) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	if unitPrice.IsNegative() {
		return nil, ErrNegativePrice
	}
	if stock < 0 {
		return nil, ErrNegativeStock
	}

	return &Product{
		id:        id,
		name:      name,
		category:  category,
		unitPrice: unitPrice,
		stock:     stock,
	}, nil
}

func (p *Product) ID() uuid.UUID              { return p.id }
func (p *Product) Name() string               { return p.name }
func (p *Product) Category() Category         { return p.category }
func (p *Product) UnitPrice() decimal.Decimal { return p.unitPrice }
func (p *Product) Stock() int                 { return p.stock }

// HasStock reports whether qty units can currently be sold. The check is
// advisory only; the authoritative guard is the atomic decrement in storage.
func (p *Product) HasStock(qty int) bool {
	return qty > 0 && p.stock >= qty
}
