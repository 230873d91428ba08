package domain

import "github.com/shopspring/decimal"

type Category string

const (
	CategorySlides   Category = "slides"
	CategorySneakers Category = "sneakers"
	CategorySandals  Category = "sandals"
	CategoryFormal   Category = "formal"
	CategoryCasual   Category = "casual"
)

func (c Category) Valid() bool {
	switch c {
	case CategorySlides, CategorySneakers, CategorySandals, CategoryFormal, CategoryCasual:
		return true
	}
	return false
}

type Product struct {
	ID           string
	Name         string
	Category     Category
	Price        decimal.Decimal
	Rating       float64
	Image        string
	Colors       []string
	Sizes        []int
	Description  string
	Materials    string
	IsBestSeller bool
}

func (p Product) HasSize(size int) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

func (p Product) HasColor(color string) bool {
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}
	return false
}
