// Package redis keeps carts in Redis so sessions survive process restarts
// and can be shared across storefront instances.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/strideshop/storefront/internal/cart/domain"
)

const keyPrefix = "stride:cart:"

type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

type lineDoc struct {
	ProductID string          `json:"product_id"`
	Size      int             `json:"size"`
	Color     string          `json:"color"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
}

type cartDoc struct {
	Lines []lineDoc `json:"lines"`
}

func (s *Store) Get(ctx context.Context, sessionID string) (domain.Cart, error) {
	b, err := s.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		// Unknown session reads as the empty cart.
		return domain.Cart{}, nil
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("redis get cart: %w", err)
	}

	var doc cartDoc
	if err := json.Unmarshal(b, &doc); err != nil {
		return domain.Cart{}, fmt.Errorf("decode cart: %w", err)
	}

	cart := domain.Cart{Lines: make([]domain.LineItem, 0, len(doc.Lines))}
	for _, l := range doc.Lines {
		cart.Lines = append(cart.Lines, domain.LineItem{
			LineKey:  domain.LineKey{ProductID: l.ProductID, Size: l.Size, Color: l.Color},
			Name:     l.Name,
			Price:    l.Price,
			Image:    l.Image,
			Quantity: l.Quantity,
		})
	}
	return cart, nil
}

func (s *Store) Save(ctx context.Context, sessionID string, cart domain.Cart) error {
	doc := cartDoc{Lines: make([]lineDoc, 0, len(cart.Lines))}
	for _, l := range cart.Lines {
		doc.Lines = append(doc.Lines, lineDoc{
			ProductID: l.ProductID,
			Size:      l.Size,
			Color:     l.Color,
			Name:      l.Name,
			Price:     l.Price,
			Image:     l.Image,
			Quantity:  l.Quantity,
		})
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}

	if err := s.client.Set(ctx, keyPrefix+sessionID, b, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis save cart: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("redis delete cart: %w", err)
	}
	return nil
}
