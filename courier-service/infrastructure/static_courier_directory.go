package infrastructure

import (
	"context"
	"sync/atomic"

	"github.com/bookstore/fulfillment-saga/courier-service/domain"
)

var _ domain.CourierDirectory = (*StaticCourierDirectory)(nil)

// StaticCourierDirectory hands out a fixed list of couriers round-robin
type StaticCourierDirectory struct {
	couriers []domain.Courier
	next     atomic.Uint64
}

// NewStaticCourierDirectory builds a directory from courier contacts
func NewStaticCourierDirectory(contacts ...string) *StaticCourierDirectory {
	couriers := make([]domain.Courier, 0, len(contacts))
	for _, contact := range contacts {
		if contact == "" {
			continue
		}
		couriers = append(couriers, domain.Courier{ID: contact, Contact: contact})
	}
	return &StaticCourierDirectory{couriers: couriers}
}

func (d *StaticCourierDirectory) Assign(ctx context.Context, bookID string) (*domain.Courier, error) {
	if len(d.couriers) == 0 {
		return nil, domain.ErrNoCouriers
	}

	i := (d.next.Add(1) - 1) % uint64(len(d.couriers))
	courier := d.couriers[i]
	return &courier, nil
}
