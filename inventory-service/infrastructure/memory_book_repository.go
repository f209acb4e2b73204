package infrastructure

import (
	"context"
	"sync"

	"github.com/bookstore/fulfillment-saga/inventory-service/domain"
)

// MemoryBookRepository keeps books in process memory. Used for local runs and tests.
type MemoryBookRepository struct {
	mu    sync.RWMutex
	books map[string]domain.Book
}

// NewMemoryBookRepository creates a repository seeded with the given books
func NewMemoryBookRepository(books ...domain.Book) *MemoryBookRepository {
	r := &MemoryBookRepository{books: make(map[string]domain.Book)}
	for _, b := range books {
		r.books[b.BookID] = b
	}
	return r
}

// Put inserts or replaces a book
func (r *MemoryBookRepository) Put(book domain.Book) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.books[book.BookID] = book
}

func (r *MemoryBookRepository) FindByID(ctx context.Context, bookID string) (*domain.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	book, ok := r.books[bookID]
	if !ok {
		return nil, nil
	}
	return &book, nil
}

func (r *MemoryBookRepository) DecrementQuantity(ctx context.Context, bookID string, quantity int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	book, ok := r.books[bookID]
	if !ok {
		return domain.ErrBookMissing
	}
	if book.Quantity < quantity {
		return domain.ErrInsufficientQuantity
	}
	book.Quantity -= quantity
	r.books[bookID] = book
	return nil
}

func (r *MemoryBookRepository) IncrementQuantity(ctx context.Context, bookID string, quantity int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	book, ok := r.books[bookID]
	if !ok {
		return domain.ErrBookMissing
	}
	book.Quantity += quantity
	r.books[bookID] = book
	return nil
}
