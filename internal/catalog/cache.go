package catalog

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"bookcatalog/pkg/domain"
)

// User-facing failure messages for the shared error slot.
const (
	loadFailedMessage   = "Failed to fetch books. Please try again later."
	addFailedMessage    = "Failed to add book. Please check your input and try again."
	updateFailedMessage = "Failed to update book. Please check your input and try again."
	removeFailedMessage = "Failed to delete book. Please try again later."
)

// InventoryClient is the slice of the inventory service the cache needs.
type InventoryClient interface {
	List(token string) ([]domain.Book, error)
	Add(token string, draft domain.Book) (domain.Book, error)
	Update(token string, book domain.Book) error
	Remove(token string, id int64) error
}

// TokenSource supplies the bearer token for inventory calls. The cache
// only reads session state, it never mutates it.
type TokenSource interface {
	Token() string
}

// Cache mirrors the remote book inventory in memory. Every mutation
// performs one remote call and reconciles the mirror only after the
// response arrives. Operations are unsynchronized with respect to each
// other: concurrent mutations on the same id resolve last-response-wins.
type Cache struct {
	mu      sync.RWMutex
	inv     InventoryClient
	tokens  TokenSource
	books   map[int64]domain.Book
	lastErr string
	loads   singleflight.Group
}

// New constructs an empty cache.
func New(inv InventoryClient, tokens TokenSource) *Cache {
	return &Cache{
		inv:    inv,
		tokens: tokens,
		books:  make(map[int64]domain.Book),
	}
}

// Load fetches the full inventory and replaces the mirror wholesale.
// Concurrent loads are collapsed into one fetch; all callers observe the
// same result. On failure the mirror is left as it was and the error
// slot is set.
func (c *Cache) Load() error {
	_, err, _ := c.loads.Do("load", func() (any, error) {
		books, err := c.inv.List(c.tokens.Token())
		c.mu.Lock()
		defer c.mu.Unlock()
		if err != nil {
			slog.Error("inventory load failed", "err", err)
			c.lastErr = loadFailedMessage
			return nil, domain.NewTransportError(loadFailedMessage)
		}
		next := make(map[int64]domain.Book, len(books))
		for _, b := range books {
			next[b.ID] = b
		}
		c.books = next
		c.lastErr = ""
		slog.Info("inventory loaded", "count", len(next))
		return nil, nil
	})
	return err
}

// Add creates a book from a draft. On success the entity returned by the
// server, carrying its assigned id, is inserted; the draft itself never
// enters the mirror.
func (c *Cache) Add(draft domain.Book) error {
	if !draft.Draft() {
		return domain.NewValidationError(map[string]string{"id": "a draft must not carry an id"})
	}
	op := uuid.NewString()
	created, err := c.inv.Add(c.tokens.Token(), draft)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		slog.Error("inventory add failed", "op", op, "title", draft.Title, "err", err)
		c.lastErr = addFailedMessage
		return domain.NewTransportError(addFailedMessage)
	}
	c.books[created.ID] = created
	c.lastErr = ""
	slog.Info("book added", "op", op, "id", created.ID)
	return nil
}

// Update sends the book to the server and, on success, replaces the
// matching mirror entry with the client-supplied value. The server is not
// required to echo a body. An entry that no longer exists locally is not
// resurrected.
func (c *Cache) Update(book domain.Book) error {
	if book.Draft() {
		return domain.NewValidationError(map[string]string{"id": "book id is required"})
	}
	err := c.inv.Update(c.tokens.Token(), book)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		slog.Error("inventory update failed", "id", book.ID, "err", err)
		c.lastErr = updateFailedMessage
		return domain.NewTransportError(updateFailedMessage)
	}
	if _, ok := c.books[book.ID]; ok {
		c.books[book.ID] = book
	}
	c.lastErr = ""
	return nil
}

// Remove deletes the book with the given id. The mirror entry is dropped
// only after the server confirms.
func (c *Cache) Remove(id int64) error {
	err := c.inv.Remove(c.tokens.Token(), id)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		slog.Error("inventory delete failed", "id", id, "err", err)
		c.lastErr = removeFailedMessage
		return domain.NewTransportError(removeFailedMessage)
	}
	delete(c.books, id)
	c.lastErr = ""
	return nil
}

// Books returns a snapshot of the mirror, sorted by id.
func (c *Cache) Books() []domain.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Book, 0, len(c.books))
	for _, b := range c.books {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// LastError returns the shared error slot: the message of the most
// recently failed operation, cleared by any subsequent success. Once
// operations race it does not indicate which of them failed.
func (c *Cache) LastError() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}
