package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/quickmart/store-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	mu      sync.Mutex
	users   map[string]*domain.User
	seq     int
	findErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrDuplicateUsername
	}
	r.seq++
	clone := *user
	clone.ID = "u" + strconv.Itoa(r.seq)
	clone.CreatedAt = time.Now().UTC()
	r.users[clone.Username] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

type stubProductRepo struct {
	mu       sync.Mutex
	products map[string]domain.Product
	order    []string
	seq      int
	listErr  error
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]domain.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	clone := *p
	clone.ID = "p" + strconv.Itoa(r.seq)
	r.products[clone.ID] = clone
	r.order = append(r.order, clone.ID)
	out := clone
	return &out, nil
}

func (r *stubProductRepo) List(_ context.Context) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]domain.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.products[id])
	}
	return out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := p
	return &clone, nil
}

func (r *stubProductRepo) FindByIDs(_ context.Context, ids []string) (map[string]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]domain.Product, len(ids))
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (r *stubProductRepo) delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
}

// stubCartRepo honours the CartRepository contract: AddLine is atomic, so
// it holds the lock across the whole merge exactly like the Mongo
// implementation's single-document update.
type stubCartRepo struct {
	mu    sync.Mutex
	carts map[string]*domain.Cart
}

func newStubCartRepo() *stubCartRepo {
	return &stubCartRepo{carts: make(map[string]*domain.Cart)}
}

func (r *stubCartRepo) Get(_ context.Context, userID string) (*domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart, ok := r.carts[userID]
	if !ok {
		return nil, domain.ErrCartNotFound
	}
	clone := domain.Cart{UserID: cart.UserID, Lines: append([]domain.CartLine(nil), cart.Lines...)}
	return &clone, nil
}

func (r *stubCartRepo) AddLine(_ context.Context, userID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart, ok := r.carts[userID]
	if !ok {
		cart = &domain.Cart{UserID: userID}
		r.carts[userID] = cart
	}
	for i := range cart.Lines {
		if cart.Lines[i].ProductID == productID {
			cart.Lines[i].Quantity++
			return nil
		}
	}
	cart.Lines = append(cart.Lines, domain.CartLine{ProductID: productID, Quantity: 1})
	return nil
}

func (r *stubCartRepo) RemoveLine(_ context.Context, userID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart, ok := r.carts[userID]
	if !ok {
		return domain.ErrCartNotFound
	}
	for i := range cart.Lines {
		if cart.Lines[i].ProductID == productID {
			cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
			return nil
		}
	}
	return nil
}
