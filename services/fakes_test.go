package services

import (
	"context"
	"sync"

	"storefront/models"
	"storefront/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeUserRepo is an in-memory stand-in for the Mongo user collection. It
// honours the version guard the same way the real repository does, and can
// inject a number of artificial conflicts to exercise the retry path.
type fakeUserRepo struct {
	mu        sync.Mutex
	users     map[string]*models.User
	conflicts int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (f *fakeUserRepo) put(user *models.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.Email] = user
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.users[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	// Hand back a copy so callers mutate their own snapshot, like a decode
	// from the driver would.
	copied := *stored
	copied.Cart = append([]models.CartLine(nil), stored.Cart...)
	copied.Addresses = append([]models.Address(nil), stored.Addresses...)
	return &copied, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	f.put(user)
	return nil
}

func (f *fakeUserRepo) ReplaceCart(ctx context.Context, email string, version int64, cart []models.CartLine) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.conflicts > 0 {
		f.conflicts--
		return repository.ErrVersionConflict
	}
	stored, ok := f.users[email]
	if !ok || stored.Version != version {
		return repository.ErrVersionConflict
	}
	stored.Cart = append([]models.CartLine(nil), cart...)
	stored.Version++
	return nil
}

func (f *fakeUserRepo) ClearCartAndCountOrder(ctx context.Context, email string, version int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.users[email]
	if !ok || stored.Version != version {
		return repository.ErrVersionConflict
	}
	stored.Cart = []models.CartLine{}
	stored.Orders++
	stored.Version++
	return nil
}

func (f *fakeUserRepo) AppendAddress(ctx context.Context, email string, address models.Address) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.users[email]
	if !ok {
		return mongo.ErrNoDocuments
	}
	stored.Addresses = append(stored.Addresses, address)
	return nil
}

// fakeProductRepo serves a fixed catalog.
type fakeProductRepo struct {
	products map[int]*models.Product
}

func newFakeProductRepo(products ...*models.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: map[int]*models.Product{}}
	for _, p := range products {
		repo.products[p.ProductID] = p
	}
	return repo
}

func (f *fakeProductRepo) FindByProductID(ctx context.Context, productID int) (*models.Product, error) {
	if p, ok := f.products[productID]; ok {
		return p, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeProductRepo) FindByRef(ctx context.Context, ref primitive.ObjectID) (*models.Product, error) {
	for _, p := range f.products {
		if p.ID == ref {
			return p, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeProductRepo) SearchByName(ctx context.Context, query string) ([]*models.Product, error) {
	var out []*models.Product
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}
