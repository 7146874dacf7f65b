package inventory_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jhoicas/product-inventory-api/internal/application/inventory"
	"github.com/jhoicas/product-inventory-api/internal/domain/entity"
	"github.com/jhoicas/product-inventory-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con semántica transaccional: los escritos quedan en un
// staging que solo se aplica al store si el callback termina sin error, igual
// que el Commit/Rollback del runner real. El mutex del store cumple el rol de
// la serialización por fila: dos Run concurrentes nunca se intercalan.
// ──────────────────────────────────────────────────────────────────────────────

var errStorage = errors.New("fallo de persistencia simulado")

type fakeStore struct {
	mu        sync.Mutex
	products  map[int64]*entity.Product
	movements []entity.StockMovement
	nextMovID int64
	runCalls  int

	failUpdateStock bool // fuerza rollback a mitad de transacción
}

func newFakeStore() *fakeStore {
	return &fakeStore{products: map[int64]*entity.Product{}}
}

// addProduct siembra un producto con el stock indicado (estado ya commiteado).
func (s *fakeStore) addProduct(id int64, stock int64) {
	s.products[id] = &entity.Product{ID: id, Name: "producto", CurrentStock: stock}
}

func (s *fakeStore) ledgerLen(productID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, m := range s.movements {
		if m.ProductID == productID {
			n++
		}
	}
	return n
}

func (s *fakeStore) signedSum(productID int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum int64
	for _, m := range s.movements {
		if m.ProductID == productID {
			sum += m.SignedQuantity()
		}
	}
	return sum
}

func (s *fakeStore) stockOf(productID int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[productID].CurrentStock
}

// fakeTx staging de una transacción en curso.
type fakeTx struct {
	store        *fakeStore
	movements    []entity.StockMovement
	stockUpdates map[int64]int64
}

func (tx *fakeTx) commit() {
	tx.store.movements = append(tx.store.movements, tx.movements...)
	for id, stock := range tx.stockUpdates {
		tx.store.products[id].CurrentStock = stock
		tx.store.products[id].UpdatedAt = time.Now()
	}
}

// fakeTxRunner implementa inventory.TxRunner sobre el store en memoria.
type fakeTxRunner struct {
	store *fakeStore
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	tagRepo repository.TagRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.runCalls++

	tx := &fakeTx{store: r.store, stockUpdates: map[int64]int64{}}
	if err := fn(&txMovementRepo{tx}, &txProductRepo{tx}, nil); err != nil {
		return err // staging descartado: rollback
	}
	tx.commit()
	return nil
}

// txProductRepo vista de productos atada a la transacción.
type txProductRepo struct{ tx *fakeTx }

func (r *txProductRepo) GetForUpdate(id int64) (*entity.Product, error) {
	p, ok := r.tx.store.products[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (r *txProductRepo) UpdateStock(id int64, newStock int64) error {
	if r.tx.store.failUpdateStock {
		return errStorage
	}
	r.tx.stockUpdates[id] = newStock
	return nil
}

func (r *txProductRepo) Create(*entity.Product) error          { panic("no usado en estos tests") }
func (r *txProductRepo) GetByID(int64) (*entity.Product, error) { panic("no usado en estos tests") }
func (r *txProductRepo) GetWithTags(int64) (*entity.Product, error) {
	panic("no usado en estos tests")
}
func (r *txProductRepo) ListWithTags(repository.ProductFilter) ([]*entity.Product, error) {
	panic("no usado en estos tests")
}
func (r *txProductRepo) Update(*entity.Product) error { panic("no usado en estos tests") }
func (r *txProductRepo) Delete(int64) error           { panic("no usado en estos tests") }

// txMovementRepo vista del ledger atada a la transacción.
type txMovementRepo struct{ tx *fakeTx }

func (r *txMovementRepo) Create(m *entity.StockMovement) error {
	r.tx.store.nextMovID++
	m.ID = r.tx.store.nextMovID
	m.CreatedAt = time.Now()
	r.tx.movements = append(r.tx.movements, *m)
	return nil
}

func (r *txMovementRepo) LatestByProduct(int64) (*entity.StockMovement, error) {
	panic("no usado en estos tests")
}
func (r *txMovementRepo) ListByProduct(int64, int, int) ([]*entity.StockMovement, error) {
	panic("no usado en estos tests")
}

// storeMovementRepo lecturas del ledger fuera de transacción (estado commiteado).
type storeMovementRepo struct{ store *fakeStore }

func (r *storeMovementRepo) Create(*entity.StockMovement) error {
	panic("no usado en estos tests")
}

func (r *storeMovementRepo) LatestByProduct(productID int64) (*entity.StockMovement, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var latest *entity.StockMovement
	for i := range r.store.movements {
		m := &r.store.movements[i]
		if m.ProductID != productID {
			continue
		}
		if latest == nil || m.ID > latest.ID {
			latest = m
		}
	}
	if latest == nil {
		return nil, nil
	}
	copia := *latest
	return &copia, nil
}

func (r *storeMovementRepo) ListByProduct(productID int64, limit, offset int) ([]*entity.StockMovement, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var list []*entity.StockMovement
	for i := len(r.store.movements) - 1; i >= 0; i-- {
		m := r.store.movements[i]
		if m.ProductID == productID {
			list = append(list, &m)
		}
	}
	if offset >= len(list) {
		return nil, nil
	}
	list = list[offset:]
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

// newUseCase construye el caso de uso sobre el store en memoria.
func newUseCase(store *fakeStore) *inventory.AdjustStockUseCase {
	return inventory.NewAdjustStockUseCase(&fakeTxRunner{store: store}, &storeMovementRepo{store: store})
}
