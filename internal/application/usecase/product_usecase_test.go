package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/product-inventory-api/internal/application/dto"
	"github.com/jhoicas/product-inventory-api/internal/application/usecase"
	"github.com/jhoicas/product-inventory-api/internal/domain"
	"github.com/jhoicas/product-inventory-api/internal/domain/entity"
	"github.com/jhoicas/product-inventory-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los casos de uso CRUD. El runner pasa los repos tal
// cual: la atomicidad de la transacción se cubre en los tests del motor de
// ajustes, aquí interesa el comportamiento de negocio.
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	products map[int64]*entity.Product
	nextID   int64
	lastFilter *repository.ProductFilter
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: map[int64]*entity.Product{}}
}

func (r *memProductRepo) Create(p *entity.Product) error {
	r.nextID++
	p.ID = r.nextID
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	copia := *p
	r.products[p.ID] = &copia
	return nil
}

func (r *memProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (r *memProductRepo) GetWithTags(id int64) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *memProductRepo) ListWithTags(filter repository.ProductFilter) ([]*entity.Product, error) {
	r.lastFilter = &filter
	var list []*entity.Product
	for _, p := range r.products {
		copia := *p
		list = append(list, &copia)
	}
	return list, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	copia := *p
	r.products[p.ID] = &copia
	return nil
}

func (r *memProductRepo) Delete(id int64) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *memProductRepo) GetForUpdate(id int64) (*entity.Product, error) { return r.GetByID(id) }
func (r *memProductRepo) UpdateStock(id int64, newStock int64) error {
	r.products[id].CurrentStock = newStock
	return nil
}

type memTagRepo struct {
	tags     map[string]*entity.Tag
	nextID   int64
	attached map[int64][]int64 // productID -> tagIDs
}

func newMemTagRepo() *memTagRepo {
	return &memTagRepo{tags: map[string]*entity.Tag{}, attached: map[int64][]int64{}}
}

func (r *memTagRepo) Create(t *entity.Tag) error {
	if _, ok := r.tags[t.Name]; ok {
		return domain.ErrDuplicate
	}
	r.nextID++
	t.ID = r.nextID
	t.CreatedAt = time.Now()
	copia := *t
	r.tags[t.Name] = &copia
	return nil
}

func (r *memTagRepo) GetByName(name string) (*entity.Tag, error) {
	t, ok := r.tags[name]
	if !ok {
		return nil, nil
	}
	copia := *t
	return &copia, nil
}

func (r *memTagRepo) AttachToProduct(productID, tagID int64) error {
	r.attached[productID] = append(r.attached[productID], tagID)
	return nil
}

// passthroughTxRunner ejecuta fn directamente con los repos en memoria.
type passthroughTxRunner struct {
	productRepo *memProductRepo
	tagRepo     *memTagRepo
}

func (r *passthroughTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	tagRepo repository.TagRepository,
) error) error {
	return fn(nil, r.productRepo, r.tagRepo)
}

func newProductUC() (*usecase.ProductUseCase, *memProductRepo, *memTagRepo) {
	productRepo := newMemProductRepo()
	tagRepo := newMemTagRepo()
	runner := &passthroughTxRunner{productRepo: productRepo, tagRepo: tagRepo}
	return usecase.NewProductUseCase(runner, productRepo), productRepo, tagRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Crear producto: stock nace en 0, tags se crean-o-reusan y se deduplican.
func TestProductCreate_ConTagsDeduplicados(t *testing.T) {
	uc, _, tagRepo := newProductUC()

	price := decimal.NewFromFloat(49.99)
	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:  "Bluetooth Speaker",
		Price: &price,
		Tags:  []string{"Electronics", "Electronics", "  Audio  ", ""},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), out.CurrentStock, "el stock inicial siempre es 0")
	assert.Equal(t, []string{"Electronics", "Audio"}, out.Tags)
	assert.Len(t, tagRepo.attached[out.ID], 2, "nombres repetidos se asocian una sola vez")
}

// Crear reusa tags existentes en lugar de duplicarlos.
func TestProductCreate_ReusaTagExistente(t *testing.T) {
	uc, _, tagRepo := newProductUC()
	require.NoError(t, tagRepo.Create(&entity.Tag{Name: "Electronics"}))

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Wireless Mouse",
		Tags: []string{"Electronics"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Electronics"}, out.Tags)
	assert.Len(t, tagRepo.tags, 1)
}

// Nombre vacío o precio negativo: entrada inválida.
func TestProductCreate_Validaciones(t *testing.T) {
	uc, _, _ := newProductUC()

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "   "})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	neg := decimal.NewFromInt(-1)
	_, err = uc.Create(context.Background(), dto.CreateProductRequest{Name: "x", Price: &neg})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Producto sin tags responde lista vacía, nunca null.
func TestProductGetByID_TagsVacioNoNull(t *testing.T) {
	uc, _, _ := newProductUC()
	out, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "Solo"})
	require.NoError(t, err)

	got, err := uc.GetByID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.NotNil(t, got.Tags)
	assert.Empty(t, got.Tags)
}

// GetByID inexistente devuelve nil (el handler lo traduce a 404).
func TestProductGetByID_NoExiste(t *testing.T) {
	uc, _, _ := newProductUC()
	got, err := uc.GetByID(42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

// List traduce los query params al filtro del repositorio.
func TestProductList_TraduceFiltros(t *testing.T) {
	uc, productRepo, _ := newProductUC()

	_, err := uc.List(dto.ListProductsQuery{Tag: " Electronics ", Name: "mouse", MinStock: "5"})
	require.NoError(t, err)

	require.NotNil(t, productRepo.lastFilter)
	assert.Equal(t, "Electronics", productRepo.lastFilter.TagName)
	assert.Equal(t, "mouse", productRepo.lastFilter.NamePattern)
	require.NotNil(t, productRepo.lastFilter.MinStock)
	assert.Equal(t, int64(5), *productRepo.lastFilter.MinStock)
}

// min_stock no numérico: entrada inválida.
func TestProductList_MinStockInvalido(t *testing.T) {
	uc, _, _ := newProductUC()
	_, err := uc.List(dto.ListProductsQuery{MinStock: "abc"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Update: solo nombre y descripción; body sin campos es inválido.
func TestProductUpdate_SoloNombreYDescripcion(t *testing.T) {
	uc, _, _ := newProductUC()
	created, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "Viejo"})
	require.NoError(t, err)

	_, err = uc.Update(created.ID, dto.UpdateProductRequest{})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	nuevo := "Nuevo"
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Name: &nuevo})
	require.NoError(t, err)
	assert.Equal(t, "Nuevo", out.Name)

	// Inexistente devuelve nil
	out, err = uc.Update(999, dto.UpdateProductRequest{Name: &nuevo})
	require.NoError(t, err)
	assert.Nil(t, out)
}

// Delete inexistente propaga ErrNotFound.
func TestProductDelete_NoExiste(t *testing.T) {
	uc, _, _ := newProductUC()
	err := uc.Delete(7)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
