// seed puebla la base con datos de demostración: dos productos con tags y su
// stock inicial cargado a través del motor de ajustes, de modo que el
// contador denormalizado y el ledger quedan consistentes desde el arranque.
//
// Uso: go run ./cmd/seed
// Borra los datos existentes antes de insertar.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/product-inventory-api/internal/application/dto"
	"github.com/jhoicas/product-inventory-api/internal/application/inventory"
	"github.com/jhoicas/product-inventory-api/internal/application/usecase"
	"github.com/jhoicas/product-inventory-api/internal/infrastructure/postgres"
	"github.com/jhoicas/product-inventory-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	// Limpiar en orden de dependencias
	for _, table := range []string{"product_tags", "inventories", "tags", "products"} {
		if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			fail("limpiar %s: %v", table, err)
		}
	}

	txRunner := postgres.NewTxRunner(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	productUC := usecase.NewProductUseCase(txRunner, postgres.NewProductRepository(pool))
	adjustUC := inventory.NewAdjustStockUseCase(txRunner, movementRepo)

	seedProduct(ctx, productUC, adjustUC, seedItem{
		name:        "Bluetooth Speaker",
		description: "Portable speaker",
		price:       decimal.NewFromFloat(49.99),
		tags:        []string{"Electronics"},
		stock:       10,
	})
	seedProduct(ctx, productUC, adjustUC, seedItem{
		name:        "Wireless Mouse",
		description: "Ergonomic mouse",
		price:       decimal.NewFromFloat(19.99),
		tags:        []string{"Electronics", "Accessories"},
		stock:       5,
	})

	fmt.Println("seed completado")
}

type seedItem struct {
	name        string
	description string
	price       decimal.Decimal
	tags        []string
	stock       int64
}

func seedProduct(ctx context.Context, productUC *usecase.ProductUseCase, adjustUC *inventory.AdjustStockUseCase, item seedItem) {
	created, err := productUC.Create(ctx, dto.CreateProductRequest{
		Name:        item.name,
		Description: item.description,
		Price:       &item.price,
		Tags:        item.tags,
	})
	if err != nil {
		fail("crear producto %q: %v", item.name, err)
	}
	// Stock inicial vía el motor de ajustes: ledger y contador consistentes
	_, err = adjustUC.AdjustStock(ctx, inventory.AdjustStockInput{
		ProductID: created.ID,
		Direction: "in",
		Quantity:  item.stock,
		Note:      "initial stock",
	})
	if err != nil {
		fail("stock inicial de %q: %v", item.name, err)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
