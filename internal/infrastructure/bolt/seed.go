package bolt

import (
	"time"

	"github.com/shopspring/decimal"
	bolt "go.etcd.io/bbolt"

	"github.com/jhoicas/pos-ventas/internal/domain/entity"
)

// Empty indica si el store no tiene catálogo todavía (criterio de siembra).
func (s *Store) Empty() (bool, error) {
	var empty bool
	err := s.db.View(func(tx *bolt.Tx) error {
		empty = tx.Bucket([]byte(BucketProducts)).Stats().KeyN == 0
		return nil
	})
	return empty, err
}

// Seed puebla el store con un catálogo de demostración: productos con su
// entrada INITIAL en el kardex, clientes, empleados, categorías y una venta
// histórica ya completada. Todo en una sola transacción.
//
// La venta histórica no genera kardex: el stock sembrado ya la descuenta,
// igual que un corte de inventario al dar de alta el sistema.
func Seed(s *Store) error {
	now := time.Now()

	products := []*entity.Product{
		{ID: "prod-laptop", Name: "Portátil Pro 15\"", PurchasePrice: decimal.NewFromInt(3_200_000), SellingPrice: decimal.NewFromInt(4_100_000), Barcode: "LP15PRO", QuantityInStock: 10, CreatedAt: now},
		{ID: "prod-mouse", Name: "Mouse inalámbrico", PurchasePrice: decimal.NewFromInt(45_000), SellingPrice: decimal.NewFromInt(75_000), Barcode: "WMOUSE", QuantityInStock: 50, CreatedAt: now},
		{ID: "prod-teclado", Name: "Teclado mecánico", PurchasePrice: decimal.NewFromInt(180_000), SellingPrice: decimal.NewFromInt(260_000), Barcode: "MKEYB", QuantityInStock: 25, CreatedAt: now},
		{ID: "prod-monitor", Name: "Monitor 4K 27\"", PurchasePrice: decimal.NewFromInt(950_000), SellingPrice: decimal.NewFromInt(1_350_000), Barcode: "4KMON27", QuantityInStock: 15, CreatedAt: now},
		{ID: "prod-hub", Name: "Hub USB-C", PurchasePrice: decimal.NewFromInt(90_000), SellingPrice: decimal.NewFromInt(140_000), Barcode: "USBCHUB", QuantityInStock: 40, CreatedAt: now},
	}

	customers := []*entity.Customer{
		{ID: "cust-andrea", Name: "Andrea Gómez", Phone: "3001234567", Email: "andrea@example.com", Address: "Cra 7 # 45-12, Bogotá", CreatedAt: now},
		{ID: "cust-julian", Name: "Julián Restrepo", Phone: "3109876543", Email: "julian@example.com", Address: "Cl 10 # 30-08, Medellín", CreatedAt: now},
	}

	employees := []*entity.Employee{
		{ID: "emp-marcela", Name: "Marcela Díaz", Phone: "3012345678", Email: "marcela@tienda.com", Position: "Administradora", StartDate: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), CreatedAt: now},
		{ID: "emp-camilo", Name: "Camilo Torres", Phone: "3023456789", Email: "camilo@tienda.com", Position: "Vendedor", StartDate: time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC), CreatedAt: now},
	}

	expenseCategories := []*entity.Category{
		{ID: "expcat-arriendo", Name: "Arriendo del local", CreatedAt: now},
		{ID: "expcat-servicios", Name: "Servicios públicos", CreatedAt: now},
		{ID: "expcat-nomina", Name: "Nómina", CreatedAt: now},
	}
	incomeCategories := []*entity.Category{
		{ID: "inccat-ventas", Name: "Ingresos por ventas", CreatedAt: now},
		{ID: "inccat-otros", Name: "Otros ingresos", CreatedAt: now},
	}

	saleTotal := products[0].SellingPrice.Add(products[1].SellingPrice)
	saleDiscount := decimal.NewFromInt(75_000)
	historicSale := &entity.Sale{
		ID: "sale-demo",
		Items: []entity.SaleItem{
			{ProductID: "prod-laptop", ProductName: products[0].Name, Quantity: 1, Price: products[0].SellingPrice, PurchasePrice: products[0].PurchasePrice},
			{ProductID: "prod-mouse", ProductName: products[1].Name, Quantity: 1, Price: products[1].SellingPrice, PurchasePrice: products[1].PurchasePrice},
		},
		TotalAmount:  saleTotal,
		Discount:     saleDiscount,
		FinalAmount:  saleTotal.Sub(saleDiscount),
		Status:       entity.SaleStatusCompleted,
		CustomerID:   "cust-andrea",
		CustomerName: "Andrea Gómez",
		EmployeeID:   "emp-camilo",
		EmployeeName: "Camilo Torres",
		Notes:        "Entrega rápida",
		CreatedAt:    now.Add(-24 * time.Hour),
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		q := sharedTx{tx: tx}
		productRepo := NewProductRepository(q)
		logRepo := NewInventoryLogRepository(q)

		for _, p := range products {
			if err := productRepo.Create(p); err != nil {
				return err
			}
			log := &entity.InventoryLog{
				ProductID:      p.ID,
				ProductName:    p.Name,
				QuantityChange: p.QuantityInStock,
				NewQuantity:    p.QuantityInStock,
				Type:           entity.LogTypeInitial,
				CreatedAt:      now,
			}
			if err := logRepo.Append(log); err != nil {
				return err
			}
		}

		customerRepo := NewCustomerRepository(q)
		for _, c := range customers {
			if err := customerRepo.Create(c); err != nil {
				return err
			}
		}
		employeeRepo := NewEmployeeRepository(q)
		for _, e := range employees {
			if err := employeeRepo.Create(e); err != nil {
				return err
			}
		}
		expCatRepo := NewExpenseCategoryRepository(q)
		for _, c := range expenseCategories {
			if err := expCatRepo.Create(c); err != nil {
				return err
			}
		}
		incCatRepo := NewIncomeCategoryRepository(q)
		for _, c := range incomeCategories {
			if err := incCatRepo.Create(c); err != nil {
				return err
			}
		}
		return NewSaleRepository(q).Create(historicSale)
	})
}
