package usecase_test

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
	"github.com/jhoicas/backoffice-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Almacén en memoria compartido por los repos fake. fakeTxRunner clona el
// estado antes de ejecutar el callback y lo restaura si falla, emulando el
// commit/rollback de una transacción real.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	products    map[string]*entity.Product
	inventories map[string]*entity.ProductInventory
	snapshots   []*entity.ProductInventorySnapshot
	customers   map[string]*entity.Customer
	orders      map[string]*entity.SalesOrder

	// Ajustes aplicados vía Update (delta de QuantityOnHand), en orden.
	adjustments []int

	productCreateErr  error
	snapshotCreateErr error
	orderCreateErr    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products:    make(map[string]*entity.Product),
		inventories: make(map[string]*entity.ProductInventory),
		customers:   make(map[string]*entity.Customer),
		orders:      make(map[string]*entity.SalesOrder),
	}
}

func (s *fakeStore) clone() *fakeStore {
	cp := newFakeStore()
	for id, p := range s.products {
		v := *p
		cp.products[id] = &v
	}
	for id, inv := range s.inventories {
		v := *inv
		v.Product = nil
		cp.inventories[id] = &v
	}
	cp.snapshots = append(cp.snapshots, s.snapshots...)
	for id, c := range s.customers {
		v := *c
		if c.PrimaryAddress != nil {
			a := *c.PrimaryAddress
			v.PrimaryAddress = &a
		}
		cp.customers[id] = &v
	}
	for id, o := range s.orders {
		v := *o
		v.Items = nil
		for _, item := range o.Items {
			it := *item
			v.Items = append(v.Items, &it)
		}
		cp.orders[id] = &v
	}
	cp.adjustments = append(cp.adjustments, s.adjustments...)
	return cp
}

func (s *fakeStore) restore(from *fakeStore) {
	s.products = from.products
	s.inventories = from.inventories
	s.snapshots = from.snapshots
	s.customers = from.customers
	s.orders = from.orders
	s.adjustments = from.adjustments
}

func (s *fakeStore) productCopy(id string) *entity.Product {
	p, ok := s.products[id]
	if !ok {
		return nil
	}
	v := *p
	return &v
}

func (s *fakeStore) inventoryCopy(id string) *entity.ProductInventory {
	inv, ok := s.inventories[id]
	if !ok {
		return nil
	}
	v := *inv
	v.Product = s.productCopy(inv.ProductID)
	return &v
}

// ── repos fake ────────────────────────────────────────────────────────────────

type fakeProductRepo struct{ s *fakeStore }

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) Create(product *entity.Product) error {
	if r.s.productCreateErr != nil {
		return r.s.productCreateErr
	}
	v := *product
	r.s.products[product.ID] = &v
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.s.productCopy(id), nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	var list []*entity.Product
	for id := range r.s.products {
		list = append(list, r.s.productCopy(id))
	}
	return list, nil
}

func (r *fakeProductRepo) Archive(id string, updatedOn time.Time) error {
	if p, ok := r.s.products[id]; ok {
		p.IsArchived = true
		p.UpdatedOn = updatedOn
	}
	return nil
}

type fakeInventoryRepo struct{ s *fakeStore }

var _ repository.InventoryRepository = (*fakeInventoryRepo)(nil)

func (r *fakeInventoryRepo) Create(inventory *entity.ProductInventory) error {
	v := *inventory
	v.Product = nil
	r.s.inventories[inventory.ID] = &v
	return nil
}

func (r *fakeInventoryRepo) GetByProductID(productID string) (*entity.ProductInventory, error) {
	for id, inv := range r.s.inventories {
		if inv.ProductID == productID {
			return r.s.inventoryCopy(id), nil
		}
	}
	return nil, nil
}

func (r *fakeInventoryRepo) GetByIDForUpdate(id string) (*entity.ProductInventory, error) {
	return r.s.inventoryCopy(id), nil
}

func (r *fakeInventoryRepo) GetByProductIDForUpdate(productID string) (*entity.ProductInventory, error) {
	return r.GetByProductID(productID)
}

func (r *fakeInventoryRepo) ListCurrent() ([]*entity.ProductInventory, error) {
	var list []*entity.ProductInventory
	for id, inv := range r.s.inventories {
		if p := r.s.products[inv.ProductID]; p != nil && !p.IsArchived {
			list = append(list, r.s.inventoryCopy(id))
		}
	}
	return list, nil
}

func (r *fakeInventoryRepo) Update(inventory *entity.ProductInventory) error {
	prev := r.s.inventories[inventory.ID]
	if prev != nil {
		r.s.adjustments = append(r.s.adjustments, inventory.QuantityOnHand-prev.QuantityOnHand)
	}
	v := *inventory
	v.Product = nil
	r.s.inventories[inventory.ID] = &v
	return nil
}

type fakeSnapshotRepo struct{ s *fakeStore }

var _ repository.SnapshotRepository = (*fakeSnapshotRepo)(nil)

func (r *fakeSnapshotRepo) Create(snapshot *entity.ProductInventorySnapshot) error {
	if r.s.snapshotCreateErr != nil {
		return r.s.snapshotCreateErr
	}
	v := *snapshot
	v.Product = nil
	r.s.snapshots = append(r.s.snapshots, &v)
	return nil
}

func (r *fakeSnapshotRepo) ListSince(since time.Time) ([]*entity.ProductInventorySnapshot, error) {
	var list []*entity.ProductInventorySnapshot
	for _, snap := range r.s.snapshots {
		p := r.s.products[snap.ProductID]
		if p == nil || p.IsArchived || !snap.SnapshotTime.After(since) {
			continue
		}
		v := *snap
		v.Product = r.s.productCopy(snap.ProductID)
		list = append(list, &v)
	}
	return list, nil
}

type fakeCustomerRepo struct{ s *fakeStore }

var _ repository.CustomerRepository = (*fakeCustomerRepo)(nil)

func (r *fakeCustomerRepo) Create(customer *entity.Customer) error {
	v := *customer
	if customer.PrimaryAddress != nil {
		a := *customer.PrimaryAddress
		v.PrimaryAddress = &a
	}
	r.s.customers[customer.ID] = &v
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.s.customers[id]
	if !ok {
		return nil, nil
	}
	v := *c
	if c.PrimaryAddress != nil {
		a := *c.PrimaryAddress
		v.PrimaryAddress = &a
	}
	return &v, nil
}

func (r *fakeCustomerRepo) List() ([]*entity.Customer, error) {
	var list []*entity.Customer
	for id := range r.s.customers {
		c, _ := r.GetByID(id)
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].LastName < list[j].LastName })
	return list, nil
}

func (r *fakeCustomerRepo) Delete(id string) error {
	delete(r.s.customers, id)
	return nil
}

type fakeOrderRepo struct{ s *fakeStore }

var _ repository.OrderRepository = (*fakeOrderRepo)(nil)

func (r *fakeOrderRepo) Create(order *entity.SalesOrder) error {
	if r.s.orderCreateErr != nil {
		return r.s.orderCreateErr
	}
	v := *order
	v.Items = nil
	for _, item := range order.Items {
		it := *item
		it.Product = nil
		v.Items = append(v.Items, &it)
	}
	r.s.orders[order.ID] = &v
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.SalesOrder, error) {
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	v := *o
	return &v, nil
}

func (r *fakeOrderRepo) List() ([]*entity.SalesOrder, error) {
	customerRepo := &fakeCustomerRepo{r.s}
	var list []*entity.SalesOrder
	for _, o := range r.s.orders {
		v := *o
		v.Customer, _ = customerRepo.GetByID(o.CustomerID)
		v.Items = nil
		for _, item := range o.Items {
			it := *item
			it.Product = r.s.productCopy(item.ProductID)
			v.Items = append(v.Items, &it)
		}
		list = append(list, &v)
	}
	return list, nil
}

func (r *fakeOrderRepo) MarkPaid(id string, updatedOn time.Time) error {
	if o, ok := r.s.orders[id]; ok {
		o.IsPaid = true
		o.UpdatedOn = updatedOn
	}
	return nil
}

// ── tx runner fake ────────────────────────────────────────────────────────────

type fakeTxRunner struct{ s *fakeStore }

var _ usecase.TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
) error) error {
	before := r.s.clone()
	err := fn(&fakeProductRepo{r.s}, &fakeInventoryRepo{r.s}, &fakeCustomerRepo{r.s}, &fakeOrderRepo{r.s})
	if err != nil {
		r.s.restore(before)
	}
	return err
}

// ── helpers ───────────────────────────────────────────────────────────────────

type testEnv struct {
	store       *fakeStore
	productUC   *usecase.ProductUseCase
	inventoryUC *usecase.InventoryUseCase
	customerUC  *usecase.CustomerUseCase
	orderUC     *usecase.OrderUseCase
}

func newTestEnv() *testEnv {
	store := newFakeStore()
	txRunner := &fakeTxRunner{store}
	log := logger.New(logger.Config{Env: "development", Level: "error"})

	inventoryUC := usecase.NewInventoryUseCase(&fakeInventoryRepo{store}, &fakeSnapshotRepo{store}, txRunner, log)
	return &testEnv{
		store:       store,
		productUC:   usecase.NewProductUseCase(&fakeProductRepo{store}, txRunner),
		inventoryUC: inventoryUC,
		customerUC:  usecase.NewCustomerUseCase(&fakeCustomerRepo{store}, txRunner),
		orderUC:     usecase.NewOrderUseCase(&fakeOrderRepo{store}, inventoryUC, txRunner, log),
	}
}

// seedProduct inserta un producto con su fila de inventario directamente en
// el almacén fake.
func seedProduct(s *fakeStore, name string, quantity int) *entity.Product {
	now := time.Now().UTC()
	p := &entity.Product{ID: uuid.New().String(), Name: name, CreatedOn: now, UpdatedOn: now}
	s.products[p.ID] = p
	inv := &entity.ProductInventory{
		ID:             uuid.New().String(),
		ProductID:      p.ID,
		QuantityOnHand: quantity,
		IdealQuantity:  10,
		CreatedOn:      now,
		UpdatedOn:      now,
	}
	s.inventories[inv.ID] = inv
	return p
}

// seedCustomer inserta un cliente directamente en el almacén fake.
func seedCustomer(s *fakeStore, firstName, lastName string) *entity.Customer {
	now := time.Now().UTC()
	c := &entity.Customer{
		ID:        uuid.New().String(),
		FirstName: firstName,
		LastName:  lastName,
		CreatedOn: now,
		UpdatedOn: now,
	}
	s.customers[c.ID] = c
	return c
}

// inventoryByProduct devuelve la fila de inventario del producto, o nil.
func inventoryByProduct(s *fakeStore, productID string) *entity.ProductInventory {
	for _, inv := range s.inventories {
		if inv.ProductID == productID {
			return inv
		}
	}
	return nil
}
