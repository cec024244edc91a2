package stock_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-api/internal/application/stock"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// Fakes en memoria para probar los casos de uso del motor de stock sin PostgreSQL.
// Replican el contrato observable de los adaptadores reales: saldo cero implícito,
// updates condicionados que devuelven false cuando el estado no coincide, etc.

type fakeStockRepo struct {
	rows map[string]*entity.Stock
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{rows: make(map[string]*entity.Stock)}
}

func stockKey(productID, warehouseID string) string {
	return productID + "|" + warehouseID
}

func (f *fakeStockRepo) Get(productID, warehouseID string) (*entity.Stock, error) {
	if s, ok := f.rows[stockKey(productID, warehouseID)]; ok {
		cp := *s
		return &cp, nil
	}
	return &entity.Stock{ProductID: productID, WarehouseID: warehouseID, Quantity: decimal.Zero}, nil
}

// GetForUpdate materializa la fila cero si no existe, igual que el adaptador real:
// el lock de fila solo puede tomarse sobre una fila ya insertada.
func (f *fakeStockRepo) GetForUpdate(productID, warehouseID string) (*entity.Stock, error) {
	key := stockKey(productID, warehouseID)
	if _, ok := f.rows[key]; !ok {
		f.rows[key] = &entity.Stock{ProductID: productID, WarehouseID: warehouseID, Quantity: decimal.Zero}
	}
	cp := *f.rows[key]
	return &cp, nil
}

func (f *fakeStockRepo) Upsert(s *entity.Stock) error {
	cp := *s
	f.rows[stockKey(s.ProductID, s.WarehouseID)] = &cp
	return nil
}

func (f *fakeStockRepo) ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.Stock, error) {
	var out []*entity.Stock
	for _, s := range f.rows {
		if s.WarehouseID == warehouseID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeStockRepo) ListByProduct(productID string, limit, offset int) ([]*entity.Stock, error) {
	var out []*entity.Stock
	for _, s := range f.rows {
		if s.ProductID == productID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeLedgerRepo struct {
	entries []*entity.LedgerEntry
}

func (f *fakeLedgerRepo) Create(e *entity.LedgerEntry) error {
	cp := *e
	f.entries = append(f.entries, &cp)
	return nil
}

func (f *fakeLedgerRepo) ListRecent(productID, warehouseID string, limit, offset int) ([]*entity.LedgerEntry, error) {
	var out []*entity.LedgerEntry
	for i := len(f.entries) - 1; i >= 0; i-- {
		e := f.entries[i]
		if productID != "" && e.ProductID != productID {
			continue
		}
		if warehouseID != "" && e.WarehouseID != warehouseID {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeLedgerRepo) SumChanges(productID, warehouseID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, e := range f.entries {
		if e.ProductID == productID && e.WarehouseID == warehouseID {
			sum = sum.Add(e.QuantityChange)
		}
	}
	return sum, nil
}

type fakeAlertRepo struct {
	alerts []*entity.LowStockAlert
}

func (f *fakeAlertRepo) Create(a *entity.LowStockAlert) error {
	cp := *a
	f.alerts = append(f.alerts, &cp)
	return nil
}

func (f *fakeAlertRepo) GetByID(id string) (*entity.LowStockAlert, error) {
	for _, a := range f.alerts {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAlertRepo) ExistsUnacknowledged(productID, warehouseID string) (bool, error) {
	for _, a := range f.alerts {
		if a.ProductID == productID && a.WarehouseID == warehouseID && !a.Acknowledged {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAlertRepo) Acknowledge(id, acknowledgedBy string, at time.Time) (bool, error) {
	for _, a := range f.alerts {
		if a.ID == id && !a.Acknowledged {
			a.Acknowledged = true
			a.AcknowledgedBy = acknowledgedBy
			a.AcknowledgedAt = &at
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAlertRepo) List(onlyOpen bool, limit, offset int) ([]*entity.LowStockAlert, error) {
	var out []*entity.LowStockAlert
	for _, a := range f.alerts {
		if onlyOpen && a.Acknowledged {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

type fakeReceiptRepo struct {
	rows map[string]*entity.Receipt
}

func newFakeReceiptRepo() *fakeReceiptRepo {
	return &fakeReceiptRepo{rows: make(map[string]*entity.Receipt)}
}

func (f *fakeReceiptRepo) Create(r *entity.Receipt) error {
	cp := *r
	f.rows[r.ID] = &cp
	return nil
}

func (f *fakeReceiptRepo) GetByID(id string) (*entity.Receipt, error) {
	if r, ok := f.rows[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeReceiptRepo) CompleteIfPending(id string, at time.Time) (bool, error) {
	r, ok := f.rows[id]
	if !ok || r.Status != entity.ReceiptStatusPending {
		return false, nil
	}
	r.Status = entity.ReceiptStatusCompleted
	r.CompletedAt = &at
	return true, nil
}

func (f *fakeReceiptRepo) List(status string, limit, offset int) ([]*entity.Receipt, error) {
	var out []*entity.Receipt
	for _, r := range f.rows {
		if status != "" && r.Status != status {
			continue
		}
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}

type fakeDeliveryRepo struct {
	rows map[string]*entity.DeliveryOrder
}

func newFakeDeliveryRepo() *fakeDeliveryRepo {
	return &fakeDeliveryRepo{rows: make(map[string]*entity.DeliveryOrder)}
}

func (f *fakeDeliveryRepo) Create(o *entity.DeliveryOrder) error {
	cp := *o
	f.rows[o.ID] = &cp
	return nil
}

func (f *fakeDeliveryRepo) GetByID(id string) (*entity.DeliveryOrder, error) {
	if o, ok := f.rows[id]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeDeliveryRepo) TransitionStatus(id, fromStatus, toStatus string, at time.Time) (bool, error) {
	o, ok := f.rows[id]
	if !ok || o.Status != fromStatus {
		return false, nil
	}
	o.Status = toStatus
	switch toStatus {
	case entity.DeliveryStatusPacked:
		o.PackedAt = &at
	case entity.DeliveryStatusDelivered:
		o.DeliveredAt = &at
	}
	return true, nil
}

func (f *fakeDeliveryRepo) DeleteIfNotDelivered(id string) (bool, error) {
	o, ok := f.rows[id]
	if !ok || o.Status == entity.DeliveryStatusDelivered {
		return false, nil
	}
	delete(f.rows, id)
	return true, nil
}

func (f *fakeDeliveryRepo) List(status string, limit, offset int) ([]*entity.DeliveryOrder, error) {
	var out []*entity.DeliveryOrder
	for _, o := range f.rows {
		if status != "" && o.Status != status {
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

type fakeTransferRepo struct {
	rows map[string]*entity.Transfer
}

func newFakeTransferRepo() *fakeTransferRepo {
	return &fakeTransferRepo{rows: make(map[string]*entity.Transfer)}
}

func (f *fakeTransferRepo) Create(t *entity.Transfer) error {
	cp := *t
	f.rows[t.ID] = &cp
	return nil
}

func (f *fakeTransferRepo) GetByID(id string) (*entity.Transfer, error) {
	if t, ok := f.rows[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeTransferRepo) List(limit, offset int) ([]*entity.Transfer, error) {
	var out []*entity.Transfer
	for _, t := range f.rows {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

type fakeAdjustmentRepo struct {
	rows map[string]*entity.Adjustment
}

func newFakeAdjustmentRepo() *fakeAdjustmentRepo {
	return &fakeAdjustmentRepo{rows: make(map[string]*entity.Adjustment)}
}

func (f *fakeAdjustmentRepo) Create(a *entity.Adjustment) error {
	cp := *a
	f.rows[a.ID] = &cp
	return nil
}

func (f *fakeAdjustmentRepo) GetByID(id string) (*entity.Adjustment, error) {
	if a, ok := f.rows[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeAdjustmentRepo) List(limit, offset int) ([]*entity.Adjustment, error) {
	var out []*entity.Adjustment
	for _, a := range f.rows {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

type fakeProductRepo struct {
	rows map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	f := &fakeProductRepo{rows: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		f.rows[p.ID] = &cp
	}
	return f
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	f.rows[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if p, ok := f.rows[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range f.rows {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	f.rows[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.rows {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeProductRepo) Delete(id string) error {
	delete(f.rows, id)
	return nil
}

type fakeWarehouseRepo struct {
	rows map[string]*entity.Warehouse
}

func newFakeWarehouseRepo(warehouses ...*entity.Warehouse) *fakeWarehouseRepo {
	f := &fakeWarehouseRepo{rows: make(map[string]*entity.Warehouse)}
	for _, w := range warehouses {
		cp := *w
		f.rows[w.ID] = &cp
	}
	return f
}

func (f *fakeWarehouseRepo) Create(w *entity.Warehouse) error {
	cp := *w
	f.rows[w.ID] = &cp
	return nil
}

func (f *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	if w, ok := f.rows[id]; ok {
		cp := *w
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeWarehouseRepo) GetByCode(code string) (*entity.Warehouse, error) {
	for _, w := range f.rows {
		if w.Code == code {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeWarehouseRepo) Update(w *entity.Warehouse) error {
	cp := *w
	f.rows[w.ID] = &cp
	return nil
}

func (f *fakeWarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range f.rows {
		cp := *w
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeWarehouseRepo) Delete(id string) error {
	delete(f.rows, id)
	return nil
}

// fakeTxRunner ejecuta el callback directo contra los repos en memoria. No simula
// rollback: los tests de atomicidad se apoyan en que las validaciones del motor
// ocurren antes de cualquier escritura.
type fakeTxRunner struct {
	repos stock.TxRepos
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(r stock.TxRepos) error) error {
	return fn(f.repos)
}

// testEnv agrupa todo lo necesario para probar el motor completo.
type testEnv struct {
	stockRepo   *fakeStockRepo
	ledger      *fakeLedgerRepo
	alerts      *fakeAlertRepo
	receipts    *fakeReceiptRepo
	deliveries  *fakeDeliveryRepo
	transfers   *fakeTransferRepo
	adjustments *fakeAdjustmentRepo
	products    *fakeProductRepo
	warehouses  *fakeWarehouseRepo
	txRunner    *fakeTxRunner
}

func newTestEnv(products []*entity.Product, warehouses []*entity.Warehouse) *testEnv {
	env := &testEnv{
		stockRepo:   newFakeStockRepo(),
		ledger:      &fakeLedgerRepo{},
		alerts:      &fakeAlertRepo{},
		receipts:    newFakeReceiptRepo(),
		deliveries:  newFakeDeliveryRepo(),
		transfers:   newFakeTransferRepo(),
		adjustments: newFakeAdjustmentRepo(),
		products:    newFakeProductRepo(products...),
		warehouses:  newFakeWarehouseRepo(warehouses...),
	}
	env.txRunner = &fakeTxRunner{repos: stock.TxRepos{
		Stock:       env.stockRepo,
		Ledger:      env.ledger,
		Alerts:      env.alerts,
		Receipts:    env.receipts,
		Deliveries:  env.deliveries,
		Transfers:   env.transfers,
		Adjustments: env.adjustments,
	}}
	return env
}

func (e *testEnv) setStock(productID, warehouseID string, qty decimal.Decimal) {
	_ = e.stockRepo.Upsert(&entity.Stock{
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    qty,
		UpdatedAt:   time.Now(),
	})
}

func (e *testEnv) balance(productID, warehouseID string) decimal.Decimal {
	s, _ := e.stockRepo.Get(productID, warehouseID)
	return s.Quantity
}
