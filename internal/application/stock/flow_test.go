package stock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/application/stock"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

const (
	productID   = "prod-1"
	warehouseA  = "wh-a"
	warehouseB  = "wh-b"
	testUser    = "user-1"
	otherUserID = "user-2"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func catalog(reorderLevel string) ([]*entity.Product, []*entity.Warehouse) {
	products := []*entity.Product{{
		ID:           productID,
		SKU:          "SKU-001",
		Name:         "Tornillo 3/8",
		UnitMeasure:  "unidad",
		ReorderLevel: d(reorderLevel),
		Active:       true,
	}}
	warehouses := []*entity.Warehouse{
		{ID: warehouseA, Name: "Bodega Norte", Code: "BN", Active: true},
		{ID: warehouseB, Name: "Bodega Sur", Code: "BS", Active: true},
	}
	return products, warehouses
}

// ──────────────────────────────────────────────────────────────────────────────
// Recepciones: flujo en dos fases
// ──────────────────────────────────────────────────────────────────────────────

func TestReceipt_CrearNoAfectaSaldo(t *testing.T) {
	products, warehouses := catalog("0")
	env := newTestEnv(products, warehouses)
	uc := stock.NewReceiptUseCase(env.txRunner, env.receipts, env.products, env.warehouses)

	out, err := uc.Create(testUser, dto.CreateReceiptRequest{
		ProductID: productID, WarehouseID: warehouseA, Quantity: d("10"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ReceiptStatusPending, out.Status)
	assert.True(t, env.balance(productID, warehouseA).IsZero(), "pending no mueve el saldo")
	assert.Empty(t, env.ledger.entries, "pending no asienta en el libro")
}

func TestReceipt_CompletarAcreditaYAsienta(t *testing.T) {
	products, warehouses := catalog("0")
	env := newTestEnv(products, warehouses)
	uc := stock.NewReceiptUseCase(env.txRunner, env.receipts, env.products, env.warehouses)

	created, err := uc.Create(testUser, dto.CreateReceiptRequest{
		ProductID: productID, WarehouseID: warehouseA, Quantity: d("10"), Reference: "OC-55",
	})
	require.NoError(t, err)

	out, err := uc.Complete(context.Background(), created.ID, testUser)
	require.NoError(t, err)
	assert.Equal(t, entity.ReceiptStatusCompleted, out.Status)
	require.NotNil(t, out.CompletedAt)
	assert.True(t, env.balance(productID, warehouseA).Equal(d("10")))

	require.Len(t, env.ledger.entries, 1)
	entry := env.ledger.entries[0]
	assert.Equal(t, entity.LedgerTypeReceipt, entry.Type)
	assert.True(t, entry.QuantityChange.Equal(d("10")))
	assert.True(t, entry.QuantityAfter.Equal(d("10")), "el asiento lleva el saldo resultante")
	assert.Equal(t, created.ReceiptNumber, entry.Reference)
	assert.Equal(t, testUser, entry.CreatedBy)
}

func TestReceipt_DobleCompletacionNoDuplicaEfecto(t *testing.T) {
	products, warehouses := catalog("0")
	env := newTestEnv(products, warehouses)
	uc := stock.NewReceiptUseCase(env.txRunner, env.receipts, env.products, env.warehouses)

	created, err := uc.Create(testUser, dto.CreateReceiptRequest{
		ProductID: productID, WarehouseID: warehouseA, Quantity: d("10"),
	})
	require.NoError(t, err)

	_, err = uc.Complete(context.Background(), created.ID, testUser)
	require.NoError(t, err)

	_, err = uc.Complete(context.Background(), created.ID, otherUserID)
	assert.ErrorIs(t, err, domain.ErrInvalidState, "la segunda completación falla")
	assert.True(t, env.balance(productID, warehouseA).Equal(d("10")), "el saldo se acreditó una sola vez")
	assert.Len(t, env.ledger.entries, 1, "un solo asiento")
}

func TestReceipt_CreditosSucesivosSobreParNuevoAcumulan(t *testing.T) {
	products, warehouses := catalog("0")
	env := newTestEnv(products, warehouses)
	uc := stock.NewReceiptUseCase(env.txRunner, env.receipts, env.products, env.warehouses)

	// Dos recepciones sobre un par (producto, bodega) jamás tocado: la primera mutación
	// materializa la fila de saldo y la segunda debe leer el saldo ya acreditado,
	// nunca el cero implícito.
	for i := 0; i < 2; i++ {
		created, err := uc.Create(testUser, dto.CreateReceiptRequest{
			ProductID: productID, WarehouseID: warehouseA, Quantity: d("10"),
		})
		require.NoError(t, err)
		_, err = uc.Complete(context.Background(), created.ID, testUser)
		require.NoError(t, err)
	}

	assert.True(t, env.balance(productID, warehouseA).Equal(d("20")), "los créditos se acumulan")
	require.Len(t, env.ledger.entries, 2)
	assert.True(t, env.ledger.entries[0].QuantityAfter.Equal(d("10")))
	assert.True(t, env.ledger.entries[1].QuantityAfter.Equal(d("20")), "el segundo asiento ve el saldo del primero")

	sum, err := env.ledger.SumChanges(productID, warehouseA)
	require.NoError(t, err)
	assert.True(t, sum.Equal(env.balance(productID, warehouseA)))
}

func TestReceipt_ValidacionesDeEntrada(t *testing.T) {
	products, warehouses := catalog("0")
	env := newTestEnv(products, warehouses)
	uc := stock.NewReceiptUseCase(env.txRunner, env.receipts, env.products, env.warehouses)

	_, err := uc.Create(testUser, dto.CreateReceiptRequest{
		ProductID: productID, WarehouseID: warehouseA, Quantity: d("0"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	_, err = uc.Create(testUser, dto.CreateReceiptRequest{
		ProductID: productID, WarehouseID: warehouseA, Quantity: d("-3"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa")

	_, err = uc.Create(testUser, dto.CreateReceiptRequest{
		ProductID: "no-existe", WarehouseID: warehouseA, Quantity: d("1"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "producto inexistente")

	_, err = uc.Complete(context.Background(), "no-existe", testUser)
	assert.ErrorIs(t, err, domain.ErrNotFound, "recepción inexistente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Entregas: picked → packed → delivered
// ──────────────────────────────────────────────────────────────────────────────

func newDeliveryUC(env *testEnv) *stock.DeliveryUseCase {
	return stock.NewDeliveryUseCase(env.txRunner, env.deliveries, env.stockRepo, env.products, env.warehouses)
}

func TestDelivery_FlujoCompletoDescuentaAlEntregar(t *testing.T) {
	products, warehouses := catalog("0")
	env := newTestEnv(products, warehouses)
	env.setStock(productID, warehouseA, d("20"))
	uc := newDeliveryUC(env)

	created, err := uc.Create(testUser, dto.CreateDeliveryRequest{
		ProductID: productID, WarehouseID: warehouseA, Quantity: d("8"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryStatusPicked, created.Status)
	assert.True(t, env.balance(productID, warehouseA).Equal(d("20")), "crear no descuenta")

	packed, err := uc.Pack(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryStatusPacked, packed.Status)
	require.NotNil(t, packed.PackedAt)
	assert.True(t, env.balance(productID, warehouseA).Equal(d("20")), "empacar no descuenta")

	delivered, err := uc.Deliver(context.Background(), created.ID, testUser)
	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryStatusDelivered, delivered.Status)
	assert.True(t, env.balance(productID, warehouseA).Equal(d("12")))

	require.Len(t, env.ledger.entries, 1)
	entry := env.ledger.entries[0]
	assert.Equal(t, entity.LedgerTypeDelivery, entry.Type)
	assert.True(t, entry.QuantityChange.Equal(d("-8")), "salida con delta negativo")
	assert.True(t, entry.QuantityAfter.Equal(d("12")))
}

func TestDelivery_CrearSinSaldoSuficiente(t *testing.T) {
	products, warehouses := catalog("0")
	env := newTestEnv(products, warehouses)
	env.setStock(productID, warehouseA, d("3"))
	uc := newDeliveryUC(env)

	_, err := uc.Create(testUser, dto.CreateDeliveryRequest{
		ProductID: productID, WarehouseID: warehouseA, Quantity: d("5"),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufficient *stock.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.True(t, insufficient.Available.Equal(d("3")), "el error expone el disponible")
}

func TestDelivery_TransicionesInvalidas(t *testing.T) {
	products, warehouses := catalog("0")
	env := newTestEnv(products, warehouses)
	env.setStock(productID, warehouseA, d("20"))
	uc := newDeliveryUC(env)

	created, err := uc.Create(testUser, dto.CreateDeliveryRequest{
		ProductID: productID, WarehouseID: warehouseA, Quantity: d("5"),
	})
	require.NoError(t, err)

	// Entregar sin empacar: picked no es packed.
	_, err = uc.Deliver(context.Background(), created.ID, testUser)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.True(t, env.balance(productID, warehouseA).Equal(d("20")), "la transición fallida no descuenta")

	_, err = uc.Pack(created.ID)
	require.NoError(t, err)

	// Empacar dos veces.
	_, err = uc.Pack(created.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = uc.Pack("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelivery_EliminarSoloSiNoEntregada(t *testing.T) {
	products, warehouses := catalog("0")
	env := newTestEnv(products, warehouses)
	env.setStock(productID, warehouseA, d("20"))
	uc := newDeliveryUC(env)

	created, err := uc.Create(testUser, dto.CreateDeliveryRequest{
		ProductID: productID, WarehouseID: warehouseA, Quantity: d("5"),
	})
	require.NoError(t, err)
	require.NoError(t, uc.Delete(created.ID), "picked se puede eliminar")

	second, err := uc.Create(testUser, dto.CreateDeliveryRequest{
		ProductID: productID, WarehouseID: warehouseA, Quantity: d("5"),
	})
	require.NoError(t, err)
	_, err = uc.Pack(second.ID)
	require.NoError(t, err)
	_, err = uc.Deliver(context.Background(), second.ID, testUser)
	require.NoError(t, err)

	err = uc.Delete(second.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState, "delivered ya movió stock y no se borra")
}

// ──────────────────────────────────────────────────────────────────────────────
// Traslados: ambas piernas o ninguna
// ──────────────────────────────────────────────────────────────────────────────

func TestTransfer_MueveAmbasPiernas(t *testing.T) {
	products, warehouses := catalog("0")
	env := newTestEnv(products, warehouses)
	env.setStock(productID, warehouseA, d("10"))
	uc := stock.NewTransferUseCase(env.txRunner, env.transfers, env.products, env.warehouses)

	out, err := uc.Create(context.Background(), testUser, dto.CreateTransferRequest{
		ProductID: productID, FromWarehouseID: warehouseA, ToWarehouseID: warehouseB, Quantity: d("4"),
	})
	require.NoError(t, err)
	assert.True(t, env.balance(productID, warehouseA).Equal(d("6")))
	assert.True(t, env.balance(productID, warehouseB).Equal(d("4")))

	require.Len(t, env.ledger.entries, 2, "un asiento por pierna")
	outEntry, inEntry := env.ledger.entries[0], env.ledger.entries[1]
	assert.Equal(t, entity.LedgerTypeTransferOut, outEntry.Type)
	assert.Equal(t, warehouseA, outEntry.WarehouseID)
	assert.True(t, outEntry.QuantityChange.Equal(d("-4")))
	assert.Equal(t, entity.LedgerTypeTransferIn, inEntry.Type)
	assert.Equal(t, warehouseB, inEntry.WarehouseID)
	assert.True(t, inEntry.QuantityChange.Equal(d("4")))
	assert.Equal(t, out.TransferNumber, outEntry.Reference)
	assert.Equal(t, out.TransferNumber, inEntry.Reference, "ambos asientos comparten referencia")
}

func TestTransfer_SinSaldoNoMueveNada(t *testing.T) {
	products, warehouses := catalog("0")
	env := newTestEnv(products, warehouses)
	env.setStock(productID, warehouseA, d("2"))
	uc := stock.NewTransferUseCase(env.txRunner, env.transfers, env.products, env.warehouses)

	_, err := uc.Create(context.Background(), testUser, dto.CreateTransferRequest{
		ProductID: productID, FromWarehouseID: warehouseA, ToWarehouseID: warehouseB, Quantity: d("5"),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, env.balance(productID, warehouseA).Equal(d("2")), "origen intacto")
	assert.True(t, env.balance(productID, warehouseB).IsZero(), "destino intacto")
	assert.Empty(t, env.ledger.entries, "ningún asiento")
	assert.Empty(t, env.transfers.rows, "ningún documento")
}

// failingWarehouseRepo simula una falla de infraestructura en la consulta de bodegas.
type failingWarehouseRepo struct {
	*fakeWarehouseRepo
	err error
}

func (f *failingWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return nil, f.err
}

func TestTransfer_FallaDeInfraNoSeReportaComoNotFound(t *testing.T) {
	products, warehouses := catalog("0")
	env := newTestEnv(products, warehouses)
	repoErr := errors.New("conexión perdida")
	failing := &failingWarehouseRepo{fakeWarehouseRepo: env.warehouses, err: repoErr}
	uc := stock.NewTransferUseCase(env.txRunner, env.transfers, env.products, failing)

	_, err := uc.Create(context.Background(), testUser, dto.CreateTransferRequest{
		ProductID: productID, FromWarehouseID: warehouseA, ToWarehouseID: warehouseB, Quantity: d("1"),
	})
	assert.ErrorIs(t, err, repoErr, "el error del repositorio se propaga")
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestTransfer_MismaBodegaRechazado(t *testing.T) {
	products, warehouses := catalog("0")
	env := newTestEnv(products, warehouses)
	uc := stock.NewTransferUseCase(env.txRunner, env.transfers, env.products, env.warehouses)

	_, err := uc.Create(context.Background(), testUser, dto.CreateTransferRequest{
		ProductID: productID, FromWarehouseID: warehouseA, ToWarehouseID: warehouseA, Quantity: d("1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ajustes: delta firmado con política de piso
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustment_NegativoRecortaEnCeroPorDefecto(t *testing.T) {
	products, warehouses := catalog("0")
	env := newTestEnv(products, warehouses)
	env.setStock(productID, warehouseA, d("3"))
	uc := stock.NewAdjustmentUseCase(env.txRunner, env.adjustments, env.products, env.warehouses, false)

	out, err := uc.Create(context.Background(), testUser, dto.CreateAdjustmentRequest{
		ProductID: productID, WarehouseID: warehouseA, Quantity: d("-10"), Reason: "conteo físico",
	})
	require.NoError(t, err)
	assert.True(t, env.balance(productID, warehouseA).IsZero())
	assert.True(t, out.Quantity.Equal(d("-10")), "lo pedido se conserva")
	assert.True(t, out.AppliedChange.Equal(d("-3")), "lo aplicado refleja el recorte")

	require.Len(t, env.ledger.entries, 1)
	assert.True(t, env.ledger.entries[0].QuantityChange.Equal(d("-3")))
}

func TestAdjustment_NegativoPermitidoConPolitica(t *testing.T) {
	products, warehouses := catalog("0")
	env := newTestEnv(products, warehouses)
	env.setStock(productID, warehouseA, d("3"))
	uc := stock.NewAdjustmentUseCase(env.txRunner, env.adjustments, env.products, env.warehouses, true)

	out, err := uc.Create(context.Background(), testUser, dto.CreateAdjustmentRequest{
		ProductID: productID, WarehouseID: warehouseA, Quantity: d("-10"), Reason: "merma",
	})
	require.NoError(t, err)
	assert.True(t, env.balance(productID, warehouseA).Equal(d("-7")), "con la política activa el saldo queda negativo")
	assert.True(t, out.AppliedChange.Equal(d("-10")))
}

func TestAdjustment_Validaciones(t *testing.T) {
	products, warehouses := catalog("0")
	env := newTestEnv(products, warehouses)
	uc := stock.NewAdjustmentUseCase(env.txRunner, env.adjustments, env.products, env.warehouses, false)

	_, err := uc.Create(context.Background(), testUser, dto.CreateAdjustmentRequest{
		ProductID: productID, WarehouseID: warehouseA, Quantity: d("0"), Reason: "x",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "delta cero")

	_, err = uc.Create(context.Background(), testUser, dto.CreateAdjustmentRequest{
		ProductID: productID, WarehouseID: warehouseA, Quantity: d("5"), Reason: "",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "la razón es obligatoria")
}

// ──────────────────────────────────────────────────────────────────────────────
// Alertas: umbral, deduplicación y reconocimiento
// ──────────────────────────────────────────────────────────────────────────────

func TestAlert_SeDisparaAlCruzarUmbral(t *testing.T) {
	products, warehouses := catalog("5")
	env := newTestEnv(products, warehouses)
	env.setStock(productID, warehouseA, d("10"))
	uc := newDeliveryUC(env)

	created, err := uc.Create(testUser, dto.CreateDeliveryRequest{
		ProductID: productID, WarehouseID: warehouseA, Quantity: d("6"),
	})
	require.NoError(t, err)
	_, err = uc.Pack(created.ID)
	require.NoError(t, err)
	_, err = uc.Deliver(context.Background(), created.ID, testUser)
	require.NoError(t, err)

	require.Len(t, env.alerts.alerts, 1, "10-6=4 <= umbral 5")
	alert := env.alerts.alerts[0]
	assert.True(t, alert.Quantity.Equal(d("4")))
	assert.True(t, alert.ReorderLevel.Equal(d("5")))
	assert.False(t, alert.Acknowledged)
}

func TestAlert_DeduplicaMientrasHayaUnaAbierta(t *testing.T) {
	products, warehouses := catalog("5")
	env := newTestEnv(products, warehouses)
	env.setStock(productID, warehouseA, d("6"))
	uc := stock.NewAdjustmentUseCase(env.txRunner, env.adjustments, env.products, env.warehouses, false)

	_, err := uc.Create(context.Background(), testUser, dto.CreateAdjustmentRequest{
		ProductID: productID, WarehouseID: warehouseA, Quantity: d("-2"), Reason: "ajuste 1",
	})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), testUser, dto.CreateAdjustmentRequest{
		ProductID: productID, WarehouseID: warehouseA, Quantity: d("-1"), Reason: "ajuste 2",
	})
	require.NoError(t, err)

	assert.Len(t, env.alerts.alerts, 1, "una sola alerta mientras la primera siga abierta")
}

func TestAlert_ReconocerPermiteNuevaAlerta(t *testing.T) {
	products, warehouses := catalog("5")
	env := newTestEnv(products, warehouses)
	env.setStock(productID, warehouseA, d("6"))
	adjustUC := stock.NewAdjustmentUseCase(env.txRunner, env.adjustments, env.products, env.warehouses, false)
	alertUC := stock.NewAlertUseCase(env.alerts)

	_, err := adjustUC.Create(context.Background(), testUser, dto.CreateAdjustmentRequest{
		ProductID: productID, WarehouseID: warehouseA, Quantity: d("-2"), Reason: "ajuste",
	})
	require.NoError(t, err)
	require.Len(t, env.alerts.alerts, 1)

	acked, err := alertUC.Acknowledge(env.alerts.alerts[0].ID, testUser)
	require.NoError(t, err)
	assert.True(t, acked.Acknowledged)
	assert.Equal(t, testUser, acked.AcknowledgedBy)

	// Reconocida: el siguiente movimiento bajo umbral vuelve a alertar.
	_, err = adjustUC.Create(context.Background(), testUser, dto.CreateAdjustmentRequest{
		ProductID: productID, WarehouseID: warehouseA, Quantity: d("-1"), Reason: "otro ajuste",
	})
	require.NoError(t, err)
	assert.Len(t, env.alerts.alerts, 2)
}

func TestAlert_ReconocerDosVecesFalla(t *testing.T) {
	products, warehouses := catalog("5")
	env := newTestEnv(products, warehouses)
	env.setStock(productID, warehouseA, d("6"))
	adjustUC := stock.NewAdjustmentUseCase(env.txRunner, env.adjustments, env.products, env.warehouses, false)
	alertUC := stock.NewAlertUseCase(env.alerts)

	_, err := adjustUC.Create(context.Background(), testUser, dto.CreateAdjustmentRequest{
		ProductID: productID, WarehouseID: warehouseA, Quantity: d("-2"), Reason: "ajuste",
	})
	require.NoError(t, err)
	id := env.alerts.alerts[0].ID

	_, err = alertUC.Acknowledge(id, testUser)
	require.NoError(t, err)
	_, err = alertUC.Acknowledge(id, otherUserID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = alertUC.Acknowledge("no-existe", testUser)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAlert_UmbralCeroNoAlerta(t *testing.T) {
	products, warehouses := catalog("0")
	env := newTestEnv(products, warehouses)
	env.setStock(productID, warehouseA, d("1"))
	uc := stock.NewAdjustmentUseCase(env.txRunner, env.adjustments, env.products, env.warehouses, false)

	_, err := uc.Create(context.Background(), testUser, dto.CreateAdjustmentRequest{
		ProductID: productID, WarehouseID: warehouseA, Quantity: d("-1"), Reason: "ajuste",
	})
	require.NoError(t, err)
	assert.Empty(t, env.alerts.alerts, "umbral 0 desactiva las alertas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Ley de conciliación: la suma del libro coincide con el saldo
// ──────────────────────────────────────────────────────────────────────────────

func TestLedger_SumaCoincideConSaldo(t *testing.T) {
	products, warehouses := catalog("0")
	env := newTestEnv(products, warehouses)
	receiptUC := stock.NewReceiptUseCase(env.txRunner, env.receipts, env.products, env.warehouses)
	deliveryUC := newDeliveryUC(env)
	adjustUC := stock.NewAdjustmentUseCase(env.txRunner, env.adjustments, env.products, env.warehouses, false)

	rc, err := receiptUC.Create(testUser, dto.CreateReceiptRequest{
		ProductID: productID, WarehouseID: warehouseA, Quantity: d("50"),
	})
	require.NoError(t, err)
	_, err = receiptUC.Complete(context.Background(), rc.ID, testUser)
	require.NoError(t, err)

	dl, err := deliveryUC.Create(testUser, dto.CreateDeliveryRequest{
		ProductID: productID, WarehouseID: warehouseA, Quantity: d("12"),
	})
	require.NoError(t, err)
	_, err = deliveryUC.Pack(dl.ID)
	require.NoError(t, err)
	_, err = deliveryUC.Deliver(context.Background(), dl.ID, testUser)
	require.NoError(t, err)

	_, err = adjustUC.Create(context.Background(), testUser, dto.CreateAdjustmentRequest{
		ProductID: productID, WarehouseID: warehouseA, Quantity: d("-3"), Reason: "merma",
	})
	require.NoError(t, err)

	sum, err := env.ledger.SumChanges(productID, warehouseA)
	require.NoError(t, err)
	balance := env.balance(productID, warehouseA)
	assert.True(t, sum.Equal(balance), "suma del libro %s == saldo %s", sum, balance)
	assert.True(t, balance.Equal(d("35")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Exportación del libro
// ──────────────────────────────────────────────────────────────────────────────

type stubExporter struct {
	got []*entity.LedgerEntry
}

func (s *stubExporter) Export(entries []*entity.LedgerEntry) ([]byte, error) {
	s.got = entries
	return []byte("xlsx"), nil
}

func TestLedger_ExportUsaElExportador(t *testing.T) {
	products, warehouses := catalog("0")
	env := newTestEnv(products, warehouses)
	receiptUC := stock.NewReceiptUseCase(env.txRunner, env.receipts, env.products, env.warehouses)

	rc, err := receiptUC.Create(testUser, dto.CreateReceiptRequest{
		ProductID: productID, WarehouseID: warehouseA, Quantity: d("5"),
	})
	require.NoError(t, err)
	_, err = receiptUC.Complete(context.Background(), rc.ID, testUser)
	require.NoError(t, err)

	exporter := &stubExporter{}
	ledgerUC := stock.NewLedgerUseCase(env.ledger, exporter)
	data, err := ledgerUC.Export(productID, warehouseA, 100)
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), data)
	require.Len(t, exporter.got, 1)
	assert.Equal(t, entity.LedgerTypeReceipt, exporter.got[0].Type)
}

// Verifica que InsufficientStockError participe en errors.Is/As.
func TestInsufficientStockError_Unwrap(t *testing.T) {
	err := &stock.InsufficientStockError{Available: d("2")}
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
}
