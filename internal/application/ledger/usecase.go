package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/topcar/stock-api/internal/application/dto"
	"github.com/topcar/stock-api/internal/domain"
	"github.com/topcar/stock-api/internal/domain/entity"
	"github.com/topcar/stock-api/internal/domain/repository"
)

// UseCase es el motor del ledger: único mutador de stock.quantity y único
// escritor de transactions. Cada operación bloquea la fila del artículo
// (SELECT FOR UPDATE) y aplica cantidad + fila del ledger en la misma tx,
// de modo que nunca queda una mutación a medias.
type UseCase struct {
	txRunner TxRunner
}

// NewUseCase construye el motor del ledger.
func NewUseCase(txRunner TxRunner) *UseCase {
	return &UseCase{txRunner: txRunner}
}

// Checkout descarga qty unidades de un artículo hacia un trabajo.
// Registra la salida con change_qty negativo y snapshot del precio actual.
func (uc *UseCase) Checkout(ctx context.Context, in dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	jobNo := strings.TrimSpace(in.JobNo)
	if in.ItemID <= 0 || in.Quantity <= 0 || jobNo == "" {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.CheckoutResponse
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.StockItemRepository,
		txRepo repository.TransactionRepository,
	) error {
		item, err := itemRepo.GetForUpdate(in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if item.Quantity < in.Quantity {
			return domain.ErrInsufficientStock
		}

		newQty := item.Quantity - in.Quantity
		if err := itemRepo.UpdateQuantity(item.ID, newQty); err != nil {
			return err
		}
		if err := txRepo.Create(&entity.Transaction{
			ItemID:    item.ID,
			ChangeQty: -in.Quantity,
			JobNo:     jobNo,
			Action:    entity.ActionCheckout,
			UnitPrice: item.UnitPrice,
			CreatedAt: time.Now().UTC(),
		}); err != nil {
			return err
		}

		out = &dto.CheckoutResponse{
			NewQuantity:     newQty,
			LowStockAlert:   newQty <= item.MinLevel,
			UnitPriceAtTime: item.UnitPrice,
			LineValue:       decimal.NewFromInt(in.Quantity).Mul(item.UnitPrice).Round(2),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Receive ingresa qty unidades de un artículo al stock.
// Las entradas no llevan job_no (queda NULL en el ledger).
func (uc *UseCase) Receive(ctx context.Context, in dto.ReceiveRequest) (*dto.ReceiveResponse, error) {
	if in.ItemID <= 0 || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.ReceiveResponse
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.StockItemRepository,
		txRepo repository.TransactionRepository,
	) error {
		item, err := itemRepo.GetForUpdate(in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		newQty := item.Quantity + in.Quantity
		if err := itemRepo.UpdateQuantity(item.ID, newQty); err != nil {
			return err
		}
		if err := txRepo.Create(&entity.Transaction{
			ItemID:    item.ID,
			ChangeQty: in.Quantity,
			Action:    entity.ActionReceive,
			UnitPrice: item.UnitPrice,
			CreatedAt: time.Now().UTC(),
		}); err != nil {
			return err
		}

		out = &dto.ReceiveResponse{
			NewQuantity:     newQty,
			UnitPriceAtTime: item.UnitPrice,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Reverse anula una transacción previa insertando una fila reverse enlazada
// vía reversed_from, con el delta negado y el MISMO precio snapshot de la
// original (no se vuelve a leer el precio actual del catálogo).
// Rechaza con ErrInvalidReversal: anular una reversa, anular dos veces la
// misma transacción, o una anulación que dejaría stock negativo.
func (uc *UseCase) Reverse(ctx context.Context, in dto.ReverseRequest) (*dto.ReverseResponse, error) {
	if in.TransactionID <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.ReverseResponse
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.StockItemRepository,
		txRepo repository.TransactionRepository,
	) error {
		original, err := txRepo.GetByID(in.TransactionID)
		if err != nil {
			return err
		}
		if original == nil {
			return domain.ErrNotFound
		}
		if original.IsReversal() {
			return domain.ErrInvalidReversal
		}
		reversed, err := txRepo.HasReversal(original.ID)
		if err != nil {
			return err
		}
		if reversed {
			return domain.ErrInvalidReversal
		}

		item, err := itemRepo.GetForUpdate(original.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		// Anular un receive resta stock; anular un checkout lo devuelve.
		newQty := item.Quantity - original.ChangeQty
		if newQty < 0 {
			return domain.ErrInvalidReversal
		}
		if err := itemRepo.UpdateQuantity(item.ID, newQty); err != nil {
			return err
		}

		reversedFrom := original.ID
		if err := txRepo.Create(&entity.Transaction{
			ItemID:       item.ID,
			ChangeQty:    -original.ChangeQty,
			JobNo:        original.JobNo,
			Action:       entity.ActionReverse,
			UnitPrice:    original.UnitPrice,
			ReversedFrom: &reversedFrom,
			CreatedAt:    time.Now().UTC(),
		}); err != nil {
			return err
		}

		out = &dto.ReverseResponse{
			ItemID:       item.ID,
			NewQuantity:  newQty,
			ReversedFrom: original.ID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
