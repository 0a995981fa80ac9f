package commands

import (
	"context"
	"time"

	"pantryshare/internal/domain/item"
	"pantryshare/internal/domain/product"
	"pantryshare/internal/infra/db"
	"pantryshare/internal/pkg/clock"
	"pantryshare/internal/pkg/errs"
	"pantryshare/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const ingestTxRetries = 3

type ReceiptParams struct {
	StoreName      *string
	PurchaseDate   *time.Time
	Total          *float64
	ImageURLs      []string
	NonFoodIgnored []string
	Raw            []byte
}

type LineItemParams struct {
	Name                   string
	Qty                    float64
	Unit                   string
	Price                  *float64
	Category               *string
	Storage                *string
	EstimatedShelfLifeDays *int32
	PurchaseDate           *time.Time
	ExpiryDate             *time.Time
}

type IngestParams struct {
	HouseholdID uuid.UUID
	OwnerID     uuid.UUID
	Receipt     *ReceiptParams
	Lines       []LineItemParams
}

type IngestResult struct {
	ReceiptID    *uuid.UUID
	ItemIDs      []uuid.UUID
	ItemsCreated int
}

type InventoryCommands interface {
	Ingest(ctx context.Context, p IngestParams) (*IngestResult, error)
}

type inventoryCommandsImpl struct {
	receiptRepo ReceiptRepository
	itemRepo    ItemRepository
	products    ProductLookup
	pool        *pgxpool.Pool
	clock       clock.Clock
}

func NewInventoryCommands(
	receiptRepo ReceiptRepository,
	itemRepo ItemRepository,
	products ProductLookup,
	pool *pgxpool.Pool,
	clk clock.Clock,
) InventoryCommands {
	return &inventoryCommandsImpl{
		receiptRepo: receiptRepo,
		itemRepo:    itemRepo,
		products:    products,
		pool:        pool,
		clock:       clk,
	}
}

// Ingest turns one parsed receipt scan into persisted items. The receipt row
// is created before the items so every item can carry a stable receiptId, and
// both commit in one transaction: the batch inserts whole or not at all.
func (c *inventoryCommandsImpl) Ingest(ctx context.Context, p IngestParams) (*IngestResult, error) {
	if len(p.Lines) == 0 {
		return nil, ErrNoLineItems
	}

	now := c.clock.Now()

	catalog, err := c.lookupProducts(ctx, p.Lines)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	var (
		receipt   *item.Receipt
		receiptID *uuid.UUID
	)
	if p.Receipt != nil {
		receiptPurchase := now
		if p.Receipt.PurchaseDate != nil {
			receiptPurchase = *p.Receipt.PurchaseDate
		}
		receipt = item.NewReceipt(item.NewReceiptParams{
			HouseholdID:    p.HouseholdID,
			UserID:         p.OwnerID,
			StoreName:      p.Receipt.StoreName,
			PurchaseDate:   receiptPurchase,
			Total:          p.Receipt.Total,
			ImageURLs:      p.Receipt.ImageURLs,
			NonFoodIgnored: p.Receipt.NonFoodIgnored,
			Raw:            p.Receipt.Raw,
		}, now)
		id := receipt.ID()
		receiptID = &id
	}

	items := make([]*item.Item, 0, len(p.Lines))
	for _, line := range p.Lines {
		it, err := c.materializeLine(p, line, catalog, receipt, receiptID, now)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidLineItem)
		}
		items = append(items, it)
	}

	// The multi-row insert can deadlock against concurrent claims touching
	// the same items; serialization failures are retried.
	_, err = shared.RunInTxWithRetry(ctx, c.pool, ingestTxRetries, func(tx db.DBTX) (struct{}, error) {
		if receipt != nil {
			if err := c.receiptRepo.Create(ctx, tx, receipt); err != nil {
				return struct{}{}, err
			}
		}
		return struct{}{}, c.itemRepo.CreateBatch(ctx, tx, items)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	itemIDs := make([]uuid.UUID, len(items))
	for i, it := range items {
		itemIDs[i] = it.ID()
	}

	return &IngestResult{
		ReceiptID:    receiptID,
		ItemIDs:      itemIDs,
		ItemsCreated: len(itemIDs),
	}, nil
}

// lookupProducts resolves catalog matches for all lines in a single batched
// query, one lookup per distinct normalized name.
func (c *inventoryCommandsImpl) lookupProducts(ctx context.Context, lines []LineItemParams) (map[string]*ProductSnapshot, error) {
	names := make([]string, len(lines))
	for i, line := range lines {
		names[i] = line.Name
	}

	distinct := product.DedupeNormalized(names)
	snaps, err := c.products.FindByNormalizedNames(ctx, distinct)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*ProductSnapshot, len(snaps))
	for _, snap := range snaps {
		byName[snap.NormalizedName] = snap
	}
	return byName, nil
}

func (c *inventoryCommandsImpl) materializeLine(
	p IngestParams,
	line LineItemParams,
	catalog map[string]*ProductSnapshot,
	receipt *item.Receipt,
	receiptID *uuid.UUID,
	now time.Time,
) (*item.Item, error) {
	// Purchase date: explicit per-line date, else the receipt's, else now.
	purchase := now
	if line.PurchaseDate != nil {
		purchase = *line.PurchaseDate
	} else if receipt != nil {
		purchase = receipt.PurchaseDate()
	}

	var (
		productID *uuid.UUID
		shelfLife *int32
	)
	if snap, ok := catalog[product.Normalize(line.Name)]; ok {
		id := snap.ID
		productID = &id
		shelfLife = snap.DefaultShelfLifeDays
	}
	if shelfLife == nil {
		// No catalog shelf life: the extractor's per-line estimate is the
		// next best signal before the fallback window kicks in.
		shelfLife = line.EstimatedShelfLifeDays
	}

	expiry := item.ComputeExpiry(purchase, line.ExpiryDate, shelfLife)

	return item.NewItem(item.NewItemParams{
		HouseholdID:  p.HouseholdID,
		OwnerID:      p.OwnerID,
		ProductID:    productID,
		DisplayName:  line.Name,
		Qty:          line.Qty,
		Unit:         line.Unit,
		Category:     line.Category,
		Storage:      line.Storage,
		Price:        line.Price,
		PurchaseDate: purchase,
		ExpiryDate:   expiry,
		ReceiptID:    receiptID,
	}, now)
}
