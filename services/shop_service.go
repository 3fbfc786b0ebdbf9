package services

import (
	"fmt"
	"time"

	"battle-arena-system/models"
	"battle-arena-system/store"

	"github.com/google/uuid"
)

type ShopService struct {
	Store   store.Store
	Players *PlayerService
}

func NewShopService(st store.Store, players *PlayerService) *ShopService {
	return &ShopService{Store: st, Players: players}
}

// Purchase debits the item price and inserts an inventory row. The
// debit rejects before any write if the balance would go negative.
// The two writes are not one transaction: if the inventory insert
// fails after the debit commits, the coins are gone with no item.
// TODO: fold the debit and the insert into a single store call.
func (s *ShopService) Purchase(playerID, itemID string) (*models.ShopItem, error) {
	item := models.FindShopItem(itemID)
	if item == nil {
		return nil, fmt.Errorf("shop item %s: %w", itemID, store.ErrNotFound)
	}

	if _, err := s.Players.AdjustCoins(playerID, -item.Price); err != nil {
		return nil, err
	}

	row := &models.InventoryItem{
		ID:          uuid.NewString(),
		PlayerID:    playerID,
		ItemID:      itemID,
		Quantity:    1,
		PurchasedAt: time.Now().UTC(),
	}
	if err := s.Store.AddInventoryItem(row); err != nil {
		return nil, err
	}
	fmt.Printf("🛒 Purchase: %s bought %s for %d coins\n", playerID, itemID, item.Price)
	return item, nil
}

func (s *ShopService) Inventory(playerID string) ([]models.InventoryItem, error) {
	return s.Store.InventoryByPlayer(playerID)
}
