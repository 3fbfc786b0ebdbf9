package services

import (
	"errors"
	"testing"

	"battle-arena-system/store"
)

func TestPurchaseDebitsAndRecords(t *testing.T) {
	st := store.NewMemoryStore()
	players := NewPlayerService(st)
	shop := NewShopService(st, players)

	player, _ := players.Create("buyer")
	item, err := shop.Purchase(player.ID, "speed_boots")
	if err != nil {
		t.Fatal(err)
	}
	if item.Price != 250 {
		t.Errorf("price = %d, want 250", item.Price)
	}

	updated, _ := players.Get(player.ID)
	if updated.Coins != 750 {
		t.Errorf("coins = %d, want 750", updated.Coins)
	}

	inv, _ := shop.Inventory(player.ID)
	if len(inv) != 1 || inv[0].ItemID != "speed_boots" {
		t.Errorf("inventory = %+v", inv)
	}
}

func TestPurchaseInsufficientCoins(t *testing.T) {
	st := store.NewMemoryStore()
	players := NewPlayerService(st)
	shop := NewShopService(st, players)

	player, _ := players.Create("broke")
	// Drain below the hammer's price.
	if _, err := players.AdjustCoins(player.ID, -900); err != nil {
		t.Fatal(err)
	}

	_, err := shop.Purchase(player.ID, "legendary_hammer")
	if !errors.Is(err, ErrInsufficientCoins) {
		t.Fatalf("err = %v, want ErrInsufficientCoins", err)
	}

	// Nothing was written.
	updated, _ := players.Get(player.ID)
	if updated.Coins != 100 {
		t.Errorf("coins = %d, want 100", updated.Coins)
	}
	inv, _ := shop.Inventory(player.ID)
	if len(inv) != 0 {
		t.Errorf("inventory should be empty, got %d", len(inv))
	}
}

func TestPurchaseUnknownItem(t *testing.T) {
	st := store.NewMemoryStore()
	players := NewPlayerService(st)
	shop := NewShopService(st, players)
	player, _ := players.Create("curious")

	_, err := shop.Purchase(player.ID, "excalibur")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestAdjustCoinsRejectsNegativeBalance(t *testing.T) {
	st := store.NewMemoryStore()
	players := NewPlayerService(st)
	player, _ := players.Create("guard")

	_, err := players.AdjustCoins(player.ID, -1001)
	if !errors.Is(err, ErrInsufficientCoins) {
		t.Fatalf("err = %v, want ErrInsufficientCoins", err)
	}
	updated, _ := players.Get(player.ID)
	if updated.Coins != 1000 {
		t.Errorf("coins = %d, want untouched 1000", updated.Coins)
	}
}
