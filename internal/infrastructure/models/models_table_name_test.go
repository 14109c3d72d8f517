package models

import "testing"

func TestTableNames(t *testing.T) {
	if got := (ShopDesignTokens{}).TableName(); got != "shop_design_tokens" {
		t.Fatalf("unexpected ShopDesignTokens table name: %s", got)
	}
	if got := (ShopHours{}).TableName(); got != "shop_hours" {
		t.Fatalf("unexpected ShopHours table name: %s", got)
	}
}
