package main

import (
	"shoply/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.AddressModel{},
		model.UserOrderRefModel{},
		model.ShopModel{},
		model.ProductModel{},
		model.VariantModel{},
		model.CartModel{},
		model.CartLineModel{},
		model.OrderModel{},
		model.OrderShopGroupModel{},
		model.OrderLineModel{},
		model.DiscountModel{},
		model.DiscountProductModel{},
		model.DiscountUsageModel{},
		model.InventoryModel{},
		model.InventoryReservationModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
