package main

import (
	"quickeats/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.CustomerModel{},
		model.OTPModel{},
		model.ShopModel{},
		model.ShopFeedbackModel{},
		model.ShopCategoryModel{},
		model.CategoryModel{},
		model.ProductModel{},
		model.ProductVariantModel{},
		model.PromotionModel{},
		model.ProductPromotionModel{},
		model.OrderModel{},
		model.OrderLineModel{},
		model.IncomeModel{},
		model.ShopWalletModel{},
		model.DeliveryFeeModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
