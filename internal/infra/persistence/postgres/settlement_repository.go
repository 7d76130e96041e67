package postgres

import (
	"context"

	"quickeats/internal/domain/entity"
	"quickeats/internal/domain/repository"
	"quickeats/internal/errors"
	"quickeats/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// settlementRepository implements the domain.SettlementRepository interface using GORM.
type settlementRepository struct {
	db *gorm.DB
}

// NewSettlementRepository is the constructor for settlementRepository.
func NewSettlementRepository(db *gorm.DB) repository.SettlementRepository {
	return &settlementRepository{db: db}
}

// CreateIncome inserts the platform income row.
func (repo *settlementRepository) CreateIncome(ctx context.Context, income *entity.Income) error {
	incomeM := &model.IncomeModel{OrderID: income.OrderID, Amount: income.Amount}
	if err := repo.db.WithContext(ctx).Create(incomeM).Error; err != nil {
		return translateWriteError(err, "failed to create income")
	}

	income.ID = incomeM.ID
	income.CreatedAt = incomeM.CreatedAt

	return nil
}

// CreateShopWallet inserts the shop payout row.
func (repo *settlementRepository) CreateShopWallet(ctx context.Context, wallet *entity.ShopWallet) error {
	walletM := &model.ShopWalletModel{ShopID: wallet.ShopID, OrderID: wallet.OrderID, Amount: wallet.Amount}
	if err := repo.db.WithContext(ctx).Create(walletM).Error; err != nil {
		return translateWriteError(err, "failed to create shop wallet")
	}

	wallet.ID = walletM.ID
	wallet.CreatedAt = walletM.CreatedAt

	return nil
}

// deliveryFeeRepository implements the domain.DeliveryFeeRepository interface using GORM.
type deliveryFeeRepository struct {
	db *gorm.DB
}

// NewDeliveryFeeRepository is the constructor for deliveryFeeRepository.
func NewDeliveryFeeRepository(db *gorm.DB) repository.DeliveryFeeRepository {
	return &deliveryFeeRepository{db: db}
}

// GetDeliveryFeeConfig returns the first delivery_fee row.
func (repo *deliveryFeeRepository) GetDeliveryFeeConfig(ctx context.Context) (*entity.DeliveryFeeConfig, error) {
	var feeM model.DeliveryFeeModel
	if err := repo.db.WithContext(ctx).Order("id").First(&feeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryFeeConfigNotFound
		}

		return nil, errors.Wrap(err, "failed to load delivery fee config")
	}

	return &entity.DeliveryFeeConfig{
		ID:        feeM.ID,
		BaseFee:   feeM.BaseFee,
		PerKm:     feeM.PerKm,
		FixedTime: feeM.FixedTime,
	}, nil
}
