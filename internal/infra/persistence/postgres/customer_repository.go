package postgres

import (
	"context"

	"quickeats/internal/domain/entity"
	domainerrors "quickeats/internal/domain/errors"
	"quickeats/internal/domain/repository"
	"quickeats/internal/errors"
	"quickeats/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// customerRepository implements the domain.CustomerRepository interface using GORM.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

// CreateCustomer persists a new customer.
func (repo *customerRepository) CreateCustomer(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCustomer
		}

		return translateWriteError(err, "failed to create customer")
	}

	customer.ID = customerM.ID
	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

// FindCustomerByID retrieves a customer by ID.
func (repo *customerRepository) FindCustomerByID(ctx context.Context, id int64) (*entity.Customer, error) {
	var customerM model.CustomerModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by id")
	}

	return toCustomerDomain(&customerM), nil
}

// FindCustomerByMobile retrieves a customer by normalized mobile number.
func (repo *customerRepository) FindCustomerByMobile(ctx context.Context, mobile string) (*entity.Customer, error) {
	var customerM model.CustomerModel
	if err := repo.db.WithContext(ctx).Where("mobile = ?", mobile).First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by mobile")
	}

	return toCustomerDomain(&customerM), nil
}

// ExistsByEmailOrMobile reports whether either value is already registered.
func (repo *customerRepository) ExistsByEmailOrMobile(ctx context.Context, email, mobile string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&model.CustomerModel{}).
		Where("email = ? OR mobile = ?", email, mobile).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check customer existence")
	}

	return count > 0, nil
}

// EmailTakenByOther reports whether email is registered to a different customer.
func (repo *customerRepository) EmailTakenByOther(ctx context.Context, email string, id int64) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&model.CustomerModel{}).
		Where("email = ? AND id <> ?", email, id).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check email ownership")
	}

	return count > 0, nil
}

// UpdateProfile saves the editable profile columns.
func (repo *customerRepository) UpdateProfile(ctx context.Context, customer *entity.Customer) error {
	result := repo.db.WithContext(ctx).Model(&model.CustomerModel{ID: customer.ID}).
		Select("name", "email", "image", "updated_at").
		Updates(&model.CustomerModel{
			Name:  customer.Name,
			Email: customer.Email,
			Image: customer.Image,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateCustomer
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update customer profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// UpdateFCMToken replaces the customer's push token.
func (repo *customerRepository) UpdateFCMToken(ctx context.Context, id int64, token string) error {
	result := repo.db.WithContext(ctx).Model(&model.CustomerModel{ID: id}).Update("fcm_token", token)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update customer push token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	return &entity.Customer{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Mobile:    data.Mobile,
		Image:     data.Image,
		Active:    data.Active,
		Deleted:   data.Deleted,
		FCMToken:  data.FCMToken,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	return &model.CustomerModel{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Mobile:    data.Mobile,
		Image:     data.Image,
		Active:    data.Active,
		Deleted:   data.Deleted,
		FCMToken:  data.FCMToken,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
