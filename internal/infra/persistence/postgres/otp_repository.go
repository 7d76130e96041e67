package postgres

import (
	"context"
	"time"

	"quickeats/internal/domain/entity"
	domainerrors "quickeats/internal/domain/errors"
	"quickeats/internal/domain/repository"
	"quickeats/internal/errors"
	"quickeats/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// otpRepository implements the domain.OTPRepository interface using GORM.
type otpRepository struct {
	db *gorm.DB
}

// NewOTPRepository is the constructor for otpRepository.
func NewOTPRepository(db *gorm.DB) repository.OTPRepository {
	return &otpRepository{db: db}
}

// CreateOTP stores a hashed code.
func (repo *otpRepository) CreateOTP(ctx context.Context, otp *entity.OTP) error {
	otpM := &model.OTPModel{
		Mobile:    otp.Mobile,
		Email:     otp.Email,
		CodeHash:  otp.CodeHash,
		ExpiresAt: otp.ExpiresAt,
	}
	if err := repo.db.WithContext(ctx).Create(otpM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store otp")
	}

	otp.ID = otpM.ID
	otp.CreatedAt = otpM.CreatedAt

	return nil
}

// FindActiveOTPs lists unexpired codes for mobile, newest first.
func (repo *otpRepository) FindActiveOTPs(ctx context.Context, mobile string, now time.Time) ([]*entity.OTP, error) {
	var otpMs []*model.OTPModel
	err := repo.db.WithContext(ctx).
		Where("mobile = ? AND expires_at > ?", mobile, now).
		Order("created_at DESC").
		Order("id DESC").
		Find(&otpMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find otps")
	}

	otps := make([]*entity.OTP, 0, len(otpMs))
	for _, o := range otpMs {
		otps = append(otps, &entity.OTP{
			ID:        o.ID,
			Mobile:    o.Mobile,
			Email:     o.Email,
			CodeHash:  o.CodeHash,
			ExpiresAt: o.ExpiresAt,
			CreatedAt: o.CreatedAt,
		})
	}

	return otps, nil
}

// DeleteOTPsByMobile removes every code issued to mobile.
func (repo *otpRepository) DeleteOTPsByMobile(ctx context.Context, mobile string) error {
	if err := repo.db.WithContext(ctx).Where("mobile = ?", mobile).Delete(&model.OTPModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete otps")
	}

	return nil
}
