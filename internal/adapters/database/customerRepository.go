package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"negar/internal/config"
	"negar/internal/core/apperr"
	"negar/internal/core/customer"
)

// CustomerRepositoryDatabase پیاده‌سازی CustomerRepository برای دیتابیس
type CustomerRepositoryDatabase struct{}

// NewCustomerRepositoryDatabase سازنده CustomerRepositoryDatabase
func NewCustomerRepositoryDatabase() *CustomerRepositoryDatabase {
	return &CustomerRepositoryDatabase{}
}

func (repo *CustomerRepositoryDatabase) Create(ctx context.Context, c *customer.Customer) (*customer.Customer, error) {
	if err := config.DB.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (repo *CustomerRepositoryDatabase) FindByID(ctx context.Context, id uint) (*customer.Customer, error) {
	var c customer.Customer
	if err := config.DB.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("customer %d: %w", id, apperr.ErrNotFound)
		}
		return nil, err
	}
	return &c, nil
}

func (repo *CustomerRepositoryDatabase) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	q := config.DB.WithContext(ctx).Model(&customer.Customer{}).Where("email = ?", email)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *CustomerRepositoryDatabase) ExistsByPhoneNumber(ctx context.Context, phoneNumber string, excludeID uint) (bool, error) {
	q := config.DB.WithContext(ctx).Model(&customer.Customer{}).Where("phone_number = ?", phoneNumber)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *CustomerRepositoryDatabase) FindAllAndCount(ctx context.Context) ([]*customer.Customer, int64, error) {
	var customers []*customer.Customer
	var total int64
	if err := config.DB.WithContext(ctx).Model(&customer.Customer{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := config.DB.WithContext(ctx).Order("created_at DESC").Find(&customers).Error; err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

func (repo *CustomerRepositoryDatabase) Update(ctx context.Context, c *customer.Customer) (*customer.Customer, error) {
	if err := config.DB.WithContext(ctx).Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (repo *CustomerRepositoryDatabase) Delete(ctx context.Context, id uint) error {
	res := config.DB.WithContext(ctx).Delete(&customer.Customer{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("customer %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}
