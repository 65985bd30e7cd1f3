package database

import (
	"errors"
	"fmt"

	"github.com/techchallenge/pagamentos-service/internal/constant/model/db"
	"github.com/techchallenge/pagamentos-service/internal/core"
	"github.com/techchallenge/pagamentos-service/internal/port/output"
	"gorm.io/gorm"
)

// GormPaymentRepository is a secondary adapter that implements PaymentRepository output port
type GormPaymentRepository struct {
	gormDB *gorm.DB
}

// NewGormPaymentRepository creates a new GORM payment repository
func NewGormPaymentRepository(gormDB *gorm.DB) output.PaymentRepository {
	return &GormPaymentRepository{gormDB: gormDB}
}

// toCore converts db.Payment to core.Payment
func toCore(p *db.Payment) *core.Payment {
	return &core.Payment{
		ID:        p.ID,
		OrderID:   p.OrderID,
		Status:    core.PaymentStatus(p.Status),
		Amount:    p.Amount,
		Method:    p.Method,
		Reference: p.Reference,
		CreatedAt: p.CreatedAt,
	}
}

// fromCore converts core.Payment to db.Payment
func fromCore(p *core.Payment) *db.Payment {
	return &db.Payment{
		ID:        p.ID,
		OrderID:   p.OrderID,
		Status:    string(p.Status),
		Amount:    p.Amount,
		Method:    p.Method,
		Reference: p.Reference,
		CreatedAt: p.CreatedAt,
	}
}

// Create inserts a new payment and copies back the id assigned by the hook
func (r *GormPaymentRepository) Create(payment *core.Payment) error {
	dbPayment := fromCore(payment)
	if err := r.gormDB.Create(dbPayment).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	payment.ID = dbPayment.ID
	return nil
}

// FindByID retrieves a payment by its id
func (r *GormPaymentRepository) FindByID(id string) (*core.Payment, error) {
	var dbPayment db.Payment
	if err := r.gormDB.Where("id = ?", id).First(&dbPayment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return toCore(&dbPayment), nil
}

// FindAll retrieves every stored payment
func (r *GormPaymentRepository) FindAll() ([]core.Payment, error) {
	var dbPayments []db.Payment
	if err := r.gormDB.Find(&dbPayments).Error; err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	payments := make([]core.Payment, 0, len(dbPayments))
	for i := range dbPayments {
		payments = append(payments, *toCore(&dbPayments[i]))
	}
	return payments, nil
}

// Save upserts a payment by id
func (r *GormPaymentRepository) Save(payment *core.Payment) error {
	if err := r.gormDB.Save(fromCore(payment)).Error; err != nil {
		return fmt.Errorf("failed to save payment: %w", err)
	}
	return nil
}
