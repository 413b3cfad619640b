package gormstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"health-companion/internal/adapters/auth/local"
	"health-companion/internal/platform/logger"
	"health-companion/internal/ports/auth"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// AccountModel es la tabla de cuentas del proveedor de auth local.
type AccountModel struct {
	ID           string `gorm:"primaryKey;size:36"`
	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PhoneNumber  string
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (AccountModel) TableName() string { return "accounts" }

// Open abre la base con GORM y migra la tabla de cuentas.
func Open(dsn string, log logger.Logger) (*gorm.DB, error) {
	gormLog := gormlogger.New(
		printfWriter{log: log},
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormLog,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.AutoMigrate(&AccountModel{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return db, nil
}

// printfWriter adapta logger.Logger al Writer de gorm.
type printfWriter struct {
	log logger.Logger
}

func (w printfWriter) Printf(format string, args ...any) {
	w.log.Warn("gorm", map[string]any{"detail": fmt.Sprintf(format, args...)})
}

type AccountRepo struct {
	db *gorm.DB
}

func NewAccountRepo(db *gorm.DB) *AccountRepo {
	return &AccountRepo{db: db}
}

var _ local.AccountRepository = (*AccountRepo)(nil)

func (r *AccountRepo) Create(ctx context.Context, a local.Account) error {
	model := accountToModel(a)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return auth.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *AccountRepo) Update(ctx context.Context, a local.Account) error {
	res := r.db.WithContext(ctx).Model(&AccountModel{}).Where("id = ?", a.ID).Updates(map[string]any{
		"name":          a.Name,
		"email":         a.Email,
		"phone_number":  a.PhoneNumber,
		"password_hash": a.PasswordHash,
		"updated_at":    a.UpdatedAt,
	})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return auth.ErrEmailTaken
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return auth.ErrUserNotFound
	}
	return nil
}

func (r *AccountRepo) GetByID(ctx context.Context, id string) (local.Account, error) {
	var model AccountModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return local.Account{}, auth.ErrUserNotFound
		}
		return local.Account{}, err
	}
	return accountFromModel(model), nil
}

func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (local.Account, error) {
	var model AccountModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return local.Account{}, auth.ErrUserNotFound
		}
		return local.Account{}, err
	}
	return accountFromModel(model), nil
}

func accountToModel(a local.Account) AccountModel {
	return AccountModel{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		PhoneNumber:  a.PhoneNumber,
		PasswordHash: a.PasswordHash,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func accountFromModel(m AccountModel) local.Account {
	return local.Account{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PhoneNumber:  m.PhoneNumber,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
