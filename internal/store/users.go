package store

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hostel-admin-backend/internal/model"
)

// RegisterUser creates a login account with a bcrypt-hashed password.
func (s *gormStore) RegisterUser(ctx context.Context, username, password, role string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := model.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate checks the credentials against the stored hash. Missing
// user, wrong password and inactive account all collapse into the same
// error so the response does not leak which one it was.
func (s *gormStore) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.Active {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// EnsureAdmin seeds the bootstrap admin account on first start.
func (s *gormStore) EnsureAdmin(ctx context.Context, username, password string) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.User{}).
		Where("role = ?", model.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if password == "" {
		log.Printf("no admin account exists and no admin password configured; skipping seed")
		return nil
	}

	_, err := s.RegisterUser(ctx, username, password, model.RoleAdmin)
	if errors.Is(err, ErrDuplicate) {
		return nil
	}
	if err == nil {
		log.Printf("seeded admin account %q", username)
	}
	return err
}

// AppendAudit writes one audit row. Failures are the caller's problem to
// log; audit writes never abort the request they describe.
func (s *gormStore) AppendAudit(ctx context.Context, entry *model.AuditLog) error {
	return s.db.WithContext(ctx).Create(entry).Error
}
