package services

import (
	"context"
	"strings"

	"github.com/CollectorsVault/CollectorsVault-Backend/src/dtos"
	"github.com/CollectorsVault/CollectorsVault-Backend/src/middleware"
	"github.com/CollectorsVault/CollectorsVault-Backend/src/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// dummyHash keeps the login path equally slow for unknown emails.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("collectors-vault"), bcrypt.DefaultCost)

type CollectorService struct {
	db       *gorm.DB
	sessions *middleware.SessionManager
	hashCost int
}

// NewCollectorService creates a new instance of CollectorService
func NewCollectorService(db *gorm.DB, sessions *middleware.SessionManager) *CollectorService {
	return &CollectorService{db: db, sessions: sessions, hashCost: bcrypt.DefaultCost}
}

// Register creates a collector with the next free collector ID. The ID
// allocation and the insert run in one transaction.
func (s *CollectorService) Register(ctx context.Context, req dtos.RegisterRequest) (*models.CollectorModel, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return nil, validationError("password cannot be hashed: %v", err)
	}

	collector := models.CollectorModel{
		Email:        strings.TrimSpace(req.Email),
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: string(hashedPassword),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Raw(`SELECT COALESCE(MAX(collector_id), 0) + 1 FROM collectors`).Scan(&collector.CollectorID).Error; err != nil {
			return err
		}
		return tx.Exec(
			`INSERT INTO collectors (collector_id, email, collector_name, password_hash) VALUES (?, ?, ?, ?)`,
			collector.CollectorID, collector.Email, collector.Name, collector.PasswordHash,
		).Error
	})
	if err != nil {
		return nil, storageError("register collector", err)
	}
	return &collector, nil
}

// Login checks the credentials and opens a session for the collector.
func (s *CollectorService) Login(ctx context.Context, email, password string) (*dtos.SessionDTO, error) {
	var collector models.CollectorModel
	result := s.db.WithContext(ctx).Raw(
		`SELECT collector_id, email, collector_name, password_hash FROM collectors WHERE email = ?`,
		strings.TrimSpace(email),
	).Scan(&collector)
	if result.Error != nil {
		return nil, storageError("login collector", result.Error)
	}

	if result.RowsAffected == 0 {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}

	// Compare the provided password with the hashed password in the database
	if err := bcrypt.CompareHashAndPassword([]byte(collector.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(collector.CollectorID, collector.Email)
	if err != nil {
		return nil, storageError("issue session", err)
	}

	return &dtos.SessionDTO{CollectorID: collector.CollectorID, Email: collector.Email, Token: token}, nil
}

// Logout revokes the session the request was made with.
func (s *CollectorService) Logout(claims *middleware.SessionClaims) {
	if claims != nil {
		s.sessions.Revoke(claims)
	}
}
