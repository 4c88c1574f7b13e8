package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"repair_shop_backend/internal/models"
	"repair_shop_backend/internal/repositories"
)

// ErrValidation is the base error for rejected input across all services.
var ErrValidation = errors.New("validation error")

// --- Custom Service Errors for Client ---
var (
	ErrClientNotFound = errors.New("client not found")
	ErrIDCardExists   = errors.New("a client with this ID card already exists")
)

// --- Client DTOs ---

// ClientRequest carries the full client row for create and update; updates
// are whole-row replaces, not field-level patches.
type ClientRequest struct {
	Name    string  `json:"name" binding:"required"`
	IDCard  string  `json:"id_card" binding:"required"`
	Address string  `json:"address"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Picture *string `json:"picture"`
}

// --- ClientService Interface ---
type ClientService interface {
	CreateClient(req ClientRequest) (*models.Client, error)
	GetClientByID(clientID int64) (*models.Client, error)
	GetClients() ([]models.Client, error)
	UpdateClient(clientID int64, req ClientRequest) (*models.Client, error)
	DeleteClient(clientID int64) error
}

// --- clientService Implementation ---
type clientService struct {
	clientRepo repositories.ClientRepository
	db         *sql.DB
}

// NewClientService creates a new instance of ClientService.
func NewClientService(repo repositories.ClientRepository, db *sql.DB) ClientService {
	return &clientService{
		clientRepo: repo,
		db:         db,
	}
}

func (s *clientService) validateClientData(req ClientRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: client name cannot be empty", ErrValidation)
	}
	if strings.TrimSpace(req.IDCard) == "" {
		return fmt.Errorf("%w: client ID card cannot be empty", ErrValidation)
	}
	return nil
}

func (s *clientService) CreateClient(req ClientRequest) (*models.Client, error) {
	if err := s.validateClientData(req); err != nil {
		return nil, err
	}

	client := &models.Client{
		Name:    req.Name,
		IDCard:  req.IDCard,
		Address: req.Address,
		Email:   req.Email,
		Phone:   req.Phone,
		Picture: req.Picture,
	}

	id, err := s.clientRepo.CreateClient(s.db, client)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: %q", ErrIDCardExists, req.IDCard)
		}
		return nil, fmt.Errorf("failed to create client in repository: %w", err)
	}
	return s.clientRepo.GetClientByID(id)
}

func (s *clientService) GetClientByID(clientID int64) (*models.Client, error) {
	client, err := s.clientRepo.GetClientByID(clientID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client by ID: %w", err)
	}
	return client, nil
}

func (s *clientService) GetClients() ([]models.Client, error) {
	clients, err := s.clientRepo.GetClients()
	if err != nil {
		return nil, fmt.Errorf("failed to get clients: %w", err)
	}
	return clients, nil
}

func (s *clientService) UpdateClient(clientID int64, req ClientRequest) (*models.Client, error) {
	if err := s.validateClientData(req); err != nil {
		return nil, err
	}

	client := &models.Client{
		ID:      clientID,
		Name:    req.Name,
		IDCard:  req.IDCard,
		Address: req.Address,
		Email:   req.Email,
		Phone:   req.Phone,
		Picture: req.Picture,
	}

	err := s.clientRepo.UpdateClient(s.db, client)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: %q", ErrIDCardExists, req.IDCard)
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to update client in repository: %w", err)
	}
	return s.clientRepo.GetClientByID(clientID)
}

func (s *clientService) DeleteClient(clientID int64) error {
	err := s.clientRepo.DeleteClient(s.db, clientID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrClientNotFound
		}
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}
