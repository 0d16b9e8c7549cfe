// internal/services/customer_service.go
package services

import (
	"fmt"

	"github.com/shoplabs/shop-backend/internal/models"
	"github.com/shoplabs/shop-backend/internal/repository"
	"github.com/shoplabs/shop-backend/internal/utils"
)

type CustomerService struct {
	customers repository.CustomerRepository
}

type CreateCustomerRequest struct {
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
	Email     string `json:"email" validate:"required,email,max=100"`
	Phone     string `json:"phone,omitempty" validate:"max=20"`
	Address   string `json:"address,omitempty" validate:"max=200"`
	City      string `json:"city,omitempty" validate:"max=50"`
	State     string `json:"state,omitempty" validate:"max=50"`
	ZipCode   string `json:"zip_code,omitempty" validate:"max=10"`
	Country   string `json:"country,omitempty" validate:"max=50"`
}

func NewCustomerService(customers repository.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

func (s *CustomerService) CreateCustomer(req *CreateCustomerRequest) (*models.Customer, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Country defaults explicitly rather than through ambient configuration.
	country := req.Country
	if country == "" {
		country = models.DefaultCountry
	}

	customer := &models.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		Country:   country,
	}
	if err := s.customers.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) GetCustomer(id uint) (*models.Customer, error) {
	return s.customers.FindByID(id)
}

func (s *CustomerService) ListCustomers(offset, limit int) ([]models.Customer, int64, error) {
	return s.customers.FindAll(offset, limit)
}

func (s *CustomerService) SearchCustomers(query string, limit int) ([]models.Customer, error) {
	if query == "" {
		return []models.Customer{}, nil
	}
	return s.customers.Search(query, limit)
}

// DeleteCustomer removes the customer together with every order they own
// and those orders' items. Product stock adjusted by past orders stays as
// it is.
func (s *CustomerService) DeleteCustomer(id uint) error {
	return s.customers.Delete(id)
}
