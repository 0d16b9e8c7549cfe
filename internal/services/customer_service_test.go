// internal/services/customer_service_test.go
package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shoplabs/shop-backend/internal/dberrors"
	"github.com/shoplabs/shop-backend/internal/mocks"
	"github.com/shoplabs/shop-backend/internal/models"
)

func TestCreateCustomerDefaultsCountry(t *testing.T) {
	mockCustomers := new(mocks.MockCustomerRepository)
	svc := NewCustomerService(mockCustomers)

	mockCustomers.On("Create", mock.AnythingOfType("*models.Customer")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Customer).ID = 1
	})

	customer, err := svc.CreateCustomer(&CreateCustomerRequest{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@x.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "USA", customer.Country)

	mockCustomers.AssertExpectations(t)
}

func TestCreateCustomerKeepsExplicitCountry(t *testing.T) {
	mockCustomers := new(mocks.MockCustomerRepository)
	svc := NewCustomerService(mockCustomers)

	mockCustomers.On("Create", mock.AnythingOfType("*models.Customer")).Return(nil)

	customer, err := svc.CreateCustomer(&CreateCustomerRequest{
		FirstName: "Aoife",
		LastName:  "Byrne",
		Email:     "aoife@x.ie",
		Country:   "Ireland",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ireland", customer.Country)
}

func TestCreateCustomerValidation(t *testing.T) {
	mockCustomers := new(mocks.MockCustomerRepository)
	svc := NewCustomerService(mockCustomers)

	tests := []struct {
		name string
		req  *CreateCustomerRequest
	}{
		{
			name: "missing email",
			req:  &CreateCustomerRequest{FirstName: "John", LastName: "Doe"},
		},
		{
			name: "malformed email",
			req:  &CreateCustomerRequest{FirstName: "John", LastName: "Doe", Email: "nope"},
		},
		{
			name: "missing first name",
			req:  &CreateCustomerRequest{LastName: "Doe", Email: "john@x.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateCustomer(tt.req)
			require.Error(t, err)
		})
	}
	mockCustomers.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateCustomerDuplicateEmailSurfacesUniqueViolation(t *testing.T) {
	mockCustomers := new(mocks.MockCustomerRepository)
	svc := NewCustomerService(mockCustomers)

	mockCustomers.On("Create", mock.AnythingOfType("*models.Customer")).
		Return(&dberrors.UniqueViolationError{Field: "email"})

	_, err := svc.CreateCustomer(&CreateCustomerRequest{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@x.com",
	})

	var unique *dberrors.UniqueViolationError
	require.True(t, errors.As(err, &unique))
	assert.Equal(t, "email", unique.Field)
}

func TestSearchCustomersEmptyQuery(t *testing.T) {
	mockCustomers := new(mocks.MockCustomerRepository)
	svc := NewCustomerService(mockCustomers)

	customers, err := svc.SearchCustomers("", 10)
	require.NoError(t, err)
	assert.Empty(t, customers)
	mockCustomers.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestDeleteCustomerDelegatesToCascade(t *testing.T) {
	mockCustomers := new(mocks.MockCustomerRepository)
	svc := NewCustomerService(mockCustomers)

	mockCustomers.On("Delete", uint(7)).Return(nil)
	require.NoError(t, svc.DeleteCustomer(7))
	mockCustomers.AssertExpectations(t)
}
