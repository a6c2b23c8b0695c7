// Package repository provides testify mocks for the persistence interfaces.
package repository

import (
	"context"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a testify mock of repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAll(ctx context.Context, role *entity.Role) ([]*entity.Account, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Account), args.Error(1)
}

func (m *MockAccountRepository) Update(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

func (m *MockAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockDonorRepository is a testify mock of repository.DonorRepository.
type MockDonorRepository struct {
	mock.Mock
}

func (m *MockDonorRepository) Create(ctx context.Context, donor *entity.Donor) error {
	args := m.Called(ctx, donor)

	return args.Error(0)
}

func (m *MockDonorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Donor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Donor), args.Error(1)
}

func (m *MockDonorRepository) FindAll(ctx context.Context) ([]*entity.Donor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Donor), args.Error(1)
}

func (m *MockDonorRepository) Update(ctx context.Context, donor *entity.Donor) error {
	args := m.Called(ctx, donor)

	return args.Error(0)
}

func (m *MockDonorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// StubRepositoryFactory hands out fixed repositories, standing in for the
// transaction-bound factory.
type StubRepositoryFactory struct {
	AccountRepository repository.AccountRepository
	DonorRepository   repository.DonorRepository
}

func (f *StubRepositoryFactory) AccountRepo() repository.AccountRepository {
	return f.AccountRepository
}

func (f *StubRepositoryFactory) DonorRepo() repository.DonorRepository {
	return f.DonorRepository
}

// StubTransactionManager runs the callback against the stub factory without
// any real transaction. Set Err to simulate a begin failure.
type StubTransactionManager struct {
	Factory repository.RepositoryFactory
	Err     error
}

func (m *StubTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.Err != nil {
		return m.Err
	}

	return fn(m.Factory)
}
