package iban

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"veriban/internal/errors"
)

type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) ResolveBIC(ctx context.Context, bankCode string) (string, bool) {
	args := m.Called(ctx, bankCode)
	return args.String(0), args.Bool(1)
}

func (m *MockDirectory) ResolveBankName(ctx context.Context, bic string) (string, bool) {
	args := m.Called(ctx, bic)
	return args.String(0), args.Bool(1)
}

func TestIBANService_Validate(t *testing.T) {
	svc := NewService(new(MockDirectory), nil)

	tests := []struct {
		name   string
		input  string
		valid  bool
		reason string
	}{
		{"valid german iban", "DE89370400440532013000", true, ReasonOK},
		{"checksum failure", "DE89370400440532013001", false, ReasonChecksum},
		{"unknown country", "ZZ89370400440532013000", false, ReasonUnknownCountry},
		{"length mismatch", "DE8937040044053201300", false, ReasonLengthMismatch},
		{"malformed", "not an iban", false, ReasonMalformed},
		{"anonymized", "DEXX01234567890XXXX123", false, ReasonAnonymized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := svc.Validate(context.Background(), tt.input)
			assert.Equal(t, tt.valid, report.Valid)
			assert.Equal(t, tt.reason, report.Reason)
		})
	}
}

func TestIBANService_Inspect(t *testing.T) {
	t.Run("german iban enriched from directory", func(t *testing.T) {
		dir := new(MockDirectory)
		dir.On("ResolveBIC", mock.Anything, "37040044").Return("COBADEFFXXX", true)
		dir.On("ResolveBankName", mock.Anything, "COBADEFFXXX").Return("Commerzbank", true)
		svc := NewService(dir, nil)

		report := svc.Inspect(context.Background(), "DE89 3704 0044 0532 0130 00")
		require.True(t, report.Valid)
		assert.Equal(t, "DE", report.Country)
		assert.Equal(t, "37040044", report.BankCode)
		assert.Equal(t, "0532013000", report.AccountNumber)
		assert.Equal(t, "COBADEFFXXX", report.BIC)
		assert.Equal(t, "Commerzbank", report.BankName)

		dir.AssertExpectations(t)
	})

	t.Run("directory miss leaves enrichment empty", func(t *testing.T) {
		dir := new(MockDirectory)
		dir.On("ResolveBIC", mock.Anything, "37040044").Return("", false)
		svc := NewService(dir, nil)

		report := svc.Inspect(context.Background(), "DE89370400440532013000")
		require.True(t, report.Valid)
		assert.Equal(t, "37040044", report.BankCode)
		assert.Empty(t, report.BIC)
		assert.Empty(t, report.BankName)

		dir.AssertExpectations(t)
	})

	t.Run("foreign iban skips the directory", func(t *testing.T) {
		dir := new(MockDirectory)
		svc := NewService(dir, nil)

		report := svc.Inspect(context.Background(), "GB82WEST12345698765432")
		require.True(t, report.Valid)
		assert.Equal(t, "GB", report.Country)
		assert.Empty(t, report.BIC)

		dir.AssertNotCalled(t, "ResolveBIC", mock.Anything, mock.Anything)
	})

	t.Run("anonymized iban is reported, never validated", func(t *testing.T) {
		svc := NewService(new(MockDirectory), nil)

		report := svc.Inspect(context.Background(), "DEXX01234567890XXXX123")
		assert.False(t, report.Valid)
		assert.True(t, report.Anonymized)
		assert.Equal(t, ReasonAnonymized, report.Reason)
	})

	t.Run("invalid iban carries its reason", func(t *testing.T) {
		svc := NewService(new(MockDirectory), nil)

		report := svc.Inspect(context.Background(), "DE89370400440532013001")
		assert.False(t, report.Valid)
		assert.Equal(t, ReasonChecksum, report.Reason)
		assert.Empty(t, report.BIC)
	})
}

func TestIBANService_Generate(t *testing.T) {
	svc := NewService(new(MockDirectory), nil)

	t.Run("generates a valid iban", func(t *testing.T) {
		out, err := svc.Generate(context.Background(), "DE", "370400440532013000")
		require.NoError(t, err)
		assert.Equal(t, "DE89370400440532013000", out)
	})

	t.Run("unknown country fails loudly", func(t *testing.T) {
		_, err := svc.Generate(context.Background(), "ZZ", "370400440532013000")
		assert.ErrorIs(t, err, errors.ErrUnknownCountry)
	})
}

func TestIBANService_CheckBIC(t *testing.T) {
	t.Run("well-formed bic with known name", func(t *testing.T) {
		dir := new(MockDirectory)
		dir.On("ResolveBankName", mock.Anything, "COBADEFFXXX").Return("Commerzbank", true)
		svc := NewService(dir, nil)

		report := svc.CheckBIC(context.Background(), "COBADEFFXXX")
		assert.True(t, report.WellFormed)
		assert.Equal(t, "Commerzbank", report.BankName)

		dir.AssertExpectations(t)
	})

	t.Run("malformed bic skips the directory", func(t *testing.T) {
		dir := new(MockDirectory)
		svc := NewService(dir, nil)

		report := svc.CheckBIC(context.Background(), "DEUTDEF")
		assert.False(t, report.WellFormed)
		assert.Empty(t, report.BankName)

		dir.AssertNotCalled(t, "ResolveBankName", mock.Anything, mock.Anything)
	})
}

func TestNewServiceRequiresDirectory(t *testing.T) {
	assert.Panics(t, func() { NewService(nil, nil) })
}
