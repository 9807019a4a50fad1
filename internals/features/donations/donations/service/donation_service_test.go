package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"donation_terminal_backend/internals/features/donations/donations/model"
	settingsModel "donation_terminal_backend/internals/features/donations/settings/model"
	settingsRepo "donation_terminal_backend/internals/features/donations/settings/repository"
	"donation_terminal_backend/internals/features/payment/gateway"
	"donation_terminal_backend/internals/tests/mocks"
)

func int64Ptr(v int64) *int64 { return &v }

func dualSettings(o1, o2 *int64) *mocks.SettingsRepositoryMock {
	return &mocks.SettingsRepositoryMock{
		GetFunc: func(ctx context.Context) (*settingsModel.DonationSettings, error) {
			return &settingsModel.DonationSettings{Mode: settingsModel.DonationModeDual, Option1: o1, Option2: o2}, nil
		},
	}
}

func TestDonationService_CreatePaymentIntent_Success(t *testing.T) {
	donations := &mocks.DonationRepositoryMock{}
	gw := &mocks.PaymentGatewayMock{
		CreateIntentFunc: func(ctx context.Context, amount int64, key string) (*gateway.PaymentHandle, error) {
			assert.Equal(t, int64(2500), amount)
			return &gateway.PaymentHandle{ID: "pi_1", ClientSecret: "pi_1_secret"}, nil
		},
	}
	svc := NewDonationService(dualSettings(int64Ptr(1000), int64Ptr(2500)), donations, gw)

	secret, err := svc.CreatePaymentIntent(context.Background(), 2500, model.DonationMeta{RequestID: "req-1"})

	require.NoError(t, err)
	assert.Equal(t, "pi_1_secret", secret)
	require.Len(t, donations.Appended, 1)
	d := donations.Appended[0]
	assert.Equal(t, int64(2500), d.Amount)
	assert.Equal(t, "pi_1", d.PaymentIntentID)
	assert.Equal(t, model.DonationStatusCreated, d.Status)
	assert.Equal(t, "mock", d.PaymentGateway)
	assert.Equal(t, "req-1", d.Metadata.Data().RequestID)
	assert.Equal(t, gw.IntentKeys[0], d.Metadata.Data().IdempotencyKey)
}

func TestDonationService_CreatePaymentIntent_FreshKeyPerCall(t *testing.T) {
	gw := &mocks.PaymentGatewayMock{}
	svc := NewDonationService(dualSettings(int64Ptr(1000), nil), &mocks.DonationRepositoryMock{}, gw)

	for i := 0; i < 2; i++ {
		_, err := svc.CreatePaymentIntent(context.Background(), 1000, model.DonationMeta{})
		require.NoError(t, err)
	}

	require.Len(t, gw.IntentKeys, 2)
	assert.NotEqual(t, gw.IntentKeys[0], gw.IntentKeys[1])
	_, err := uuid.Parse(gw.IntentKeys[0])
	assert.NoError(t, err)
}

func TestDonationService_CreatePaymentIntent_ClientKeyIsForwarded(t *testing.T) {
	gw := &mocks.PaymentGatewayMock{}
	svc := NewDonationService(dualSettings(int64Ptr(1000), nil), &mocks.DonationRepositoryMock{}, gw)

	_, err := svc.CreatePaymentIntent(context.Background(), 1000, model.DonationMeta{IdempotencyKey: "kiosk-7-tx-42"})

	require.NoError(t, err)
	assert.Equal(t, []string{"kiosk-7-tx-42"}, gw.IntentKeys)
}

func TestDonationService_CreatePaymentIntent_AmountNotAllowed(t *testing.T) {
	donations := &mocks.DonationRepositoryMock{}
	gw := &mocks.PaymentGatewayMock{}
	svc := NewDonationService(dualSettings(int64Ptr(1000), int64Ptr(2500)), donations, gw)

	_, err := svc.CreatePaymentIntent(context.Background(), 1500, model.DonationMeta{})

	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Empty(t, gw.IntentKeys)
	assert.Empty(t, donations.Appended)
}

func TestDonationService_CreatePaymentIntent_EmptyDualRejects(t *testing.T) {
	svc := NewDonationService(dualSettings(nil, nil), &mocks.DonationRepositoryMock{}, &mocks.PaymentGatewayMock{})

	_, err := svc.CreatePaymentIntent(context.Background(), 1000, model.DonationMeta{})

	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestDonationService_CreatePaymentIntent_SettingsError(t *testing.T) {
	settings := &mocks.SettingsRepositoryMock{
		GetFunc: func(ctx context.Context) (*settingsModel.DonationSettings, error) {
			return nil, settingsRepo.ErrSettingsNotFound
		},
	}
	svc := NewDonationService(settings, &mocks.DonationRepositoryMock{}, &mocks.PaymentGatewayMock{})

	_, err := svc.CreatePaymentIntent(context.Background(), 500, model.DonationMeta{})

	assert.ErrorIs(t, err, settingsRepo.ErrSettingsNotFound)
	assert.NotErrorIs(t, err, ErrInvalidAmount)
}

func TestDonationService_CreatePaymentIntent_GatewayError(t *testing.T) {
	donations := &mocks.DonationRepositoryMock{}
	gw := &mocks.PaymentGatewayMock{
		CreateIntentFunc: func(ctx context.Context, amount int64, key string) (*gateway.PaymentHandle, error) {
			return nil, errors.New("card_declined")
		},
	}
	svc := NewDonationService(&mocks.SettingsRepositoryMock{}, donations, gw)

	_, err := svc.CreatePaymentIntent(context.Background(), 500, model.DonationMeta{})

	assert.ErrorIs(t, err, ErrGateway)
	assert.Empty(t, donations.Appended)
	assert.Len(t, gw.IntentKeys, 1)
}

func TestDonationService_CreatePaymentIntent_LogFailureKeepsSecret(t *testing.T) {
	donations := &mocks.DonationRepositoryMock{
		AppendFunc: func(ctx context.Context, d *model.Donation) error {
			return errors.New("insert failed")
		},
	}
	svc := NewDonationService(&mocks.SettingsRepositoryMock{}, donations, &mocks.PaymentGatewayMock{})

	secret, err := svc.CreatePaymentIntent(context.Background(), 500, model.DonationMeta{})

	require.NoError(t, err)
	assert.Equal(t, "pi_mock_secret_mock", secret)
}

func TestDonationService_CreatePaymentIntent_DegradedReturnsPlaceholder(t *testing.T) {
	donations := &mocks.DonationRepositoryMock{}
	svc := NewDonationService(&mocks.SettingsRepositoryMock{}, donations, nil)

	secret, err := svc.CreatePaymentIntent(context.Background(), 500, model.DonationMeta{})

	require.NoError(t, err)
	assert.True(t, svc.Degraded())
	assert.Equal(t, gateway.PlaceholderClientSecret, secret)
	assert.Empty(t, donations.Appended)
}

func TestDonationService_CreatePaymentIntent_DegradedStillValidates(t *testing.T) {
	svc := NewDonationService(&mocks.SettingsRepositoryMock{}, &mocks.DonationRepositoryMock{}, nil)

	_, err := svc.CreatePaymentIntent(context.Background(), 501, model.DonationMeta{})

	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestDonationService_CreateConnectionToken(t *testing.T) {
	gw := &mocks.PaymentGatewayMock{}
	svc := NewDonationService(&mocks.SettingsRepositoryMock{}, &mocks.DonationRepositoryMock{}, gw)

	secret, err := svc.CreateConnectionToken(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "pst_mock", secret)
	require.Len(t, gw.TokenKeys, 1)
	assert.NotEmpty(t, gw.TokenKeys[0])
}

func TestDonationService_CreateConnectionToken_GatewayError(t *testing.T) {
	gw := &mocks.PaymentGatewayMock{
		CreateConnectionTokenFunc: func(ctx context.Context, key string) (*gateway.TokenHandle, error) {
			return nil, gateway.ErrConnectionTokenUnsupported
		},
	}
	svc := NewDonationService(&mocks.SettingsRepositoryMock{}, &mocks.DonationRepositoryMock{}, gw)

	_, err := svc.CreateConnectionToken(context.Background(), "")

	assert.ErrorIs(t, err, ErrGateway)
}

func TestDonationService_CreateConnectionToken_Degraded(t *testing.T) {
	svc := NewDonationService(&mocks.SettingsRepositoryMock{}, &mocks.DonationRepositoryMock{}, nil)

	secret, err := svc.CreateConnectionToken(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, gateway.PlaceholderConnectionToken, secret)
}
