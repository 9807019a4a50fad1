package controller

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	donationService "donation_terminal_backend/internals/features/donations/donations/service"
	helper "donation_terminal_backend/internals/helpers"
	"donation_terminal_backend/internals/tests/mocks"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func newControllerApp(donations *mocks.DonationRepositoryMock) *fiber.App {
	svc := donationService.NewDonationService(&mocks.SettingsRepositoryMock{}, donations, &mocks.PaymentGatewayMock{})
	ctrl := NewDonationController(svc)

	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	app.Post("/create-payment-intent", ctrl.CreatePaymentIntent)
	return app
}

func postAmount(t *testing.T, app *fiber.App, body string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestCreatePaymentIntent_ValidationFailureIsLogged(t *testing.T) {
	buf := captureLog(t)
	donations := &mocks.DonationRepositoryMock{}
	app := newControllerApp(donations)

	status := postAmount(t, app, `{"amount":0}`)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, buf.String(), "validasi amount gagal")
	assert.Contains(t, buf.String(), "Amount")
	assert.Empty(t, donations.Appended)
}

func TestCreatePaymentIntent_AllowedAmount(t *testing.T) {
	captureLog(t)
	donations := &mocks.DonationRepositoryMock{}
	app := newControllerApp(donations)

	assert.Equal(t, http.StatusOK, postAmount(t, app, `{"amount":500}`))
	assert.Len(t, donations.Appended, 1)
}
