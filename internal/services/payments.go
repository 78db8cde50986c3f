package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// PaymentService issues mock payment references. There is no gateway
// integration; the reference only ties a booking to a payment record.
type PaymentService struct {
	prefix string
}

func NewPaymentService() *PaymentService {
	return &PaymentService{prefix: "mock_payment"}
}

// IssuePayment returns a new opaque payment reference.
func (p *PaymentService) IssuePayment(ctx context.Context, amount float64) (string, error) {
	if amount < 0 {
		return "", fmt.Errorf("invalid payment amount: %f", amount)
	}
	return fmt.Sprintf("%s_%s", p.prefix, uuid.NewString()), nil
}

// ProcessMockPayment simulates a checkout call for a booking and returns the
// provider-style reference the mobile client expects.
func ProcessMockPayment() string {
	return fmt.Sprintf("iyzico_mock_%s", uuid.NewString())
}
