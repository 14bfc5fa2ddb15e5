package services

import (
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"
)

// StripeService implements PaymentProvider on top of Stripe Checkout
// Sessions. The customer is redirected to the hosted payment page and comes
// back through the success or cancel URL.
type StripeService struct {
	SuccessURL string
	CancelURL  string
}

func NewStripeService(secretKey, baseURL string) *StripeService {
	stripe.Key = secretKey
	return &StripeService{
		SuccessURL: baseURL + "/execute-payment?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  baseURL + "/cancel-payment?session_id={CHECKOUT_SESSION_ID}",
	}
}

func (s *StripeService) CreateSession(amount int64, currency, description string) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(s.SuccessURL),
		CancelURL:  stripe.String(s.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(currency),
					UnitAmount: stripe.Int64(amount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}

	sess, err := session.New(params)
	if err != nil {
		return nil, err
	}
	return &CheckoutSession{ID: sess.ID, RedirectURL: sess.URL}, nil
}

func (s *StripeService) SessionPaid(sessionID string) (bool, error) {
	sess, err := session.Get(sessionID, nil)
	if err != nil {
		return false, err
	}
	return sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid, nil
}
