package lib

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"hallbook/src/types"

	"github.com/stripe/stripe-go/v82"
)

// PaymentGateway is the contract the reservation lifecycle depends on. The
// gateway is treated as untrusted: it may be slow and may deliver the same
// verification outcome more than once.
type PaymentGateway interface {
	InitializeTransaction(ctx context.Context, input *InitializeTransactionInput) (*InitializeTransactionResult, error)
	VerifyTransaction(ctx context.Context, reference string) (*VerifyTransactionResult, error)
}

type InitializeTransactionInput struct {
	Amount        float64
	Currency      string
	Reference     string
	Description   string
	CustomerEmail string
	RedirectURL   string
}

type InitializeTransactionResult struct {
	PaymentURL string
	SessionID  string
}

type VerifyTransactionResult struct {
	PaymentStatus types.PaymentStatus
	GatewayTxnID  string
}

var gateway PaymentGateway

func GetPaymentGateway() PaymentGateway {
	if gateway != nil {
		return gateway
	}
	gateway = &StripeGateway{}
	return gateway
}

// NewPaymentGateway Replace gateway instance with custom implementation
func NewPaymentGateway(g PaymentGateway) PaymentGateway {
	gateway = g
	return gateway
}

// StripeGateway fronts Stripe Checkout with the initialize/verify contract.
// Verification is by our own reference: the checkout session id is cached in
// redis under the reference at initialize time.
type StripeGateway struct{}

const referenceCacheTTL = 7 * 24 * time.Hour

func referenceCacheKey(reference string) string {
	return fmt.Sprintf("payref:%s", reference)
}

func (g *StripeGateway) InitializeTransaction(ctx context.Context, input *InitializeTransactionInput) (*InitializeTransactionResult, error) {
	sc := GetStripeClient()
	currency := input.Currency
	if currency == "" {
		currency = "usd"
	}
	// Stripe amounts are in minor units.
	unitAmount := int64(math.Round(input.Amount * 100))
	successUrl := fmt.Sprintf("%s?reference=%s", input.RedirectURL, input.Reference)
	createParams := stripe.CheckoutSessionCreateParams{
		SuccessURL: stripe.String(successUrl),
		CancelURL:  stripe.String(successUrl),
		UIMode:     stripe.String("hosted"),
		Mode:       stripe.String("payment"),
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
					Currency:   stripe.String(currency),
					UnitAmount: stripe.Int64(unitAmount),
					ProductData: &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
						Name: stripe.String(input.Description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		CustomerEmail:     stripe.String(input.CustomerEmail),
		ClientReferenceID: stripe.String(input.Reference),
		Metadata: map[string]string{
			"reference": input.Reference,
		},
	}
	checkoutSession, err := sc.V1CheckoutSessions.Create(ctx, &createParams)
	if err != nil {
		log.Printf("InitializeTransaction failed for [%s]: %s\n", input.Reference, err.Error())
		return nil, err
	}
	rd := GetRedisClient()
	if _, err := rd.SetEx(ctx, referenceCacheKey(input.Reference), checkoutSession.ID, referenceCacheTTL).Result(); err != nil {
		log.Printf("Error caching session for reference [%s]: %s\n", input.Reference, err.Error())
	}
	return &InitializeTransactionResult{
		PaymentURL: checkoutSession.URL,
		SessionID:  checkoutSession.ID,
	}, nil
}

func (g *StripeGateway) VerifyTransaction(ctx context.Context, reference string) (*VerifyTransactionResult, error) {
	rd := GetRedisClient()
	sessionId, err := rd.Get(ctx, referenceCacheKey(reference)).Result()
	if err != nil {
		return nil, fmt.Errorf("no gateway session found for reference [%s]", reference)
	}
	sc := GetStripeClient()
	checkoutSession, err := sc.V1CheckoutSessions.Retrieve(ctx, sessionId, nil)
	if err != nil {
		log.Printf("VerifyTransaction failed for [%s]: %s\n", reference, err.Error())
		return nil, err
	}
	result := &VerifyTransactionResult{GatewayTxnID: checkoutSession.ID}
	if checkoutSession.PaymentIntent != nil {
		result.GatewayTxnID = checkoutSession.PaymentIntent.ID
	}
	switch {
	case checkoutSession.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid:
		result.PaymentStatus = types.PAYMENT_PAID
	case checkoutSession.Status == stripe.CheckoutSessionStatusExpired:
		result.PaymentStatus = types.PAYMENT_FAILED
	default:
		result.PaymentStatus = types.PAYMENT_PENDING
	}
	return result, nil
}
