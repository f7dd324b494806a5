package utils

import (
	"fmt"
	"log"

	"techverse/config"
	"techverse/models"

	"github.com/go-resty/resty/v2"
)

// GatewayPayment is the gateway's view of a payment
type GatewayPayment struct {
	Reference string `json:"reference"`
	Status    string `json:"status"` // created, paid, failed, expired
	Amount    int    `json:"amount"`
}

// CheckPaymentStatus asks the payment gateway for the state of a payment
// reference and maps it onto our payment lifecycle. An empty string means
// the gateway has no verdict yet.
func CheckPaymentStatus(reference string) (string, error) {
	client := resty.New()

	var payment GatewayPayment
	resp, err := client.R().
		SetHeader("X-Api-Key", config.AppConfig.GatewayApiKey).
		SetResult(&payment).
		Get(fmt.Sprintf("%s/payments/%s", config.AppConfig.GatewayApiURL, reference))
	if err != nil {
		log.Printf("Failed to reach payment gateway: %v", err)
		return "", err
	}
	if resp.StatusCode() != 200 {
		log.Printf("Payment gateway returned %d for reference %s", resp.StatusCode(), reference)
		return "", fmt.Errorf("gateway status %d", resp.StatusCode())
	}

	switch payment.Status {
	case "paid":
		return models.PaymentCompleted, nil
	case "failed", "expired":
		return models.PaymentFailed, nil
	default:
		return "", nil
	}
}
