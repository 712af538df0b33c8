package utils

import (
	"coursehub/config"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// GatewaySessionResponse represents the session-create response from the
// SSLCommerz hosted checkout API
type GatewaySessionResponse struct {
	Status             string `json:"status"` // SUCCESS or FAILED
	FailedReason       string `json:"failedreason"`
	SessionKey         string `json:"sessionkey"`
	GatewayPageURL     string `json:"GatewayPageURL"`
	RedirectGatewayURL string `json:"redirectGatewayURL"`
}

// CreateGatewaySession opens a hosted payment session and returns the page
// URL the client should be redirected to. The tranID is carried through the
// gateway and comes back on the success callback.
func CreateGatewaySession(tranID string, amount float64, studentID, courseID uint, courseTitle, customerName, customerEmail string) (*GatewaySessionResponse, error) {
	if !config.PaymentConfigured() {
		return nil, fmt.Errorf("payment gateway is not configured")
	}

	root := config.AppConfig.RootURL

	client := resty.New()
	resp, err := client.R().
		SetFormData(map[string]string{
			"store_id":     config.AppConfig.StoreID,
			"store_passwd": config.AppConfig.StorePassword,
			"total_amount": fmt.Sprintf("%.2f", amount),
			"currency":     "BDT",
			"tran_id":      tranID,
			"success_url":  root + "/api/payment/success",
			"fail_url":     root + "/api/payment/fail",
			"cancel_url":   root + "/api/payment/cancel",
			"ipn_url":      root + "/api/payment/ipn",
			"product_name": courseTitle,
			"product_category": "course",
			"product_profile":  "non-physical-goods",
			"cus_name":         customerName,
			"cus_email":        customerEmail,
			"cus_add1":         "N/A",
			"cus_city":         "N/A",
			"cus_country":      "Bangladesh",
			"cus_phone":        "N/A",
			"shipping_method":  "NO",
			"value_a":          fmt.Sprintf("%d", studentID), // carried back on callback
			"value_b":          fmt.Sprintf("%d", courseID),
		}).
		Post(config.AppConfig.GatewayAPIURL)
	if err != nil {
		return nil, fmt.Errorf("failed to reach payment gateway: %v", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("payment gateway error: %s", resp.String())
	}

	var session GatewaySessionResponse
	if err := json.Unmarshal(resp.Body(), &session); err != nil {
		return nil, fmt.Errorf("failed to parse gateway response: %v", err)
	}

	if session.Status != "SUCCESS" || session.GatewayPageURL == "" {
		reason := session.FailedReason
		if reason == "" {
			reason = "gateway did not return a payment page"
		}
		return nil, fmt.Errorf("gateway session failed: %s", reason)
	}

	return &session, nil
}
