package models

// PaymentIntentStub mimics the shape of a payment provider's intent. It is
// fabricated locally and never reaches a real processor.
type PaymentIntentStub struct {
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// Purchase is the confirmation shown after a mocked checkout.
type Purchase struct {
	Product Product           `json:"product"`
	Intent  PaymentIntentStub `json:"intent"`
	Message string            `json:"message"`
}
