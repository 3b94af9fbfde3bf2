// Package validators blocks bad submissions before any request is sent.
// The server remains authoritative; these checks only catch the obvious
// cases (missing fields, non-positive amounts) at the form.
package validators

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// DepositForm is the admin-initiated deposit creation form.
type DepositForm struct {
	UserID        uint    `validate:"required"`
	Amount        float64 `validate:"required,gt=0"`
	PaymentMethod string  `validate:"required,oneof=1voucher snapscan capitec bank_transfer other"`
	ProofType     string
	ProofValue    string
	Notes         string
	AutoApprove   bool
}

// MatchForm is the match creation form.
type MatchForm struct {
	HomeTeam         string  `validate:"required"`
	AwayTeam         string  `validate:"required"`
	EventDescription string  `validate:"required"`
	YesOdds          float64 `validate:"required,gt=1"`
	NoOdds           float64 `validate:"required,gt=1"`
}

// ValidateDepositForm checks a deposit creation form. minAmount comes from
// configuration; the user must already be resolved to an id, not free text.
func ValidateDepositForm(form DepositForm, minAmount float64) map[string]string {
	errors := make(map[string]string)

	if err := validate.Struct(form); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			switch fieldErr.Field() {
			case "UserID":
				errors["user_id"] = "Select a user first!"
			case "Amount":
				errors["amount"] = "Amount must be greater than 0!"
			case "PaymentMethod":
				errors["payment_method"] = "Valid payment method is required!"
			}
		}
	}

	if _, seen := errors["amount"]; !seen && form.Amount < minAmount {
		errors["amount"] = fmt.Sprintf("Minimum deposit amount is %.2f!", minAmount)
	}
	if form.ProofType != "" && strings.TrimSpace(form.ProofValue) == "" {
		errors["proof_value"] = "Proof value is required when proof type is set!"
	}

	return errors
}

// ValidateMatchForm checks a match creation form.
func ValidateMatchForm(form MatchForm) map[string]string {
	errors := make(map[string]string)

	if err := validate.Struct(form); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			switch fieldErr.Field() {
			case "HomeTeam":
				errors["home_team"] = "Home team is required!"
			case "AwayTeam":
				errors["away_team"] = "Away team is required!"
			case "EventDescription":
				errors["event_description"] = "Event description is required!"
			case "YesOdds":
				errors["yes_odds"] = "Yes odds must be greater than 1.0!"
			case "NoOdds":
				errors["no_odds"] = "No odds must be greater than 1.0!"
			}
		}
	}

	return errors
}

// ValidateReason checks the reason required by reject and block flows.
func ValidateReason(reason string) map[string]string {
	errors := make(map[string]string)
	if strings.TrimSpace(reason) == "" {
		errors["reason"] = "Reason is required!"
	}
	return errors
}

// ValidateSettleResult checks the binary settlement outcome.
func ValidateSettleResult(result string) map[string]string {
	errors := make(map[string]string)
	switch strings.ToLower(strings.TrimSpace(result)) {
	case "yes", "no":
	default:
		errors["result"] = "Result must be yes or no!"
	}
	return errors
}

// FirstError flattens a field error map into one toast-able message.
func FirstError(errors map[string]string) string {
	for _, msg := range errors {
		return msg
	}
	return ""
}
