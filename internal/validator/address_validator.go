// Package validator applies the address field rules and reports violations as
// a structured, per-field list.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"addresses/internal/domain/entity"

	playground "github.com/go-playground/validator/v10"
)

// FieldViolation describes a single failed rule on a single field.
type FieldViolation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError carries every violation found in one pass. The candidate is
// never partially accepted: one violation fails the whole value.
type ValidationError struct {
	Violations []FieldViolation
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}

	return "address validation failed: " + strings.Join(msgs, "; ")
}

// addressRules mirrors the validated subset of entity.Address with the rules
// the original schema enforces: required given_name and address1, 150-char
// text fields, 2-letter alphabetic country code, and a required owner pair.
type addressRules struct {
	OwnerType    string   `validate:"required,max=150"`
	OwnerID      int64    `validate:"required"`
	Label        string   `validate:"omitempty,max=150"`
	GivenName    string   `validate:"required,max=150"`
	FamilyName   string   `validate:"omitempty,max=150"`
	Organization string   `validate:"omitempty,max=150"`
	Address1     string   `validate:"required,max=150"`
	Address2     string   `validate:"omitempty,max=150"`
	City         string   `validate:"omitempty,max=150"`
	State        string   `validate:"omitempty,max=150"`
	PostalCode   string   `validate:"omitempty,max=150"`
	CountryCode  string   `validate:"omitempty,alpha,len=2"`
	Latitude     *float64 `validate:"omitempty,min=-90,max=90"`
	Longitude    *float64 `validate:"omitempty,min=-180,max=180"`
}

// fieldNames maps the rules struct fields to their wire/storage names used in
// violation reports.
var fieldNames = map[string]string{
	"OwnerType":    "owner_type",
	"OwnerID":      "owner_id",
	"Label":        "label",
	"GivenName":    "given_name",
	"FamilyName":   "family_name",
	"Organization": "organization",
	"Address1":     "address1",
	"Address2":     "address2",
	"City":         "city",
	"State":        "state",
	"PostalCode":   "postal_code",
	"CountryCode":  "country_code",
	"Latitude":     "latitude",
	"Longitude":    "longitude",
}

// AddressValidator validates address candidates against the field rules.
type AddressValidator struct {
	validate *playground.Validate
}

// New creates an AddressValidator with a dedicated validator instance.
func New() *AddressValidator {
	return &AddressValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks the candidate and returns nil or a *ValidationError listing
// every violation. CountryCode is matched case-insensitively; callers are
// expected to have upper-cased it already (the use case layer does).
func (v *AddressValidator) Validate(address *entity.Address) error {
	rules := addressRules{
		OwnerType:    address.OwnerType,
		OwnerID:      address.OwnerID,
		Label:        address.Label,
		GivenName:    address.GivenName,
		FamilyName:   address.FamilyName,
		Organization: address.Organization,
		Address1:     address.Address1,
		Address2:     address.Address2,
		City:         address.City,
		State:        address.State,
		PostalCode:   address.PostalCode,
		CountryCode:  address.CountryCode,
		Latitude:     address.Latitude,
		Longitude:    address.Longitude,
	}

	err := v.validate.Struct(rules)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(playground.ValidationErrors)
	if !ok {
		// InvalidValidationError only happens for non-struct input.
		return err
	}

	violations := make([]FieldViolation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fieldNames[fe.StructField()]
		if field == "" {
			field = fe.StructField()
		}
		violations = append(violations, FieldViolation{
			Field:   field,
			Rule:    fe.Tag(),
			Message: violationMessage(field, fe),
		})
	}

	return &ValidationError{Violations: violations}
}

func violationMessage(field string, fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}

		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
	case "alpha":
		return fmt.Sprintf("%s must contain only letters", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}
