// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/mailadmin/internal/errors"
)

var (
	// domainNameRegex matches DNS hostnames the way the mail system stores
	// them: lowercase labels separated by dots, no trailing dot.
	domainNameRegex = regexp.MustCompile(`^[a-z0-9]([a-z0-9\-]*[a-z0-9])?(\.[a-z0-9]([a-z0-9\-]*[a-z0-9])?)+$`)

	// localPartRegex matches the local part of a mail address. Kept
	// deliberately narrow; quoting and comments are not supported.
	localPartRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+$`)

	// selectorRegex matches DKIM selector labels (RFC 6376 uses a DNS label).
	selectorRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// DomainName validates a mail domain name.
var DomainName = validation.NewStringRuleWithError(
	func(s string) bool {
		return domainNameRegex.MatchString(s)
	},
	validation.NewError("validation_domain_name", "must be a valid domain name"),
)

// LocalPart validates the local part of a mail address (the part before the @).
var LocalPart = validation.NewStringRuleWithError(
	func(s string) bool {
		return localPartRegex.MatchString(s)
	},
	validation.NewError("validation_local_part", "must be a valid mail local part"),
)

// Selector validates a domain key selector label.
var Selector = validation.NewStringRuleWithError(
	func(s string) bool {
		return selectorRegex.MatchString(s)
	},
	validation.NewError("validation_selector", "must be a valid selector label"),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)
