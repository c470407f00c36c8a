// Package validation builds the request validator shared by handlers and
// services, with the storefront's custom tags registered.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	mobileRe  = regexp.MustCompile(`^[6-9]\d{9}$`)
	pincodeRe = regexp.MustCompile(`^\d{6}$`)
	expiryRe  = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	upiRe     = regexp.MustCompile(`^[a-zA-Z0-9.\-_]{2,256}@[a-zA-Z]{2,64}$`)
	cardRe    = regexp.MustCompile(`^\d{16}$`)
	cvvRe     = regexp.MustCompile(`^\d{3,4}$`)
)

// New returns a validator that reports JSON field names and knows the
// storefront tags: mobile, pincode, cardnumber, cardexpiry, cvv, upi and
// notblank.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	mustRegister(v, "mobile", matches(mobileRe))
	mustRegister(v, "pincode", matches(pincodeRe))
	mustRegister(v, "cardexpiry", matches(expiryRe))
	mustRegister(v, "upi", matches(upiRe))
	mustRegister(v, "cvv", matches(cvvRe))
	mustRegister(v, "cardnumber", func(fl validator.FieldLevel) bool {
		return cardRe.MatchString(StripWhitespace(fl.Field().String()))
	})
	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// StripWhitespace removes every whitespace character, including tabs and
// non-breaking spaces, as users type or paste card numbers in groups.
func StripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// FieldErrors flattens a validator error into field -> message. Errors that
// are not validation errors come back under the "_" key.
func FieldErrors(err error) map[string]string {
	out := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["_"] = err.Error()
		return out
	}
	for _, e := range verrs {
		out[fieldPath(e)] = message(e)
	}
	return out
}

// fieldPath drops the root struct name: "Address.mobile" -> "address.mobile".
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	return ns
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "Required"
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", e.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters", e.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", e.Param())
	case "eqfield":
		return "Does not match " + e.Param()
	case "mobile":
		return "Invalid mobile"
	case "pincode":
		return "Invalid pincode"
	case "cardexpiry":
		return "Expiry must be MM/YY"
	case "upi":
		return "Enter a valid UPI ID"
	case "cardnumber":
		return "Card number must be 16 digits"
	case "cvv":
		return "CVV must be 3 or 4 digits"
	case "notblank":
		return "Must not be blank"
	case "oneof":
		return "Must be one of: " + e.Param()
	default:
		return fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
}
