// Package validation checks request payloads and turns them into the typed
// values the services work with. Failures are reported as
// *models.ValidationError with one message per offending field.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ubclaunchpad/foodies/internal/models"
)

// Validator is a wrapper around the validator library.
type Validator struct {
	validate *validator.Validate
}

var clockTime = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d(:[0-5]\d)?$`)

// dateLayouts are tried in order when parsing an expirationDate filter.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// New creates a Validator with the domain tags registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	mustRegister(v, "promotiontype", func(fl validator.FieldLevel) bool {
		return models.PromotionType(fl.Field().String()).Valid()
	})
	mustRegister(v, "cuisine", func(fl validator.FieldLevel) bool {
		return models.Cuisine(fl.Field().String()).Valid()
	})
	mustRegister(v, "discounttype", func(fl validator.FieldLevel) bool {
		return models.DiscountType(fl.Field().String()).Valid()
	})
	mustRegister(v, "day", func(fl validator.FieldLevel) bool {
		return models.Day(fl.Field().String()).Valid()
	})
	mustRegister(v, "sortoption", func(fl validator.FieldLevel) bool {
		return models.SortOption(fl.Field().String()).Valid()
	})
	mustRegister(v, "clocktime", func(fl validator.FieldLevel) bool {
		return clockTime.MatchString(fl.Field().String())
	})
	mustRegister(v, "guid", func(fl validator.FieldLevel) bool {
		_, err := uuid.Parse(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "flexdate", func(fl validator.FieldLevel) bool {
		_, err := parseDate(fl.Field().String())
		return err == nil
	})

	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s: %v", tag, err))
	}
}

// ValidateStruct validates a struct based on its tags.
func (v *Validator) ValidateStruct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return models.NewValidationError(messages(fieldErrs)...)
	}
	return fmt.Errorf("validation failed: %w", err)
}

// Criteria validates q and converts it into the query engine's filter set.
// Every problem is reported at once; nothing is converted unless all fields
// pass.
func (v *Validator) Criteria(q models.PromotionQuery) (models.Criteria, error) {
	var msgs []string
	if err := v.ValidateStruct(q); err != nil {
		var ve *models.ValidationError
		if !errors.As(err, &ve) {
			return models.Criteria{}, err
		}
		msgs = append(msgs, ve.Messages...)
	}
	if q.DiscountValue != nil && q.DiscountType == nil {
		msgs = append(msgs, peerMessage("discountValue", "discountType"))
	}
	if len(msgs) > 0 {
		return models.Criteria{}, models.NewValidationError(msgs...)
	}

	var c models.Criteria
	if q.PromotionType != nil {
		t := models.PromotionType(*q.PromotionType)
		c.PromotionType = &t
	}
	for _, cu := range q.Cuisine {
		c.Cuisines = append(c.Cuisines, models.Cuisine(cu))
	}
	if q.DiscountType != nil {
		t := models.DiscountType(*q.DiscountType)
		c.DiscountType = &t
	}
	if q.DiscountValue != nil {
		d := decimal.NewFromFloat(*q.DiscountValue).Round(2)
		c.DiscountValue = &d
	}
	if q.ExpirationDate != nil {
		t, _ := parseDate(*q.ExpirationDate)
		c.ExpirationDate = &t
	}
	if q.DayOfWeek != nil {
		d := models.Day(*q.DayOfWeek)
		c.DayOfWeek = &d
	}
	if q.SearchQuery != nil {
		s := strings.TrimSpace(*q.SearchQuery)
		c.SearchQuery = &s
	}
	if q.Sort != nil {
		s := models.SortOption(*q.Sort)
		c.Sort = &s
	}
	if q.Lat != nil && q.Lon != nil {
		c.Origin = &models.Coordinate{Lat: *q.Lat, Lon: *q.Lon}
	}
	if q.UserID != nil {
		id := *q.UserID
		if u, err := uuid.Parse(id); err == nil {
			id = u.String()
		}
		c.UserID = &id
	}
	return c, nil
}

// NewPromotion validates a create payload, including the discount pairing
// rule that struct tags cannot express.
func (v *Validator) NewPromotion(p models.NewPromotion) error {
	var msgs []string
	if err := v.ValidateStruct(p); err != nil {
		var ve *models.ValidationError
		if !errors.As(err, &ve) {
			return err
		}
		msgs = append(msgs, ve.Messages...)
	}
	d := p.Discount
	if d.DiscountValue != nil && d.DiscountType == nil {
		msgs = append(msgs, peerMessage("discountValue", "discountType"))
	}
	if d.DiscountType != nil && d.DiscountValue == nil {
		msgs = append(msgs, peerMessage("discountType", "discountValue"))
	}
	if len(msgs) > 0 {
		return models.NewValidationError(msgs...)
	}
	return nil
}

// ID checks that s is a uuid and returns it in canonical lower-case form;
// name is used in the message.
func ID(name, s string) (string, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", models.NewValidationError(fmt.Sprintf("%q must be a valid GUID", name))
	}
	return id.String(), nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

func peerMessage(field, peer string) string {
	return fmt.Sprintf("%q missing required peer %q", field, peer)
}

func messages(errs validator.ValidationErrors) []string {
	out := make([]string, 0, len(errs))
	for _, fe := range errs {
		out = append(out, message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	field := fieldName(fe)
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "promotiontype":
		return oneOf(field, models.EnumValues()["PromotionType"])
	case "cuisine":
		return oneOf(field, models.EnumValues()["CuisineType"])
	case "discounttype":
		return oneOf(field, models.EnumValues()["DiscountType"])
	case "day":
		return oneOf(field, models.EnumValues()["Day"])
	case "sortoption":
		return oneOf(field, models.EnumValues()["SortOptions"])
	case "gt":
		if fe.Param() == "0" {
			return fmt.Sprintf("%q must be a positive number", field)
		}
		return fmt.Sprintf("%q must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%q must be greater than or equal to %s", field, fe.Param())
	case "gtefield":
		return fmt.Sprintf("%q must not be before %q", field, lowerFirst(fe.Param()))
	case "max":
		return fmt.Sprintf("%q length must be less than or equal to %s characters long", field, fe.Param())
	case "flexdate":
		return fmt.Sprintf("%q must be a valid date", field)
	case "clocktime":
		return fmt.Sprintf("%q must be a time of day (HH:MM)", field)
	case "latitude", "longitude":
		return fmt.Sprintf("%q must be a valid %s", field, fe.Tag())
	case "uuid", "guid":
		return fmt.Sprintf("%q must be a valid GUID", field)
	default:
		return fmt.Sprintf("%q failed on %q", field, fe.Tag())
	}
}

// fieldName strips the struct prefix and slice index from the namespace, so
// "PromotionQuery.cuisine[1]" reports as "cuisine" and nested fields keep
// their path ("discount.discountType").
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	if i := strings.Index(ns, "["); i >= 0 && strings.HasSuffix(ns, "]") && !strings.Contains(ns[i:], ".") {
		ns = ns[:i]
	}
	return ns
}

func oneOf(field string, values []string) string {
	return fmt.Sprintf("%q must be one of [%s]", field, strings.Join(values, ", "))
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
