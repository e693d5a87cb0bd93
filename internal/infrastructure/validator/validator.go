package validator

import (
	"fmt"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/mikiasgoitom/folio/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/folio/internal/usecase/contract"
)

// MaxSlugLength is the longest post slug accepted.
const MaxSlugLength = 200

// slugTag validates a post slug: unreserved URL characters only.
const slugTag = "slug"

var slugPattern = regexp.MustCompile(`^[A-Za-z0-9._~-]+$`)

// AppValidator implements the usecase IValidator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a validator with the custom tags registered.
func NewValidator() usecasecontract.IValidator {
	v := validator.New()
	registerTags(v)
	return &AppValidator{validate: v}
}

// ValidateSlug checks that slug is a non-empty, URL-safe post identifier.
func (av *AppValidator) ValidateSlug(slug string) error {
	if err := av.validate.Var(slug, fmt.Sprintf("required,max=%d,%s", MaxSlugLength, slugTag)); err != nil {
		return fmt.Errorf("%w: %q: %v", entity.ErrInvalidSlug, slug, err)
	}
	return nil
}

// RegisterCustomValidators registers custom validation functions with the Gin validator.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerTags(v)
	}
}

func registerTags(v *validator.Validate) {
	_ = v.RegisterValidation(slugTag, slugFL)
}

func slugFL(fl validator.FieldLevel) bool {
	return slugPattern.MatchString(fl.Field().String())
}
