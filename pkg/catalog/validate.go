package catalog

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-slug"
)

// Validate checks an app record before it is stored.
func (a App) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.ID, validation.Required, validation.By(validateID)),
		validation.Field(&a.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&a.Rating, validation.Min(0.0), validation.Max(5.0)),
		validation.Field(&a.ReviewsCount, validation.Min(0)),
		validation.Field(&a.Version, validation.Required),
		validation.Field(&a.Features),
	)
}

// Validate checks a single feature.
func (f Feature) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.IconName, validation.Required, validation.In(iconValues()...)),
	)
}

func validateID(value any) error {
	id, _ := value.(string)
	if id == "" {
		return nil
	}
	if !slug.IsValid(id) {
		return errors.New("must be a lowercase slug such as \"my-app\"")
	}
	return nil
}

func iconValues() []any {
	values := make([]any, len(Icons))
	for i, icon := range Icons {
		values[i] = icon
	}
	return values
}

// GenerateID derives an app id from its display name.
func GenerateID(name string) (string, error) {
	id, err := slug.Normalize(name)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", errors.New("name does not contain any usable characters")
	}
	return id, nil
}
