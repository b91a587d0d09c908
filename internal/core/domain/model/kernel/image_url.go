package kernel

import (
	"errors"
	"net/url"
	"path"
	"slices"
	"strings"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var (
	ErrImageURLIsNotConstructed = errors.New("ImageURL must be created via NewImageURL")

	imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
)

// ImageURL is an absolute link to a product picture.
type ImageURL struct {
	value string
	guard guard.ConstructorGuard
}

// NewImageURL requires a scheme, a host and an image file extension
// (.jpg, .jpeg, .png, .gif or .webp, case-insensitive).
func NewImageURL(raw string) (ImageURL, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ImageURL{}, errs.NewValueIsRequiredError("image")
	}

	parsed, err := url.Parse(value)
	if err != nil {
		return ImageURL{}, errs.NewValueIsInvalidErrorWithCause("image", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return ImageURL{}, errs.NewValueIsInvalidErrorWithCause("image", errors.New("must be an absolute URL"))
	}
	if !slices.Contains(imageExtensions, strings.ToLower(path.Ext(parsed.Path))) {
		return ImageURL{}, errs.NewValueIsInvalidErrorWithCause("image", errors.New("must point to a valid image file"))
	}

	return ImageURL{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (u ImageURL) String() string {
	return u.value
}

func (u ImageURL) IsEqual(other ImageURL) bool {
	return u.value == other.value
}

func (u ImageURL) Validate() error {
	return u.guard.Validate(ErrImageURLIsNotConstructed)
}
