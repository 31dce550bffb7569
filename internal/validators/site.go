package validators

import (
	"context"
	"fmt"
	"net/mail"
	"net/url"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/brand-showcase/models"
)

// Field names reported in validation errors and accepted for scoping.
const (
	FieldUsername       = "username"
	FieldPassword       = "password"
	FieldName           = "name"
	FieldSlogan         = "slogan"
	FieldLogoURL        = "logoUrl"
	FieldAlt            = "alt"
	FieldTitle          = "title"
	FieldSubtitle       = "subtitle"
	FieldDescription    = "description"
	FieldSize           = "size"
	FieldPrice          = "price"
	FieldImageIDs       = "imageIds"
	FieldLinks          = "links"
	FieldText           = "text"
	FieldContactEmail   = "contactEmail"
	FieldUpdate         = "body"
	FieldPhilosophyText = "philosophyText"
)

// Length limits, counted in characters.
const (
	maxUsernameLength  = 64
	maxPasswordLength  = 1024
	maxShortTextLength = 200
	maxLongTextLength  = 5000
	maxSocialLinks     = 20
)

var allowedPlatforms = []string{
	models.PlatformInstagram,
	models.PlatformTelegram,
	models.PlatformTikTok,
	models.PlatformYouTube,
	models.PlatformWhatsApp,
}

// SiteValidator validates auth and site content payloads.
type SiteValidator struct{}

func NewSiteValidator() Validator {
	return &SiteValidator{}
}

func (v *SiteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.BrandSettingsUpdate:
		return v.validateBrandSettings(value)
	case *models.BrandSettingsUpdate:
		return v.validateBrandSettings(*value)

	case models.TshirtImageUpdate:
		return v.validateTshirtImageUpdate(value)
	case *models.TshirtImageUpdate:
		return v.validateTshirtImageUpdate(*value)

	case models.ReorderRequest:
		return v.validateReorder(value)
	case *models.ReorderRequest:
		return v.validateReorder(*value)

	case []models.SocialLink:
		return v.validateSocialLinks(value)

	case models.CopyrightSettings:
		return v.validateCopyright(value)
	case *models.CopyrightSettings:
		return v.validateCopyright(*value)

	case models.AboutContent:
		return v.validateAbout(value)
	case *models.AboutContent:
		return v.validateAbout(*value)

	default:
		return ErrUnsupportedType
	}
}

// validateCredentials checks both fields unless fields narrows the check.
func (v *SiteValidator) validateCredentials(c models.Credentials, fields ...string) error {
	var errs fieldErrors

	if wants(fields, FieldUsername) {
		switch {
		case strings.TrimSpace(c.Username) == "":
			errs.add(FieldUsername, "username is required")
		case utf8.RuneCountInString(c.Username) > maxUsernameLength:
			errs.add(FieldUsername, fmt.Sprintf("username must be at most %d characters", maxUsernameLength))
		}
	}

	if wants(fields, FieldPassword) {
		switch {
		case c.Password == "":
			errs.add(FieldPassword, "password is required")
		case len(c.Password) > maxPasswordLength:
			errs.add(FieldPassword, fmt.Sprintf("password must be at most %d bytes", maxPasswordLength))
		}
	}

	return errs.err()
}

func (v *SiteValidator) validateBrandSettings(s models.BrandSettingsUpdate) error {
	var errs fieldErrors

	if s.Name == nil || strings.TrimSpace(*s.Name) == "" {
		errs.add(FieldName, "name is required")
	} else {
		checkLength(&errs, FieldName, *s.Name, maxShortTextLength)
	}
	if s.Slogan != nil {
		checkLength(&errs, FieldSlogan, *s.Slogan, maxShortTextLength)
	}
	if s.LogoURL != nil && *s.LogoURL != "" && !isImageURL(*s.LogoURL) {
		errs.add(FieldLogoURL, "logoUrl must be an uploaded image path or an http(s) URL")
	}

	return errs.err()
}

func (v *SiteValidator) validateTshirtImageUpdate(u models.TshirtImageUpdate) error {
	var errs fieldErrors

	if u.IsEmpty() {
		errs.add(FieldUpdate, "at least one field must be provided for update")
		return errs.err()
	}

	optionalLength(&errs, FieldAlt, u.Alt, maxShortTextLength)
	optionalLength(&errs, FieldTitle, u.Title, maxShortTextLength)
	optionalLength(&errs, FieldDescription, u.Description, maxLongTextLength)
	optionalLength(&errs, FieldSize, u.Size, maxShortTextLength)
	optionalLength(&errs, FieldPrice, u.Price, maxShortTextLength)

	return errs.err()
}

func (v *SiteValidator) validateReorder(r models.ReorderRequest) error {
	var errs fieldErrors

	if len(r.ImageIDs) == 0 {
		errs.add(FieldImageIDs, "imageIds cannot be empty")
		return errs.err()
	}

	seen := make(map[int64]struct{}, len(r.ImageIDs))
	for i, id := range r.ImageIDs {
		if id <= 0 {
			errs.add(fmt.Sprintf("%s[%d]", FieldImageIDs, i), "id must be positive")
			continue
		}
		if _, dup := seen[id]; dup {
			errs.add(fmt.Sprintf("%s[%d]", FieldImageIDs, i), "duplicate id")
		}
		seen[id] = struct{}{}
	}

	return errs.err()
}

func (v *SiteValidator) validateSocialLinks(links []models.SocialLink) error {
	var errs fieldErrors

	if len(links) > maxSocialLinks {
		errs.add(FieldLinks, fmt.Sprintf("at most %d links are allowed", maxSocialLinks))
		return errs.err()
	}

	for i, link := range links {
		prefix := fmt.Sprintf("%s[%d]", FieldLinks, i)
		if !slices.Contains(allowedPlatforms, link.Platform) {
			errs.add(prefix+".platform", "unknown platform")
		}
		if !isHTTPURL(link.URL) {
			errs.add(prefix+".url", "url must be an absolute http(s) URL")
		}
	}

	return errs.err()
}

func (v *SiteValidator) validateCopyright(c models.CopyrightSettings) error {
	var errs fieldErrors

	if strings.TrimSpace(c.Text) == "" {
		errs.add(FieldText, "text is required")
	} else {
		checkLength(&errs, FieldText, c.Text, maxShortTextLength)
	}

	return errs.err()
}

func (v *SiteValidator) validateAbout(a models.AboutContent) error {
	var errs fieldErrors

	if strings.TrimSpace(a.Title) == "" {
		errs.add(FieldTitle, "title is required")
	}
	checkLength(&errs, FieldTitle, a.Title, maxShortTextLength)
	checkLength(&errs, FieldSubtitle, a.Subtitle, maxShortTextLength)
	checkLength(&errs, "philosophyTitle", a.PhilosophyTitle, maxShortTextLength)
	checkLength(&errs, FieldPhilosophyText+"1", a.PhilosophyText1, maxLongTextLength)
	checkLength(&errs, FieldPhilosophyText+"2", a.PhilosophyText2, maxLongTextLength)
	checkLength(&errs, "contactTitle", a.ContactTitle, maxShortTextLength)
	checkLength(&errs, "contactPhone", a.ContactPhone, maxShortTextLength)
	checkLength(&errs, "contactAddress", a.ContactAddress, maxShortTextLength)

	if a.ContactEmail != "" {
		if _, err := mail.ParseAddress(a.ContactEmail); err != nil {
			errs.add(FieldContactEmail, "contactEmail must be a valid email address")
		}
	}

	return errs.err()
}

func wants(fields []string, field string) bool {
	return len(fields) == 0 || slices.Contains(fields, field)
}

func checkLength(errs *fieldErrors, field, value string, limit int) {
	if utf8.RuneCountInString(value) > limit {
		errs.add(field, fmt.Sprintf("%s must be at most %d characters", field, limit))
	}
}

func optionalLength(errs *fieldErrors, field string, value *string, limit int) {
	if value != nil {
		checkLength(errs, field, *value, limit)
	}
}

func isHTTPURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func isImageURL(raw string) bool {
	return strings.HasPrefix(raw, "/uploads/") || isHTTPURL(raw)
}
