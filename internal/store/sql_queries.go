package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/brand-showcase/models"
)

// Table names.
const (
	usersTable             = "users"
	sessionsTable          = "sessions"
	brandSettingsTable     = "brand_settings"
	tshirtImagesTable      = "tshirt_images"
	socialLinksTable       = "social_links"
	copyrightSettingsTable = "copyright_settings"
	aboutContentTable      = "about_content"
)

// Column lists, in the order the scan helpers expect them.
var (
	userColumns         = []string{"id", "username", "password", "role", "is_active", "created_at"}
	sessionColumns      = []string{"sid", "user_id", "expire", "created_at"}
	brandColumns        = []string{"id", "name", "slogan", "logo_url", "created_at", "updated_at"}
	tshirtImageColumns  = []string{"id", "image_url", "alt", "title", "description", "size", "price", "position", "is_active", "created_at", "updated_at"}
	socialLinkColumns   = []string{"id", "platform", "url", "is_active", "created_at", "updated_at"}
	copyrightColumns    = []string{"id", "text", "created_at", "updated_at"}
	aboutContentColumns = []string{"id", "title", "subtitle", "philosophy_title", "philosophy_text1", "philosophy_text2", "contact_title", "contact_email", "contact_phone", "contact_address", "created_at", "updated_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// ── users ────────────────────────────────────────────────────────────────────

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User, now time.Time) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("username", "password", "role", "is_active", "created_at").
		Values(user.Username, user.PasswordHash, string(user.Role), user.IsActive, now).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildSelectUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildSelectUserByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// ── sessions ─────────────────────────────────────────────────────────────────

func buildInsertSessionQuery(b sq.StatementBuilderType, session models.Session) (string, []any, error) {
	return b.Insert(sessionsTable).
		Columns(sessionColumns...).
		Values(session.Digest, session.UserID, session.ExpiresAt, session.CreatedAt).
		ToSql()
}

func buildSelectSessionQuery(b sq.StatementBuilderType, digest string) (string, []any, error) {
	return b.Select(sessionColumns...).
		From(sessionsTable).
		Where(sq.Eq{"sid": digest}).
		ToSql()
}

func buildDeleteSessionQuery(b sq.StatementBuilderType, digest string) (string, []any, error) {
	return b.Delete(sessionsTable).
		Where(sq.Eq{"sid": digest}).
		ToSql()
}

func buildDeleteExpiredSessionsQuery(b sq.StatementBuilderType, now time.Time) (string, []any, error) {
	return b.Delete(sessionsTable).
		Where(sq.LtOrEq{"expire": now}).
		ToSql()
}

// ── brand settings ───────────────────────────────────────────────────────────

func buildSelectBrandSettingsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(brandColumns...).
		From(brandSettingsTable).
		OrderBy("id").
		Limit(1).
		ToSql()
}

func buildInsertBrandSettingsQuery(b sq.StatementBuilderType, s models.BrandSettings, now time.Time) (string, []any, error) {
	return b.Insert(brandSettingsTable).
		Columns("name", "slogan", "logo_url", "created_at", "updated_at").
		Values(s.Name, s.Slogan, s.LogoURL, now, now).
		Suffix(returning(brandColumns)).
		ToSql()
}

func buildUpdateBrandSettingsQuery(b sq.StatementBuilderType, id int64, upd models.BrandSettingsUpdate, now time.Time) (string, []any, error) {
	q := b.Update(brandSettingsTable).Set("updated_at", now)
	if upd.Name != nil {
		q = q.Set("name", *upd.Name)
	}
	if upd.Slogan != nil {
		q = q.Set("slogan", *upd.Slogan)
	}
	if upd.LogoURL != nil {
		q = q.Set("logo_url", *upd.LogoURL)
	}
	return q.Where(sq.Eq{"id": id}).
		Suffix(returning(brandColumns)).
		ToSql()
}

// ── t-shirt images ───────────────────────────────────────────────────────────

func buildSelectTshirtImagesQuery(b sq.StatementBuilderType, activeOnly bool) (string, []any, error) {
	q := b.Select(tshirtImageColumns...).From(tshirtImagesTable)
	if activeOnly {
		q = q.Where(sq.Eq{"is_active": true})
	}
	return q.OrderBy("position", "id").ToSql()
}

func buildSelectTshirtImageQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(tshirtImageColumns...).
		From(tshirtImagesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildInsertTshirtImageQuery appends the image after the current last
// position in a single statement.
func buildInsertTshirtImageQuery(b sq.StatementBuilderType, img models.TshirtImage, now time.Time) (string, []any, error) {
	nextPosition := sq.Expr("(SELECT COALESCE(MAX(position), 0) + 1 FROM " + tshirtImagesTable + ")")
	return b.Insert(tshirtImagesTable).
		Columns("image_url", "alt", "title", "description", "size", "price", "position", "is_active", "created_at", "updated_at").
		Values(img.ImageURL, img.Alt, img.Title, img.Description, img.Size, img.Price, nextPosition, img.IsActive, now, now).
		Suffix(returning(tshirtImageColumns)).
		ToSql()
}

func buildUpdateTshirtImageQuery(b sq.StatementBuilderType, id int64, upd models.TshirtImageUpdate, now time.Time) (string, []any, error) {
	q := b.Update(tshirtImagesTable).Set("updated_at", now)
	if upd.Alt != nil {
		q = q.Set("alt", *upd.Alt)
	}
	if upd.Title != nil {
		q = q.Set("title", *upd.Title)
	}
	if upd.Description != nil {
		q = q.Set("description", *upd.Description)
	}
	if upd.Size != nil {
		q = q.Set("size", *upd.Size)
	}
	if upd.Price != nil {
		q = q.Set("price", *upd.Price)
	}
	if upd.IsActive != nil {
		q = q.Set("is_active", *upd.IsActive)
	}
	return q.Where(sq.Eq{"id": id}).
		Suffix(returning(tshirtImageColumns)).
		ToSql()
}

func buildUpdateTshirtImagePositionQuery(b sq.StatementBuilderType, id int64, position int, now time.Time) (string, []any, error) {
	return b.Update(tshirtImagesTable).
		Set("position", position).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteTshirtImageQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(tshirtImagesTable).
		Where(sq.Eq{"id": id}).
		Suffix(returning(tshirtImageColumns)).
		ToSql()
}

// ── social links ─────────────────────────────────────────────────────────────

func buildSelectSocialLinksQuery(b sq.StatementBuilderType, activeOnly bool) (string, []any, error) {
	q := b.Select(socialLinkColumns...).From(socialLinksTable)
	if activeOnly {
		q = q.Where(sq.Eq{"is_active": true})
	}
	return q.OrderBy("id").ToSql()
}

func buildDeleteAllSocialLinksQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Delete(socialLinksTable).ToSql()
}

func buildInsertSocialLinkQuery(b sq.StatementBuilderType, link models.SocialLink, now time.Time) (string, []any, error) {
	return b.Insert(socialLinksTable).
		Columns("platform", "url", "is_active", "created_at", "updated_at").
		Values(link.Platform, link.URL, link.IsActive, now, now).
		Suffix(returning(socialLinkColumns)).
		ToSql()
}

// ── copyright ────────────────────────────────────────────────────────────────

func buildSelectCopyrightQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(copyrightColumns...).
		From(copyrightSettingsTable).
		OrderBy("id").
		Limit(1).
		ToSql()
}

func buildInsertCopyrightQuery(b sq.StatementBuilderType, text string, now time.Time) (string, []any, error) {
	return b.Insert(copyrightSettingsTable).
		Columns("text", "created_at", "updated_at").
		Values(text, now, now).
		Suffix(returning(copyrightColumns)).
		ToSql()
}

func buildUpdateCopyrightQuery(b sq.StatementBuilderType, id int64, text string, now time.Time) (string, []any, error) {
	return b.Update(copyrightSettingsTable).
		Set("text", text).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		Suffix(returning(copyrightColumns)).
		ToSql()
}

// ── about ────────────────────────────────────────────────────────────────────

func buildSelectAboutContentQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(aboutContentColumns...).
		From(aboutContentTable).
		OrderBy("id").
		Limit(1).
		ToSql()
}

func buildInsertAboutContentQuery(b sq.StatementBuilderType, a models.AboutContent, now time.Time) (string, []any, error) {
	return b.Insert(aboutContentTable).
		Columns("title", "subtitle", "philosophy_title", "philosophy_text1", "philosophy_text2",
			"contact_title", "contact_email", "contact_phone", "contact_address", "created_at", "updated_at").
		Values(a.Title, a.Subtitle, a.PhilosophyTitle, a.PhilosophyText1, a.PhilosophyText2,
			a.ContactTitle, a.ContactEmail, a.ContactPhone, a.ContactAddress, now, now).
		Suffix(returning(aboutContentColumns)).
		ToSql()
}

func buildUpdateAboutContentQuery(b sq.StatementBuilderType, id int64, a models.AboutContent, now time.Time) (string, []any, error) {
	return b.Update(aboutContentTable).
		SetMap(map[string]any{
			"title":            a.Title,
			"subtitle":         a.Subtitle,
			"philosophy_title": a.PhilosophyTitle,
			"philosophy_text1": a.PhilosophyText1,
			"philosophy_text2": a.PhilosophyText2,
			"contact_title":    a.ContactTitle,
			"contact_email":    a.ContactEmail,
			"contact_phone":    a.ContactPhone,
			"contact_address":  a.ContactAddress,
			"updated_at":       now,
		}).
		Where(sq.Eq{"id": id}).
		Suffix(returning(aboutContentColumns)).
		ToSql()
}
