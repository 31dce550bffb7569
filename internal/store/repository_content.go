// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/brand-showcase/internal/logger"
	"github.com/MKhiriev/brand-showcase/models"
)

// contentRepository is the SQL implementation of [ContentRepository].
//
// Brand settings, copyright and about content are singleton tables: the
// row with the lowest id is the live one. Brand settings and copyright are
// created with defaults on first read; about content is created on first
// save.
type contentRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewContentRepository constructs a [ContentRepository] backed by db.
func NewContentRepository(db *DB, logger *logger.Logger) ContentRepository {
	logger.Debug().Msg("creating content repository")
	return &contentRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// ── brand settings ───────────────────────────────────────────────────────────

func (r *contentRepository) GetBrandSettings(ctx context.Context) (models.BrandSettings, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBrandSettingsQuery(r.db.builder)
	if err != nil {
		return models.BrandSettings{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	settings, err := scanBrandSettings(r.db.QueryRowContext(ctx, query, args...))
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).Str("func", "*contentRepository.GetBrandSettings").Msg("error selecting brand settings")
		return models.BrandSettings{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	// first read: seed defaults
	defaults := models.BrandSettings{Name: models.DefaultBrandName, Slogan: models.DefaultBrandSlogan}
	query, args, err = buildInsertBrandSettingsQuery(r.db.builder, defaults, r.now())
	if err != nil {
		return models.BrandSettings{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	settings, err = scanBrandSettings(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*contentRepository.GetBrandSettings").Msg("error creating default brand settings")
		return models.BrandSettings{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	log.Info().Str("func", "*contentRepository.GetBrandSettings").Msg("created default brand settings")
	return settings, nil
}

func (r *contentRepository) UpdateBrandSettings(ctx context.Context, upd models.BrandSettingsUpdate) (models.BrandSettings, error) {
	log := logger.FromContext(ctx)

	current, err := r.GetBrandSettings(ctx)
	if err != nil {
		return models.BrandSettings{}, err
	}

	query, args, err := buildUpdateBrandSettingsQuery(r.db.builder, current.ID, upd, r.now())
	if err != nil {
		return models.BrandSettings{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	settings, err := scanBrandSettings(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*contentRepository.UpdateBrandSettings").Msg("error updating brand settings")
		return models.BrandSettings{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return settings, nil
}

// ── t-shirt images ───────────────────────────────────────────────────────────

func (r *contentRepository) ListTshirtImages(ctx context.Context, activeOnly bool) ([]models.TshirtImage, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTshirtImagesQuery(r.db.builder, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*contentRepository.ListTshirtImages").Msg("error selecting images")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	images := make([]models.TshirtImage, 0)
	for rows.Next() {
		img, err := scanTshirtImage(rows)
		if err != nil {
			log.Err(err).Str("func", "*contentRepository.ListTshirtImages").Msg("error scanning image")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		images = append(images, img)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return images, nil
}

func (r *contentRepository) GetTshirtImage(ctx context.Context, id int64) (models.TshirtImage, error) {
	query, args, err := buildSelectTshirtImageQuery(r.db.builder, id)
	if err != nil {
		return models.TshirtImage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.imageRow(ctx, "*contentRepository.GetTshirtImage", query, args)
}

func (r *contentRepository) CreateTshirtImage(ctx context.Context, img models.TshirtImage) (models.TshirtImage, error) {
	query, args, err := buildInsertTshirtImageQuery(r.db.builder, img, r.now())
	if err != nil {
		return models.TshirtImage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.imageRow(ctx, "*contentRepository.CreateTshirtImage", query, args)
}

func (r *contentRepository) UpdateTshirtImage(ctx context.Context, id int64, upd models.TshirtImageUpdate) (models.TshirtImage, error) {
	query, args, err := buildUpdateTshirtImageQuery(r.db.builder, id, upd, r.now())
	if err != nil {
		return models.TshirtImage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.imageRow(ctx, "*contentRepository.UpdateTshirtImage", query, args)
}

func (r *contentRepository) DeleteTshirtImage(ctx context.Context, id int64) (models.TshirtImage, error) {
	query, args, err := buildDeleteTshirtImageQuery(r.db.builder, id)
	if err != nil {
		return models.TshirtImage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.imageRow(ctx, "*contentRepository.DeleteTshirtImage", query, args)
}

// imageRow runs a statement that yields at most one gallery row.
func (r *contentRepository) imageRow(ctx context.Context, fn, query string, args []any) (models.TshirtImage, error) {
	log := logger.FromContext(ctx)

	img, err := scanTshirtImage(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.TshirtImage{}, ErrImageNotFound
	}
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error querying image")
		return models.TshirtImage{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return img, nil
}

func (r *contentRepository) ReorderTshirtImages(ctx context.Context, ids []int64) error {
	log := logger.FromContext(ctx)
	now := r.now()

	return r.db.withTx(ctx, func(tx *sql.Tx) error {
		for i, id := range ids {
			query, args, err := buildUpdateTshirtImagePositionQuery(r.db.builder, id, i+1, now)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}

			res, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				log.Err(err).Str("func", "*contentRepository.ReorderTshirtImages").Int64("id", id).Msg("error updating position")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			if n, err := res.RowsAffected(); err == nil && n == 0 {
				return fmt.Errorf("%w: id %d", ErrImageNotFound, id)
			}
		}
		return nil
	})
}

// ── social links ─────────────────────────────────────────────────────────────

func (r *contentRepository) ListSocialLinks(ctx context.Context, activeOnly bool) ([]models.SocialLink, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSocialLinksQuery(r.db.builder, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*contentRepository.ListSocialLinks").Msg("error selecting social links")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	links := make([]models.SocialLink, 0)
	for rows.Next() {
		link, err := scanSocialLink(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		links = append(links, link)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return links, nil
}

func (r *contentRepository) ReplaceSocialLinks(ctx context.Context, links []models.SocialLink) ([]models.SocialLink, error) {
	log := logger.FromContext(ctx)
	now := r.now()
	saved := make([]models.SocialLink, 0, len(links))

	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		query, args, err := buildDeleteAllSocialLinksQuery(r.db.builder)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		for _, link := range links {
			query, args, err = buildInsertSocialLinkQuery(r.db.builder, link, now)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			created, err := scanSocialLink(tx.QueryRowContext(ctx, query, args...))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
			}
			saved = append(saved, created)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*contentRepository.ReplaceSocialLinks").Msg("error replacing social links")
		return nil, err
	}

	return saved, nil
}

// ── copyright ────────────────────────────────────────────────────────────────

func (r *contentRepository) GetCopyrightSettings(ctx context.Context) (models.CopyrightSettings, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCopyrightQuery(r.db.builder)
	if err != nil {
		return models.CopyrightSettings{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	settings, err := scanCopyright(r.db.QueryRowContext(ctx, query, args...))
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).Str("func", "*contentRepository.GetCopyrightSettings").Msg("error selecting copyright")
		return models.CopyrightSettings{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err = buildInsertCopyrightQuery(r.db.builder, models.DefaultCopyrightText, r.now())
	if err != nil {
		return models.CopyrightSettings{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	settings, err = scanCopyright(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*contentRepository.GetCopyrightSettings").Msg("error creating default copyright")
		return models.CopyrightSettings{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return settings, nil
}

func (r *contentRepository) UpdateCopyrightSettings(ctx context.Context, text string) (models.CopyrightSettings, error) {
	log := logger.FromContext(ctx)

	current, err := r.GetCopyrightSettings(ctx)
	if err != nil {
		return models.CopyrightSettings{}, err
	}

	query, args, err := buildUpdateCopyrightQuery(r.db.builder, current.ID, text, r.now())
	if err != nil {
		return models.CopyrightSettings{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	settings, err := scanCopyright(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*contentRepository.UpdateCopyrightSettings").Msg("error updating copyright")
		return models.CopyrightSettings{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return settings, nil
}

// ── about ────────────────────────────────────────────────────────────────────

func (r *contentRepository) GetAboutContent(ctx context.Context) (models.AboutContent, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAboutContentQuery(r.db.builder)
	if err != nil {
		return models.AboutContent{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	about, err := scanAboutContent(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.AboutContent{}, ErrAboutContentNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*contentRepository.GetAboutContent").Msg("error selecting about content")
		return models.AboutContent{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return about, nil
}

// SaveAboutContent overwrites the about page, creating it if needed.
func (r *contentRepository) SaveAboutContent(ctx context.Context, about models.AboutContent) (models.AboutContent, error) {
	log := logger.FromContext(ctx)

	var (
		query string
		args  []any
	)

	current, err := r.GetAboutContent(ctx)
	switch {
	case errors.Is(err, ErrAboutContentNotFound):
		query, args, err = buildInsertAboutContentQuery(r.db.builder, about, r.now())
	case err != nil:
		return models.AboutContent{}, err
	default:
		query, args, err = buildUpdateAboutContentQuery(r.db.builder, current.ID, about, r.now())
	}
	if err != nil {
		return models.AboutContent{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	saved, err := scanAboutContent(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*contentRepository.SaveAboutContent").Msg("error saving about content")
		return models.AboutContent{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return saved, nil
}

// ── scanners ─────────────────────────────────────────────────────────────────

func scanBrandSettings(row rowScanner) (models.BrandSettings, error) {
	var s models.BrandSettings
	err := row.Scan(&s.ID, &s.Name, &s.Slogan, &s.LogoURL, scanTime(&s.CreatedAt), scanTime(&s.UpdatedAt))
	return s, err
}

func scanTshirtImage(row rowScanner) (models.TshirtImage, error) {
	var img models.TshirtImage
	err := row.Scan(&img.ID, &img.ImageURL, &img.Alt, &img.Title, &img.Description,
		&img.Size, &img.Price, &img.Order, &img.IsActive, scanTime(&img.CreatedAt), scanTime(&img.UpdatedAt))
	return img, err
}

func scanSocialLink(row rowScanner) (models.SocialLink, error) {
	var l models.SocialLink
	err := row.Scan(&l.ID, &l.Platform, &l.URL, &l.IsActive, scanTime(&l.CreatedAt), scanTime(&l.UpdatedAt))
	return l, err
}

func scanCopyright(row rowScanner) (models.CopyrightSettings, error) {
	var c models.CopyrightSettings
	err := row.Scan(&c.ID, &c.Text, scanTime(&c.CreatedAt), scanTime(&c.UpdatedAt))
	return c, err
}

func scanAboutContent(row rowScanner) (models.AboutContent, error) {
	var a models.AboutContent
	err := row.Scan(&a.ID, &a.Title, &a.Subtitle, &a.PhilosophyTitle, &a.PhilosophyText1, &a.PhilosophyText2,
		&a.ContactTitle, &a.ContactEmail, &a.ContactPhone, &a.ContactAddress, scanTime(&a.CreatedAt), scanTime(&a.UpdatedAt))
	return a, err
}
