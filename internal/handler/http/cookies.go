// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/brand-showcase/internal/config"
	"github.com/MKhiriev/brand-showcase/models"
)

const defaultCookieName = "sid"

// cookiePolicy holds the attributes of the session cookie. HttpOnly is
// not configurable.
type cookiePolicy struct {
	name     string
	sameSite http.SameSite
	secure   bool
}

func newCookiePolicy(cfg config.Auth) cookiePolicy {
	p := cookiePolicy{
		name:     cfg.CookieName,
		sameSite: http.SameSiteStrictMode,
		secure:   !cfg.InsecureCookie,
	}
	if p.name == "" {
		p.name = defaultCookieName
	}
	if cfg.CookieSameSite == config.SameSiteLax {
		p.sameSite = http.SameSiteLaxMode
	}
	return p
}

// set writes the session ticket as a cookie that expires with the session.
func (p cookiePolicy) set(w http.ResponseWriter, session models.Session) {
	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	if maxAge <= 0 {
		maxAge = -1
	}
	http.SetCookie(w, &http.Cookie{
		Name:     p.name,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   p.secure,
		SameSite: p.sameSite,
	})
}

// clear tells the browser to drop the session cookie.
func (p cookiePolicy) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     p.name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   p.secure,
		SameSite: p.sameSite,
	})
}

// token returns the session ticket carried by r, or "".
func (p cookiePolicy) token(r *http.Request) string {
	c, err := r.Cookie(p.name)
	if err != nil {
		return ""
	}
	return c.Value
}
