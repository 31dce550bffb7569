// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings of the site API.
//
// The storefront is Persian, so session and account messages are Persian.
// The admin content endpoints keep the English messages the admin panel
// already matches on.
package app

// Session and account messages.
const (
	// MsgInvalidCredentials is the single 401 answer for unknown users,
	// wrong passwords and inactive accounts.
	MsgInvalidCredentials = "نام کاربری یا رمز عبور اشتباه است"

	// MsgTooManyAttempts accompanies 429 on /api/login.
	MsgTooManyAttempts = "تعداد تلاش‌های ورود بیش از حد مجاز. لطفاً ۱۵ دقیقه صبر کنید."

	// MsgTooManyRegistrations accompanies 429 on /api/register.
	MsgTooManyRegistrations = "تعداد درخواست‌های ثبت‌نام بیش از حد مجاز است. لطفاً بعداً تلاش کنید."

	MsgUsernameTaken        = "این نام کاربری قبلاً استفاده شده است"
	MsgRegistrationDisabled = "ثبت‌نام غیرفعال است"
	MsgLoggedOut            = "با موفقیت خارج شدید"

	// MsgNotLoggedIn is returned by GET /api/user without a live session.
	MsgNotLoggedIn = "وارد نشده‌اید"

	// MsgLoginRequired is returned by every other guarded route.
	MsgLoginRequired = "برای دسترسی به این بخش باید وارد شوید"

	MsgAdminOnly     = "دسترسی محدود - فقط مدیران"
	MsgInternalError = "خطای سرور"
)

// Admin content messages.
const (
	MsgInvalidData      = "Invalid data"
	MsgInvalidImageID   = "Invalid image ID"
	MsgImageNotFound    = "Image not found"
	MsgImageDeleted     = "Image deleted successfully"
	MsgImagesReordered  = "Images reordered successfully"
	MsgNoFileUploaded   = "No file uploaded"
	MsgNoFilesUploaded  = "No files uploaded"
	MsgTooManyFiles     = "Too many files"
	MsgFileTooLarge     = "File too large"
	MsgInvalidImageFile = "Invalid image file"
)
