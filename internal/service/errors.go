// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrNoActiveUser marks a lifecycle call made before SetActiveUser.
	ErrNoActiveUser = errors.New("no active user selected")

	// ErrOrgCryptoInit marks an organization key disclosed by sync that the
	// crypto gateway could not unwrap. The sync that hit it is reported as
	// failed; cached data stays intact.
	ErrOrgCryptoInit = errors.New("organization crypto initialization failed")

	// ErrAttachmentNotFound marks an attachment id absent from the item view
	// it was addressed through.
	ErrAttachmentNotFound = errors.New("attachment not found on item")

	// ErrMissingAttachmentURL marks an attachment whose download URL stayed
	// empty even after a metadata refresh.
	ErrMissingAttachmentURL = errors.New("attachment has no download url")
)
