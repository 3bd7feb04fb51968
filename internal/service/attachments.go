// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-vault-client/models"
)

func (s *itemService) CreateAttachment(ctx context.Context, view models.ItemView, fileName string, data []byte) (models.ItemView, error) {
	item, _, err := s.encryptAndMigrateIfNeeded(ctx, view)
	if err != nil {
		return models.ItemView{}, err
	}

	stagedPath := filepath.Join(s.fileCacheDir, uuid.NewString())
	if err = os.WriteFile(stagedPath, data, 0o600); err != nil {
		return models.ItemView{}, fmt.Errorf("stage attachment in file cache: %w", err)
	}
	defer func() { _ = os.Remove(stagedPath) }()

	encPath, attKey, err := s.gateway.EncryptFile(ctx, view.UserID, stagedPath, item)
	if err != nil {
		return models.ItemView{}, fmt.Errorf("encrypt attachment %q: %w", fileName, err)
	}
	defer func() { _ = os.Remove(encPath) }()

	info, err := os.Stat(encPath)
	if err != nil {
		return models.ItemView{}, fmt.Errorf("stat encrypted attachment: %w", err)
	}

	upload, err := s.api.CreateAttachment(ctx, item.ID, models.AttachmentRequest{
		FileName: fileName,
		Key:      attKey,
		Size:     info.Size(),
	})
	if err != nil {
		return models.ItemView{}, fmt.Errorf("register attachment %q: %w", fileName, err)
	}

	if err = s.api.UploadAttachment(ctx, item.ID, upload.Attachment.ID, encPath, view.OrganizationID); err != nil {
		return models.ItemView{}, fmt.Errorf("upload attachment %s: %w", upload.Attachment.ID, err)
	}

	// Older servers omit the updated item revision from the upload response;
	// fall back to appending the confirmed descriptor locally.
	updated := upload.Item
	if updated.ID == "" {
		updated = item
		updated.Attachments = append(slices.Clone(item.Attachments), upload.Attachment)
	}
	return s.finishView(ctx, view.UserID, AndThen(Ok(updated), s.cacheStep(ctx, view.UserID)))
}

func (s *itemService) DownloadAttachment(ctx context.Context, view models.ItemView, attachmentID string) (string, error) {
	// Decryption needs the per-item key, so a legacy item is migrated before
	// its attachments can be fetched.
	item, _, err := s.encryptAndMigrateIfNeeded(ctx, view)
	if err != nil {
		return "", err
	}

	idx := slices.IndexFunc(item.Attachments, func(a models.Attachment) bool { return a.ID == attachmentID })
	if idx < 0 {
		return "", fmt.Errorf("attachment %s on item %s: %w", attachmentID, view.ID, ErrAttachmentNotFound)
	}
	return s.fetchAndDecrypt(ctx, view.UserID, item, item.Attachments[idx])
}

func (s *itemService) DeleteAttachment(ctx context.Context, view models.ItemView, attachmentID string) (models.ItemView, error) {
	if !slices.ContainsFunc(view.Attachments, func(a models.AttachmentView) bool { return a.ID == attachmentID }) {
		return models.ItemView{}, fmt.Errorf("attachment %s on item %s: %w", attachmentID, view.ID, ErrAttachmentNotFound)
	}

	if err := s.api.DeleteAttachment(ctx, view.ID, attachmentID); err != nil {
		return models.ItemView{}, fmt.Errorf("delete attachment %s: %w", attachmentID, err)
	}

	item, err := s.cache.GetItem(ctx, view.UserID, view.ID)
	if err != nil {
		return models.ItemView{}, fmt.Errorf("load cached item %s: %w", view.ID, err)
	}
	item.Attachments = slices.DeleteFunc(item.Attachments, func(a models.Attachment) bool { return a.ID == attachmentID })
	return s.finishView(ctx, view.UserID, AndThen(Ok(item), s.cacheStep(ctx, view.UserID)))
}

// migrateAttachments re-uploads every unkeyed attachment of dst under the
// destination organization, concurrently and fail-fast. Attachments that
// already carry a per-attachment key pass through untouched.
func (s *itemService) migrateAttachments(ctx context.Context, userID string, src, dst models.Item, organizationID string) ([]models.Attachment, error) {
	out := make([]models.Attachment, len(dst.Attachments))
	g, gctx := errgroup.WithContext(ctx)
	for i, att := range dst.Attachments {
		if att.Key != nil {
			out[i] = att
			continue
		}
		g.Go(func() error {
			migrated, err := s.migrateAttachment(gctx, userID, src, dst, att, organizationID)
			if err != nil {
				return err
			}
			out[i] = migrated
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// migrateAttachment downloads and decrypts one legacy attachment under the
// source item's scope, re-encrypts it with a fresh key wrapped by the
// destination item's key, and uploads the new ciphertext. Both temp files are
// removed whatever the outcome.
func (s *itemService) migrateAttachment(ctx context.Context, userID string, src, dst models.Item, att models.Attachment, organizationID string) (models.Attachment, error) {
	plainPath, err := s.fetchAndDecrypt(ctx, userID, src, att)
	if err != nil {
		return models.Attachment{}, err
	}
	defer func() { _ = os.Remove(plainPath) }()

	encPath, key, err := s.gateway.EncryptFile(ctx, userID, plainPath, dst)
	if err != nil {
		return models.Attachment{}, fmt.Errorf("re-encrypt attachment %s: %w", att.ID, err)
	}
	defer func() { _ = os.Remove(encPath) }()

	if err = s.api.UploadAttachment(ctx, dst.ID, att.ID, encPath, organizationID); err != nil {
		return models.Attachment{}, fmt.Errorf("upload migrated attachment %s: %w", att.ID, err)
	}

	att.Key = key
	return att, nil
}

// fetchAndDecrypt downloads the attachment ciphertext into the file cache and
// decrypts it next to the download. The ciphertext temp file is removed in
// both outcomes; the caller owns the returned plaintext path.
func (s *itemService) fetchAndDecrypt(ctx context.Context, userID string, item models.Item, att models.Attachment) (string, error) {
	if att.URL == "" {
		meta, err := s.api.GetAttachmentMetadata(ctx, item.ID, att.ID)
		if err != nil {
			return "", fmt.Errorf("fetch attachment %s metadata: %w", att.ID, err)
		}
		att.URL = meta.URL
	}
	if att.URL == "" {
		return "", fmt.Errorf("attachment %s: %w", att.ID, ErrMissingAttachmentURL)
	}

	encPath := filepath.Join(s.fileCacheDir, uuid.NewString()+".enc")
	if err := s.api.DownloadFile(ctx, att.URL, encPath); err != nil {
		_ = os.Remove(encPath)
		return "", fmt.Errorf("download attachment %s: %w", att.ID, err)
	}

	plainPath, err := s.gateway.DecryptFile(ctx, userID, encPath, item, att)
	if removeErr := os.Remove(encPath); removeErr != nil {
		s.log.Warn().Err(removeErr).Str("path", encPath).Msg("remove attachment ciphertext temp file")
	}
	if err != nil {
		return "", fmt.Errorf("decrypt attachment %s: %w", att.ID, err)
	}
	return plainPath, nil
}
