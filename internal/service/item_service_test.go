package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vault-client/internal/adapter"
	"github.com/MKhiriev/go-vault-client/internal/logger"
	"github.com/MKhiriev/go-vault-client/internal/mock"
	"github.com/MKhiriev/go-vault-client/models"
)

func strPtr(s string) *string { return &s }

func newTestItemService(t *testing.T, ctrl *gomock.Controller) (
	ItemService,
	*mock.MockVaultAPI,
	*mock.MockVaultCache,
	*mock.MockGateway,
	string,
) {
	t.Helper()
	mockAPI := mock.NewMockVaultAPI(ctrl)
	mockCache := mock.NewMockVaultCache(ctrl)
	mockGateway := mock.NewMockGateway(ctrl)
	dir := t.TempDir()

	svc := NewItemService(mockAPI, mockCache, mockGateway, dir, logger.Nop())
	return svc, mockAPI, mockCache, mockGateway, dir
}

func TestItemService_CreateItem_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAPI, mockCache, mockGateway, _ := newTestItemService(t, ctrl)
	ctx := context.Background()

	view := models.ItemView{UserID: "user-1", Type: models.ItemTypeLogin, Name: "example.com"}
	encrypted := models.Item{UserID: "user-1", Name: "enc-name", Key: strPtr("wrapped")}
	confirmed := encrypted
	confirmed.ID = "item-1"

	mockGateway.EXPECT().EncryptItem(ctx, "user-1", gomock.Any()).Return(encrypted, nil)
	mockAPI.EXPECT().CreateItem(ctx, encrypted).Return(confirmed, nil)
	mockCache.EXPECT().UpsertItem(ctx, "user-1", confirmed).Return(nil)
	mockGateway.EXPECT().DecryptItem(ctx, "user-1", confirmed).
		Return(models.ItemView{ID: "item-1", UserID: "user-1", Name: "example.com", Key: strPtr("item-key")}, nil)

	got, err := svc.CreateItem(ctx, view)
	require.NoError(t, err)
	assert.Equal(t, "item-1", got.ID)
	require.NotNil(t, got.Key)
}

func TestItemService_CreateItem_AssignsID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAPI, mockCache, mockGateway, _ := newTestItemService(t, ctrl)
	ctx := context.Background()

	mockGateway.EXPECT().EncryptItem(ctx, "user-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, v models.ItemView) (models.Item, error) {
			assert.NotEmpty(t, v.ID, "a fresh id must be assigned before encryption")
			return models.Item{ID: v.ID, Key: strPtr("wrapped")}, nil
		})
	mockAPI.EXPECT().CreateItem(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, item models.Item) (models.Item, error) { return item, nil })
	mockCache.EXPECT().UpsertItem(ctx, "user-1", gomock.Any()).Return(nil)
	mockGateway.EXPECT().DecryptItem(ctx, "user-1", gomock.Any()).Return(models.ItemView{}, nil)

	_, err := svc.CreateItem(ctx, models.ItemView{UserID: "user-1"})
	require.NoError(t, err)
}

func TestItemService_CreateItem_EncryptError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _, _, mockGateway, _ := newTestItemService(t, ctrl)
	ctx := context.Background()

	mockGateway.EXPECT().EncryptItem(ctx, "user-1", gomock.Any()).
		Return(models.Item{}, errors.New("no session"))

	_, err := svc.CreateItem(ctx, models.ItemView{UserID: "user-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encrypt item")
}

func TestItemService_CreateItem_RemoteErrorSkipsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAPI, _, mockGateway, _ := newTestItemService(t, ctrl)
	ctx := context.Background()

	mockGateway.EXPECT().EncryptItem(ctx, "user-1", gomock.Any()).
		Return(models.Item{Key: strPtr("wrapped")}, nil)
	mockAPI.EXPECT().CreateItem(ctx, gomock.Any()).Return(models.Item{}, errors.New("boom"))

	_, err := svc.CreateItem(ctx, models.ItemView{UserID: "user-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create item")
}

func TestItemService_UpdateItem_KeyedItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAPI, mockCache, mockGateway, _ := newTestItemService(t, ctrl)
	ctx := context.Background()

	view := models.ItemView{ID: "item-1", UserID: "user-1", Key: strPtr("item-key")}
	encrypted := models.Item{ID: "item-1", Key: strPtr("wrapped")}

	mockGateway.EXPECT().EncryptItem(ctx, "user-1", view).Return(encrypted, nil)
	mockAPI.EXPECT().UpdateItem(ctx, encrypted).Return(encrypted, nil).Times(1)
	mockCache.EXPECT().UpsertItem(ctx, "user-1", encrypted).Return(nil)
	mockGateway.EXPECT().DecryptItem(ctx, "user-1", encrypted).Return(view, nil)

	got, err := svc.UpdateItem(ctx, view)
	require.NoError(t, err)
	assert.Equal(t, "item-1", got.ID)
}

func TestItemService_UpdateItem_MigratesUnkeyedItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAPI, mockCache, mockGateway, _ := newTestItemService(t, ctrl)
	ctx := context.Background()

	view := models.ItemView{ID: "item-1", UserID: "user-1", Name: "edited"}
	migrated := models.Item{ID: "item-1", Key: strPtr("fresh-wrapped")}

	mockGateway.EXPECT().EncryptItem(ctx, "user-1", view).Return(migrated, nil)
	// The migration update carries the edit; there must be exactly one
	// remote write.
	mockAPI.EXPECT().UpdateItem(ctx, migrated).Return(migrated, nil).Times(1)
	mockCache.EXPECT().UpsertItem(ctx, "user-1", migrated).Return(nil)
	mockGateway.EXPECT().DecryptItem(ctx, "user-1", migrated).
		Return(models.ItemView{ID: "item-1", Name: "edited", Key: strPtr("item-key")}, nil)

	got, err := svc.UpdateItem(ctx, view)
	require.NoError(t, err)
	require.NotNil(t, got.Key)
}

func TestItemService_UpdateItem_ServerRejectionMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAPI, _, mockGateway, _ := newTestItemService(t, ctrl)
	ctx := context.Background()

	view := models.ItemView{ID: "item-1", UserID: "user-1", Key: strPtr("item-key")}
	mockGateway.EXPECT().EncryptItem(ctx, "user-1", view).Return(models.Item{ID: "item-1", Key: strPtr("w")}, nil)
	mockAPI.EXPECT().UpdateItem(ctx, gomock.Any()).
		Return(models.Item{}, &adapter.InvalidError{Message: "cipher too large"})

	_, err := svc.UpdateItem(ctx, view)
	require.Error(t, err)

	var invalid *adapter.InvalidError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "cipher too large", invalid.Message)
}

func TestItemService_SoftDeleteItem_MigratesThenDeletes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAPI, mockCache, mockGateway, _ := newTestItemService(t, ctrl)
	ctx := context.Background()

	view := models.ItemView{ID: "item-1", UserID: "user-1"}
	migrated := models.Item{ID: "item-1", Key: strPtr("fresh-wrapped")}
	deleted := migrated

	mockGateway.EXPECT().EncryptItem(ctx, "user-1", view).Return(migrated, nil)
	mockAPI.EXPECT().UpdateItem(ctx, migrated).Return(migrated, nil).Times(1)
	mockAPI.EXPECT().SoftDeleteItem(ctx, migrated).Return(deleted, nil).Times(1)
	mockCache.EXPECT().UpsertItem(ctx, "user-1", gomock.Any()).Return(nil).Times(2)
	mockGateway.EXPECT().DecryptItem(ctx, "user-1", gomock.Any()).
		Return(models.ItemView{ID: "item-1", Key: strPtr("item-key")}, nil).Times(2)

	_, err := svc.SoftDeleteItem(ctx, view)
	require.NoError(t, err)
}

func TestItemService_SoftDeleteItem_KeyedItemSkipsMigration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAPI, mockCache, mockGateway, _ := newTestItemService(t, ctrl)
	ctx := context.Background()

	view := models.ItemView{ID: "item-1", UserID: "user-1", Key: strPtr("item-key")}
	encrypted := models.Item{ID: "item-1", Key: strPtr("wrapped")}

	mockGateway.EXPECT().EncryptItem(ctx, "user-1", view).Return(encrypted, nil)
	mockAPI.EXPECT().SoftDeleteItem(ctx, encrypted).Return(encrypted, nil)
	mockCache.EXPECT().UpsertItem(ctx, "user-1", encrypted).Return(nil)
	mockGateway.EXPECT().DecryptItem(ctx, "user-1", encrypted).Return(view, nil)

	_, err := svc.SoftDeleteItem(ctx, view)
	require.NoError(t, err)
}

func TestItemService_HardDeleteItem_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAPI, mockCache, _, _ := newTestItemService(t, ctrl)
	ctx := context.Background()

	mockAPI.EXPECT().HardDeleteItem(ctx, "item-1").Return(nil)
	mockCache.EXPECT().DeleteItem(ctx, "user-1", "item-1").Return(nil)

	require.NoError(t, svc.HardDeleteItem(ctx, "user-1", "item-1"))
}

func TestItemService_HardDeleteItem_RemoteErrorKeepsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAPI, _, _, _ := newTestItemService(t, ctrl)
	ctx := context.Background()

	mockAPI.EXPECT().HardDeleteItem(ctx, "item-1").Return(errors.New("boom"))

	err := svc.HardDeleteItem(ctx, "user-1", "item-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hard delete item")
}

func TestItemService_RestoreItem_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAPI, mockCache, mockGateway, _ := newTestItemService(t, ctrl)
	ctx := context.Background()

	restored := models.Item{ID: "item-1", Key: strPtr("wrapped")}
	mockAPI.EXPECT().RestoreItem(ctx, "item-1").Return(restored, nil)
	mockCache.EXPECT().UpsertItem(ctx, "user-1", restored).Return(nil)
	mockGateway.EXPECT().DecryptItem(ctx, "user-1", restored).
		Return(models.ItemView{ID: "item-1"}, nil)

	got, err := svc.RestoreItem(ctx, "user-1", "item-1")
	require.NoError(t, err)
	assert.Nil(t, got.DeletedAt)
}

func TestItemService_UpdateItemCollections_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAPI, mockCache, mockGateway, _ := newTestItemService(t, ctrl)
	ctx := context.Background()

	confirmed := models.Item{ID: "item-1", CollectionIDs: []string{"coll-1"}}
	mockAPI.EXPECT().UpdateItemCollections(ctx, "item-1", []string{"coll-1"}).Return(confirmed, nil)
	mockCache.EXPECT().UpsertItem(ctx, "user-1", confirmed).Return(nil)
	mockGateway.EXPECT().DecryptItem(ctx, "user-1", confirmed).
		Return(models.ItemView{ID: "item-1", CollectionIDs: []string{"coll-1"}}, nil)

	got, err := svc.UpdateItemCollections(ctx, "user-1", "item-1", []string{"coll-1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"coll-1"}, got.CollectionIDs)
}

func TestItemService_ShareItem_MigratesLegacyAttachments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAPI, mockCache, mockGateway, dir := newTestItemService(t, ctrl)
	ctx := context.Background()

	view := models.ItemView{ID: "item-1", UserID: "user-1", Key: strPtr("item-key")}
	srcItem := models.Item{ID: "item-1", Key: strPtr("wrapped")}
	dstItem := models.Item{
		ID:             "item-1",
		OrganizationID: "org-1",
		Key:            strPtr("org-wrapped"),
		Attachments: []models.Attachment{
			{ID: "att-keyed", Key: strPtr("att-key"), URL: "https://files/att-keyed"},
			{ID: "att-legacy", URL: "https://files/att-legacy"},
		},
	}

	mockGateway.EXPECT().EncryptItem(ctx, "user-1", view).Return(srcItem, nil)
	mockGateway.EXPECT().EncryptItem(ctx, "user-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, v models.ItemView) (models.Item, error) {
			assert.Equal(t, "org-1", v.OrganizationID)
			assert.Equal(t, []string{"coll-1"}, v.CollectionIDs)
			return dstItem, nil
		})

	// Legacy attachment migration: download, decrypt, re-encrypt, re-upload.
	plainPath := filepath.Join(dir, "att-legacy.plain")
	encPath := filepath.Join(dir, "att-legacy.enc")
	mockAPI.EXPECT().DownloadFile(gomock.Any(), "https://files/att-legacy", gomock.Any()).Return(nil)
	mockGateway.EXPECT().DecryptFile(gomock.Any(), "user-1", gomock.Any(), srcItem, gomock.Any()).
		Return(plainPath, nil)
	mockGateway.EXPECT().EncryptFile(gomock.Any(), "user-1", plainPath, dstItem).
		Return(encPath, strPtr("migrated-att-key"), nil)
	mockAPI.EXPECT().UploadAttachment(gomock.Any(), "item-1", "att-legacy", encPath, "org-1").Return(nil)

	mockAPI.EXPECT().ShareItem(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, item models.Item) (models.Item, error) {
			require.Len(t, item.Attachments, 2)
			assert.Equal(t, "att-key", *item.Attachments[0].Key)
			assert.Equal(t, "migrated-att-key", *item.Attachments[1].Key)
			return item, nil
		})
	mockCache.EXPECT().UpsertItem(ctx, "user-1", gomock.Any()).Return(nil)
	mockGateway.EXPECT().DecryptItem(ctx, "user-1", gomock.Any()).
		Return(models.ItemView{ID: "item-1", OrganizationID: "org-1"}, nil)

	got, err := svc.ShareItem(ctx, view, "org-1", []string{"coll-1"})
	require.NoError(t, err)
	assert.Equal(t, "org-1", got.OrganizationID)
}

func TestItemService_ShareItem_AttachmentMigrationFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAPI, _, mockGateway, _ := newTestItemService(t, ctrl)
	ctx := context.Background()

	view := models.ItemView{ID: "item-1", UserID: "user-1", Key: strPtr("item-key")}
	srcItem := models.Item{ID: "item-1", Key: strPtr("wrapped")}
	dstItem := models.Item{
		ID:             "item-1",
		OrganizationID: "org-1",
		Attachments:    []models.Attachment{{ID: "att-legacy", URL: "https://files/att-legacy"}},
	}

	mockGateway.EXPECT().EncryptItem(ctx, "user-1", view).Return(srcItem, nil)
	mockGateway.EXPECT().EncryptItem(ctx, "user-1", gomock.Any()).Return(dstItem, nil)
	mockAPI.EXPECT().DownloadFile(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("storage gone"))

	// No ShareItem expectation: a failed migration must abort the share.
	_, err := svc.ShareItem(ctx, view, "org-1", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "download attachment")
}

func TestItemService_CreateAttachment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAPI, mockCache, mockGateway, dir := newTestItemService(t, ctrl)
	ctx := context.Background()

	view := models.ItemView{ID: "item-1", UserID: "user-1", Key: strPtr("item-key")}
	item := models.Item{ID: "item-1", Key: strPtr("wrapped")}

	mockGateway.EXPECT().EncryptItem(ctx, "user-1", view).Return(item, nil)
	mockGateway.EXPECT().EncryptFile(ctx, "user-1", gomock.Any(), item).
		DoAndReturn(func(_ context.Context, _, srcPath string, _ models.Item) (string, *string, error) {
			plain, err := os.ReadFile(srcPath)
			require.NoError(t, err)
			assert.Equal(t, "secret bytes", string(plain))

			encPath := srcPath + ".enc"
			require.NoError(t, os.WriteFile(encPath, []byte("ciphertext"), 0o600))
			return encPath, strPtr("att-key"), nil
		})
	mockAPI.EXPECT().CreateAttachment(ctx, "item-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req models.AttachmentRequest) (models.AttachmentUpload, error) {
			assert.Equal(t, "notes.txt", req.FileName)
			assert.Equal(t, int64(len("ciphertext")), req.Size)
			require.NotNil(t, req.Key)
			return models.AttachmentUpload{
				Attachment: models.Attachment{ID: "att-1", Key: req.Key, FileName: req.FileName, Size: req.Size},
				Item:       models.Item{ID: "item-1", Key: strPtr("wrapped"), Attachments: []models.Attachment{{ID: "att-1"}}},
				UploadURL:  "https://files/att-1",
			}, nil
		})
	mockAPI.EXPECT().UploadAttachment(ctx, "item-1", "att-1", gomock.Any(), "").Return(nil)
	mockCache.EXPECT().UpsertItem(ctx, "user-1", gomock.Any()).Return(nil)
	mockGateway.EXPECT().DecryptItem(ctx, "user-1", gomock.Any()).
		Return(models.ItemView{ID: "item-1", Attachments: []models.AttachmentView{{ID: "att-1"}}}, nil)

	got, err := svc.CreateAttachment(ctx, view, "notes.txt", []byte("secret bytes"))
	require.NoError(t, err)
	require.Len(t, got.Attachments, 1)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "staged and encrypted temp files must be removed")
}

func TestItemService_CreateAttachment_UploadErrorCleansTempFiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAPI, _, mockGateway, dir := newTestItemService(t, ctrl)
	ctx := context.Background()

	view := models.ItemView{ID: "item-1", UserID: "user-1", Key: strPtr("item-key")}
	item := models.Item{ID: "item-1", Key: strPtr("wrapped")}

	mockGateway.EXPECT().EncryptItem(ctx, "user-1", view).Return(item, nil)
	mockGateway.EXPECT().EncryptFile(ctx, "user-1", gomock.Any(), item).
		DoAndReturn(func(_ context.Context, _, srcPath string, _ models.Item) (string, *string, error) {
			encPath := srcPath + ".enc"
			require.NoError(t, os.WriteFile(encPath, []byte("ciphertext"), 0o600))
			return encPath, strPtr("att-key"), nil
		})
	mockAPI.EXPECT().CreateAttachment(ctx, "item-1", gomock.Any()).
		Return(models.AttachmentUpload{Attachment: models.Attachment{ID: "att-1"}}, nil)
	mockAPI.EXPECT().UploadAttachment(ctx, "item-1", "att-1", gomock.Any(), "").
		Return(errors.New("server full"))

	_, err := svc.CreateAttachment(ctx, view, "notes.txt", []byte("secret bytes"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upload attachment")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temp files must be removed on failure too")
}

func TestItemService_DownloadAttachment_FetchesMetadataWhenURLMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAPI, _, mockGateway, dir := newTestItemService(t, ctrl)
	ctx := context.Background()

	view := models.ItemView{
		ID:          "item-1",
		UserID:      "user-1",
		Key:         strPtr("item-key"),
		Attachments: []models.AttachmentView{{ID: "att-1", Key: strPtr("att-key")}},
	}
	item := models.Item{
		ID:          "item-1",
		Key:         strPtr("wrapped"),
		Attachments: []models.Attachment{{ID: "att-1", Key: strPtr("att-key")}},
	}
	plainPath := filepath.Join(dir, "att-1.plain")

	mockGateway.EXPECT().EncryptItem(ctx, "user-1", view).Return(item, nil)
	mockAPI.EXPECT().GetAttachmentMetadata(ctx, "item-1", "att-1").
		Return(models.Attachment{ID: "att-1", URL: "https://files/att-1"}, nil)
	mockAPI.EXPECT().DownloadFile(ctx, "https://files/att-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, dstPath string) error {
			return os.WriteFile(dstPath, []byte("ciphertext"), 0o600)
		})
	mockGateway.EXPECT().DecryptFile(ctx, "user-1", gomock.Any(), item, gomock.Any()).
		Return(plainPath, nil)

	got, err := svc.DownloadAttachment(ctx, view, "att-1")
	require.NoError(t, err)
	assert.Equal(t, plainPath, got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "the downloaded ciphertext must be removed")
}

func TestItemService_DownloadAttachment_DownloadErrorCleansTempFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAPI, _, mockGateway, dir := newTestItemService(t, ctrl)
	ctx := context.Background()

	view := models.ItemView{
		ID:          "item-1",
		UserID:      "user-1",
		Key:         strPtr("item-key"),
		Attachments: []models.AttachmentView{{ID: "att-1", Key: strPtr("att-key")}},
	}
	item := models.Item{
		ID:          "item-1",
		Key:         strPtr("wrapped"),
		Attachments: []models.Attachment{{ID: "att-1", Key: strPtr("att-key"), URL: "https://files/att-1"}},
	}
	mockGateway.EXPECT().EncryptItem(ctx, "user-1", view).Return(item, nil)
	mockAPI.EXPECT().DownloadFile(ctx, "https://files/att-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, dstPath string) error {
			// Simulate a transfer aborted partway through a partial write.
			require.NoError(t, os.WriteFile(dstPath, []byte("partial"), 0o600))
			return errors.New("connection reset")
		})

	_, err := svc.DownloadAttachment(ctx, view, "att-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "download attachment")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "the partial download must be removed")
}

func TestItemService_DownloadAttachment_MissingURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAPI, _, mockGateway, _ := newTestItemService(t, ctrl)
	ctx := context.Background()

	view := models.ItemView{
		ID:          "item-1",
		UserID:      "user-1",
		Key:         strPtr("item-key"),
		Attachments: []models.AttachmentView{{ID: "att-1", Key: strPtr("att-key")}},
	}
	item := models.Item{
		ID:          "item-1",
		Key:         strPtr("wrapped"),
		Attachments: []models.Attachment{{ID: "att-1", Key: strPtr("att-key")}},
	}
	mockGateway.EXPECT().EncryptItem(ctx, "user-1", view).Return(item, nil)
	mockAPI.EXPECT().GetAttachmentMetadata(ctx, "item-1", "att-1").
		Return(models.Attachment{ID: "att-1"}, nil)

	_, err := svc.DownloadAttachment(ctx, view, "att-1")
	assert.ErrorIs(t, err, ErrMissingAttachmentURL)
}

func TestItemService_DownloadAttachment_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _, _, mockGateway, _ := newTestItemService(t, ctrl)
	ctx := context.Background()

	view := models.ItemView{ID: "item-1", UserID: "user-1", Key: strPtr("item-key")}
	mockGateway.EXPECT().EncryptItem(ctx, "user-1", view).Return(models.Item{ID: "item-1", Key: strPtr("wrapped")}, nil)

	_, err := svc.DownloadAttachment(ctx, view, "ghost")
	assert.ErrorIs(t, err, ErrAttachmentNotFound)
}

func TestItemService_DeleteAttachment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAPI, mockCache, mockGateway, _ := newTestItemService(t, ctrl)
	ctx := context.Background()

	view := models.ItemView{
		ID:          "item-1",
		UserID:      "user-1",
		Attachments: []models.AttachmentView{{ID: "att-1"}, {ID: "att-2"}},
	}
	cached := models.Item{
		ID:          "item-1",
		Attachments: []models.Attachment{{ID: "att-1"}, {ID: "att-2"}},
	}

	mockAPI.EXPECT().DeleteAttachment(ctx, "item-1", "att-1").Return(nil)
	mockCache.EXPECT().GetItem(ctx, "user-1", "item-1").Return(cached, nil)
	mockCache.EXPECT().UpsertItem(ctx, "user-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, item models.Item) error {
			require.Len(t, item.Attachments, 1)
			assert.Equal(t, "att-2", item.Attachments[0].ID)
			return nil
		})
	mockGateway.EXPECT().DecryptItem(ctx, "user-1", gomock.Any()).
		Return(models.ItemView{ID: "item-1", Attachments: []models.AttachmentView{{ID: "att-2"}}}, nil)

	got, err := svc.DeleteAttachment(ctx, view, "att-1")
	require.NoError(t, err)
	require.Len(t, got.Attachments, 1)
}

func TestItemService_DeleteAttachment_NotFoundSkipsRemote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _, _, _, _ := newTestItemService(t, ctrl)

	_, err := svc.DeleteAttachment(context.Background(), models.ItemView{ID: "item-1", UserID: "user-1"}, "ghost")
	assert.ErrorIs(t, err, ErrAttachmentNotFound)
}
