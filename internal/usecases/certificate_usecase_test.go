package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ankitkandwal-git/publication-Research-Journal/internal/domain/entity"
	"github.com/ankitkandwal-git/publication-Research-Journal/internal/domain/ports/mocks"
	"github.com/ankitkandwal-git/publication-Research-Journal/internal/usecases"

	"github.com/golang/mock/gomock"
)

func TestCertificateUseCase_Upload_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mocks.NewMockStorageBackend(ctrl)
	u := usecases.NewCertificateUseCase(storage)

	asset := entity.FileAsset{
		OriginalName: "degree.pdf",
		MimeType:     "application/pdf",
		SizeBytes:    3,
		Content:      []byte("abc"),
	}
	want := entity.StoredCertificate{FileName: "1-degree.pdf", Bytes: 3}

	storage.EXPECT().
		Store(gomock.Any(), asset).
		Return(want, nil).
		Times(1)

	got, err := u.Upload(context.Background(), asset)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if got.FileName != "1-degree.pdf" {
		t.Fatalf("expected 1-degree.pdf, got %q", got.FileName)
	}
}

func TestCertificateUseCase_Upload_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mocks.NewMockStorageBackend(ctrl)
	u := usecases.NewCertificateUseCase(storage)

	storage.EXPECT().
		Store(gomock.Any(), gomock.Any()).
		Return(entity.StoredCertificate{}, errors.New("store down")).
		Times(1)

	_, err := u.Upload(context.Background(), entity.FileAsset{OriginalName: "x"})
	if err == nil {
		t.Fatalf("expected err, got nil")
	}
}

func TestCertificateUseCase_Upload_BoundedContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mocks.NewMockStorageBackend(ctrl)
	u := usecases.NewCertificateUseCase(storage)

	storage.EXPECT().
		Store(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, asset entity.FileAsset) (entity.StoredCertificate, error) {
			if _, ok := ctx.Deadline(); !ok {
				t.Fatalf("expected a deadline on the store context")
			}
			return entity.StoredCertificate{}, nil
		}).
		Times(1)

	if _, err := u.Upload(context.Background(), entity.FileAsset{}); err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
}

func TestCertificateUseCase_List_SortsByPublicIDDescending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mocks.NewMockStorageBackend(ctrl)
	u := usecases.NewCertificateUseCase(storage)

	storage.EXPECT().
		List(gomock.Any()).
		Return([]entity.StoredCertificate{
			{PublicID: "100-a"},
			{PublicID: "200-b"},
			{PublicID: "50-c"},
		}, nil).
		Times(1)

	got, err := u.List(context.Background())
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}

	// String comparison, not numeric: "50-c" outranks "200-b".
	want := []string{"50-c", "200-b", "100-a"}
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].PublicID != id {
			t.Fatalf("position %d: expected %q, got %q", i, id, got[i].PublicID)
		}
	}
}

func TestCertificateUseCase_List_MergedPartitionsStayTogether(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mocks.NewMockStorageBackend(ctrl)
	u := usecases.NewCertificateUseCase(storage)

	storage.EXPECT().
		List(gomock.Any()).
		Return([]entity.StoredCertificate{
			{PublicID: "certificates/1-a", ResourceType: "image"},
			{PublicID: "certificates/2-b", ResourceType: "raw"},
		}, nil).
		Times(1)

	got, err := u.List(context.Background())
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected both partitions in one listing, got %d items", len(got))
	}
}

func TestCertificateUseCase_List_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mocks.NewMockStorageBackend(ctrl)
	u := usecases.NewCertificateUseCase(storage)

	storage.EXPECT().
		List(gomock.Any()).
		Return(nil, errors.New("query failed")).
		Times(1)

	if _, err := u.List(context.Background()); err == nil {
		t.Fatalf("expected err, got nil")
	}
}
