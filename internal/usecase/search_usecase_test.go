package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/iho/finrecords/internal/domain"
	"github.com/iho/finrecords/internal/usecase"
	"github.com/iho/finrecords/internal/usecase/mocks"
)

func openRecord(id int64, remaining string) *domain.FinancialRecord {
	amount := decimal.RequireFromString(remaining)
	return &domain.FinancialRecord{
		ID:              id,
		PersonID:        1,
		AccountType:     "Loan",
		InitialAmount:   decimal.NewFromInt(5000),
		RemainingAmount: &amount,
		TransactionDate: time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC),
		Status:          "OK",
	}
}

func TestSearchUseCase_OpenRecordsByName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recordRepo := mocks.NewMockFinancialRecordRepository(ctrl)
	recordRepo.EXPECT().
		ListOpenByPerson(gomock.Any(), "John", "Smith", gomock.Any()).
		Return([]*domain.FinancialRecord{openRecord(1, "1200.50"), openRecord(2, "40")}, nil)

	uc := usecase.NewSearchUseCase(recordRepo, nil, 0, zerolog.Nop(), nil)

	records, err := uc.OpenRecordsByName(context.Background(), "John Smith")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}

func TestSearchUseCase_InvalidName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := usecase.NewSearchUseCase(mocks.NewMockFinancialRecordRepository(ctrl), nil, 0, zerolog.Nop(), nil)

	for _, name := range []string{"", "John", "John Paul Smith", "   "} {
		if _, err := uc.OpenRecordsByName(context.Background(), name); !errors.Is(err, domain.ErrInvalidSearchName) {
			t.Fatalf("expected ErrInvalidSearchName for %q, got %v", name, err)
		}
	}
}

func TestSearchUseCase_CacheHitSkipsStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cached, err := json.Marshal([]*domain.FinancialRecord{openRecord(9, "75")})
	if err != nil {
		t.Fatalf("failed to marshal fixture: %v", err)
	}

	cache := mocks.NewMockCache(ctrl)
	cache.EXPECT().Get(gomock.Any(), "open-records:John:Smith").Return(cached, nil)

	// The repository must not be queried on a cache hit.
	recordRepo := mocks.NewMockFinancialRecordRepository(ctrl)

	uc := usecase.NewSearchUseCase(recordRepo, cache, time.Minute, zerolog.Nop(), nil)

	records, err := uc.OpenRecordsByName(context.Background(), "John Smith")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].ID != 9 {
		t.Fatalf("expected cached record, got %+v", records)
	}
}

func TestSearchUseCase_CacheMissPopulatesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := mocks.NewMockCache(ctrl)
	cache.EXPECT().Get(gomock.Any(), "open-records:John:Smith").Return(nil, redis.Nil)
	cache.EXPECT().Set(gomock.Any(), "open-records:John:Smith", gomock.Any(), time.Minute).Return(nil)

	recordRepo := mocks.NewMockFinancialRecordRepository(ctrl)
	recordRepo.EXPECT().
		ListOpenByPerson(gomock.Any(), "John", "Smith", gomock.Any()).
		Return([]*domain.FinancialRecord{openRecord(1, "1200.50")}, nil)

	uc := usecase.NewSearchUseCase(recordRepo, cache, time.Minute, zerolog.Nop(), nil)

	records, err := uc.OpenRecordsByName(context.Background(), "John Smith")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
}

func TestSearchUseCase_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recordRepo := mocks.NewMockFinancialRecordRepository(ctrl)
	recordRepo.EXPECT().
		ListOpenByPerson(gomock.Any(), "John", "Smith", gomock.Any()).
		Return(nil, errors.New("store down"))

	uc := usecase.NewSearchUseCase(recordRepo, nil, 0, zerolog.Nop(), nil)

	if _, err := uc.OpenRecordsByName(context.Background(), "John Smith"); err == nil {
		t.Fatal("expected store error to propagate")
	}
}
