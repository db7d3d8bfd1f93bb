package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/gstmate/gstmate/internal/domain"
	"github.com/gstmate/gstmate/internal/usecase"
	"github.com/gstmate/gstmate/internal/usecase/mocks"
)

func TestCalculationUseCase_ComputeAndRecord(t *testing.T) {
	tests := []struct {
		name      string
		input     usecase.ComputeInput
		wantGST   string
		wantTotal string
		wantErr   error
	}{
		{
			name:      "standard rate",
			input:     usecase.ComputeInput{Amount: "1000", GSTRate: "5"},
			wantGST:   "50",
			wantTotal: "1050",
		},
		{
			name:      "rounding",
			input:     usecase.ComputeInput{Amount: "999.99", GSTRate: "18"},
			wantGST:   "180",
			wantTotal: "1179.99",
		},
		{
			name:    "zero amount",
			input:   usecase.ComputeInput{Amount: "0", GSTRate: "5"},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			input:   usecase.ComputeInput{Amount: "-5", GSTRate: "5"},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "negative rate",
			input:   usecase.ComputeInput{Amount: "100", GSTRate: "-1"},
			wantErr: domain.ErrInvalidRate,
		},
		{
			name:    "malformed amount",
			input:   usecase.ComputeInput{Amount: "ten", GSTRate: "5"},
			wantErr: domain.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// No Append expectation: anonymous input must never reach the
			// repository, and invalid input must never reach the engine.
			repo := mocks.NewMockCalculationRepository(ctrl)
			uc := usecase.NewCalculationUseCase(repo, 5, zerolog.Nop())

			result, err := uc.ComputeAndRecord(context.Background(), tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.GSTAmount.String() != tt.wantGST {
				t.Errorf("gst amount = %s, want %s", result.GSTAmount, tt.wantGST)
			}
			if result.TotalAmount.String() != tt.wantTotal {
				t.Errorf("total amount = %s, want %s", result.TotalAmount, tt.wantTotal)
			}
		})
	}
}

func TestCalculationUseCase_ComputeAndRecord_AppendsForUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	appended := make(chan *domain.Calculation, 1)

	repo := mocks.NewMockCalculationRepository(ctrl)
	repo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, calc *domain.Calculation) error {
			appended <- calc
			return nil
		})

	uc := usecase.NewCalculationUseCase(repo, 5, zerolog.Nop())

	_, err := uc.ComputeAndRecord(context.Background(), usecase.ComputeInput{
		Amount:  "200",
		GSTRate: "10",
		UserID:  "user-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case calc := <-appended:
		if calc.UserID != "user-1" {
			t.Errorf("expected user-1, got %s", calc.UserID)
		}
		if calc.GSTAmount.String() != "20" {
			t.Errorf("gst amount = %s, want 20", calc.GSTAmount)
		}
		if calc.TotalAmount.String() != "220" {
			t.Errorf("total amount = %s, want 220", calc.TotalAmount)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("append was never attempted")
	}
}

func TestCalculationUseCase_ComputeAndRecord_AppendFailureDoesNotBlockResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attempted := make(chan struct{}, 1)

	repo := mocks.NewMockCalculationRepository(ctrl)
	repo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, calc *domain.Calculation) error {
			defer close(attempted)
			return errors.New("backend unreachable")
		})

	uc := usecase.NewCalculationUseCase(repo, 5, zerolog.Nop())

	result, err := uc.ComputeAndRecord(context.Background(), usecase.ComputeInput{
		Amount:  "1000",
		GSTRate: "5",
		UserID:  "user-1",
	})
	if err != nil {
		t.Fatalf("computation must succeed despite append failure, got %v", err)
	}
	if result.GSTAmount.String() != "50" || result.TotalAmount.String() != "1050" {
		t.Errorf("result = %s/%s, want 50/1050", result.GSTAmount, result.TotalAmount)
	}

	select {
	case <-attempted:
	case <-time.After(2 * time.Second):
		t.Fatal("append was never attempted")
	}
}

func TestCalculationUseCase_ComputeAndRecord_CancelledRequestStillAppends(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	appended := make(chan struct{}, 1)

	repo := mocks.NewMockCalculationRepository(ctrl)
	repo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, calc *domain.Calculation) error {
			if err := ctx.Err(); err != nil {
				t.Errorf("append context already dead: %v", err)
			}
			close(appended)
			return nil
		})

	uc := usecase.NewCalculationUseCase(repo, 5, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	_, err := uc.ComputeAndRecord(ctx, usecase.ComputeInput{
		Amount:  "100",
		GSTRate: "18",
		UserID:  "user-1",
	})
	cancel()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case <-appended:
	case <-time.After(2 * time.Second):
		t.Fatal("append was never attempted")
	}
}
