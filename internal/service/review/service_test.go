package review_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lumiere-photography/internal/domain"
	"lumiere-photography/internal/mocks"
	"lumiere-photography/internal/service/review"
)

func validInput() domain.CreateReviewInput {
	return domain.CreateReviewInput{
		ClientName: "Jamie Doe",
		Email:      "jamie@example.com",
		Rating:     5,
		Comment:    "Absolutely wonderful photos from our wedding day.",
	}
}

func TestReviewService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Starts Pending And Normalizes Fields", func(t *testing.T) {
		mockRepo := new(mocks.ReviewRepository)
		svc := review.NewService(mockRepo, nil, nil)

		input := validInput()
		input.ClientName = "  Jamie Doe  "
		input.Email = "  Jamie@Example.COM "

		mockRepo.On("Create", ctx, mock.MatchedBy(func(r *domain.Review) bool {
			return r.ClientName == "Jamie Doe" &&
				r.Email == "jamie@example.com" &&
				r.Status == domain.ReviewStatusPending
		})).Return(nil).Once()

		r, err := svc.Create(ctx, input)

		assert.NoError(t, err)
		assert.Equal(t, domain.ReviewStatusPending, r.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Missing Fields", func(t *testing.T) {
		mockRepo := new(mocks.ReviewRepository)
		svc := review.NewService(mockRepo, nil, nil)

		input := validInput()
		input.Rating = 0

		_, err := svc.Create(ctx, input)

		assert.ErrorIs(t, err, review.ErrMissingFields)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Invalid Email", func(t *testing.T) {
		svc := review.NewService(new(mocks.ReviewRepository), nil, nil)

		input := validInput()
		input.Email = "not-an-email"

		_, err := svc.Create(ctx, input)

		assert.ErrorIs(t, err, review.ErrInvalidEmail)
	})

	t.Run("Rating Out Of Range", func(t *testing.T) {
		svc := review.NewService(new(mocks.ReviewRepository), nil, nil)

		input := validInput()
		input.Rating = 6

		_, err := svc.Create(ctx, input)

		assert.ErrorIs(t, err, review.ErrInvalidRating)
	})

	t.Run("Comment Too Short After Trim", func(t *testing.T) {
		svc := review.NewService(new(mocks.ReviewRepository), nil, nil)

		input := validInput()
		input.Comment = "  short    "

		_, err := svc.Create(ctx, input)

		assert.ErrorIs(t, err, review.ErrCommentTooShort)
	})

	t.Run("Exactly Ten Characters Accepted", func(t *testing.T) {
		mockRepo := new(mocks.ReviewRepository)
		svc := review.NewService(mockRepo, nil, nil)

		input := validInput()
		input.Comment = "ten chars."

		mockRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		r, err := svc.Create(ctx, input)

		assert.NoError(t, err)
		assert.Equal(t, "ten chars.", r.Comment)
		mockRepo.AssertExpectations(t)
	})
}

func TestReviewService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Filters By Status", func(t *testing.T) {
		mockRepo := new(mocks.ReviewRepository)
		svc := review.NewService(mockRepo, nil, nil)

		expected := []domain.Review{{ID: 1, Status: domain.ReviewStatusPending}}
		mockRepo.On("List", ctx, "pending").Return(expected, nil).Once()

		reviews, err := svc.List(ctx, "pending")

		assert.NoError(t, err)
		assert.Equal(t, expected, reviews)
	})

	t.Run("Invalid Status Filter", func(t *testing.T) {
		mockRepo := new(mocks.ReviewRepository)
		svc := review.NewService(mockRepo, nil, nil)

		_, err := svc.List(ctx, "published")

		assert.ErrorIs(t, err, review.ErrInvalidStatus)
		mockRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})
}

func TestReviewService_ListApproved(t *testing.T) {
	ctx := context.Background()

	t.Run("Queries Approved Only", func(t *testing.T) {
		mockRepo := new(mocks.ReviewRepository)
		svc := review.NewService(mockRepo, nil, nil)

		expected := []domain.Review{{ID: 1, Status: domain.ReviewStatusApproved}}
		mockRepo.On("List", ctx, domain.ReviewStatusApproved).Return(expected, nil).Once()

		reviews, err := svc.ListApproved(ctx)

		assert.NoError(t, err)
		assert.Equal(t, expected, reviews)
		mockRepo.AssertExpectations(t)
	})
}

func TestReviewService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.ReviewRepository)
		svc := review.NewService(mockRepo, nil, nil)

		updated := &domain.Review{ID: 1, Status: domain.ReviewStatusApproved}
		mockRepo.On("UpdateStatus", ctx, int64(1), "approved", mock.Anything).Return(nil).Once()
		mockRepo.On("GetByID", ctx, int64(1)).Return(updated, nil).Once()

		r, err := svc.UpdateStatus(ctx, 1, "approved")

		assert.NoError(t, err)
		assert.Equal(t, domain.ReviewStatusApproved, r.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Invalid Status", func(t *testing.T) {
		mockRepo := new(mocks.ReviewRepository)
		svc := review.NewService(mockRepo, nil, nil)

		_, err := svc.UpdateStatus(ctx, 1, "published")

		assert.ErrorIs(t, err, review.ErrInvalidStatus)
		mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockRepo := new(mocks.ReviewRepository)
		svc := review.NewService(mockRepo, nil, nil)

		mockRepo.On("UpdateStatus", ctx, int64(99), "approved", mock.Anything).Return(sql.ErrNoRows).Once()

		_, err := svc.UpdateStatus(ctx, 99, "approved")

		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}
