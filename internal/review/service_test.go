package review

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, r *Review) (*Review, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Review), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, filter ListFilter) ([]*Review, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*Review), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) Rating(ctx context.Context, productID int64) (*ProductRating, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ProductRating), args.Error(1)
}

func (m *MockRepository) Approve(ctx context.Context, id int64) (*Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Review), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("StoredUnapproved", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Create", ctx, mock.MatchedBy(func(r *Review) bool {
			return r.ProductID == 4 && r.CustomerName == "Rina" && r.Rating == 5 && !r.IsApproved
		})).Return(&Review{ID: 1, ProductID: 4}, nil)

		rv, err := NewService(repo).Create(ctx, 4, CreateInput{Name: " Rina ", Rating: 5, Comment: "fresh"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), rv.ID)
		repo.AssertExpectations(t)
	})

	t.Run("Validation", func(t *testing.T) {
		cases := map[string]struct {
			in   CreateInput
			want error
		}{
			"RatingZero": {CreateInput{Name: "a", Rating: 0}, ErrInvalidRating},
			"RatingSix":  {CreateInput{Name: "a", Rating: 6}, ErrInvalidRating},
			"NoName":     {CreateInput{Name: "  ", Rating: 3}, ErrEmptyName},
			"LongText":   {CreateInput{Name: "a", Rating: 3, Comment: strings.Repeat("x", 2001)}, ErrCommentTooLong},
		}
		for name, tc := range cases {
			t.Run(name, func(t *testing.T) {
				repo := new(MockRepository)
				_, err := NewService(repo).Create(ctx, 1, tc.in)
				assert.ErrorIs(t, err, tc.want)
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			})
		}
	})
}

func TestService_ListApproved(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)

	repo.On("List", ctx, mock.MatchedBy(func(f ListFilter) bool {
		return f.ProductID == 4 && f.Approved != nil && *f.Approved && f.Page == 1 && f.Limit == 20
	})).Return([]*Review{{ID: 2, ProductID: 4, Rating: 4, IsApproved: true}}, int64(1), nil)
	repo.On("Rating", ctx, int64(4)).Return(&ProductRating{Count: 1, Average: 4}, nil)

	page, rating, err := NewService(repo).ListApproved(ctx, 4, 0, 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "4", page.Items[0].ProductID)
	assert.Equal(t, int64(1), rating.Count)
}

func TestService_Approve(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("Approve", ctx, int64(1)).Return(&Review{ID: 1, IsApproved: true}, nil)
	repo.On("Approve", ctx, int64(2)).Return(nil, nil)

	svc := NewService(repo)
	rv, err := svc.Approve(ctx, 1)
	require.NoError(t, err)
	assert.True(t, rv.IsApproved)

	_, err = svc.Approve(ctx, 2)
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("Delete", ctx, int64(3)).Return(false, nil)

	assert.ErrorIs(t, NewService(repo).Delete(ctx, 3), ErrReviewNotFound)
}
