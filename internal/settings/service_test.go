package settings

import (
	"context"
	"errors"
	"testing"

	"grocery-be/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetOrCreate(ctx context.Context) (*Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Settings), args.Error(1)
}

func (m *MockRepository) Save(ctx context.Context, s *Settings) (*Settings, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Settings), args.Error(1)
}

func floatPtr(v float64) *float64 { return &v }

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("PartialUpdate", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		current := &Settings{SiteName: "Old", TaxRate: 5, DeliveryFee: 60, ThemeColor: DefaultThemeColor}
		repo.On("GetOrCreate", ctx).Return(current, nil)
		repo.On("Save", ctx, mock.MatchedBy(func(s *Settings) bool {
			return s.SiteName == "Fresh Mart" && s.TaxRate == 5 && s.DeliveryFee == 80 && s.ThemeColor == "#aabbcc"
		})).Return(&Settings{SiteName: "Fresh Mart"}, nil)

		got, err := svc.Update(ctx, UpdateInput{
			SiteName:    utils.StrPtr("  Fresh Mart "),
			DeliveryFee: floatPtr(80),
			ThemeColor:  utils.StrPtr("#ABC"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Fresh Mart", got.SiteName)
		repo.AssertExpectations(t)
	})

	t.Run("Empty", func(t *testing.T) {
		repo := new(MockRepository)
		_, err := NewService(repo).Update(ctx, UpdateInput{})
		assert.ErrorIs(t, err, ErrNothingToUpdate)
		repo.AssertNotCalled(t, "GetOrCreate", mock.Anything)
	})

	t.Run("Validation", func(t *testing.T) {
		cases := map[string]struct {
			in   UpdateInput
			want error
		}{
			"TaxTooHigh":   {UpdateInput{TaxRate: floatPtr(101)}, ErrInvalidTaxRate},
			"NegativeTax":  {UpdateInput{TaxRate: floatPtr(-1)}, ErrInvalidTaxRate},
			"NegativeFee":  {UpdateInput{DeliveryFee: floatPtr(-5)}, ErrNegativeFee},
			"BadColor":     {UpdateInput{ThemeColor: utils.StrPtr("red")}, ErrInvalidColor},
			"BlankName":    {UpdateInput{SiteName: utils.StrPtr("  ")}, ErrEmptySiteName},
			"NegThreshold": {UpdateInput{FreeDeliveryThreshold: floatPtr(-1)}, ErrNegativeFee},
		}
		for name, tc := range cases {
			t.Run(name, func(t *testing.T) {
				repo := new(MockRepository)
				_, err := NewService(repo).Update(ctx, tc.in)
				assert.ErrorIs(t, err, tc.want)
			})
		}
	})

	t.Run("SaveError", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetOrCreate", ctx).Return(&Settings{}, nil)
		repo.On("Save", ctx, mock.Anything).Return(nil, errors.New("db down"))

		_, err := NewService(repo).Update(ctx, UpdateInput{TaxRate: floatPtr(10)})
		assert.EqualError(t, err, "db down")
	})
}
