package testimonial_test

import (
	"context"
	"testing"

	"github.com/dentalogix/dentalogix-api/internal/testimonial"
	"github.com/stretchr/testify/require"
)

func TestCreateTestimonial(t *testing.T) {
	ctx := context.Background()

	t.Run("DefaultsRatingToFive", func(t *testing.T) {
		svc := testimonial.NewService(testimonial.NewRepository(newTestDB(t)))

		created, err := svc.Create(ctx, testimonial.CreateTestimonialDTO{
			PatientName: "Dana",
			Content:     "Wonderful experience.",
		})
		require.NoError(t, err)
		require.Equal(t, 5, created.Rating)
		require.True(t, created.IsPublished)
	})

	t.Run("RejectsOutOfRangeRating", func(t *testing.T) {
		svc := testimonial.NewService(testimonial.NewRepository(newTestDB(t)))

		_, err := svc.Create(ctx, testimonial.CreateTestimonialDTO{
			PatientName: "Dana",
			Content:     "Wonderful experience.",
			Rating:      6,
		})
		require.ErrorIs(t, err, testimonial.ErrInvalidRating)
	})
}
