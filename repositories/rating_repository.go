package repositories

import (
	"context"

	"github.com/mango-abandoned/api-go/apperrors"
	"github.com/mango-abandoned/api-go/models"
	"github.com/mango-abandoned/api-go/storage"
)

type RatingRepository struct {
	ratings collection[models.Rating]
}

func NewRatingRepository(store storage.Store) *RatingRepository {
	return &RatingRepository{ratings: newCollection[models.Rating](store, KeyRatings)}
}

func (r *RatingRepository) All(ctx context.Context) ([]models.Rating, error) {
	return r.ratings.load(ctx)
}

func (r *RatingRepository) Save(ctx context.Context, rating *models.Rating) error {
	ratings, err := r.ratings.load(ctx)
	if err != nil {
		return err
	}
	ratings = upsert(ratings, *rating, func(x models.Rating) string { return x.ID })
	return r.ratings.save(ctx, ratings)
}

func (r *RatingRepository) GetByID(ctx context.Context, id string) (*models.Rating, error) {
	ratings, err := r.ratings.load(ctx)
	if err != nil {
		return nil, err
	}
	rating, ok := find(ratings, func(x models.Rating) bool { return x.ID == id })
	if !ok {
		return nil, apperrors.ErrRatingNotFound
	}
	return &rating, nil
}
