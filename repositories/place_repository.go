package repositories

import (
	"context"

	"github.com/mango-abandoned/api-go/apperrors"
	"github.com/mango-abandoned/api-go/models"
	"github.com/mango-abandoned/api-go/storage"
)

type PlaceRepository struct {
	places collection[models.AbandonedPlace]
}

func NewPlaceRepository(store storage.Store) *PlaceRepository {
	return &PlaceRepository{places: newCollection[models.AbandonedPlace](store, KeyPlaces)}
}

func (r *PlaceRepository) All(ctx context.Context) ([]models.AbandonedPlace, error) {
	return r.places.load(ctx)
}

func (r *PlaceRepository) Save(ctx context.Context, place *models.AbandonedPlace) error {
	places, err := r.places.load(ctx)
	if err != nil {
		return err
	}
	normalizePlace(place)
	places = upsert(places, *place, func(p models.AbandonedPlace) string { return p.ID })
	return r.places.save(ctx, places)
}

func (r *PlaceRepository) GetByID(ctx context.Context, id string) (*models.AbandonedPlace, error) {
	places, err := r.places.load(ctx)
	if err != nil {
		return nil, err
	}
	place, ok := find(places, func(p models.AbandonedPlace) bool { return p.ID == id })
	if !ok {
		return nil, apperrors.ErrPlaceNotFound
	}
	return &place, nil
}

// ByAuthor returns places written by authorID in stored order.
func (r *PlaceRepository) ByAuthor(ctx context.Context, authorID string) ([]models.AbandonedPlace, error) {
	places, err := r.places.load(ctx)
	if err != nil {
		return nil, err
	}
	var owned []models.AbandonedPlace
	for _, p := range places {
		if p.AuthorID == authorID {
			owned = append(owned, p)
		}
	}
	return owned, nil
}

// Lists are always encoded as arrays, never null.
func normalizePlace(p *models.AbandonedPlace) {
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Likes == nil {
		p.Likes = []string{}
	}
	if p.Dislikes == nil {
		p.Dislikes = []string{}
	}
	if p.Rating == nil {
		p.Rating = []models.Rating{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
}
