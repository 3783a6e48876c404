package repository

import (
	"errors"

	"bloghub/internal/http-api/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicateRating is returned when an insert loses the race for the
// (article_id, ip_address) unique slot. Callers re-read and take the
// toggle/overwrite path instead of failing.
var ErrDuplicateRating = errors.New("rating already exists for this article and ip")

const uniqueViolationCode = "23505"

type RatingRepository interface {
	Create(rating *models.Rating) error
	Update(rating *models.Rating) error
	Delete(ratingID int64) error
	GetByArticleAndIP(articleID int64, ip string) (*models.Rating, error)
	SumByArticle(articleID int64) (int, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Create a new rating. The (article_id, ip_address) unique index backs the
// one-slot-per-voter invariant; a violated insert comes back as ErrDuplicateRating.
func (r *ratingRepository) Create(rating *models.Rating) error {
	err := r.db.Create(rating).Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ErrDuplicateRating
		}
		return err
	}
	return nil
}

// Update an existing rating
func (r *ratingRepository) Update(rating *models.Rating) error {
	return r.db.Save(rating).Error
}

// Delete a rating by its ID
func (r *ratingRepository) Delete(ratingID int64) error {
	result := r.db.Delete(&models.Rating{}, ratingID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("rating not found")
	}
	return nil
}

// GetByArticleAndIP retrieves the vote slot for a voter on an article
func (r *ratingRepository) GetByArticleAndIP(articleID int64, ip string) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.Where("article_id = ? AND ip_address = ?", articleID, ip).
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// SumByArticle recomputes the aggregate score from the stored votes.
// Always read fresh, never cached.
func (r *ratingRepository) SumByArticle(articleID int64) (int, error) {
	var sum struct {
		Total int
	}

	err := r.db.Model(&models.Rating{}).
		Select("COALESCE(SUM(value), 0) as total").
		Where("article_id = ?", articleID).
		Scan(&sum).Error

	if err != nil {
		return 0, err
	}

	return sum.Total, nil
}
