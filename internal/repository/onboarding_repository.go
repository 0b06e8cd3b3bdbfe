package repository

import (
	"database/sql"
	"finfeed/internal/model"

	"github.com/lib/pq"
)

type OnboardingRepository struct {
	db *sql.DB
}

func NewOnboardingRepository(db *sql.DB) *OnboardingRepository {
	return &OnboardingRepository{db: db}
}

// GetOnboarding returns the user's questionnaire answers, or (nil, nil)
// when the user has not started onboarding.
func (r *OnboardingRepository) GetOnboarding(userID int64) (*model.UserOnboarding, error) {
	var ob model.UserOnboarding
	var q1 []sql.NullInt64

	err := r.db.QueryRow(`
		SELECT id, user_id, q1_categories, q2_keywords, q3_keywords, created_at, updated_at
		FROM user_onboarding
		WHERE user_id = $1
	`, userID).Scan(&ob.ID, &ob.UserID, pq.Array(&q1), pq.Array(&ob.Q2Keywords), pq.Array(&ob.Q3Keywords), &ob.CreatedAt, &ob.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	for _, v := range q1 {
		if v.Valid {
			ob.Q1Categories = append(ob.Q1Categories, int(v.Int64))
		}
	}

	return &ob, nil
}

func (r *OnboardingRepository) SaveQ1(userID int64, categoryIDs []int) error {
	ids := make([]int64, len(categoryIDs))
	for i, id := range categoryIDs {
		ids[i] = int64(id)
	}

	_, err := r.db.Exec(`
		INSERT INTO user_onboarding(user_id, q1_categories)
		VALUES($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET q1_categories = $2, updated_at = now()
	`, userID, pq.Array(ids))
	return err
}

func (r *OnboardingRepository) SaveQ2(userID int64, keywords []string) error {
	_, err := r.db.Exec(`
		INSERT INTO user_onboarding(user_id, q2_keywords)
		VALUES($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET q2_keywords = $2, updated_at = now()
	`, userID, pq.Array(keywords))
	return err
}

func (r *OnboardingRepository) SaveQ3(userID int64, excludeKeywords []string) error {
	_, err := r.db.Exec(`
		INSERT INTO user_onboarding(user_id, q3_keywords)
		VALUES($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET q3_keywords = $2, updated_at = now()
	`, userID, pq.Array(excludeKeywords))
	return err
}

func (r *OnboardingRepository) GetStatus(userID int64) (*model.OnboardingStatus, error) {
	var status model.OnboardingStatus
	err := r.db.QueryRow(`
		SELECT q1_categories IS NOT NULL, q2_keywords IS NOT NULL, q3_keywords IS NOT NULL
		FROM user_onboarding
		WHERE user_id = $1
	`, userID).Scan(&status.Q1Completed, &status.Q2Completed, &status.Q3Completed)

	if err == sql.ErrNoRows {
		return &model.OnboardingStatus{}, nil
	}

	if err != nil {
		return nil, err
	}

	return &status, nil
}
