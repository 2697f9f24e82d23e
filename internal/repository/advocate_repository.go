// internal/repository/advocate_repository.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lib/pq"

	appErrors "github.com/unclebandit/advocates-backend/internal/errors"
	"github.com/unclebandit/advocates-backend/internal/model"
)

type AdvocateRepositoryInterface interface {
	ListAll(ctx context.Context) ([]model.Advocate, error)
	Upsert(ctx context.Context, a *model.Advocate) error
}

type AdvocateRepository struct {
	DB *sql.DB
}

func (r *AdvocateRepository) ListAll(ctx context.Context) ([]model.Advocate, error) {
	if r.DB == nil {
		return nil, appErrors.NewConnectivityError("list advocates", errors.New("no database handle"))
	}

	query := `
        SELECT id, first_name, last_name, city, degree, specialties, years_of_experience, phone_number
        FROM advocates
        ORDER BY id
    `
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, classify("list advocates", err)
	}
	defer rows.Close()

	advocates := []model.Advocate{}
	for rows.Next() {
		var (
			a     model.Advocate
			years int64
			phone int64
		)
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.City, &a.Degree, pq.Array(&a.Specialties), &years, &phone); err != nil {
			return nil, classify("scan advocate", err)
		}
		a.YearsOfExperience = strconv.FormatInt(years, 10)
		a.PhoneNumber = strconv.FormatInt(phone, 10)
		if a.Specialties == nil {
			a.Specialties = []string{}
		}
		advocates = append(advocates, a)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("iterate advocates", err)
	}
	return advocates, nil
}

// Upsert inserts the advocate, or updates the row with the same name and phone number.
func (r *AdvocateRepository) Upsert(ctx context.Context, a *model.Advocate) error {
	if r.DB == nil {
		return appErrors.NewConnectivityError("upsert advocate", errors.New("no database handle"))
	}
	years, phone, err := numericColumns(a)
	if err != nil {
		return err
	}

	query := `
        INSERT INTO advocates (first_name, last_name, city, degree, specialties, years_of_experience, phone_number)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (first_name, last_name, phone_number)
        DO UPDATE SET city = EXCLUDED.city,
                      degree = EXCLUDED.degree,
                      specialties = EXCLUDED.specialties,
                      years_of_experience = EXCLUDED.years_of_experience
        RETURNING id
    `
	err = r.DB.QueryRowContext(ctx, query,
		a.FirstName, a.LastName, a.City, a.Degree, pq.Array(a.Specialties), years, phone,
	).Scan(&a.ID)
	if err != nil {
		return classify("upsert advocate", err)
	}
	return nil
}

// numericColumns converts the text fields back to the store's integer columns.
// Phone numbers are stored as digits only.
func numericColumns(a *model.Advocate) (int64, int64, error) {
	years, err := strconv.ParseInt(strings.TrimSpace(a.YearsOfExperience), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: years of experience %q", appErrors.ErrInvalidMessage, a.YearsOfExperience)
	}

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, a.PhoneNumber)
	phone, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: phone number %q", appErrors.ErrInvalidMessage, a.PhoneNumber)
	}
	return years, phone, nil
}

// classify maps driver errors onto the data source taxonomy: anything the
// server answered with is a query failure, everything else is connectivity.
func classify(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return appErrors.NewQueryError(op, err)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.NewQueryError(op, err)
	}
	return appErrors.NewConnectivityError(op, err)
}

var _ AdvocateRepositoryInterface = (*AdvocateRepository)(nil)
