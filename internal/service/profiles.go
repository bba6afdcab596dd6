package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pribylovaa/go-recipes/internal/models"
	"github.com/pribylovaa/go-recipes/internal/storage"
	"github.com/pribylovaa/go-recipes/pkg/log"
)

const (
	minAge = 13
	maxAge = 120
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]{3,}$`)

// ValidationError — ErrValidation с причиной, которую можно показать пользователю.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return ErrValidation.Error() + ": " + e.Reason }

func (e *ValidationError) Unwrap() error { return ErrValidation }

// ProfileInput — данные формы профиля. Age приходит текстом.
// Gender необязателен, прочие поля обязательны.
type ProfileInput struct {
	Username string
	FullName string
	Location string
	Gender   string
	Age      string
	Bio      string
}

// validate нормализует поля и проверяет их.
func (in *ProfileInput) validate() (int, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.FullName = strings.TrimSpace(in.FullName)
	in.Location = strings.TrimSpace(in.Location)
	in.Gender = strings.TrimSpace(in.Gender)
	in.Bio = strings.TrimSpace(in.Bio)

	switch {
	case in.Username == "":
		return 0, errors.New("username is required")
	case !usernameRe.MatchString(in.Username):
		return 0, errors.New("username must be at least 3 letters, digits or underscores")
	case in.FullName == "":
		return 0, errors.New("full name is required")
	case in.Location == "":
		return 0, errors.New("location is required")
	case in.Bio == "":
		return 0, errors.New("bio is required")
	}

	age, err := strconv.Atoi(strings.TrimSpace(in.Age))
	if err != nil || age < minAge || age > maxAge {
		return 0, fmt.Errorf("age must be an integer in [%d, %d]", minAge, maxAge)
	}

	return age, nil
}

// SaveProfile создаёт или обновляет профиль (merge-write: избранное не затрагивается).
//
// Ошибки: ErrUnauthenticated, ErrValidation, ErrStoreUnavailable.
func (s *Service) SaveProfile(ctx context.Context, userID string, in ProfileInput) (*models.Profile, error) {
	const op = "service/profiles/SaveProfile"

	lg := log.From(ctx).With("op", op, "user_id", userID)

	if userID == "" {
		lg.Warn("unauthenticated: empty user_id")
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	age, err := in.validate()
	if err != nil {
		lg.Warn("invalid argument", "reason", err.Error())
		return nil, fmt.Errorf("%s: %w", op, &ValidationError{Reason: err.Error()})
	}

	p, err := s.storage.UpsertProfile(ctx, userID, storage.ProfileUpdate{
		Username: &in.Username,
		FullName: &in.FullName,
		Location: &in.Location,
		Gender:   &in.Gender,
		Age:      &age,
		Bio:      &in.Bio,
	})
	if err != nil {
		lg.Error("storage error on UpsertProfile", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrStoreUnavailable)
	}

	return p, nil
}

// Profile возвращает профиль. ErrNotFound — профиль ещё не создан
// (в том числе когда у пользователя есть только избранное).
func (s *Service) Profile(ctx context.Context, userID string) (*models.Profile, error) {
	const op = "service/profiles/Profile"

	userID = strings.TrimSpace(userID)
	lg := log.From(ctx).With("op", op, "user_id", userID)

	if userID == "" {
		lg.Warn("invalid argument: empty user_id")
		return nil, fmt.Errorf("%s: %w", op, ErrValidation)
	}

	p, err := s.storage.ProfileByID(ctx, userID)
	if err != nil {
		mapped := mapStorageErr(err)
		if errors.Is(mapped, ErrNotFound) {
			lg.Warn("profile not found")
		} else {
			lg.Error("storage error on ProfileByID", "err", err)
		}

		return nil, fmt.Errorf("%s: %w", op, mapped)
	}

	// Документ без username создаётся записью избранного до заполнения формы.
	if strings.TrimSpace(p.Username) == "" {
		lg.Warn("profile not found: favorites only")
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	return p, nil
}

// AuthorName — имя автора для нового комментария: username профиля или AnonymousName.
// Сбой чтения профиля не мешает комментированию.
func (s *Service) AuthorName(ctx context.Context, userID string) string {
	if userID == "" {
		return AnonymousName
	}

	p, err := s.storage.ProfileByID(ctx, userID)
	if err != nil || strings.TrimSpace(p.Username) == "" {
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			log.From(ctx).Warn("author name lookup failed", "user_id", userID, "err", err)
		}

		return AnonymousName
	}

	return p.Username
}
