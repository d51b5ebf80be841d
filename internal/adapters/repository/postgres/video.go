package postgres

import (
	"clipshare/internal/core/domain"
	"clipshare/internal/core/port"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type sqlVideoRepository struct {
	db SQLQuerier
}

// NewSqlVideoRepository creates sqlVideoRepository that implements port.VideoRepository
func NewSqlVideoRepository(db SQLQuerier) port.VideoRepository {
	return &sqlVideoRepository{
		db: db,
	}
}

const videoColumns = `id, title, description, public_id, original_size, compressed_size, duration, created_at, updated_at`

// Create inserts a video and returns the id assigned by the store
func (s *sqlVideoRepository) Create(ctx context.Context, video domain.Video) (uuid.UUID, error) {
	query := `INSERT INTO videos (title, description, public_id, original_size, compressed_size, duration)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := s.db.QueryRowContext(ctx, query,
		video.Title,
		video.Description,
		video.PublicID,
		video.OriginalSize,
		video.CompressedSize,
		video.Duration,
	).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return uuid.Nil, fmt.Errorf("video %s : %w", video.PublicID, domain.ErrAlreadyExists)
		}
		return uuid.Nil, err
	}
	return id, nil
}

// List returns every video, newest first
func (s *sqlVideoRepository) List(ctx context.Context) ([]domain.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	videos := make([]domain.Video, 0)
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		videos = append(videos, *video)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return videos, nil
}

// FindByPublicID returns the video referencing publicID
func (s *sqlVideoRepository) FindByPublicID(ctx context.Context, publicID string) (*domain.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE public_id = $1`

	video, err := scanVideo(s.db.QueryRowContext(ctx, query, publicID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVideoNotFound
		}
		return nil, err
	}
	return video, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanVideo(row scanner) (*domain.Video, error) {
	var video domain.Video
	err := row.Scan(
		&video.ID,
		&video.Title,
		&video.Description,
		&video.PublicID,
		&video.OriginalSize,
		&video.CompressedSize,
		&video.Duration,
		&video.CreatedAt,
		&video.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &video, nil
}
