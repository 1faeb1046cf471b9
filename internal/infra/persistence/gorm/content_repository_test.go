package gormpersistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"via-sacra/internal/domain"
	"via-sacra/internal/repository"
)

func TestGormContentRepository_GetStation(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormContentRepository(db)

	rows := sqlmock.NewRows([]string{"id", "title", "image_url", "versicle", "meditation", "prayer", "standard_prayers", "hymn"}).
		AddRow(3, "Jesus cai pela primeira vez", "/img/3.jpg", "V.", "Meditação", "Oração", "Pai-Nosso", "Hino")
	mock.ExpectQuery("SELECT \\* FROM `stations` WHERE id = \\?").WillReturnRows(rows)

	station, err := repo.GetStation(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, 3, station.ID)
	assert.Equal(t, "Jesus cai pela primeira vez", station.Title)
	assert.Equal(t, "Pai-Nosso", station.StandardPrayers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormContentRepository_GetStation_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormContentRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `stations`").WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetStation(context.Background(), 9)

	assert.ErrorIs(t, err, repository.ErrStationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormContentRepository_Counts(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormContentRepository(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `intro`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `stations`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(14))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `final_prayers`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(2))

	counts, err := repo.Counts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.ContentCounts{Intro: 1, Stations: 14, FinalPrayers: 2}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormContentRepository_Seed(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormContentRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `intro`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `stations`").WillReturnResult(sqlmock.NewResult(2, 2))
	mock.ExpectExec("INSERT INTO `final_prayers`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	seed := &domain.ContentSeed{
		Intro:        &domain.IntroText{Title: "Oração inicial", Text: "..."},
		Stations:     []domain.Station{{ID: 1, Title: "I"}, {ID: 2, Title: "II"}},
		FinalPrayers: []domain.FinalPrayer{{Title: "Salve Rainha", Text: "..."}},
	}
	require.NoError(t, repo.Seed(context.Background(), seed))
	assert.NoError(t, mock.ExpectationsWereMet())
}
