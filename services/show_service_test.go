package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Derescio/bugleworldmusic/entity"
	"github.com/Derescio/bugleworldmusic/repository"
)

func newShowService(t *testing.T) *ShowService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Show{}))
	return NewShowService(repository.NewShowRepository(db))
}

func TestShowCreate(t *testing.T) {
	svc := newShowService(t)

	show, err := svc.Create(&ShowIn{
		Date:      "2026-10-20",
		Country:   "Jamaica",
		City:      "Kingston",
		Venue:     "National Stadium",
		TicketURL: ptr("https://tickets.example.com/1"),
	})
	require.NoError(t, err)

	assert.NotZero(t, show.ID)
	assert.Equal(t, "Kingston", show.City)
	require.NotNil(t, show.TicketURL)
	assert.Equal(t, "https://tickets.example.com/1", *show.TicketURL)
}

func TestShowCreateBlankTicketURLMeansNoLink(t *testing.T) {
	svc := newShowService(t)

	show, err := svc.Create(&ShowIn{
		Date: "2026-10-20", Country: "Canada", City: "Toronto", Venue: "History",
		TicketURL: ptr(""),
	})
	require.NoError(t, err)
	assert.Nil(t, show.TicketURL)
}

func TestShowCreateValidation(t *testing.T) {
	svc := newShowService(t)

	_, err := svc.Create(&ShowIn{Date: "2026-10-20", Country: "Canada"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 2) // city and venue
}

func TestShowUpdateClearsTicketURL(t *testing.T) {
	svc := newShowService(t)
	show, err := svc.Create(&ShowIn{
		Date: "2026-10-20", Country: "Canada", City: "Toronto", Venue: "History",
		TicketURL: ptr("https://tickets.example.com/1"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(show.ID, &ShowIn{
		Date: "2026-11-01", Country: "Canada", City: "Toronto", Venue: "History",
	})
	require.NoError(t, err)
	assert.Nil(t, updated.TicketURL)
	assert.Equal(t, "2026-11-01", updated.Date.Format("2006-01-02"))
}

func TestShowListOrderedByDate(t *testing.T) {
	svc := newShowService(t)
	for _, d := range []string{"2026-12-01", "2026-10-01", "2026-11-01"} {
		_, err := svc.Create(&ShowIn{Date: d, Country: "US", City: "NYC", Venue: "SOB's"})
		require.NoError(t, err)
	}

	shows, page, err := svc.List(1, 10)
	require.NoError(t, err)
	require.Len(t, shows, 3)
	assert.Equal(t, int64(3), page.Total)
	assert.True(t, shows[0].Date.Before(shows[1].Date))
	assert.True(t, shows[1].Date.Before(shows[2].Date))
}

func TestShowDelete(t *testing.T) {
	svc := newShowService(t)
	show, err := svc.Create(&ShowIn{Date: "2026-10-20", Country: "US", City: "NYC", Venue: "SOB's"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(show.ID))
	assert.ErrorIs(t, svc.Delete(show.ID), gorm.ErrRecordNotFound)
}
