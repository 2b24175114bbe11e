package repository

import (
	"context"
	"testing"
	"time"

	"interviewdesk/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCreateWithSnapshot_PublishesRequest(t *testing.T) {
	db := testDB(t)
	repo := NewPublicLinkRepository(db)
	ctx := context.Background()

	br := domain.BookingRequest{Date: time.Now().UTC(), Status: domain.BookingRequestCollected}
	assert.NoError(t, db.Create(&br).Error)
	seedSlot(t, db, "slot-0900", domain.SlotAvailable)

	link := &domain.PublicLink{PublicID: "pl-1", BookingRequestID: br.ID}
	err := repo.CreateWithSnapshot(ctx, link, []string{"slot-0900"}, []string{"alice@x.com"}, domain.BookingRequestCollected)

	assert.NoError(t, err)
	assert.NotZero(t, link.ID)

	var got domain.BookingRequest
	assert.NoError(t, db.First(&got, br.ID).Error)
	assert.Equal(t, domain.BookingRequestPublished, got.Status)

	ok, err := repo.ContainsSlot(ctx, link.ID, "slot-0900")
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestExtendAllowList_GrowsMonotonically(t *testing.T) {
	db := testDB(t)
	repo := NewPublicLinkRepository(db)
	ctx := context.Background()

	br := domain.BookingRequest{Date: time.Now().UTC(), Status: domain.BookingRequestCollected}
	assert.NoError(t, db.Create(&br).Error)
	seedSlot(t, db, "slot-0900", domain.SlotAvailable)

	link := &domain.PublicLink{PublicID: "pl-1", BookingRequestID: br.ID}
	assert.NoError(t, repo.CreateWithSnapshot(ctx, link, []string{"slot-0900"}, []string{"alice@x.com"}, domain.BookingRequestCollected))

	assert.NoError(t, repo.ExtendAllowList(ctx, link.ID, []string{"bob@x.com", "alice@x.com"}))

	size, err := repo.AllowListSize(ctx, link.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), size)

	// Re-adding everyone changes nothing.
	assert.NoError(t, repo.ExtendAllowList(ctx, link.ID, []string{"alice@x.com", "bob@x.com"}))
	size, err = repo.AllowListSize(ctx, link.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), size)

	allowed, err := repo.IsAllowed(ctx, link.ID, "bob@x.com")
	assert.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = repo.IsAllowed(ctx, link.ID, "mallory@x.com")
	assert.NoError(t, err)
	assert.False(t, allowed)
}

func TestCreateWithSnapshot_SecondLinkKeepsPublished(t *testing.T) {
	db := testDB(t)
	repo := NewPublicLinkRepository(db)
	ctx := context.Background()

	br := domain.BookingRequest{Date: time.Now().UTC(), Status: domain.BookingRequestCollected}
	assert.NoError(t, db.Create(&br).Error)
	seedSlot(t, db, "slot-0900", domain.SlotAvailable)

	first := &domain.PublicLink{PublicID: "pl-1", BookingRequestID: br.ID}
	assert.NoError(t, repo.CreateWithSnapshot(ctx, first, []string{"slot-0900"}, []string{"alice@x.com"}, domain.BookingRequestCollected))

	second := &domain.PublicLink{PublicID: "pl-2", BookingRequestID: br.ID}
	assert.NoError(t, repo.CreateWithSnapshot(ctx, second, []string{"slot-0900"}, []string{"bob@x.com"}, domain.BookingRequestPublished))

	var got domain.BookingRequest
	assert.NoError(t, db.First(&got, br.ID).Error)
	assert.Equal(t, domain.BookingRequestPublished, got.Status)
}
