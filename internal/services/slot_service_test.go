package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ruralplanner/internal/models/db_models"
	mem "ruralplanner/pkg/memcache"
	"ruralplanner/pkg/utils"
)

func newSlotFixture(ai *fakeAIClient, jobRepo *fakeJobRepo, tourRepo *fakeTourRepo) SlotServiceInterface {
	return NewSlotService(ai, jobRepo, tourRepo, mem.NewResponseCache(time.Minute))
}

func TestExtractSlotsUsesCache(t *testing.T) {
	region := "고창"
	ai := &fakeAIClient{slots: utils.UserSlots{Region: &region, Activities: []string{"농장체험"}}}
	svc := newSlotFixture(ai, &fakeJobRepo{}, &fakeTourRepo{})

	first, err := svc.ExtractSlots(context.Background(), "고창에서 농장체험 하고 싶어")
	require.NoError(t, err)
	second, err := svc.ExtractSlots(context.Background(), "고창에서 농장체험 하고 싶어")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, ai.extractCalls)
}

func TestExtractSlotsPropagatesError(t *testing.T) {
	ai := &fakeAIClient{slotsErr: errors.New("model timeout")}
	svc := newSlotFixture(ai, &fakeJobRepo{}, &fakeTourRepo{})

	_, err := svc.ExtractSlots(context.Background(), "아무거나")
	assert.Error(t, err)
}

func TestGetSlotsPreviewBuildsCards(t *testing.T) {
	region := "전북 고창군"
	ai := &fakeAIClient{
		slots: utils.UserSlots{
			StartDate:  "2026-09-01",
			Region:     &region,
			Activities: []string{"농장체험"},
		},
	}
	jobRepo := &fakeJobRepo{searchResult: []db_models.JobPost{
		{ID: 1, Title: "수박 수확", Region: "전북 고창군", Tags: []string{"수확", "초보가능"}},
		{ID: 1, Title: "수박 수확", Region: "전북 고창군"}, // duplicate row
		{ID: 2, Title: "복분자 선별"},
	}}
	tourRepo := &fakeTourRepo{searchResult: []db_models.TourSpot{
		{ID: 10, Name: "고창읍성", Region: "전북 고창군", Tags: []string{"역사"}, ImageURL: "http://img/10.jpg"},
		{ID: 11, Name: "선운사", Region: "전북 고창군"},
	}}
	svc := newSlotFixture(ai, jobRepo, tourRepo)

	resp, err := svc.GetSlotsPreview(context.Background(), "9월 1일에 고창 농장체험")
	require.NoError(t, err)

	assert.Equal(t, region, jobRepo.lastRegion)
	assert.Equal(t, region, tourRepo.lastRegion)
	assert.Equal(t, previewCount, jobRepo.lastLimit)

	assert.Equal(t, "2026-09-01", resp.Slots["start_date"])
	assert.Equal(t, region, resp.Slots["region"])

	require.Len(t, resp.JobsPreview, 2)
	assert.Equal(t, 1, resp.JobsPreview[0].JobID)
	assert.Equal(t, "수박 수확", resp.JobsPreview[0].FarmName)
	assert.Equal(t, []string{"수확", "초보가능"}, resp.JobsPreview[0].Tags)
	assert.Equal(t, "지역정보없음", resp.JobsPreview[1].Region)

	require.Len(t, resp.ToursPreview, 2)
	require.NotNil(t, resp.ToursPreview[0].ImageURL)
	assert.Equal(t, "http://img/10.jpg", *resp.ToursPreview[0].ImageURL)
	assert.Nil(t, resp.ToursPreview[1].ImageURL)
}

func TestGetSlotsPreviewEmptyCatalog(t *testing.T) {
	ai := &fakeAIClient{}
	svc := newSlotFixture(ai, &fakeJobRepo{}, &fakeTourRepo{})

	resp, err := svc.GetSlotsPreview(context.Background(), "그냥 시골 여행")
	require.NoError(t, err)

	// Empty previews still serialize as [], never null.
	assert.NotNil(t, resp.JobsPreview)
	assert.Len(t, resp.JobsPreview, 0)
	assert.NotNil(t, resp.ToursPreview)
	assert.Len(t, resp.ToursPreview, 0)
}

func TestGetSlotsPreviewEmbeddingFailure(t *testing.T) {
	ai := &fakeAIClient{embedErr: errors.New("quota exceeded")}
	svc := newSlotFixture(ai, &fakeJobRepo{}, &fakeTourRepo{})

	_, err := svc.GetSlotsPreview(context.Background(), "시골 여행")
	assert.ErrorIs(t, err, utils.ErrSlotExtraction)
}
