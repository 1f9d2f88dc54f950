package response_models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTourPreviewImageURLAbsentVsEmpty(t *testing.T) {
	var absent TourPreview
	require.NoError(t, json.Unmarshal([]byte(`{"content_id":1,"title":"선운사","region":"고창","overview":"사찰"}`), &absent))
	assert.Nil(t, absent.ImageURL)

	var empty TourPreview
	require.NoError(t, json.Unmarshal([]byte(`{"content_id":1,"title":"선운사","region":"고창","overview":"사찰","image_url":""}`), &empty))
	require.NotNil(t, empty.ImageURL)
	assert.Equal(t, "", *empty.ImageURL)

	outAbsent, err := json.Marshal(absent)
	require.NoError(t, err)
	assert.Contains(t, string(outAbsent), `"image_url":null`)
}

func TestJobPreviewRoundTrip(t *testing.T) {
	raw := []byte(`{"job_id":7,"farm_name":"고창갯벌농장","region":"전북 고창","tags":["조개잡이","갯벌체험"]}`)

	var preview JobPreview
	require.NoError(t, json.Unmarshal(raw, &preview))

	out, err := json.Marshal(preview)
	require.NoError(t, err)
	assert.JSONEq(t, string(raw), string(out))
}

func TestJobPreviewTypeMismatchFails(t *testing.T) {
	var preview JobPreview
	err := json.Unmarshal([]byte(`{"job_id":"seven","farm_name":"x","region":"y","tags":[]}`), &preview)
	require.Error(t, err)

	var typeErr *json.UnmarshalTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "job_id", typeErr.Field)
}

func TestSlotsResponsePassesSlotsThrough(t *testing.T) {
	raw := []byte(`{
		"slots": {"start_date":"2024-09-01","activities":["조개잡이"],"nested":{"k":1}},
		"jobs_preview": [{"job_id":1,"farm_name":"a","region":"b","tags":[]}],
		"tours_preview": []
	}`)

	var resp SlotsResponse
	require.NoError(t, json.Unmarshal(raw, &resp))

	assert.Equal(t, "2024-09-01", resp.Slots["start_date"])
	require.Len(t, resp.JobsPreview, 1)
	assert.Empty(t, resp.ToursPreview)

	out, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, string(raw), string(out))
}
