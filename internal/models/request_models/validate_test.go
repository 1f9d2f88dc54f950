package request_models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ruralplanner/pkg/utils"
)

func TestParseSlotQuery(t *testing.T) {
	query, err := ParseSlotQuery([]byte(`{"query": "9월 첫째 주 고창에서 조개잡이"}`))
	require.NoError(t, err)
	assert.Equal(t, "9월 첫째 주 고창에서 조개잡이", query.Query)
}

func TestParseSlotQueryMissingQuery(t *testing.T) {
	_, err := ParseSlotQuery([]byte(`{}`))
	require.Error(t, err)

	var vErr *utils.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "query", vErr.Field)
	assert.Equal(t, "required", vErr.Constraint)
}

func TestParseSlotQueryEmptyQuery(t *testing.T) {
	_, err := ParseSlotQuery([]byte(`{"query": ""}`))
	require.Error(t, err)

	var vErr *utils.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "query", vErr.Field)
}

func TestParseRecommendationRequestWithoutUserID(t *testing.T) {
	req, err := ParseRecommendationRequest([]byte(`{"query":"trip","budget":100000}`))
	require.NoError(t, err)
	assert.Equal(t, "trip", req.Query)
	assert.Nil(t, req.UserID)
	require.NotNil(t, req.Budget)
	assert.Equal(t, 100000, *req.Budget)
	assert.Equal(t, 100000, req.BudgetKRW())
}

func TestParseRecommendationRequestWithUserID(t *testing.T) {
	id := uuid.New()
	req, err := ParseRecommendationRequest([]byte(`{"query":"trip","user_id":"` + id.String() + `","budget":50000}`))
	require.NoError(t, err)
	require.NotNil(t, req.UserID)
	assert.Equal(t, id, req.UserID.UUID())
}

func TestParseRecommendationRequestBadUserID(t *testing.T) {
	_, err := ParseRecommendationRequest([]byte(`{"query":"trip","user_id":"not-a-uuid","budget":1}`))
	require.Error(t, err)

	var vErr *utils.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "user_id", vErr.Field)
}

func TestParseRecommendationRequestBadUserIDType(t *testing.T) {
	_, err := ParseRecommendationRequest([]byte(`{"query":"trip","user_id":42,"budget":1}`))
	require.Error(t, err)

	var vErr *utils.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "user_id", vErr.Field)
}

func TestParseRecommendationRequestMissingBudget(t *testing.T) {
	_, err := ParseRecommendationRequest([]byte(`{"query":"trip"}`))
	require.Error(t, err)

	var vErr *utils.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "budget", vErr.Field)
	assert.Equal(t, "required", vErr.Constraint)
}

func TestParseRecommendationRequestZeroBudget(t *testing.T) {
	// An explicit 0 is a valid budget; only the absent field fails.
	req, err := ParseRecommendationRequest([]byte(`{"query":"trip","budget":0}`))
	require.NoError(t, err)
	assert.Equal(t, 0, req.BudgetKRW())
}

func TestParseRecommendationRequestBudgetTypeMismatch(t *testing.T) {
	_, err := ParseRecommendationRequest([]byte(`{"budget": "not-a-number", "query":"x"}`))
	require.Error(t, err)

	var vErr *utils.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "budget", vErr.Field)
}

func TestParseRecommendRequestDefaultsSelections(t *testing.T) {
	req, err := ParseRecommendRequest([]byte(`{"query":"trip","budget":100000}`))
	require.NoError(t, err)

	require.NotNil(t, req.SelectedJobs)
	require.NotNil(t, req.SelectedTours)
	assert.Empty(t, req.SelectedJobs)
	assert.Empty(t, req.SelectedTours)

	// Empty selections serialize as [], never null.
	out, err := json.Marshal(req)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"selected_jobs":[]`)
	assert.Contains(t, string(out), `"selected_tours":[]`)
}

func TestParseRecommendRequestKeepsSelections(t *testing.T) {
	req, err := ParseRecommendRequest([]byte(`{"query":"trip","budget":0,"selected_jobs":[3,1],"selected_tours":[7]}`))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, req.SelectedJobs)
	assert.Equal(t, []int{7}, req.SelectedTours)
}

func TestParseRecommendRequestMissingBudget(t *testing.T) {
	_, err := ParseRecommendRequest([]byte(`{"query":"trip","selected_jobs":[1]}`))
	require.Error(t, err)

	var vErr *utils.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "budget", vErr.Field)
	assert.Equal(t, "required", vErr.Constraint)
}

func TestRecommendRequestRoundTrip(t *testing.T) {
	raw := []byte(`{"query":"trip","user_id":null,"budget":200000,"selected_jobs":[1,2],"selected_tours":[]}`)
	req, err := ParseRecommendRequest(raw)
	require.NoError(t, err)

	out, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, string(raw), string(out))
}

func TestRecommendRequestBaseFieldOrder(t *testing.T) {
	req, err := ParseRecommendRequest([]byte(`{"query":"trip","budget":1}`))
	require.NoError(t, err)

	out, err := json.Marshal(req)
	require.NoError(t, err)

	// Embedded base fields have to stay ahead of the additions.
	s := string(out)
	assert.Less(t, strings.Index(s, `"query"`), strings.Index(s, `"selected_jobs"`))
	assert.Less(t, strings.Index(s, `"budget"`), strings.Index(s, `"selected_jobs"`))
	assert.Less(t, strings.Index(s, `"selected_jobs"`), strings.Index(s, `"selected_tours"`))
}

func TestParseFeedbackRequest(t *testing.T) {
	req, err := ParseFeedbackRequest([]byte(`{"email":"a@b.com","content_id":3,"content_type":"job","score":1}`))
	require.NoError(t, err)
	assert.Equal(t, "job", req.ContentType)
	assert.Equal(t, 1.0, req.Score)
}

func TestParseFeedbackRequestRejectsUnknownContentType(t *testing.T) {
	_, err := ParseFeedbackRequest([]byte(`{"email":"a@b.com","content_id":3,"content_type":"hotel","score":1}`))
	require.Error(t, err)

	var vErr *utils.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "content_type", vErr.Field)
}
