package quiz

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	svc, _ := newTestService(t)
	srv := httptest.NewServer(Routes(NewHandler(svc)))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, body string, out any) int {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 && resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHandlerAttemptLifecycle(t *testing.T) {
	srv := newTestServer(t)

	var quizzes []QuizSummaryDTO
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, srv.URL+"/", "", &quizzes))
	require.Len(t, quizzes, 4)

	var attempt AttemptDTO
	require.Equal(t, http.StatusCreated, doJSON(t, http.MethodPost, srv.URL+"/4/attempts", "", &attempt))
	assert.Equal(t, "Who is the main character of The Hobbit?", attempt.Question)
	assert.Nil(t, attempt.CorrectOption)

	base := srv.URL + "/attempts/" + attempt.ID.String()

	assert.Equal(t, http.StatusConflict, doJSON(t, http.MethodPost, base+"/advance", "", nil))
	assert.Equal(t, http.StatusBadRequest, doJSON(t, http.MethodPost, base+"/answer", `{}`, nil))
	assert.Equal(t, http.StatusBadRequest, doJSON(t, http.MethodPost, base+"/answer", `{"option":9}`, nil))

	require.Equal(t, http.StatusOK, doJSON(t, http.MethodPost, base+"/answer", `{"option":0}`, &attempt))
	assert.True(t, attempt.Answered)
	require.NotNil(t, attempt.CorrectOption)
	assert.Equal(t, 0, *attempt.CorrectOption)
	assert.Equal(t, 1, attempt.Score)

	require.Equal(t, http.StatusOK, doJSON(t, http.MethodPost, base+"/advance", "", &attempt))
	assert.Equal(t, 1, attempt.QuestionIndex)
	assert.False(t, attempt.Answered)

	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, base, "", &attempt))
	assert.Equal(t, StateInProgress, attempt.State)

	require.Equal(t, http.StatusOK, doJSON(t, http.MethodPost, base+"/retake", "", &attempt))
	assert.Equal(t, 0, attempt.QuestionIndex)
	assert.Equal(t, 0, attempt.Score)

	assert.Equal(t, http.StatusNoContent, doJSON(t, http.MethodDelete, base, "", nil))
	assert.Equal(t, http.StatusNotFound, doJSON(t, http.MethodGet, base, "", nil))
}

func TestHandlerErrors(t *testing.T) {
	srv := newTestServer(t)

	assert.Equal(t, http.StatusNotFound, doJSON(t, http.MethodGet, srv.URL+"/missing", "", nil))
	assert.Equal(t, http.StatusNotFound, doJSON(t, http.MethodPost, srv.URL+"/missing/attempts", "", nil))
	assert.Equal(t, http.StatusBadRequest, doJSON(t, http.MethodGet, srv.URL+"/attempts/not-a-uuid", "", nil))
}

func TestHandlerHistory(t *testing.T) {
	srv := newTestServer(t)

	var summary HistorySummary
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, srv.URL+"/history", "", &summary))
	assert.Equal(t, 0, summary.Completed)
	assert.Empty(t, summary.Recent)
}

func TestHandlerListQuizzesForBook(t *testing.T) {
	srv := newTestServer(t)

	var quizzes []QuizSummaryDTO
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, srv.URL+"/?book=6", "", &quizzes))
	require.Len(t, quizzes, 1)
	assert.Equal(t, "The Hobbit", quizzes[0].Title)

	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, srv.URL+"/?book=unknown", "", &quizzes))
	assert.Empty(t, quizzes)
}
