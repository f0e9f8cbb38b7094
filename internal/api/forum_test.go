package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"maloga/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionAndAnswerFlow(t *testing.T) {
	db := setupTestDB(t)

	// Post a question.
	w := httptest.NewRecorder()
	c := testContext(t, w, 1, "POST", "/questions", gin.H{
		"title":    "How often should I deworm calves?",
		"content":  "Three month old Friesian calves, zero grazing.",
		"category": "health",
	})
	CreateQuestionHandler(db, nil)(c)
	require.Equal(t, http.StatusCreated, w.Code)

	// Answer it.
	w = httptest.NewRecorder()
	c = testContext(t, w, 2, "POST", "/questions/1/answers", gin.H{
		"content": "Every three months, and rotate the dewormer class.",
	})
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	CreateAnswerHandler(db, nil)(c)
	require.Equal(t, http.StatusCreated, w.Code)

	// The thread read returns the question with its answer attached.
	w = httptest.NewRecorder()
	ListQuestionsHandler(db)(testContext(t, w, 0, "GET", "/questions", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Questions []domain.Question `json:"questions"`
	}
	decodeBody(t, w, &resp)
	require.Len(t, resp.Questions, 1)
	q := resp.Questions[0]
	assert.Equal(t, "health", q.Category)
	require.Len(t, q.Answers, 1)
	assert.EqualValues(t, 2, q.Answers[0].UserID)
	assert.EqualValues(t, q.ID, q.Answers[0].QuestionID)
}

func TestAnswerToMissingQuestionRejected(t *testing.T) {
	db := setupTestDB(t)
	w := httptest.NewRecorder()
	c := testContext(t, w, 2, "POST", "/questions/5/answers", gin.H{"content": "orphan"})
	c.Params = gin.Params{{Key: "id", Value: "5"}}
	CreateAnswerHandler(db, nil)(c)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// No orphan row was written.
	var count int64
	require.NoError(t, db.Model(&domain.Answer{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateQuestionRequiresBody(t *testing.T) {
	db := setupTestDB(t)
	w := httptest.NewRecorder()
	c := testContext(t, w, 1, "POST", "/questions", gin.H{"title": "no content"})
	CreateQuestionHandler(db, nil)(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
