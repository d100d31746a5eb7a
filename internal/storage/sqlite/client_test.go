package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurora-assist/backend/internal/storage/models"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	c, err := NewClient(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	require.NoError(t, c.InitSchema())
	return c
}

func TestQuestionHistoryRoundTrip(t *testing.T) {
	c := newTestClient(t)

	base := time.Now().Truncate(time.Second)
	for i, rec := range []models.QuestionRecord{
		{ID: "q1", Question: "what helps with sensory overload?", Answer: "a1", InDomain: true, Confidence: 0.6, Status: "success", LatencyMS: 12},
		{ID: "q2", Question: "best pizza topping?", Answer: "a2", InDomain: false, Confidence: 0, Status: "off_topic", LatencyMS: 3},
	} {
		rec.CreatedAt = base.Add(time.Duration(i) * time.Second)
		require.NoError(t, c.InsertQuestionRecord(&rec))
	}

	records, err := c.RecentQuestions(10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first.
	assert.Equal(t, "q2", records[0].ID)
	assert.False(t, records[0].InDomain)
	assert.Equal(t, "off_topic", records[0].Status)

	assert.Equal(t, "q1", records[1].ID)
	assert.True(t, records[1].InDomain)
	assert.InDelta(t, 0.6, records[1].Confidence, 1e-9)
	assert.Equal(t, 12, records[1].LatencyMS)
}

func TestRecentQuestionsLimit(t *testing.T) {
	c := newTestClient(t)

	base := time.Now()
	for i := 0; i < 5; i++ {
		require.NoError(t, c.InsertQuestionRecord(&models.QuestionRecord{
			ID:        string(rune('a' + i)),
			Question:  "q",
			Status:    "success",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	records, err := c.RecentQuestions(3)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestInsertFeedbackRecord(t *testing.T) {
	c := newTestClient(t)

	require.NoError(t, c.InsertFeedbackRecord(&models.FeedbackRecord{
		RequestID: "q1",
		Question:  "what helps with sensory overload?",
		Answer:    "a1",
		Vote:      "positive",
		CreatedAt: time.Now(),
	}))

	var count int
	require.NoError(t, c.db.QueryRow("SELECT COUNT(*) FROM feedback_log").Scan(&count))
	assert.Equal(t, 1, count)
}
