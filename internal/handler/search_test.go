package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"ec-pharmacy-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSearchService is a mock implementation of the SearchService interface
type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Search(ctx context.Context, q models.Query) ([]models.Record, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]models.Record), args.Error(1)
}

func (m *MockSearchService) Prefectures(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockSearchService) Meta(ctx context.Context) (models.Meta, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Meta), args.Error(1)
}

func makeRecords(n int) []models.Record {
	out := make([]models.Record, n)
	for i := range out {
		out[i] = models.NewRecord(nil, map[string]string{"pref": "東京都", "name": fmt.Sprintf("薬局%d", i)})
	}
	return out
}

func TestSearchHandler_Search(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name            string
		rawQuery        string
		expectedQuery   *models.Query
		mockRecords     []models.Record
		mockError       error
		expectedStatus  int
		expectedTotal   int
		expectedShown   int
		expectedHasMore bool
		expectedStatus2 string
		expectedError   string
	}{
		{
			name:            "unfiltered preview",
			rawQuery:        "",
			expectedQuery:   &models.Query{},
			mockRecords:     makeRecords(450),
			expectedStatus:  http.StatusOK,
			expectedTotal:   450,
			expectedShown:   50,
			expectedHasMore: true,
			expectedStatus2: "450 件ヒット（50 件表示）",
		},
		{
			name:            "filtered first page",
			rawQuery:        "pref=%E6%9D%B1%E4%BA%AC%E9%83%BD&callAhead=1",
			expectedQuery:   &models.Query{Pref: "東京都", CallAhead: true},
			mockRecords:     makeRecords(450),
			expectedStatus:  http.StatusOK,
			expectedTotal:   450,
			expectedShown:   200,
			expectedHasMore: true,
			expectedStatus2: "450 件ヒット（200 件表示）",
		},
		{
			name:            "show more via limit",
			rawQuery:        "q=%E8%96%AC%E5%B1%80&afterHours=true&limit=400",
			expectedQuery:   &models.Query{Text: "薬局", AfterHours: true},
			mockRecords:     makeRecords(450),
			expectedStatus:  http.StatusOK,
			expectedTotal:   450,
			expectedShown:   400,
			expectedHasMore: true,
			expectedStatus2: "450 件ヒット（400 件表示）",
		},
		{
			name:            "limit beyond total",
			rawQuery:        "q=x&limit=600",
			expectedQuery:   &models.Query{Text: "x"},
			mockRecords:     makeRecords(450),
			expectedStatus:  http.StatusOK,
			expectedTotal:   450,
			expectedShown:   450,
			expectedHasMore: false,
			expectedStatus2: "450 件ヒット",
		},
		{
			name:           "invalid limit",
			rawQuery:       "limit=abc",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid limit format",
		},
		{
			name:           "invalid flag",
			rawQuery:       "callAhead=maybe",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid search parameters",
		},
		{
			name:           "service error",
			rawQuery:       "q=x",
			expectedQuery:  &models.Query{Text: "x"},
			mockRecords:    nil,
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSvc := new(MockSearchService)
			handler := NewSearchHandler(mockSvc, 200, 50)

			if tt.expectedQuery != nil {
				mockSvc.On("Search", mock.Anything, *tt.expectedQuery).Return(tt.mockRecords, tt.mockError)
				if tt.mockError == nil {
					mockSvc.On("Meta", mock.Anything).Return(models.Meta{AsOf: "2026-01-27"}, nil)
				}
			}

			// Create request
			req := httptest.NewRequest(http.MethodGet, "/api/search?"+tt.rawQuery, nil)
			w := httptest.NewRecorder()

			// Create Gin context
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			// Execute
			handler.Search(c)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedError != "" {
				var body map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedError, body["error"])
			} else {
				var body SearchResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedTotal, body.Total)
				assert.Equal(t, tt.expectedShown, body.Shown)
				assert.Len(t, body.Items, tt.expectedShown)
				assert.Equal(t, tt.expectedHasMore, body.HasMore)
				assert.Equal(t, tt.expectedStatus2, body.Status)
				assert.Equal(t, 200, body.PageSize)
				assert.Equal(t, "2026-01-27", body.AsOf)
			}

			mockSvc.AssertExpectations(t)
		})
	}
}

func TestSearchHandler_Prefectures(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockSvc := new(MockSearchService)
	mockSvc.On("Prefectures", mock.Anything).Return([]string{"北海道", "東京都"}, nil)
	handler := NewSearchHandler(mockSvc, 0, 0)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/prefectures", nil)

	handler.Prefectures(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["北海道","東京都"]`, w.Body.String())
	mockSvc.AssertExpectations(t)
}

func TestSearchHandler_Meta(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockSvc := new(MockSearchService)
	mockSvc.On("Meta", mock.Anything).Return(models.Meta{AsOf: "2026-01-27", SourcePage: "https://example.jp", Records: 3}, nil)
	handler := NewSearchHandler(mockSvc, 0, 0)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/meta", nil)

	handler.Meta(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"asOf":"2026-01-27","sourcePage":"https://example.jp","records":3,"count":3}`, w.Body.String())
}
