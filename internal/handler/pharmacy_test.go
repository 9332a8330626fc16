package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ec-pharmacy-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPharmacyService is a mock implementation of the PharmacyService interface
type MockPharmacyService struct {
	mock.Mock
}

func (m *MockPharmacyService) Pharmacy(ctx context.Context, id int64) (*models.Record, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*models.Record), args.Error(1)
}

func TestPharmacyHandler_Pharmacy(t *testing.T) {
	gin.SetMode(gin.TestMode)

	id := int64(101)
	found := models.NewRecord(&id, map[string]string{"pref": "東京都", "name": "新宿薬局", "callAhead": "要"})

	tests := []struct {
		name           string
		idParam        string
		mockID         int64
		mockRecord     *models.Record
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "missing id",
			idParam:        "",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "missing required path parameter 'id'"},
		},
		{
			name:           "invalid id",
			idParam:        "abc",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "invalid id format"},
		},
		{
			name:           "found",
			idParam:        "101",
			mockID:         101,
			mockRecord:     &found,
			expectedStatus: http.StatusOK,
			expectedBody: map[string]interface{}{
				"id":        float64(101),
				"pref":      "東京都",
				"name":      "新宿薬局",
				"callAhead": "要",
			},
		},
		{
			name:           "not found",
			idParam:        "99",
			mockID:         99,
			mockRecord:     nil,
			expectedStatus: http.StatusNotFound,
			expectedBody:   map[string]interface{}{"error": "no pharmacy found with the specified id"},
		},
		{
			name:           "service error",
			idParam:        "5",
			mockID:         5,
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   map[string]interface{}{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSvc := new(MockPharmacyService)
			handler := NewPharmacyHandler(mockSvc)

			if tt.mockID != 0 {
				mockSvc.On("Pharmacy", mock.Anything, tt.mockID).Return(tt.mockRecord, tt.mockError)
			}

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/pharmacies/"+tt.idParam, nil)
			c.Params = gin.Params{{Key: "id", Value: tt.idParam}}

			// Execute
			handler.Pharmacy(c)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)

			var actualBody interface{}
			err := json.Unmarshal(w.Body.Bytes(), &actualBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, actualBody)

			mockSvc.AssertExpectations(t)
		})
	}
}
