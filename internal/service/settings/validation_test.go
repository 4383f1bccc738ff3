package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ReservationService/internal/service/settings/models"
)

func validUpdateRequest() *models.UpdateSettingsRequest {
	return &models.UpdateSettingsRequest{
		RestaurantName:      "Sabor & Arte",
		MealDurationMinutes: 90,
		ToleranceMinutes:    10,
		Tables: []models.Table{
			{ID: "t1", Name: "Mesa 1", Seats: 2},
			{ID: "t2", Name: "Mesa 2", Seats: 4},
		},
		Hours: map[int]models.DaySchedule{
			0: {
				Lunch: models.TimeRange{IsOpen: true, Start: "12:00", End: "16:00"},
			},
			1: {
				Lunch:  models.TimeRange{IsOpen: true, Start: "12:00", End: "15:00"},
				Dinner: models.TimeRange{IsOpen: true, Start: "19:00", End: "23:00"},
			},
		},
	}
}

func TestValidateRequest_Valid(t *testing.T) {
	assert.NoError(t, validateRequest(validUpdateRequest()))
}

func TestValidateRequest_ClosedRangeBoundsIgnored(t *testing.T) {
	req := validUpdateRequest()
	// Границы закрытого периода не проверяются
	req.Hours[1] = models.DaySchedule{
		Lunch:  models.TimeRange{IsOpen: true, Start: "12:00", End: "15:00"},
		Dinner: models.TimeRange{IsOpen: false, Start: "garbage", End: ""},
	}

	assert.NoError(t, validateRequest(req))
}

func TestValidateRequest_Invalid(t *testing.T) {
	cases := []struct {
		name   string
		modify func(req *models.UpdateSettingsRequest)
	}{
		{"empty restaurant name", func(req *models.UpdateSettingsRequest) { req.RestaurantName = "  " }},
		{"meal duration too short", func(req *models.UpdateSettingsRequest) { req.MealDurationMinutes = 10 }},
		{"meal duration too long", func(req *models.UpdateSettingsRequest) { req.MealDurationMinutes = 500 }},
		{"negative tolerance", func(req *models.UpdateSettingsRequest) { req.ToleranceMinutes = -1 }},
		{"tolerance too large", func(req *models.UpdateSettingsRequest) { req.ToleranceMinutes = 180 }},
		{"no tables", func(req *models.UpdateSettingsRequest) { req.Tables = nil }},
		{"empty table id", func(req *models.UpdateSettingsRequest) { req.Tables[0].ID = "" }},
		{"duplicate table id", func(req *models.UpdateSettingsRequest) { req.Tables[1].ID = "t1" }},
		{"empty table name", func(req *models.UpdateSettingsRequest) { req.Tables[0].Name = "" }},
		{"zero seats", func(req *models.UpdateSettingsRequest) { req.Tables[0].Seats = 0 }},
		{"no hours", func(req *models.UpdateSettingsRequest) { req.Hours = nil }},
		{"invalid day of week", func(req *models.UpdateSettingsRequest) {
			req.Hours[7] = models.DaySchedule{}
		}},
		{"malformed range start", func(req *models.UpdateSettingsRequest) {
			req.Hours[1] = models.DaySchedule{
				Lunch: models.TimeRange{IsOpen: true, Start: "25:00", End: "15:00"},
			}
		}},
		{"range start after end", func(req *models.UpdateSettingsRequest) {
			req.Hours[1] = models.DaySchedule{
				Lunch: models.TimeRange{IsOpen: true, Start: "15:00", End: "12:00"},
			}
		}},
		{"range start equals end", func(req *models.UpdateSettingsRequest) {
			req.Hours[1] = models.DaySchedule{
				Lunch: models.TimeRange{IsOpen: true, Start: "12:00", End: "12:00"},
			}
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validUpdateRequest()
			tc.modify(req)

			assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
		})
	}
}
