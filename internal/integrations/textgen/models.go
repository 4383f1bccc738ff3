package textgen

// ConfirmationRequest запрос к сервису генерации текста
type ConfirmationRequest struct {
	RestaurantName   string `json:"restaurantName"`
	CustomerName     string `json:"customerName"`
	Date             string `json:"date"`      // YYYY-MM-DD
	StartTime        string `json:"startTime"` // HH:MM
	PartySize        int    `json:"partySize"`
	ToleranceMinutes int    `json:"toleranceMinutes"`
}

// ConfirmationResponse ответ сервиса генерации текста
type ConfirmationResponse struct {
	Message string `json:"message"`
}

// ErrorResponse модель ошибки от сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
