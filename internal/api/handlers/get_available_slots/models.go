package get_available_slots

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-CoworkingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-CoworkingService/pkg/types"
)

// SlotResponse HTTP модель слота начала
type SlotResponse struct {
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
	AvailableCapacity int    `json:"availableCapacity"`
	Available         bool   `json:"available"`
}

// EndSlotResponse HTTP модель слота окончания
type EndSlotResponse struct {
	EndTime           string `json:"endTime"`
	DurationMinutes   int    `json:"durationMinutes"`
	DailyRateApplied  bool   `json:"dailyRateApplied"`
	AvailableCapacity int    `json:"availableCapacity"`
}

// PeriodResponse HTTP модель доступности периода
type PeriodResponse struct {
	Start             string `json:"start"`
	End               string `json:"end"`
	AvailableCapacity int    `json:"availableCapacity"`
	Available         bool   `json:"available"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date       string            `json:"date"`
	SpaceID    int64             `json:"spaceId"`
	Type       string            `json:"type"`
	Open       bool              `json:"open"`
	Capacity   int               `json:"capacity"`
	StartSlots []SlotResponse    `json:"startSlots"`
	EndSlots   []EndSlotResponse `json:"endSlots"`
	Period     *PeriodResponse   `json:"period,omitempty"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(spaceID int64, dateStr, typeStr, startStr, peopleStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	req := &getAvailableSlots.Request{
		SpaceID: spaceID,
		Date:    date,
		Type:    domain.ReservationType(typeStr),
	}

	if startStr != "" {
		start, err := types.NewTimeStringFromString(startStr)
		if err != nil {
			return nil, err
		}
		req.StartTime = &start
	}

	if peopleStr != "" {
		people, err := strconv.Atoi(peopleStr)
		if err != nil {
			return nil, err
		}
		req.People = people
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	result := &AvailableSlotsResponse{
		Date:       resp.Date.Format(domain.DateFormat),
		SpaceID:    resp.SpaceID,
		Type:       string(resp.Type),
		Open:       resp.Open,
		Capacity:   resp.Capacity,
		StartSlots: make([]SlotResponse, 0, len(resp.StartSlots)),
		EndSlots:   make([]EndSlotResponse, 0, len(resp.EndSlots)),
	}

	for _, s := range resp.StartSlots {
		result.StartSlots = append(result.StartSlots, SlotResponse{
			StartTime:         s.StartTime.String(),
			EndTime:           s.EndTime.String(),
			AvailableCapacity: s.AvailableCapacity,
			Available:         s.Available,
		})
	}

	for _, s := range resp.EndSlots {
		result.EndSlots = append(result.EndSlots, EndSlotResponse{
			EndTime:           s.EndTime.String(),
			DurationMinutes:   s.DurationMinutes,
			DailyRateApplied:  s.DailyRateApplied,
			AvailableCapacity: s.AvailableCapacity,
		})
	}

	if resp.Period != nil {
		result.Period = &PeriodResponse{
			Start:             resp.Period.Start.Format(time.RFC3339),
			End:               resp.Period.End.Format(time.RFC3339),
			AvailableCapacity: resp.Period.AvailableCapacity,
			Available:         resp.Period.Available,
		}
	}

	return result
}
