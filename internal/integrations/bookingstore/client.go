package bookingstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/kritsadaK/TTB-BookingService/internal/domain"
	"github.com/kritsadaK/TTB-BookingService/pkg/types"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с хранилищем бронирований (Bookings Store)
// Хранилище владеет персистентностью: сервис слотов своих данных не хранит
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента хранилища бронирований
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetBookings получает бронирования по фильтру (пакет, дата, время)
func (c *Client) GetBookings(ctx context.Context, filter BookingsFilter) ([]*domain.Booking, error) {
	query := url.Values{}
	query.Set("packageId", filter.PackageID)
	if !filter.Date.IsZero() {
		query.Set("date", filter.Date.String())
	}
	if !filter.Time.IsZero() {
		query.Set("time", filter.Time.String())
	}

	reqURL := fmt.Sprintf("%s/bookings?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var wire []wireBooking
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	bookings := make([]*domain.Booking, 0, len(wire))
	for i := range wire {
		bookings = append(bookings, wire[i].toDomain())
	}

	return bookings, nil
}

// CreateBooking создает бронирование в хранилище
// Хранилище может отклонить запрос собственной валидацией (ErrRejectedByStore) —
// это последний рубеж против гонки двух одновременных бронирований одного слота
func (c *Client) CreateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	payload, err := json.Marshal(fromDomain(booking))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal booking: %v", ErrInternal, err)
	}

	reqURL := fmt.Sprintf("%s/bookings", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusConflict, http.StatusUnprocessableEntity:
		var storeErr ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&storeErr)
		return nil, fmt.Errorf("%w: %s", ErrRejectedByStore, storeErr.Message)
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var created wireBooking
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return created.toDomain(), nil
}

// DeleteBooking удаляет бронирование по ID
func (c *Client) DeleteBooking(ctx context.Context, bookingID string) error {
	reqURL := fmt.Sprintf("%s/bookings/%s", c.baseURL, url.PathEscape(bookingID))

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrBookingNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}

// GetSlotOverrides получает переключатели слотов пакета на дату
// (явная доступность и слотовые минимумы, хранимые рядом с бронированиями)
func (c *Client) GetSlotOverrides(ctx context.Context, packageID string, date types.CivilDate) ([]domain.SlotOverride, error) {
	query := url.Values{}
	query.Set("packageId", packageID)
	query.Set("date", date.String())

	reqURL := fmt.Sprintf("%s/timeslots?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var wire []wireSlotOverride
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	overrides := make([]domain.SlotOverride, 0, len(wire))
	for _, o := range wire {
		overrides = append(overrides, domain.SlotOverride{
			Time:          types.TimeString(o.Time),
			IsAvailable:   o.IsAvailable,
			MinimumPerson: o.MinimumPerson,
		})
	}

	return overrides, nil
}

// ToggleAvailability переключает явную доступность слота
func (c *Client) ToggleAvailability(ctx context.Context, req ToggleAvailabilityRequest) error {
	return c.putJSON(ctx, "/timeslots/toggle-availability", req)
}

// SetMinimumPerson устанавливает слотовый минимум на первое бронирование
func (c *Client) SetMinimumPerson(ctx context.Context, req MinimumPersonRequest) error {
	return c.putJSON(ctx, "/timeslots/minimum-person", req)
}

// putJSON выполняет PUT с JSON телом на указанный путь хранилища
func (c *Client) putJSON(ctx context.Context, path string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrBookingNotFound
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}
