package vehicleservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kritsadaK/TTB-BookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с реестром транспорта (Vehicle Registry)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента реестра транспорта
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// wireVehicle модель транспорта на проводе
// units исторически приходит и числом, и строкой; json.Number принимает оба
type wireVehicle struct {
	Name  string      `json:"name"`
	Units json.Number `json:"units"`
}

// GetVehicles получает весь реестр транспорта
func (c *Client) GetVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	reqURL := fmt.Sprintf("%s/vehicles", c.baseURL)

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

	var wire []wireVehicle
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	vehicles := make([]domain.Vehicle, 0, len(wire))
	for _, v := range wire {
		units, err := v.Units.Int64()
		if err != nil {
			// Нечисловые units пропускаем: вместимость такого транспорта
			// деградирует к дефолту пакета
			c.log.Warn("GetVehicles: non-numeric units for vehicle %q: %v", v.Name, err)
			continue
		}
		vehicles = append(vehicles, domain.Vehicle{Name: v.Name, Units: int(units)})
	}

	return vehicles, nil
}

// GetRegistryWithGracefulDegradation получает реестр транспорта с graceful degradation
// При недоступности реестра возвращает пустой реестр и ErrServiceDegraded:
// расчёт вместимости переходит на дефолтные значения пакетов, выдача слотов не падает
func (c *Client) GetRegistryWithGracefulDegradation(ctx context.Context) (domain.VehicleRegistry, error) {
	vehicles, err := c.GetVehicles(ctx)
	if err != nil {
		c.log.Error("VehicleService unavailable, applying graceful degradation: %v", err)
		return domain.VehicleRegistry{}, fmt.Errorf("%w: %v", ErrServiceDegraded, err)
	}

	return domain.NewVehicleRegistry(vehicles), nil
}
