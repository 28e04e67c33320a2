package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// ============================================================
// Geometry Client
// ============================================================

// GeometryClient ходит в Geometry Service за моделью и планом.
type GeometryClient struct {
	baseURL string
	client  *http.Client
}

func NewGeometryClient(baseURL string) *GeometryClient {
	return &GeometryClient{
		baseURL: baseURL,
		client:  http.DefaultClient,
	}
}

type modelRequest struct {
	BHK   int             `json:"bhk"`
	Sqft  int             `json:"sqft"`
	Rooms json.RawMessage `json:"rooms,omitempty"`
}

type planRequest struct {
	BHK int `json:"bhk"`
}

// Model запрашивает GLB. rooms — сырой JSON список комнат или nil; решение
// о пути генерации принимает сам геометрический сервис.
func (g *GeometryClient) Model(ctx context.Context, bhk, sqft int, rooms json.RawMessage) ([]byte, error) {
	body, err := json.Marshal(modelRequest{BHK: bhk, Sqft: sqft, Rooms: rooms})
	if err != nil {
		return nil, err
	}
	return g.post(ctx, "/model", body)
}

// Plan запрашивает SVG план этажа.
func (g *GeometryClient) Plan(ctx context.Context, bhk int) (string, error) {
	body, err := json.Marshal(planRequest{BHK: bhk})
	if err != nil {
		return "", err
	}
	data, err := g.post(ctx, "/plan", body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (g *GeometryClient) post(ctx context.Context, path string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geometry service: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("geometry service: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geometry service: %s", resp.Status)
	}
	return data, nil
}
